package main

import "github.com/ferret/ferret/cmd/fr"

func main() { fr.Execute() }
