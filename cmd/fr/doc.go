// Package fr provides the command-line interface for the Ferret tool. It
// configures subcommands (find, suid, sgid, writable, caps, configs, recent,
// ls, stats, dn), parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/ferret/ferret/cmd/fr"
//	func main() { fr.Execute() }
package fr
