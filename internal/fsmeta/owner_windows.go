//go:build !unix

package fsmeta

import "io/fs"

// Windows has no numeric uid/gid; ownership stays unset and HasOwner false.
func fillOwner(e *Entry, fi fs.FileInfo) {}
