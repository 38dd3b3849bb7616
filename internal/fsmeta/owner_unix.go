//go:build unix

package fsmeta

import (
	"io/fs"
	"syscall"
)

func fillOwner(e *Entry, fi fs.FileInfo) {
	if st, ok := fi.Sys().(*syscall.Stat_t); ok {
		e.UID = st.Uid
		e.GID = st.Gid
		e.HasOwner = true
	}
}
