package fsmeta

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Kind classifies a filesystem entry.
type Kind int

const (
	KindFile Kind = iota
	KindDir
	KindSymlink
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// Sentinel errors for conditions callers recover from. Both are absorbed into
// an indeterminate outcome by the scanning layer; neither aborts a scan.
var (
	ErrDenied     = errors.New("permission denied")
	ErrBrokenLink = errors.New("broken symbolic link")
)

// CapabilitySet holds the capability names attached to an entry. Supported
// distinguishes "queried and found empty" from "platform has no concept of
// capabilities"; on non-Linux builds Supported is always false.
type CapabilitySet struct {
	Supported bool
	Names     []string
}

func (c CapabilitySet) Empty() bool { return len(c.Names) == 0 }

// Entry is one filesystem node as seen at visit time. It is constructed
// transiently per visit and immutable for the duration of predicate
// evaluation.
type Entry struct {
	Path     string
	Name     string
	Kind     Kind
	Mode     fs.FileMode
	UID      uint32
	GID      uint32
	HasOwner bool
	Size     int64
	ModTime  time.Time
	Caps     CapabilitySet
}

// Query reads metadata for path without following symlinks. Permission and
// vanished-entry conditions come back as ErrDenied / ErrBrokenLink wrapped
// errors rather than panics or opaque failures.
func Query(path string) (*Entry, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return nil, classify(path, err)
	}
	e := &Entry{
		Path:    path,
		Name:    filepath.Base(path),
		Kind:    kindOf(fi.Mode()),
		Mode:    fi.Mode(),
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
	}
	fillOwner(e, fi)
	if e.Kind == KindFile {
		e.Caps = readCaps(path)
	} else {
		e.Caps = CapabilitySet{Supported: capsSupported}
	}
	return e, nil
}

func classify(path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%s: %w", path, ErrDenied)
	}
	if errors.Is(err, fs.ErrNotExist) {
		// Listed by the parent directory but gone on stat: either a dangling
		// symlink target or an entry removed mid-scan.
		return fmt.Errorf("%s: %w", path, ErrBrokenLink)
	}
	return err
}

func kindOf(m fs.FileMode) Kind {
	switch {
	case m.IsRegular():
		return KindFile
	case m.IsDir():
		return KindDir
	case m&fs.ModeSymlink != 0:
		return KindSymlink
	default:
		return KindOther
	}
}

// IsSetuid reports whether the setuid bit is set, regardless of entry kind.
// Kind policy (directories excluded) belongs to the predicates, not here.
func (e *Entry) IsSetuid() bool { return e.Mode&fs.ModeSetuid != 0 }

// IsSetgid reports whether the setgid bit is set.
func (e *Entry) IsSetgid() bool { return e.Mode&fs.ModeSetgid != 0 }

// IsWorldWritable reports whether any user on the system may modify the entry.
func (e *Entry) IsWorldWritable() bool { return e.Mode.Perm()&0o002 != 0 }

// IsExecutable reports whether any execute bit is set. Used for listing
// classification only.
func (e *Entry) IsExecutable() bool { return e.Mode.Perm()&0o111 != 0 }

// PermString renders the entry mode as an ls-style permission string,
// including s/S markers for setuid/setgid and t/T for the sticky bit.
func (e *Entry) PermString() string {
	m := e.Mode
	var kind byte
	switch {
	case m.IsDir():
		kind = 'd'
	case m&fs.ModeSymlink != 0:
		kind = 'l'
	default:
		kind = '-'
	}
	p := m.Perm()
	u, g, o := rwx(p>>6), rwx(p>>3), rwx(p)
	buf := []byte{kind, u[0], u[1], u[2], g[0], g[1], g[2], o[0], o[1], o[2]}
	if m&fs.ModeSetuid != 0 {
		buf[3] = special(buf[3])
	}
	if m&fs.ModeSetgid != 0 {
		buf[6] = special(buf[6])
	}
	if m&fs.ModeSticky != 0 {
		if buf[9] == 'x' {
			buf[9] = 't'
		} else {
			buf[9] = 'T'
		}
	}
	return string(buf)
}

// ExplainPerms renders the permission triads in long form, e.g.
// "(owner:rwx, group:r-x, other:r-x)".
func (e *Entry) ExplainPerms() string {
	p := e.Mode.Perm()
	return fmt.Sprintf("(owner:%s, group:%s, other:%s)", rwx(p>>6), rwx(p>>3), rwx(p))
}

func rwx(p fs.FileMode) string {
	b := []byte{'-', '-', '-'}
	if p&4 != 0 {
		b[0] = 'r'
	}
	if p&2 != 0 {
		b[1] = 'w'
	}
	if p&1 != 0 {
		b[2] = 'x'
	}
	return string(b)
}

func special(x byte) byte {
	if x == 'x' {
		return 's'
	}
	return 'S'
}

// CapsSupported reports whether this build can read file capabilities at all.
// The reporter uses it to emit a single scan-level caveat instead of silently
// reporting zero matches on platforms without the concept.
func CapsSupported() bool { return capsSupported }
