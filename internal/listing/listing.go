// Package listing renders one directory's contents in ls-style columns. It
// consumes fsmeta directly and does no matching; classification (directory,
// symlink, executable) is presentation only.
package listing

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/ferret/ferret/internal/fsmeta"
)

// Options mirrors the ls-like flags.
type Options struct {
	All          bool // include dotfiles
	Long         bool // permission/size/mtime columns
	Recursive    bool
	Human        bool // humanized sizes in long mode
	ExplainPerms bool // append the spelled-out permission triads
	NoColor      bool
}

// List writes the listing for path. Files are listed as themselves;
// directories list their children in lexical order.
func List(w io.Writer, path string, opts Options) error {
	e, err := fsmeta.Query(path)
	if err != nil {
		return err
	}
	if e.Kind != fsmeta.KindDir {
		return printEntry(w, e, opts, "")
	}
	if opts.Recursive {
		return listRecursive(w, path, opts, 0)
	}
	return listDir(w, path, opts, "")
}

func listDir(w io.Writer, dir string, opts Options, indent string) error {
	names, err := childNames(dir)
	if err != nil {
		return err
	}
	for _, name := range names {
		if !opts.All && strings.HasPrefix(name, ".") {
			continue
		}
		e, err := fsmeta.Query(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(w, "%s%s [unreadable]\n", indent, name)
			continue
		}
		if err := printEntry(w, e, opts, indent); err != nil {
			return err
		}
	}
	return nil
}

func listRecursive(w io.Writer, dir string, opts Options, depth int) error {
	indent := strings.Repeat("  ", depth)
	header := dir
	if depth > 0 {
		header = filepath.Base(dir)
	}
	fmt.Fprintf(w, "%s%s:\n", indent, paint(opts.NoColor, header, color.FgCyan, color.Bold))

	names, err := childNames(dir)
	if err != nil {
		return err
	}
	var subdirs []string
	for _, name := range names {
		if !opts.All && strings.HasPrefix(name, ".") {
			continue
		}
		full := filepath.Join(dir, name)
		e, err := fsmeta.Query(full)
		if err != nil {
			fmt.Fprintf(w, "%s%s [unreadable]\n", indent, name)
			continue
		}
		if err := printEntry(w, e, opts, indent); err != nil {
			return err
		}
		if e.Kind == fsmeta.KindDir {
			subdirs = append(subdirs, full)
		}
	}
	for _, sub := range subdirs {
		if err := listRecursive(w, sub, opts, depth+1); err != nil {
			// A denied subdirectory should not abort the rest of the listing.
			fmt.Fprintf(w, "%s%s: %v\n", indent, filepath.Base(sub), err)
		}
	}
	return nil
}

func childNames(dir string) ([]string, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(des))
	for i, de := range des {
		names[i] = de.Name()
	}
	sort.Strings(names)
	return names, nil
}

func printEntry(w io.Writer, e *fsmeta.Entry, opts Options, indent string) error {
	name := decorate(e, opts.NoColor)
	if !opts.Long {
		_, err := fmt.Fprintf(w, "%s%s\n", indent, name)
		return err
	}
	perms := e.PermString()
	if opts.ExplainPerms {
		perms += " " + e.ExplainPerms()
	}
	size := fmt.Sprintf("%10d", e.Size)
	if opts.Human {
		size = fmt.Sprintf("%10s", humanize.IBytes(uint64(e.Size)))
	}
	mtime := e.ModTime.Format("Jan 02 15:04")
	_, err := fmt.Fprintf(w, "%s%s %s %s %s\n", indent, perms, size, mtime, name)
	return err
}

// decorate renders the entry name with its classification: directories get a
// trailing slash, symlinks and executables their conventional colors.
func decorate(e *fsmeta.Entry, noColor bool) string {
	switch {
	case e.Kind == fsmeta.KindDir:
		return paint(noColor, e.Name+"/", color.FgCyan, color.Bold)
	case e.Kind == fsmeta.KindSymlink:
		return paint(noColor, e.Name, color.FgMagenta)
	case e.Kind == fsmeta.KindFile && e.IsExecutable():
		return paint(noColor, e.Name, color.FgGreen, color.Bold)
	default:
		return e.Name
	}
}

func paint(noColor bool, s string, attrs ...color.Attribute) string {
	if noColor {
		return s
	}
	return color.New(attrs...).Sprint(s)
}
