// Package stats summarizes a directory tree: entry totals, size
// distribution, extension breakdown, and largest files.
package stats

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Options configures a stats run.
type Options struct {
	Recursive bool
	Hidden    bool
	Verbose   bool
	NoColor   bool
	Width     int // terminal width; 0 picks a default
	TopN      int // rows in the extension/largest tables; 0 picks a default
}

type extStat struct {
	ext   string
	count int
	size  uint64
}

type bigFile struct {
	path string
	size uint64
}

var sizeBuckets = []struct {
	label string
	max   uint64
}{
	{"0-1KB", 1 << 10},
	{"1KB-100KB", 100 << 10},
	{"100KB-1MB", 1 << 20},
	{"1MB-10MB", 10 << 20},
	{"10MB-100MB", 100 << 20},
	{"100MB+", ^uint64(0)},
}

// Show walks root and writes the summary. Unreadable entries are skipped
// silently; statistics over a partially readable tree are still useful.
func Show(w io.Writer, root string, opts Options) error {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.TopN <= 0 {
		opts.TopN = 10
	}
	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "analyzing %s (recursive=%v hidden=%v)\n", root, opts.Recursive, opts.Hidden)
	}

	var files, dirs int
	var total uint64
	exts := map[string]*extStat{}
	buckets := make([]int, len(sizeBuckets))
	largest := make([]bigFile, 0, opts.TopN+1)

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		name := d.Name()
		if !opts.Hidden && p != root && strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if p != root {
				dirs++
				if !opts.Recursive {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return nil
		}
		files++
		size := uint64(fi.Size())
		total += size

		ext := strings.ToLower(filepath.Ext(name))
		if ext == "" {
			ext = "(no extension)"
		}
		st := exts[ext]
		if st == nil {
			st = &extStat{ext: ext}
			exts[ext] = st
		}
		st.count++
		st.size += size

		for i, b := range sizeBuckets {
			if size <= b.max {
				buckets[i]++
				break
			}
		}

		largest = append(largest, bigFile{path: p, size: size})
		sort.Slice(largest, func(i, j int) bool { return largest[i].size > largest[j].size })
		if len(largest) > opts.TopN {
			largest = largest[:opts.TopN]
		}
		return nil
	})
	if err != nil {
		return err
	}

	heading := func(s string) string {
		if opts.NoColor {
			return s
		}
		return color.New(color.FgGreen, color.Bold).Sprint(s)
	}

	fmt.Fprintf(w, "%s\n", heading("General Statistics"))
	fmt.Fprintf(w, "  Total Files:       %d\n", files)
	fmt.Fprintf(w, "  Total Directories: %d\n", dirs)
	fmt.Fprintf(w, "  Total Size:        %s\n\n", humanize.IBytes(total))

	fmt.Fprintf(w, "%s\n", heading("Size Distribution"))
	for i, b := range sizeBuckets {
		fmt.Fprintf(w, "  %-12s %6d %s\n", b.label, buckets[i], bar(buckets[i], files, 30, opts.NoColor))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\n", heading("Top File Types"))
	renderExtTable(w, exts, opts.TopN)

	fmt.Fprintf(w, "\n%s\n", heading("Largest Files"))
	pathWidth := opts.Width - 20
	if pathWidth < 40 {
		pathWidth = 40
	}
	for _, bf := range largest {
		rel, err := filepath.Rel(root, bf.path)
		if err != nil {
			rel = bf.path
		}
		if len(rel) > pathWidth {
			rel = "..." + rel[len(rel)-pathWidth+3:]
		}
		fmt.Fprintf(w, "  %-*s %12s\n", pathWidth, rel, humanize.IBytes(bf.size))
	}
	return nil
}

func renderExtTable(w io.Writer, exts map[string]*extStat, topN int) {
	rows := make([]*extStat, 0, len(exts))
	for _, st := range exts {
		rows = append(rows, st)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count == rows[j].count {
			return rows[i].ext < rows[j].ext
		}
		return rows[i].count > rows[j].count
	})
	if len(rows) > topN {
		rows = rows[:topN]
	}

	table := tablewriter.NewTable(w)
	table.Header("Extension", "Count", "Total Size")
	for _, st := range rows {
		_ = table.Append([]string{st.ext, fmt.Sprintf("%d", st.count), humanize.IBytes(st.size)})
	}
	_ = table.Render()
}

// bar renders a fixed-width proportion indicator.
func bar(value, max, width int, noColor bool) string {
	if max <= 0 {
		return ""
	}
	filled := value * width / max
	if filled > width {
		filled = width
	}
	full := strings.Repeat("█", filled)
	rest := strings.Repeat("░", width-filled)
	if noColor {
		return full + rest
	}
	return color.CyanString(full) + rest
}
