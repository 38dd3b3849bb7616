// Package report renders scan results. It consumes the traversal stream one
// item at a time, writes matches to stdout or a file sink in quiet or
// verbose form, and keeps stdout pipe-clean by routing warnings and the
// end-of-scan summary to stderr.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/ferret/ferret/internal/predicate"
	"github.com/ferret/ferret/internal/traverse"
)

// Mode selects what is printed per match.
type Mode int

const (
	// Quiet prints the path only, one per line, suitable for grep/diff.
	Quiet Mode = iota
	// Verbose prints path, a tab, and the predicate-specific detail.
	Verbose
)

// ErrSinkWrite marks a failed write to the output sink. It is fatal to the
// scan: partial security scan output is misleading, so the caller aborts and
// flags the output as incomplete.
var ErrSinkWrite = errors.New("output sink write failed")

// Options configures a Reporter.
type Options struct {
	Mode    Mode
	NoColor bool
	Errw    io.Writer // warnings and summary; defaults to os.Stderr
}

// Reporter serializes matches to a single sink. It is not safe for
// concurrent use; a parallel traversal must serialize Emit calls.
type Reporter struct {
	w      io.Writer
	file   *os.File
	opts   Options
	warned map[string]bool
}

// New returns a Reporter writing to stdout when dest is empty, otherwise to
// the named file opened in truncate-write mode.
func New(dest string, opts Options) (*Reporter, error) {
	if opts.Errw == nil {
		opts.Errw = os.Stderr
	}
	r := &Reporter{opts: opts, warned: map[string]bool{}}
	if dest == "" {
		r.w = os.Stdout
		return r, nil
	}
	f, err := os.Create(dest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSinkWrite, err)
	}
	r.file = f
	r.w = f
	return r, nil
}

// NewWriter returns a Reporter over an arbitrary writer. Used by tests and
// by callers that manage their own sinks.
func NewWriter(w io.Writer, opts Options) *Reporter {
	if opts.Errw == nil {
		opts.Errw = os.Stderr
	}
	return &Reporter{w: w, opts: opts, warned: map[string]bool{}}
}

// Emit writes one scan item. Non-matches and indeterminate outcomes produce
// no per-entry output; indeterminate totals surface once in the summary.
func (r *Reporter) Emit(it traverse.Item) error {
	if it.Outcome.Status != predicate.Matched {
		return nil
	}
	var err error
	switch r.opts.Mode {
	case Verbose:
		_, err = fmt.Fprintf(r.w, "%s\t%s\n", it.Entry.Path, it.Outcome.Detail)
	default:
		_, err = fmt.Fprintf(r.w, "%s\n", it.Entry.Path)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSinkWrite, err)
	}
	return nil
}

// Warn emits a scan-level warning once per distinct message, no matter how
// many entries trigger it.
func (r *Reporter) Warn(msg string) {
	if r.warned[msg] {
		return
	}
	r.warned[msg] = true
	fmt.Fprintf(r.opts.Errw, "warning: %s\n", msg)
}

// Summary writes the end-of-scan counters to the error channel so quiet
// stdout stays machine-consumable.
func (r *Reporter) Summary(c traverse.Counters, d time.Duration) {
	head := "scan complete:"
	if !r.opts.NoColor {
		head = color.New(color.FgGreen, color.Bold).Sprint(head)
	}
	fmt.Fprintf(r.opts.Errw, "%s %d matched, %d visited, %d dirs skipped in %.2fs\n",
		head, c.Matched, c.Visited, c.SkippedDirs, d.Seconds())
	if c.Indeterminate > 0 {
		fmt.Fprintf(r.opts.Errw, "%d entries could not be read\n", c.Indeterminate)
	}
}

// Suppressed reconciles the summary's matched count with the lines actually
// emitted when a baseline filter held findings back. Zero prints nothing.
func (r *Reporter) Suppressed(n int) {
	if n <= 0 {
		return
	}
	fmt.Fprintf(r.opts.Errw, "%d matches suppressed by baseline\n", n)
}

// Incomplete flags the sink output as unusable after a fatal mid-scan error.
func (r *Reporter) Incomplete(reason error) {
	fmt.Fprintf(r.opts.Errw, "error: scan aborted, output incomplete: %v\n", reason)
}

// Close flushes and closes a file sink. Close failure is a sink failure.
func (r *Reporter) Close() error {
	if r.file == nil {
		return nil
	}
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrSinkWrite, err)
	}
	return nil
}
