package traverse

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ferret/ferret/internal/fsmeta"
	"github.com/ferret/ferret/internal/ignore"
	"github.com/ferret/ferret/internal/predicate"
)

// ErrInvalidRoot is returned before traversal starts when the requested root
// does not exist or is not a directory.
var ErrInvalidRoot = errors.New("invalid scan root")

// Request configures one scan.
type Request struct {
	Root     string
	Pred     predicate.Predicate
	MaxDepth int // 0 = unbounded; 1 = root's direct children only
	Exclude  ignore.Matcher
}

// Counters aggregates what happened during a scan. It is owned by the Stream
// rather than being ambient process state so scans stay independently
// testable and composable.
type Counters struct {
	Visited       int
	Matched       int
	SkippedDirs   int
	Indeterminate int
}

// Item is one yielded (entry, outcome) pair. Entry carries at least a path
// even when metadata could not be read.
type Item struct {
	Entry   *fsmeta.Entry
	Outcome predicate.Outcome
}

// frame is one open directory on the descent stack. Children are read
// lazily on first use and consumed front to back.
type frame struct {
	path  string
	depth int
	names []string
	next  int
	read  bool
}

// Stream yields scan results one at a time. It is forward-only and finite;
// reconstruct it with New to scan again.
type Stream struct {
	ctx      context.Context
	req      Request
	stack    []*frame
	counters Counters
	err      error
	done     bool
	started  bool
}

// New validates the request and prepares a Stream. The root must exist and
// be a directory; anything else fails here, before any entry is yielded.
func New(ctx context.Context, req Request) (*Stream, error) {
	fi, err := os.Stat(req.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRoot, req.Root)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, req.Root)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return &Stream{ctx: ctx, req: req}, nil
}

// Next yields the next visited entry. It returns ok=false when the tree is
// exhausted or the context is cancelled; Err distinguishes the two.
func (s *Stream) Next() (Item, bool) {
	if s.done {
		return Item{}, false
	}
	if err := s.ctx.Err(); err != nil {
		s.err = err
		s.done = true
		return Item{}, false
	}
	if !s.started {
		s.started = true
		s.stack = append(s.stack, &frame{path: s.req.Root, depth: 0})
		// The root itself is visited as an entry so directory-level
		// predicates (world-writable) can report it.
		if it, ok := s.visit(s.req.Root); ok {
			return it, true
		}
	}
	for len(s.stack) > 0 {
		if err := s.ctx.Err(); err != nil {
			s.err = err
			s.done = true
			return Item{}, false
		}
		top := s.stack[len(s.stack)-1]
		if !top.read {
			top.read = true
			if !s.open(top) {
				s.stack = s.stack[:len(s.stack)-1]
				continue
			}
		}
		if top.next >= len(top.names) {
			s.stack = s.stack[:len(s.stack)-1]
			continue
		}
		name := top.names[top.next]
		top.next++
		full := filepath.Join(top.path, name)
		if s.excluded(full) {
			continue
		}
		entry, err := fsmeta.Query(full)
		if err != nil {
			s.counters.Visited++
			s.counters.Indeterminate++
			return Item{
				Entry:   &fsmeta.Entry{Path: full, Name: name},
				Outcome: predicate.Unknown(),
			}, true
		}
		// Real directories descend; symlinked directories are reported as
		// entries but never followed, which is the cycle guard.
		if entry.Kind == fsmeta.KindDir && s.canDescend(top.depth+1) {
			s.stack = append(s.stack, &frame{path: full, depth: top.depth + 1})
		}
		if it, ok := s.visitEntry(entry); ok {
			return it, true
		}
	}
	s.done = true
	return Item{}, false
}

// open reads a directory's child names in lexical order. os.ReadDir sorts by
// filename; that ordering is part of the output contract (reproducible
// diffing of two scans of an unchanged tree). A denied or vanished directory
// increments the skip counter and is not descended into.
func (s *Stream) open(f *frame) bool {
	des, err := os.ReadDir(f.path)
	if err != nil {
		s.counters.SkippedDirs++
		return false
	}
	f.names = make([]string, len(des))
	for i, de := range des {
		f.names[i] = de.Name()
	}
	return true
}

func (s *Stream) visit(path string) (Item, bool) {
	entry, err := fsmeta.Query(path)
	if err != nil {
		s.counters.Visited++
		s.counters.Indeterminate++
		return Item{
			Entry:   &fsmeta.Entry{Path: path, Name: filepath.Base(path)},
			Outcome: predicate.Unknown(),
		}, true
	}
	return s.visitEntry(entry)
}

func (s *Stream) visitEntry(entry *fsmeta.Entry) (Item, bool) {
	s.counters.Visited++
	out := s.req.Pred.Evaluate(entry)
	switch out.Status {
	case predicate.Matched:
		s.counters.Matched++
	case predicate.Indeterminate:
		s.counters.Indeterminate++
	}
	return Item{Entry: entry, Outcome: out}, true
}

func (s *Stream) excluded(full string) bool {
	if s.req.Exclude.Empty() {
		return false
	}
	rel, err := filepath.Rel(s.req.Root, full)
	if err != nil {
		return false
	}
	return s.req.Exclude.Match(rel)
}

// canDescend reports whether a directory frame at dirDepth may be opened.
// A frame at depth d yields entries at depth d+1, so with MaxDepth=1 only
// the root frame (depth 0) opens and only direct children are visited.
func (s *Stream) canDescend(dirDepth int) bool {
	return s.req.MaxDepth <= 0 || dirDepth < s.req.MaxDepth
}

// Counters returns a snapshot of the scan counters accumulated so far.
func (s *Stream) Counters() Counters { return s.counters }

// Err reports why the stream stopped early; nil after normal exhaustion.
func (s *Stream) Err() error { return s.err }
