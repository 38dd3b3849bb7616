package core

import (
	"context"
	"time"

	"github.com/ferret/ferret/internal/fsmeta"
	"github.com/ferret/ferret/internal/predicate"
	"github.com/ferret/ferret/internal/traverse"
)

// Re-export selected internal types as a stable public API surface. These
// are type aliases so external consumers can depend on a stable path; they
// can be replaced with decoupled structs later without breaking callers.
type (
	Request  = traverse.Request
	Stream   = traverse.Stream
	Counters = traverse.Counters
	Item     = traverse.Item
	Entry    = fsmeta.Entry
	Outcome  = predicate.Outcome
)

const (
	NoMatch       = predicate.NoMatch
	Matched       = predicate.Matched
	Indeterminate = predicate.Indeterminate
)

// ErrInvalidRoot is returned by Scan when the root is missing or not a
// directory.
var ErrInvalidRoot = traverse.ErrInvalidRoot

// Scan validates the request and returns a lazy result stream.
func Scan(ctx context.Context, req Request) (*Stream, error) {
	return traverse.New(ctx, req)
}

// Predicate constructors for the fixed catalog.
func Suid() predicate.Predicate { return predicate.Suid{} }
func Sgid() predicate.Predicate { return predicate.Sgid{} }
func Writable(dirs, files bool) predicate.Predicate {
	return predicate.Writable{DirsOnly: dirs, FilesOnly: files}
}
func Caps() predicate.Predicate    { return predicate.Caps{} }
func Configs() predicate.Predicate { return predicate.Configs{} }
func Recent(window time.Duration) predicate.Predicate {
	return predicate.Recent{Window: window}
}
func Find(pattern string) predicate.Predicate {
	return predicate.Find{Pattern: pattern}
}

// PredicateIDs returns the selectors accepted by the CLI, in display order.
func PredicateIDs() []string {
	return []string{"find", "suid", "sgid", "writable", "caps", "configs", "recent"}
}

// CapsSupported reports whether this build can query file capabilities.
func CapsSupported() bool { return fsmeta.CapsSupported() }
