package predicate

import (
	"strings"

	"github.com/ferret/ferret/internal/fsmeta"
)

// Status is the three-valued result of evaluating a predicate against an
// entry. Indeterminate means the metadata needed for a decision could not be
// read; it is distinct from a definitive non-match.
type Status int

const (
	NoMatch Status = iota
	Matched
	Indeterminate
)

// Outcome pairs a status with an optional human-readable detail used by
// verbose output (permission string, capability list, elapsed time).
type Outcome struct {
	Status Status
	Detail string
}

func None() Outcome               { return Outcome{Status: NoMatch} }
func Match(detail string) Outcome { return Outcome{Status: Matched, Detail: detail} }
func Unknown() Outcome            { return Outcome{Status: Indeterminate} }

// Predicate classifies one entry. Implementations hold no mutable state.
type Predicate interface {
	ID() string
	Evaluate(e *fsmeta.Entry) Outcome
}

// And matches when every member matches. A definite NoMatch decides the
// conjunction immediately; Indeterminate wins only over Matched, so an
// entry whose metadata could not be read is never reported as a confirmed
// match.
type And []Predicate

func (a And) ID() string {
	ids := make([]string, len(a))
	for i, p := range a {
		ids[i] = p.ID()
	}
	return strings.Join(ids, "+")
}

func (a And) Evaluate(e *fsmeta.Entry) Outcome {
	out := Outcome{Status: Matched}
	for _, p := range a {
		o := p.Evaluate(e)
		switch o.Status {
		case NoMatch:
			return None()
		case Indeterminate:
			out = Unknown()
		case Matched:
			if out.Status == Matched && out.Detail == "" {
				out.Detail = o.Detail
			}
		}
	}
	return out
}

// Or matches when any member matches, keeping the first matching detail.
type Or []Predicate

func (o Or) ID() string {
	ids := make([]string, len(o))
	for i, p := range o {
		ids[i] = p.ID()
	}
	return strings.Join(ids, "|")
}

func (o Or) Evaluate(e *fsmeta.Entry) Outcome {
	sawUnknown := false
	for _, p := range o {
		switch out := p.Evaluate(e); out.Status {
		case Matched:
			return out
		case Indeterminate:
			sawUnknown = true
		}
	}
	if sawUnknown {
		return Unknown()
	}
	return None()
}
