package predicate

import (
	"strings"

	"github.com/ferret/ferret/internal/fsmeta"
)

// Caps matches regular files carrying a non-empty capability set. On builds
// without capability support it never matches; the reporter emits the one
// scan-level platform caveat, not this predicate.
type Caps struct{}

func (Caps) ID() string { return "caps" }

func (Caps) Evaluate(e *fsmeta.Entry) Outcome {
	if e.Kind != fsmeta.KindFile {
		return None()
	}
	if !e.Caps.Supported || e.Caps.Empty() {
		return None()
	}
	return Match(strings.Join(e.Caps.Names, ","))
}
