package predicate

import "github.com/ferret/ferret/internal/fsmeta"

// Suid matches regular files with the setuid bit set. Directories carry the
// same bit for unrelated semantics and are never reported.
type Suid struct{}

func (Suid) ID() string { return "suid" }

func (Suid) Evaluate(e *fsmeta.Entry) Outcome {
	if e.Kind != fsmeta.KindFile {
		return None()
	}
	if !e.IsSetuid() {
		return None()
	}
	return Match(e.PermString())
}
