package predicate

import "github.com/ferret/ferret/internal/fsmeta"

// Sgid matches regular files with the setgid bit set.
type Sgid struct{}

func (Sgid) ID() string { return "sgid" }

func (Sgid) Evaluate(e *fsmeta.Entry) Outcome {
	if e.Kind != fsmeta.KindFile {
		return None()
	}
	if !e.IsSetgid() {
		return None()
	}
	return Match(e.PermString())
}
