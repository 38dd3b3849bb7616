package predicate

import "github.com/ferret/ferret/internal/fsmeta"

// Writable matches world-writable files and directories. DirsOnly and
// FilesOnly narrow the report; with neither set, both kinds are reported.
type Writable struct {
	DirsOnly  bool
	FilesOnly bool
}

func (Writable) ID() string { return "writable" }

func (w Writable) Evaluate(e *fsmeta.Entry) Outcome {
	switch e.Kind {
	case fsmeta.KindFile:
		if w.DirsOnly {
			return None()
		}
	case fsmeta.KindDir:
		if w.FilesOnly {
			return None()
		}
	default:
		return None()
	}
	if !e.IsWorldWritable() {
		return None()
	}
	return Match(e.PermString())
}
