package predicate

import (
	"fmt"
	"time"

	"github.com/ferret/ferret/internal/fsmeta"
)

// DefaultRecentWindow is the lookback used when no -t value is given.
const DefaultRecentWindow = 60 * time.Minute

// Recent matches regular files modified within Window of now. Entries whose
// mtime could not be read are indeterminate, not silently dropped.
type Recent struct {
	Window time.Duration
	Now    func() time.Time // nil means time.Now; injectable for tests
}

func (Recent) ID() string { return "recent" }

func (r Recent) Evaluate(e *fsmeta.Entry) Outcome {
	if e.Kind != fsmeta.KindFile {
		return None()
	}
	if e.ModTime.IsZero() {
		return Unknown()
	}
	window := r.Window
	if window <= 0 {
		window = DefaultRecentWindow
	}
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	age := now().Sub(e.ModTime)
	if age < 0 {
		age = 0
	}
	if age > window {
		return None()
	}
	return Match(fmt.Sprintf("modified %s ago", age.Round(time.Second)))
}
