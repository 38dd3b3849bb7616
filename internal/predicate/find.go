package predicate

import (
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	humanize "github.com/dustin/go-humanize"
	"github.com/ferret/ferret/internal/fsmeta"
)

// Find matches entries whose base name matches a glob pattern, with optional
// kind and size filters. A pattern without glob metacharacters matches as a
// substring, so `fr find passwd` behaves like a name search rather than
// requiring an exact name.
type Find struct {
	Pattern    string
	IgnoreCase bool
	Kind       string // "", "file", "dir", "symlink"
	MinSize    int64  // bytes; 0 = no lower bound
	MaxSize    int64  // bytes; 0 = no upper bound
}

func (Find) ID() string { return "find" }

func (f Find) Evaluate(e *fsmeta.Entry) Outcome {
	if f.Kind != "" && e.Kind.String() != f.Kind {
		return None()
	}
	// Size bounds only make sense for regular files; directory sizes are
	// filesystem block counts.
	if f.MinSize > 0 || f.MaxSize > 0 {
		if e.Kind != fsmeta.KindFile {
			return None()
		}
		if f.MinSize > 0 && e.Size < f.MinSize {
			return None()
		}
		if f.MaxSize > 0 && e.Size > f.MaxSize {
			return None()
		}
	}
	name, pat := e.Name, f.Pattern
	if f.IgnoreCase {
		name, pat = strings.ToLower(name), strings.ToLower(pat)
	}
	if !nameMatches(pat, name) {
		return None()
	}
	if e.Kind == fsmeta.KindFile {
		return Match(e.Kind.String() + ", " + humanize.IBytes(uint64(e.Size)))
	}
	return Match(e.Kind.String())
}

func nameMatches(pat, name string) bool {
	if !strings.ContainsAny(pat, "*?[{") {
		return strings.Contains(name, pat)
	}
	ok, _ := doublestar.Match(pat, name)
	return ok
}
