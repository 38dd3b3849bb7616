// Package ignore loads .ferretignore files and answers whether a relative
// path should be excluded from a scan.
package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Matcher holds the exclusion patterns for one scan. The zero value matches
// nothing.
type Matcher struct {
	patterns []string
}

// Load reads patterns from path, one per line; blank lines and #-comments are
// skipped. A missing file yields an empty matcher and no error.
func Load(path string) (Matcher, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Matcher{}, nil
		}
		return Matcher{}, err
	}
	defer f.Close()

	var m Matcher
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.patterns = append(m.patterns, line)
	}
	return m, sc.Err()
}

// New builds a matcher from already-parsed patterns (e.g. --exclude globs).
func New(patterns []string) Matcher {
	var out []string
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return Matcher{patterns: out}
}

// Merge returns a matcher combining the patterns of both inputs.
func Merge(a, b Matcher) Matcher {
	return Matcher{patterns: append(append([]string{}, a.patterns...), b.patterns...)}
}

// Match reports whether rel (slash-separated, relative to the scan root) is
// excluded. Patterns are tried against the full relative path and against the
// base name, so "node_modules" excludes the directory at any depth.
func (m Matcher) Match(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, pat := range m.patterns {
		if ok, _ := doublestar.Match(pat, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(pat, filepath.Base(rel)); ok {
			return true
		}
	}
	return false
}

// Empty reports whether the matcher has no patterns.
func (m Matcher) Empty() bool { return len(m.patterns) == 0 }
