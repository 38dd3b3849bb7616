package report

import (
	"encoding/json"
	"fmt"
	"os"

	xxhash "github.com/cespare/xxhash/v2"
)

// Baseline is a saved fingerprint set from a previous scan. Comparing a live
// scan against it supports the before/after workflow: snapshot a clean
// system, run the same scan later, and only new findings surface.
type Baseline struct {
	Predicate string          `json:"predicate"`
	Items     map[string]bool `json:"items"`
}

// LoadBaseline reads a baseline file. A missing or malformed file yields an
// empty baseline so a first run with --baseline still reports everything.
func LoadBaseline(path string) (Baseline, error) {
	b := Baseline{Items: map[string]bool{}}
	buf, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	_ = json.Unmarshal(buf, &b)
	if b.Items == nil {
		b.Items = map[string]bool{}
	}
	return b, nil
}

// SaveBaseline writes the fingerprints of the given matched paths.
func SaveBaseline(path, predicateID string, matched []string) error {
	b := Baseline{Predicate: predicateID, Items: map[string]bool{}}
	for _, p := range matched {
		b.Items[fingerprint(predicateID, p)] = true
	}
	buf, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}

// Has reports whether a matched path was already present in the baseline.
func (b Baseline) Has(predicateID, path string) bool {
	return b.Items[fingerprint(predicateID, path)]
}

func fingerprint(predicateID, path string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(predicateID+"|"+path))
}
