package predicate

import (
	"testing"
	"time"

	"github.com/ferret/ferret/internal/fsmeta"
)

func TestRecentWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := Recent{Window: 10 * time.Minute, Now: func() time.Time { return now }}

	fresh := &fsmeta.Entry{Kind: fsmeta.KindFile, ModTime: now.Add(-5 * time.Minute)}
	if out := p.Evaluate(fresh); out.Status != Matched {
		t.Fatalf("5-minute-old file inside a 10-minute window should match, got %v", out.Status)
	}

	stale := &fsmeta.Entry{Kind: fsmeta.KindFile, ModTime: now.Add(-30 * time.Minute)}
	if out := p.Evaluate(stale); out.Status != NoMatch {
		t.Fatalf("30-minute-old file should not match, got %v", out.Status)
	}

	boundary := &fsmeta.Entry{Kind: fsmeta.KindFile, ModTime: now.Add(-10 * time.Minute)}
	if out := p.Evaluate(boundary); out.Status != Matched {
		t.Fatalf("exactly-at-window file should match, got %v", out.Status)
	}
}

func TestRecentUnreadableMtime(t *testing.T) {
	p := Recent{Window: time.Hour}
	e := &fsmeta.Entry{Kind: fsmeta.KindFile}
	if out := p.Evaluate(e); out.Status != Indeterminate {
		t.Fatalf("missing mtime is indeterminate, not a silent drop; got %v", out.Status)
	}
}

func TestRecentDefaults(t *testing.T) {
	now := time.Now()
	p := Recent{} // zero window falls back to the 60-minute default
	e := &fsmeta.Entry{Kind: fsmeta.KindFile, ModTime: now.Add(-30 * time.Minute)}
	if out := p.Evaluate(e); out.Status != Matched {
		t.Fatalf("30-minute-old file inside default window should match, got %v", out.Status)
	}
}

func TestRecentSkipsDirectories(t *testing.T) {
	p := Recent{Window: time.Hour}
	e := &fsmeta.Entry{Kind: fsmeta.KindDir, ModTime: time.Now()}
	if out := p.Evaluate(e); out.Status != NoMatch {
		t.Fatalf("directories are not reported, got %v", out.Status)
	}
}
