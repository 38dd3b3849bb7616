package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestScanSmoke(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte("DB_PASS=x"), 0o600); err != nil {
		t.Fatal(err)
	}

	stream, err := Scan(context.Background(), Request{Root: root, Pred: Configs()})
	if err != nil {
		t.Fatal(err)
	}
	var matches []string
	for it, ok := stream.Next(); ok; it, ok = stream.Next() {
		if it.Outcome.Status == Matched {
			matches = append(matches, it.Entry.Path)
		}
	}
	if len(matches) != 1 || filepath.Base(matches[0]) != ".env" {
		t.Fatalf("matches = %v", matches)
	}
	if c := stream.Counters(); c.Matched != 1 {
		t.Fatalf("counters = %+v", c)
	}
}

func TestScanInvalidRoot(t *testing.T) {
	if _, err := Scan(context.Background(), Request{Root: filepath.Join(t.TempDir(), "gone"), Pred: Suid()}); err == nil {
		t.Fatal("missing root should fail")
	}
}

func TestPredicateIDs(t *testing.T) {
	ids := map[string]bool{}
	for _, id := range PredicateIDs() {
		ids[id] = true
	}
	for _, p := range []struct{ id string }{
		{Find("*").ID()}, {Suid().ID()}, {Sgid().ID()}, {Writable(false, false).ID()},
		{Caps().ID()}, {Configs().ID()}, {Recent(time.Hour).ID()},
	} {
		if !ids[p.id] {
			t.Errorf("constructor ID %q missing from PredicateIDs", p.id)
		}
	}
}
