package traverse

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ferret/ferret/internal/ignore"
	"github.com/ferret/ferret/internal/predicate"
)

func drainMatches(t *testing.T, s *Stream) []string {
	t.Helper()
	var out []string
	for it, ok := s.Next(); ok; it, ok = s.Next() {
		if it.Outcome.Status == predicate.Matched {
			out = append(out, it.Entry.Path)
		}
	}
	return out
}

func drainAll(t *testing.T, s *Stream) []string {
	t.Helper()
	var out []string
	for it, ok := s.Next(); ok; it, ok = s.Next() {
		out = append(out, it.Entry.Path)
	}
	return out
}

// buildScenarioTree creates the reference tree: a setuid regular file, a
// directory with the same bit set, and a nested credential-looking file.
func buildScenarioTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	a := filepath.Join(root, "a")
	if err := os.WriteFile(a, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(a, os.FileMode(0o755)|os.ModeSetuid); err != nil {
		t.Skipf("cannot set setuid bit: %v", err)
	}
	// verify the bit stuck; some filesystems silently clear it
	fi, err := os.Lstat(a)
	if err != nil || fi.Mode()&os.ModeSetuid == 0 {
		t.Skip("filesystem does not preserve the setuid bit")
	}
	b := filepath.Join(root, "b")
	if err := os.Mkdir(b, 0o755); err != nil {
		t.Fatal(err)
	}
	_ = os.Chmod(b, os.FileMode(0o755)|os.ModeSetuid)
	c := filepath.Join(root, "c")
	if err := os.Mkdir(c, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(c, "id_rsa"), []byte("key"), 0o600); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestScenarioSuidAndConfigs(t *testing.T) {
	root := buildScenarioTree(t)

	s, err := New(context.Background(), Request{Root: root, Pred: predicate.Suid{}})
	if err != nil {
		t.Fatal(err)
	}
	got := drainMatches(t, s)
	want := []string{filepath.Join(root, "a")}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("suid matches = %v, want %v", got, want)
	}

	s, err = New(context.Background(), Request{Root: root, Pred: predicate.Configs{}})
	if err != nil {
		t.Fatal(err)
	}
	got = drainMatches(t, s)
	want = []string{filepath.Join(root, "c", "id_rsa")}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("configs matches = %v, want %v", got, want)
	}
}

func TestDeterministicOrdering(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"zeta", "alpha", "mike"} {
		if err := os.Mkdir(filepath.Join(root, name), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(root, name, "x.conf"), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	run := func() []string {
		s, err := New(context.Background(), Request{Root: root, Pred: predicate.Configs{}})
		if err != nil {
			t.Fatal(err)
		}
		return drainAll(t, s)
	}
	first, second := run(), run()
	if len(first) != len(second) {
		t.Fatalf("runs visited %d vs %d entries", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("order diverged at %d: %q vs %q", i, first[i], second[i])
		}
	}
	// lexical order within a directory
	idxOf := func(paths []string, base string) int {
		for i, p := range paths {
			if filepath.Base(p) == base {
				return i
			}
		}
		return -1
	}
	if !(idxOf(first, "alpha") < idxOf(first, "mike") && idxOf(first, "mike") < idxOf(first, "zeta")) {
		t.Fatalf("children not in lexical order: %v", first)
	}
}

func TestInvalidRoot(t *testing.T) {
	_, err := New(context.Background(), Request{Root: filepath.Join(t.TempDir(), "missing"), Pred: predicate.Suid{}})
	if !errors.Is(err, ErrInvalidRoot) {
		t.Fatalf("err = %v, want ErrInvalidRoot", err)
	}

	file := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = New(context.Background(), Request{Root: file, Pred: predicate.Suid{}})
	if !errors.Is(err, ErrInvalidRoot) {
		t.Fatalf("err = %v, want ErrInvalidRoot for non-directory root", err)
	}
}

func TestDeniedSubtreeIsSkippedNotFatal(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	root := t.TempDir()
	denied := filepath.Join(root, "denied")
	if err := os.Mkdir(denied, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(denied, "hidden.conf"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	visible := filepath.Join(root, "visible.conf")
	if err := os.WriteFile(visible, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(denied, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(denied, 0o755) })

	s, err := New(context.Background(), Request{Root: root, Pred: predicate.Configs{}})
	if err != nil {
		t.Fatal(err)
	}
	got := drainMatches(t, s)
	if len(got) != 1 || got[0] != visible {
		t.Fatalf("matches = %v, want only %q", got, visible)
	}
	c := s.Counters()
	if c.SkippedDirs != 1 {
		t.Fatalf("skipped dirs = %d, want 1", c.SkippedDirs)
	}
	if s.Err() != nil {
		t.Fatalf("scan should complete cleanly, got %v", s.Err())
	}
}

func TestRecentScenario(t *testing.T) {
	root := t.TempDir()
	now := time.Now()
	a := filepath.Join(root, "a")
	b := filepath.Join(root, "b")
	for _, p := range []string{a, b} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Chtimes(a, now, now.Add(-5*time.Minute)); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(b, now, now.Add(-30*time.Minute)); err != nil {
		t.Fatal(err)
	}

	s, err := New(context.Background(), Request{Root: root, Pred: predicate.Recent{Window: 10 * time.Minute}})
	if err != nil {
		t.Fatal(err)
	}
	got := drainMatches(t, s)
	if len(got) != 1 || got[0] != a {
		t.Fatalf("recent matches = %v, want [%q]", got, a)
	}
}

func TestMaxDepth(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	if err := os.MkdirAll(filepath.Join(sub, "deep"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "top.conf"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "mid.conf"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := New(context.Background(), Request{Root: root, Pred: predicate.Configs{}, MaxDepth: 1})
	if err != nil {
		t.Fatal(err)
	}
	got := drainMatches(t, s)
	if len(got) != 1 || filepath.Base(got[0]) != "top.conf" {
		t.Fatalf("depth-1 matches = %v, want only top.conf", got)
	}
}

func TestSymlinkedDirectoryNotFollowed(t *testing.T) {
	outside := t.TempDir()
	if err := os.WriteFile(filepath.Join(outside, "secret.conf"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	root := t.TempDir()
	link := filepath.Join(root, "link")
	if err := os.Symlink(outside, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	s, err := New(context.Background(), Request{Root: root, Pred: predicate.Configs{}})
	if err != nil {
		t.Fatal(err)
	}
	all := drainAll(t, s)
	for _, p := range all {
		if filepath.Base(p) == "secret.conf" {
			t.Fatalf("traversal followed a symlinked directory: %v", all)
		}
	}
	// the link itself is still visited as an entry
	found := false
	for _, p := range all {
		if p == link {
			found = true
		}
	}
	if !found {
		t.Fatalf("symlink entry not visited: %v", all)
	}
}

func TestCancellationStopsStream(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(filepath.Join(root, string(rune('a'+i))), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	s, err := New(ctx, Request{Root: root, Pred: predicate.Configs{}})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Next(); !ok {
		t.Fatal("expected at least one entry before cancel")
	}
	cancel()
	if _, ok := s.Next(); ok {
		t.Fatal("stream should stop after cancellation")
	}
	if !errors.Is(s.Err(), context.Canceled) {
		t.Fatalf("Err = %v, want context.Canceled", s.Err())
	}
}

func TestExcludePatterns(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "node_modules"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "node_modules", "pkg.json"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "app.json"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := New(context.Background(), Request{
		Root:    root,
		Pred:    predicate.Configs{},
		Exclude: ignore.New([]string{"node_modules"}),
	})
	if err != nil {
		t.Fatal(err)
	}
	got := drainMatches(t, s)
	if len(got) != 1 || filepath.Base(got[0]) != "app.json" {
		t.Fatalf("matches = %v, want only app.json", got)
	}
}

func TestIndeterminateCounting(t *testing.T) {
	root := t.TempDir()
	link := filepath.Join(root, "dangling")
	if err := os.Symlink(filepath.Join(root, "gone"), link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	s, err := New(context.Background(), Request{Root: root, Pred: predicate.Recent{Window: time.Hour}})
	if err != nil {
		t.Fatal(err)
	}
	_ = drainAll(t, s)
	if s.Counters().Indeterminate != 0 {
		// A dangling symlink is still Lstat-able, so it is a visitable
		// symlink entry, not an indeterminate one.
		t.Fatalf("indeterminate = %d, want 0", s.Counters().Indeterminate)
	}
}
