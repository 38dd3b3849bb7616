package listing

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func buildTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "beta.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, ".hidden"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(root, "alpha"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "alpha", "nested.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestListPlain(t *testing.T) {
	root := buildTree(t)
	var buf bytes.Buffer
	if err := List(&buf, root, Options{NoColor: true}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if got != "alpha/\nbeta.txt\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestListAll(t *testing.T) {
	root := buildTree(t)
	var buf bytes.Buffer
	if err := List(&buf, root, Options{All: true, NoColor: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), ".hidden") {
		t.Errorf("-a should show dotfiles, got %q", buf.String())
	}
}

func TestListLong(t *testing.T) {
	root := buildTree(t)
	var buf bytes.Buffer
	if err := List(&buf, root, Options{Long: true, NoColor: true}); err != nil {
		t.Fatal(err)
	}
	var betaLine string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "beta.txt") {
			betaLine = line
		}
	}
	if betaLine == "" {
		t.Fatalf("beta.txt missing from %q", buf.String())
	}
	if !strings.HasPrefix(betaLine, "-rw-") {
		t.Errorf("long line should start with the mode string, got %q", betaLine)
	}
	if !strings.Contains(betaLine, "5") {
		t.Errorf("long line should carry the size, got %q", betaLine)
	}
}

func TestListExplainPerms(t *testing.T) {
	root := buildTree(t)
	var buf bytes.Buffer
	if err := List(&buf, root, Options{Long: true, ExplainPerms: true, NoColor: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "(owner:rw-, group:r--, other:r--)") {
		t.Errorf("explained triads missing from %q", buf.String())
	}
}

func TestListRecursive(t *testing.T) {
	root := buildTree(t)
	var buf bytes.Buffer
	if err := List(&buf, root, Options{Recursive: true, NoColor: true}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, "alpha:") {
		t.Errorf("recursive listing should print subdirectory headers, got %q", got)
	}
	if !strings.Contains(got, "nested.txt") {
		t.Errorf("recursive listing should reach nested files, got %q", got)
	}
}

func TestListSingleFile(t *testing.T) {
	root := buildTree(t)
	var buf bytes.Buffer
	if err := List(&buf, filepath.Join(root, "beta.txt"), Options{NoColor: true}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "beta.txt\n" {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestListMissingPath(t *testing.T) {
	var buf bytes.Buffer
	if err := List(&buf, filepath.Join(t.TempDir(), "nope"), Options{}); err == nil {
		t.Fatal("missing path should error")
	}
}
