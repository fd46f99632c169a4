package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestCollect(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "2025", "11", "first-post.md"))
	writeFile(t, filepath.Join(root, "2026", "01", "second-post.md"))
	writeFile(t, filepath.Join(root, "2026", "01", "UPPER.MD"))
	writeFile(t, filepath.Join(root, "2026", "01", "notes.txt"))
	writeFile(t, filepath.Join(root, "loose.md"))

	reg := Collect(root)

	for _, want := range []string{"first-post", "second-post", "UPPER", "loose"} {
		if !reg.Has(want) {
			t.Errorf("expected slug %q in registry", want)
		}
	}
	if reg.Has("notes") {
		t.Error("non-markdown files must not contribute slugs")
	}
	if len(reg) != 4 {
		t.Errorf("expected 4 slugs, got %d: %v", len(reg), reg)
	}
}

func TestCollect_MissingRoot(t *testing.T) {
	reg := Collect(filepath.Join(t.TempDir(), "does-not-exist"))
	if len(reg) != 0 {
		t.Errorf("missing root should yield empty registry, got %v", reg)
	}
}
