package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sandeepkv93/todoterm/internal/model"
)

func TestFileBackendMissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "todo.txt")
	b := &FileBackend{Path: path}

	items, err := b.Load(t.Context())
	if err != nil {
		t.Fatalf("load missing file: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %+v", items)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file created on demand: %v", err)
	}
}

func TestFileBackendSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.txt")
	b := &FileBackend{Path: path}

	in := []model.Item{{Text: "a", Completed: true}, {Text: "b: with colon"}}
	if err := b.Save(t.Context(), in); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(raw) != "DONE:a\nTODO:b: with colon\n" {
		t.Fatalf("unexpected file contents: %q", raw)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be renamed away, stat err: %v", err)
	}

	out, err := b.Load(t.Context())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 || out[1].Text != "b: with colon" || !out[0].Completed {
		t.Fatalf("unexpected round trip: %+v", out)
	}
}

func TestFileBackendSaveTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.txt")
	if err := os.WriteFile(path, []byte("TODO:one\nTODO:two\nTODO:three\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	b := &FileBackend{Path: path}
	if err := b.Save(t.Context(), []model.Item{{Text: "only"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, _ := os.ReadFile(path)
	if string(raw) != "TODO:only\n" {
		t.Fatalf("expected full rewrite, got %q", raw)
	}
}

func TestFileBackendReloadsOversizedItem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.txt")
	b := &FileBackend{Path: path}
	long := strings.Repeat("x", 2<<20)
	if err := b.Save(t.Context(), []model.Item{{Text: long}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	items, err := b.Load(t.Context())
	if err != nil {
		t.Fatalf("load saved list: %v", err)
	}
	if len(items) != 1 || items[0].Text != long {
		t.Fatalf("expected the long item back, got %d items", len(items))
	}
}

func TestFileBackendCorruptStateIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.txt")
	if err := os.WriteFile(path, []byte("todo:bad\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	_, err := (&FileBackend{Path: path}).Load(t.Context())
	if err == nil || !errors.Is(err, model.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	dir := t.TempDir()

	b, err := Open("", filepath.Join(dir, "todo.txt"))
	if err != nil {
		t.Fatalf("open default: %v", err)
	}
	if _, ok := b.(*FileBackend); !ok {
		t.Fatalf("expected file backend, got %T", b)
	}

	s, err := Open("SQLite", filepath.Join(dir, "todo.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer s.Close()
	if _, ok := s.(*SQLiteRepository); !ok {
		t.Fatalf("expected sqlite backend, got %T", s)
	}

	if _, err := Open("redis", "x"); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
}
