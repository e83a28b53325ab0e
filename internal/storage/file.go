package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandeepkv93/todoterm/internal/model"
)

type FileBackend struct {
	Path string
}

// Load returns an empty list for a missing file and creates it, so a
// permissions problem surfaces at startup rather than on save.
func (b *FileBackend) Load(ctx context.Context) ([]model.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := strings.TrimSpace(b.Path)
	if path == "" {
		return nil, fmt.Errorf("storage: empty file path")
	}
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		if err := ensureDir(path); err != nil {
			return nil, err
		}
		created, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", path, err)
		}
		return []model.Item{}, created.Close()
	}
	defer f.Close()

	items, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return items, nil
}

// Save rewrites the whole file through a temp file and a rename.
func (b *FileBackend) Save(ctx context.Context, items []model.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := strings.TrimSpace(b.Path)
	if path == "" {
		return fmt.Errorf("storage: empty file path")
	}
	if err := ensureDir(path); err != nil {
		return err
	}
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}
	if err := Encode(f, items); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	return os.Rename(tmp, path)
}

func (b *FileBackend) Close() error { return nil }

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}
	return nil
}
