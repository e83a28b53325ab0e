package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sandeepkv93/todoterm/internal/model"
)

var ErrUnknownBackend = errors.New("storage: unknown backend")

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Backend loads the whole item list once and saves it back once. There is
// no incremental save and no locking: one process owns the data.
type Backend interface {
	Load(ctx context.Context) ([]model.Item, error)
	Save(ctx context.Context, items []model.Item) error
	Close() error
}

func Open(kind, path string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", BackendFile:
		return &FileBackend{Path: path}, nil
	case BackendSQLite:
		repo, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, kind)
	}
}
