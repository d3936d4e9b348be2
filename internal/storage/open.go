package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"codepet/internal/pet"
)

// Backend names
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// SQLiteFile is the database name inside the data dir
const SQLiteFile = "codepet.db"

// Store is a pet.Store that holds resources until closed
type Store interface {
	pet.Store
	Close() error
}

// Open returns the configured backend rooted at dataDir
func Open(ctx context.Context, backend, dataDir string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(dataDir)
	case BackendSQLite:
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		db, err := OpenSQLite(ctx, filepath.Join(dataDir, SQLiteFile))
		if err != nil {
			return nil, err
		}
		return NewSQLiteStore(db), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

// keyed redirects the snapshot slot to a configured key
type keyed struct {
	Store
	key string
}

func (k keyed) Load(ctx context.Context, _ string) ([]byte, error) {
	return k.Store.Load(ctx, k.key)
}

func (k keyed) Save(ctx context.Context, _ string, data []byte) error {
	return k.Store.Save(ctx, k.key, data)
}

// WithKey stores every snapshot under key, letting several pets share a backend
func WithKey(s Store, key string) Store {
	if key == "" || key == pet.StorageKey {
		return s
	}
	return keyed{Store: s, key: key}
}
