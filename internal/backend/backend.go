// Package backend selects and constructs the persistence backend from
// configuration.
package backend

import (
	"fmt"

	"findash/internal/config"
	"findash/internal/store"
	"findash/internal/store/memory"
	"findash/internal/storage"
)

// Type represents the kind of persistence backend.
type Type string

const (
	SQLite Type = "sqlite"
	Memory Type = "memory"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid.
func (t Type) IsValid() bool {
	switch t {
	case SQLite, Memory:
		return true
	}
	return false
}

// CleanupFunc releases resources held by a backend.
type CleanupFunc func() error

// New builds the store named by cfg.DataBackend and a cleanup function to
// release it.
func New(cfg *config.Config) (store.Store, CleanupFunc, error) {
	t := Type(cfg.DataBackend)
	if !t.IsValid() {
		return nil, nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	switch t {
	case SQLite:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("create sqlite backend: %w", err)
		}
		return repo, repo.Close, nil
	default:
		return memory.New(), func() error { return nil }, nil
	}
}
