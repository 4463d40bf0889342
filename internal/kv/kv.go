// Package kv provides the durable key-value slot the member collection is saved into.
//
// A Slot stores opaque byte values under string keys. FamilyWing only ever uses a
// single fixed key, but the backends are general so the same slot can hold other
// blobs later without a format change.
package kv

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
)

// Supported backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
)

// ErrKeyNotFound is returned by Get when nothing was ever stored under the key.
var ErrKeyNotFound = errors.New("key not found")

// Slot is a durable key-value store.
type Slot interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(key string) ([]byte, error)
	// Set replaces the value stored under key.
	Set(key string, value []byte) error
	// Close releases locks, handles and database connections.
	Close() error
}

// Config selects and configures a backend.
type Config struct {
	// Backend is one of BackendFile, BackendSQLite or BackendBadger.
	Backend string
	// Dir is the data directory. Each backend keeps its files below it.
	Dir string
	// InMemory keeps everything in memory (tests).
	InMemory bool
	// Fs overrides the filesystem of the file backend. Defaults to the OS filesystem.
	Fs afero.Fs
	// Logger receives backend diagnostics (badger only). Nil discards them.
	Logger *slog.Logger
}

// Open creates the slot described by cfg.
func Open(cfg Config) (Slot, error) {
	switch cfg.Backend {
	case "", BackendFile:
		fs := cfg.Fs
		if fs == nil {
			if cfg.InMemory {
				fs = afero.NewMemMapFs()
			} else {
				fs = afero.NewOsFs()
			}
		}
		return NewFileSlot(fs, cfg.Dir)
	case BackendSQLite:
		if cfg.InMemory {
			return NewSQLiteSlot(":memory:")
		}
		return NewSQLiteSlot(filepath.Join(cfg.Dir, "family.db"))
	case BackendBadger:
		return NewBadgerSlot(BadgerConfig{
			Path:     filepath.Join(cfg.Dir, "badger"),
			InMemory: cfg.InMemory,
			Logger:   cfg.Logger,
		})
	default:
		return nil, fmt.Errorf("unsupported storage backend %q (supported: file, sqlite, badger)", cfg.Backend)
	}
}
