// Package store provides the flat key-value stores that hold the mood
// journal on disk.
package store

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Read when the key has never been written or
// has been erased.
var ErrNotFound = errors.New("store: key not found")

// Store is a key-value store holding whole values under string keys.
// Writes replace the previous value atomically from the caller's view.
type Store interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
	Erase(key string) error
	Close() error
}

// WriteError reports a failed write. In-memory state stays authoritative
// for the session; nothing retries.
type WriteError struct {
	Key string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("store: write %s: %v", e.Key, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Backend names accepted in configuration.
const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Backends lists the supported backends.
func Backends() []string {
	return []string{BackendDiskv, BackendSQLite, BackendMemory}
}

// Open creates the Store selected by cfg. A nil cfg loads configuration
// from the environment.
func Open(cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch backend := strings.ToLower(strings.TrimSpace(cfg.Backend())); backend {
	case "", BackendDiskv:
		return OpenDiskv(cfg.BasePath())
	case BackendSQLite:
		return OpenSQLite(cfg.BasePath())
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q (expected one of %s)", backend, strings.Join(Backends(), ", "))
	}
}
