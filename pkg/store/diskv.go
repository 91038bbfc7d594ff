package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// OpenDiskv opens a diskv store rooted at basePath, one file per key.
func OpenDiskv(basePath string) (*DiskvStore, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &DiskvStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		TempDir:      filepath.Join(basePath, ".tmp"),
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// DiskvStore keeps each key in its own file under the base path.
type DiskvStore struct {
	d        *diskv.Diskv
	basePath string
}

// BasePath is the directory holding the key files.
func (s *DiskvStore) BasePath() string {
	return s.basePath
}

// Read bypasses the diskv cache so external edits to the file are seen.
func (s *DiskvStore) Read(key string) ([]byte, error) {
	rc, err := s.d.ReadStream(key, true)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (s *DiskvStore) Write(key string, val []byte) error {
	if err := s.d.Write(key, val); err != nil {
		return &WriteError{Key: key, Err: err}
	}
	return nil
}

func (s *DiskvStore) Erase(key string) error {
	if err := s.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &WriteError{Key: key, Err: err}
	}
	return nil
}

func (s *DiskvStore) Close() error {
	return nil
}

// flatTransform stores every key directly under the base path.
func flatTransform(string) []string {
	return []string{}
}
