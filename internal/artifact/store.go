// Package artifact persists the playlist document. The file written by one
// run is the prior state recovered by the next, so reads tolerate absence
// and writes are atomic: a crashed run never leaves a half-written artifact
// for the next run to parse.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// FileStore reads and atomically overwrites the artifact at a fixed path.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore for path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Read returns the current artifact content. A missing file is an error;
// callers treat any read error as "no prior state".
func (s *FileStore) Read() ([]byte, error) {
	return os.ReadFile(s.path)
}

// Write replaces the artifact atomically: the data is fsynced to a
// temporary file and renamed into place, so readers only ever observe the
// old or the new document.
func (s *FileStore) Write(data []byte) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create artifact dir: %w", err)
		}
	}
	if err := renameio.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("replace artifact: %w", err)
	}
	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	data []byte
	ok   bool
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Read implements the store contract; an empty store reports os.ErrNotExist.
func (s *MemStore) Read() ([]byte, error) {
	if !s.ok {
		return nil, os.ErrNotExist
	}
	return s.data, nil
}

// Write implements the store contract.
func (s *MemStore) Write(data []byte) error {
	s.data = append([]byte(nil), data...)
	s.ok = true
	return nil
}
