// Package adapter contains infrastructure adapters for the excgen CLI.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/afero"

	m "excgen.dev/pkg/excgen/internal/model"
)

// ShardStore abstracts where shard artifacts live so the domain layer can be
// tested without touching the disk.
type ShardStore interface {
	// Create opens path for writing, truncating any existing artifact. The
	// parent directory must already exist.
	Create(path m.Path) (io.WriteCloser, error)

	// ReadFile loads an artifact.
	ReadFile(path m.Path) ([]byte, error)

	// Exists reports whether an artifact is present at path.
	Exists(path m.Path) (bool, error)
}

// FSShardStore implements ShardStore on top of an afero filesystem.
type FSShardStore struct {
	fs afero.Fs
}

// NewShardStore wraps fs.
func NewShardStore(fs afero.Fs) *FSShardStore {
	return &FSShardStore{fs: fs}
}

// NewLocalShardStore returns a store backed by the operating system.
func NewLocalShardStore() *FSShardStore {
	return NewShardStore(afero.NewOsFs())
}

// NewMemoryShardStore returns a store that keeps artifacts in memory.
func NewMemoryShardStore() *FSShardStore {
	return NewShardStore(afero.NewMemMapFs())
}

// Create implements ShardStore.
func (s *FSShardStore) Create(path m.Path) (io.WriteCloser, error) {
	file, err := s.fs.OpenFile(string(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create shard %s: %w", path, err)
	}

	return file, nil
}

// ReadFile implements ShardStore.
func (s *FSShardStore) ReadFile(path m.Path) ([]byte, error) {
	content, err := afero.ReadFile(s.fs, string(path))
	if err != nil {
		return nil, fmt.Errorf("read shard %s: %w", path, err)
	}

	return content, nil
}

// Exists implements ShardStore.
func (s *FSShardStore) Exists(path m.Path) (bool, error) {
	_, err := s.fs.Stat(string(path))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("stat shard %s: %w", path, err)
}
