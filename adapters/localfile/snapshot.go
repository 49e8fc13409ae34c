// Package localfile persists the session snapshot in a single JSON file,
// the closest server-side analog to the browser local-storage slot the
// session contract was designed around.
package localfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/campushire/campushire"
)

// SnapshotStore reads and writes one snapshot file. Saves go through a
// temporary file and rename so a crash mid-write never leaves a truncated
// snapshot behind.
type SnapshotStore struct {
	mu   sync.Mutex
	path string
}

var _ campushire.SnapshotStore = (*SnapshotStore)(nil)

func New(path string) (*SnapshotStore, error) {
	if path == "" {
		return nil, errors.New("snapshot file path is required")
	}
	return &SnapshotStore{path: filepath.Clean(path)}, nil
}

func (s *SnapshotStore) Load(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, campushire.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	return data, nil
}

func (s *SnapshotStore) Save(_ context.Context, snapshot []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, snapshot, 0o600); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace snapshot file: %w", err)
	}
	return nil
}

func (s *SnapshotStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove snapshot file: %w", err)
	}
	return nil
}
