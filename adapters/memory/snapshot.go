package memory

import (
	"context"
	"sync"

	"github.com/campushire/campushire"
)

// SnapshotStore holds the session snapshot in a single in-memory slot. It
// satisfies the durable-storage contract without surviving restarts, which
// is what tests and short-lived tools want.
type SnapshotStore struct {
	mu   sync.Mutex
	data []byte
}

var _ campushire.SnapshotStore = (*SnapshotStore)(nil)

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

func (s *SnapshotStore) Load(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return nil, campushire.ErrSnapshotNotFound
	}
	return append([]byte(nil), s.data...), nil
}

func (s *SnapshotStore) Save(_ context.Context, snapshot []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = append([]byte(nil), snapshot...)
	return nil
}

func (s *SnapshotStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	return nil
}
