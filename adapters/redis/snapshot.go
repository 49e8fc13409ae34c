// Package redis persists the session snapshot in a Redis key, for
// deployments where the session should survive restarts of stateless app
// instances.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/campushire/campushire"
)

const defaultKey = "campushire:session"

// SnapshotStore stores the serialized identity under a single key with no
// expiry; logout deletes the key.
type SnapshotStore struct {
	client *goredis.Client
	key    string
}

var _ campushire.SnapshotStore = (*SnapshotStore)(nil)

// New wraps an existing client. An empty key selects the default.
func New(client *goredis.Client, key string) *SnapshotStore {
	if key == "" {
		key = defaultKey
	}
	return &SnapshotStore{client: client, key: key}
}

func (s *SnapshotStore) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, campushire.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("get snapshot key: %w", err)
	}
	return data, nil
}

func (s *SnapshotStore) Save(ctx context.Context, snapshot []byte) error {
	if err := s.client.Set(ctx, s.key, snapshot, 0).Err(); err != nil {
		return fmt.Errorf("set snapshot key: %w", err)
	}
	return nil
}

func (s *SnapshotStore) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("del snapshot key: %w", err)
	}
	return nil
}
