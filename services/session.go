package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/campushire/campushire/core"
	"github.com/campushire/campushire/pkg/crypto"
)

// SessionStore is the single source of truth for "who is currently logged
// in". It owns the current identity, mirrors it to a durable snapshot so a
// session survives process restarts, and notifies subscribers on every
// change.
//
// Login and Register model a remote round-trip: they hold Loading()=true for
// the configured duration before resolving. Concurrent calls are not
// deduplicated - the last one to finish wins, and callers are expected to
// disable duplicate submission while Loading() is true.
type SessionStore struct {
	config     core.SessionConfig
	identities core.IdentitySource
	snapshots  core.SnapshotStore
	verifier   core.CredentialVerifier
	ids        *crypto.NanoIDGenerator
	notifier   *notifier

	mu      sync.RWMutex
	current *core.Identity
	loading bool
}

// NewSessionStore builds a store and runs the restore protocol: a
// well-formed persisted snapshot becomes the current identity, anything
// absent or malformed starts the store anonymous. Malformed snapshots are
// deleted so they are not re-parsed on the next start.
func NewSessionStore(config core.SessionConfig, identities core.IdentitySource, snapshots core.SnapshotStore, verifier core.CredentialVerifier) *SessionStore {
	s := &SessionStore{
		config:     config,
		identities: identities,
		snapshots:  snapshots,
		verifier:   verifier,
		ids:        crypto.NewNanoID(),
		notifier:   newNotifier(0),
	}

	s.restore(context.Background())

	return s
}

func (s *SessionStore) restore(ctx context.Context) {
	data, err := s.snapshots.Load(ctx)
	if err != nil || len(data) == 0 {
		// Absent or unreadable storage degrades to anonymous.
		return
	}

	identity, err := core.DecodeSnapshot(data)
	if err != nil {
		// Corrupt snapshot: discard it and start anonymous.
		_ = s.snapshots.Delete(ctx)
		return
	}

	s.mu.Lock()
	s.current = identity
	s.mu.Unlock()
}

// Current returns the identity presently logged in, or nil when anonymous.
func (s *SessionStore) Current() *core.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Loading reports whether a login or registration is in flight.
func (s *SessionStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Subscribe registers fn to be called with the new current identity (nil for
// anonymous) after every state change. It returns the unsubscribe function.
func (s *SessionStore) Subscribe(fn func(*core.Identity)) func() {
	return s.notifier.subscribe(fn)
}

// Close stops the notification dispatcher. The store remains usable for
// reads but no further notifications are delivered.
func (s *SessionStore) Close() {
	s.notifier.close()
}

// DroppedNotifications returns how many notifications were discarded because
// the dispatch buffer was full.
func (s *SessionStore) DroppedNotifications() uint64 {
	return s.notifier.droppedCount()
}

// Login authenticates by case-insensitive email lookup plus credential
// verification. On success the found identity becomes current and is
// persisted; on failure the store is left untouched and
// core.ErrInvalidCredentials is returned without revealing whether the email
// exists.
func (s *SessionStore) Login(ctx context.Context, email, password string) (*core.Identity, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.roundTrip(ctx); err != nil {
		return nil, err
	}

	identity, err := s.identities.FindByEmail(ctx, core.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, core.ErrIdentityNotFound) {
			return nil, core.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up identity: %w", err)
	}

	ok, err := s.verifier.Verify(ctx, identity, password)
	if err != nil {
		return nil, fmt.Errorf("failed to verify credentials: %w", err)
	}
	if !ok {
		return nil, core.ErrInvalidCredentials
	}

	s.setCurrent(ctx, identity)

	return identity, nil
}

// Register creates a fresh identity with role-appropriate empty profile
// fields, adds it to the identity source, and logs it in. Only students and
// recruiters may self-register; a case-insensitive email collision fails
// with core.ErrDuplicateEmail and leaves the current identity unchanged.
func (s *SessionStore) Register(ctx context.Context, input core.RegisterInput) (*core.Identity, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, core.ErrNameRequired
	}
	email := core.NormalizeEmail(input.Email)
	if email == "" {
		return nil, core.ErrEmailRequired
	}
	if input.Password == "" {
		return nil, core.ErrPasswordRequired
	}
	if !input.Role.Valid() {
		return nil, core.ErrInvalidRole
	}
	if !input.Role.Registrable() {
		return nil, core.ErrRoleNotRegistrable
	}

	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.roundTrip(ctx); err != nil {
		return nil, err
	}

	existing, err := s.identities.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, core.ErrIdentityNotFound) {
		return nil, fmt.Errorf("failed to check existing identity: %w", err)
	}
	if existing != nil {
		return nil, core.ErrDuplicateEmail
	}

	id, err := s.ids.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate id: %w", err)
	}

	identity := core.NewRegisteredIdentity(id, input)

	if err := s.identities.Add(ctx, identity); err != nil {
		if errors.Is(err, core.ErrDuplicateEmail) {
			return nil, core.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to add identity: %w", err)
	}

	s.setCurrent(ctx, identity)

	return identity, nil
}

// Logout clears the current identity and deletes the persisted snapshot. It
// never fails and is idempotent: logging out while anonymous is a no-op that
// still resolves cleanly.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	// Snapshot deletion failure is absorbed; in-memory state already
	// reflects the logout.
	_ = s.snapshots.Delete(ctx)

	s.notifier.publish(nil)

	return nil
}

// UpdateProfile applies a partial profile edit to the current identity,
// writes it through to the identity source, and refreshes the snapshot.
func (s *SessionStore) UpdateProfile(ctx context.Context, changes core.ProfileChanges) (*core.Identity, error) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()

	if current == nil {
		return nil, core.ErrNotAuthenticated
	}

	updated := *current
	if current.Skills != nil {
		updated.Skills = append([]string(nil), current.Skills...)
	}
	updated.ApplyChanges(changes)

	if err := s.identities.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update identity: %w", err)
	}

	s.setCurrent(ctx, &updated)

	return &updated, nil
}

// setCurrent swaps the current identity, mirrors it to the snapshot store,
// and notifies subscribers. A failed snapshot write degrades to a
// memory-only session; durable storage is a convenience, not a correctness
// requirement.
func (s *SessionStore) setCurrent(ctx context.Context, identity *core.Identity) {
	s.mu.Lock()
	s.current = identity
	s.mu.Unlock()

	if data, err := core.EncodeSnapshot(identity); err == nil {
		_ = s.snapshots.Save(ctx, data)
	}

	s.notifier.publish(identity)
}

func (s *SessionStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// roundTrip simulates the latency of a networked identity provider. A
// cancelled context aborts the wait without touching session state.
func (s *SessionStore) roundTrip(ctx context.Context) error {
	if s.config.RoundTrip <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.config.RoundTrip)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
