package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campushire/campushire/core"
)

func demoStudent() *core.Identity {
	return &core.Identity{
		ID:             "1",
		Email:          "student@example.com",
		Name:           "John Student",
		FirstName:      "John",
		LastName:       "Student",
		Role:           core.RoleStudent,
		University:     "MIT",
		Degree:         "Computer Science",
		GraduationYear: 2024,
		Skills:         []string{"React", "JavaScript", "Java"},
	}
}

func demoRecruiter() *core.Identity {
	return &core.Identity{
		ID:       "2",
		Email:    "recruiter@example.com",
		Name:     "Jane Recruiter",
		Role:     core.RoleRecruiter,
		Company:  "Tech Solutions Inc.",
		Position: "HR Manager",
	}
}

func newTestStore(identities *FakeIdentitySource, snapshots *FakeSnapshotStore) *SessionStore {
	return NewSessionStore(
		core.DefaultSessionConfig(),
		identities,
		snapshots,
		core.SentinelVerifier{Password: "password"},
	)
}

// Requirement: Login succeeds only for a known email (case-insensitive) with
// the accepted credential, and failure leaves the store anonymous with an
// error that does not reveal whether the email exists.
func TestSessionStore_Login(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
		wantRole core.Role
	}{
		{
			name:     "succeeds for known email and credential",
			email:    "student@example.com",
			password: "password",
			wantRole: core.RoleStudent,
		},
		{
			name:     "matches email case-insensitively",
			email:    "STUDENT@Example.COM",
			password: "password",
			wantRole: core.RoleStudent,
		},
		{
			name:     "fails for wrong password",
			email:    "student@example.com",
			password: "wrongpass",
			wantErr:  core.ErrInvalidCredentials,
		},
		{
			name:     "fails for unknown email with the same error",
			email:    "nobody@example.com",
			password: "password",
			wantErr:  core.ErrInvalidCredentials,
		},
		{
			name:     "fails for empty password",
			email:    "student@example.com",
			password: "",
			wantErr:  core.ErrInvalidCredentials,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			identities := NewFakeIdentitySource(demoStudent(), demoRecruiter())
			snapshots := NewFakeSnapshotStore()
			store := newTestStore(identities, snapshots)
			defer store.Close()

			// Act
			identity, err := store.Login(context.Background(), test.email, test.password)

			// Assert
			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("Login() error = %v, want %v", err, test.wantErr)
				}
				if store.Current() != nil {
					t.Error("Login() failure must leave the store anonymous")
				}
				if len(snapshots.Snapshot()) != 0 {
					t.Error("Login() failure must not persist a snapshot")
				}
				return
			}

			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if identity.Role != test.wantRole {
				t.Errorf("Login() role = %q, want %q", identity.Role, test.wantRole)
			}
			if store.Current() == nil || store.Current().ID != identity.ID {
				t.Error("Login() must set the returned identity as current")
			}

			// Snapshot round-trip: the persisted bytes reconstruct an
			// identity equal by id, email, and role.
			restored, err := core.DecodeSnapshot(snapshots.Snapshot())
			if err != nil {
				t.Fatalf("DecodeSnapshot() error = %v", err)
			}
			if restored.ID != identity.ID || restored.Email != identity.Email || restored.Role != identity.Role {
				t.Errorf("snapshot round-trip = %+v, want id/email/role of %+v", restored, identity)
			}
		})
	}
}

// Requirement: Register enforces email uniqueness case-insensitively, limits
// roles to student and recruiter, and seeds role-appropriate empty profile
// fields on the new identity.
func TestSessionStore_Register(t *testing.T) {
	tests := []struct {
		name    string
		input   core.RegisterInput
		setup   func(*testing.T, *SessionStore)
		wantErr error
	}{
		{
			name:  "creates a student with empty profile defaults",
			input: core.RegisterInput{Name: "Ann Lee", Email: "ann@x.com", Password: "pw", Role: core.RoleStudent},
		},
		{
			name:  "creates a recruiter",
			input: core.RegisterInput{Name: "Bob Recruiter", Email: "bob@corp.com", Password: "pw", Role: core.RoleRecruiter},
		},
		{
			name:  "rejects duplicate email ignoring case",
			input: core.RegisterInput{Name: "Ann2", Email: "ANN@x.com", Password: "pw", Role: core.RoleRecruiter},
			setup: func(t *testing.T, store *SessionStore) {
				if _, err := store.Register(context.Background(), core.RegisterInput{
					Name: "Ann Lee", Email: "ann@x.com", Password: "pw", Role: core.RoleStudent,
				}); err != nil {
					t.Fatalf("setup Register() error = %v", err)
				}
			},
			wantErr: core.ErrDuplicateEmail,
		},
		{
			name:    "rejects email already seeded in the identity set",
			input:   core.RegisterInput{Name: "Imposter", Email: "Student@Example.com", Password: "pw", Role: core.RoleStudent},
			wantErr: core.ErrDuplicateEmail,
		},
		{
			name:    "rejects admin self-registration",
			input:   core.RegisterInput{Name: "X", Email: "new@x.com", Password: "pw", Role: core.RoleAdmin},
			wantErr: core.ErrRoleNotRegistrable,
		},
		{
			name:    "rejects unknown role",
			input:   core.RegisterInput{Name: "X", Email: "new@x.com", Password: "pw", Role: "manager"},
			wantErr: core.ErrInvalidRole,
		},
		{
			name:    "rejects empty name",
			input:   core.RegisterInput{Email: "new@x.com", Password: "pw", Role: core.RoleStudent},
			wantErr: core.ErrNameRequired,
		},
		{
			name:    "rejects empty email",
			input:   core.RegisterInput{Name: "X", Password: "pw", Role: core.RoleStudent},
			wantErr: core.ErrEmailRequired,
		},
		{
			name:    "rejects empty password",
			input:   core.RegisterInput{Name: "X", Email: "new@x.com", Role: core.RoleStudent},
			wantErr: core.ErrPasswordRequired,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			identities := NewFakeIdentitySource(demoStudent())
			snapshots := NewFakeSnapshotStore()
			store := newTestStore(identities, snapshots)
			defer store.Close()

			if test.setup != nil {
				test.setup(t, store)
			}
			before := store.Current()

			// Act
			identity, err := store.Register(context.Background(), test.input)

			// Assert
			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("Register() error = %v, want %v", err, test.wantErr)
				}
				if store.Current() != before {
					t.Error("Register() failure must not mutate the current identity")
				}
				return
			}

			if err != nil {
				t.Fatalf("Register() error = %v", err)
			}
			if identity.ID == "" {
				t.Error("Register() must allocate an id")
			}
			if identity.Email != core.NormalizeEmail(test.input.Email) {
				t.Errorf("Register() email = %q, want normalized %q", identity.Email, test.input.Email)
			}
			if store.Current() == nil || store.Current().ID != identity.ID {
				t.Error("Register() must set the new identity as current")
			}

			switch test.input.Role {
			case core.RoleStudent:
				if identity.Skills == nil || len(identity.Skills) != 0 {
					t.Errorf("student Skills = %v, want empty set", identity.Skills)
				}
				if identity.GraduationYear <= time.Now().Year() {
					t.Errorf("student GraduationYear = %d, want a future year", identity.GraduationYear)
				}
			case core.RoleRecruiter:
				if identity.Company != "" || identity.Position != "" {
					t.Error("recruiter profile fields must start empty")
				}
			}

			first, last := core.SplitName(test.input.Name)
			if identity.FirstName != first || identity.LastName != last {
				t.Errorf("name split = %q/%q, want %q/%q", identity.FirstName, identity.LastName, first, last)
			}
		})
	}
}

// Requirement: Logout always succeeds, clears the current identity, deletes
// the persisted snapshot, and is a no-op when already anonymous.
func TestSessionStore_Logout(t *testing.T) {
	// Arrange
	identities := NewFakeIdentitySource(demoStudent())
	snapshots := NewFakeSnapshotStore()
	store := newTestStore(identities, snapshots)
	defer store.Close()

	// Act: logout while anonymous must not fail.
	if err := store.Logout(context.Background()); err != nil {
		t.Fatalf("Logout() while anonymous error = %v", err)
	}
	if store.Current() != nil {
		t.Fatal("Logout() while anonymous must keep the store anonymous")
	}

	if _, err := store.Login(context.Background(), "student@example.com", "password"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if err := store.Logout(context.Background()); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	// Assert
	if store.Current() != nil {
		t.Error("Logout() must clear the current identity")
	}
	if len(snapshots.Snapshot()) != 0 {
		t.Error("Logout() must delete the persisted snapshot")
	}

	// A snapshot-store failure is absorbed, not surfaced.
	snapshots.deleteErr = errors.New("disk unplugged")
	if err := store.Logout(context.Background()); err != nil {
		t.Errorf("Logout() with failing storage error = %v, want nil", err)
	}
}

// Requirement: a fresh store restores the identity persisted by a prior
// login without another Login call; malformed snapshots are discarded and
// the store starts anonymous.
func TestSessionStore_Restore(t *testing.T) {
	identities := NewFakeIdentitySource(demoStudent())

	t.Run("restores a prior session across restarts", func(t *testing.T) {
		snapshots := NewFakeSnapshotStore()

		first := newTestStore(identities, snapshots)
		if _, err := first.Login(context.Background(), "student@example.com", "password"); err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		first.Close()

		// Simulated process restart: a new store over the same storage.
		second := newTestStore(identities, snapshots)
		defer second.Close()

		current := second.Current()
		if current == nil {
			t.Fatal("restore must recover the current identity")
		}
		if current.ID != "1" || current.Email != "student@example.com" || current.Role != core.RoleStudent {
			t.Errorf("restored identity = %+v, want the logged-in student", current)
		}
	})

	t.Run("starts anonymous and discards a malformed snapshot", func(t *testing.T) {
		snapshots := NewFakeSnapshotStore()
		snapshots.data = []byte(`{"id":true,"role":"wizard"`)

		store := newTestStore(identities, snapshots)
		defer store.Close()

		if store.Current() != nil {
			t.Error("malformed snapshot must start the store anonymous")
		}
		if snapshots.deletes == 0 {
			t.Error("malformed snapshot must be deleted, not kept for the next start")
		}
	})

	t.Run("normalizes a legacy snapshot shape", func(t *testing.T) {
		snapshots := NewFakeSnapshotStore()
		snapshots.data = []byte(`{"id":7,"email":"Legacy@Example.com","role":"STUDENT","skills":"Go, SQL","first_name":"Lee","last_name":"Legacy","extra":"ignored"}`)

		store := newTestStore(identities, snapshots)
		defer store.Close()

		current := store.Current()
		if current == nil {
			t.Fatal("legacy snapshot must restore")
		}
		if current.ID != "7" || current.Role != core.RoleStudent || current.Email != "legacy@example.com" {
			t.Errorf("legacy snapshot normalized to %+v", current)
		}
		if len(current.Skills) != 2 || current.Skills[0] != "Go" || current.Skills[1] != "SQL" {
			t.Errorf("legacy skills = %v, want [Go SQL]", current.Skills)
		}
		if current.Name != "Lee Legacy" {
			t.Errorf("legacy name = %q, want derived from name parts", current.Name)
		}
	})

	t.Run("treats a storage read failure as anonymous", func(t *testing.T) {
		snapshots := NewFakeSnapshotStore()
		snapshots.loadErr = errors.New("storage offline")

		store := newTestStore(identities, snapshots)
		defer store.Close()

		if store.Current() != nil {
			t.Error("unreadable storage must start the store anonymous")
		}
	})
}

// Requirement: a failed snapshot write degrades to a memory-only session
// instead of failing the operation.
func TestSessionStore_SnapshotWriteFailure(t *testing.T) {
	// Arrange
	identities := NewFakeIdentitySource(demoStudent())
	snapshots := NewFakeSnapshotStore()
	snapshots.saveErr = errors.New("quota exceeded")
	store := newTestStore(identities, snapshots)
	defer store.Close()

	// Act
	identity, err := store.Login(context.Background(), "student@example.com", "password")

	// Assert
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if store.Current() == nil || store.Current().ID != identity.ID {
		t.Error("Login() must keep the identity in memory when persistence fails")
	}
}

// Requirement: every state change is observable through Subscribe without
// polling, and unsubscribing stops delivery.
func TestSessionStore_Subscribe(t *testing.T) {
	// Arrange
	identities := NewFakeIdentitySource(demoStudent())
	store := newTestStore(identities, NewFakeSnapshotStore())
	defer store.Close()

	events := make(chan *core.Identity, 8)
	unsubscribe := store.Subscribe(func(identity *core.Identity) {
		events <- identity
	})

	waitEvent := func() *core.Identity {
		t.Helper()
		select {
		case identity := <-events:
			return identity
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for a notification")
			return nil
		}
	}

	// Act + Assert: login notifies with the new identity.
	if _, err := store.Login(context.Background(), "student@example.com", "password"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if got := waitEvent(); got == nil || got.ID != "1" {
		t.Errorf("login notification = %+v, want the student identity", got)
	}

	// Logout notifies with nil (anonymous).
	if err := store.Logout(context.Background()); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if got := waitEvent(); got != nil {
		t.Errorf("logout notification = %+v, want nil", got)
	}

	// After unsubscribing, no further events are delivered.
	unsubscribe()
	if _, err := store.Login(context.Background(), "student@example.com", "password"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	select {
	case identity := <-events:
		t.Errorf("received notification %+v after unsubscribe", identity)
	case <-time.After(100 * time.Millisecond):
	}
}

// Requirement: the simulated round-trip holds Loading()=true while in flight
// and a cancelled context aborts the operation without touching state.
func TestSessionStore_RoundTrip(t *testing.T) {
	identities := NewFakeIdentitySource(demoStudent())
	store := NewSessionStore(
		core.SessionConfig{RoundTrip: 50 * time.Millisecond},
		identities,
		NewFakeSnapshotStore(),
		core.SentinelVerifier{Password: "password"},
	)
	defer store.Close()

	t.Run("loading is observable while in flight", func(t *testing.T) {
		done := make(chan error, 1)
		go func() {
			_, err := store.Login(context.Background(), "student@example.com", "password")
			done <- err
		}()

		deadline := time.Now().Add(time.Second)
		for !store.Loading() {
			if time.Now().After(deadline) {
				t.Fatal("Loading() never became true during login")
			}
			time.Sleep(time.Millisecond)
		}

		if err := <-done; err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if store.Loading() {
			t.Error("Loading() must be false once the operation resolves")
		}
	})

	t.Run("cancellation aborts without state changes", func(t *testing.T) {
		if err := store.Logout(context.Background()); err != nil {
			t.Fatalf("Logout() error = %v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := store.Login(ctx, "student@example.com", "password")
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Login() error = %v, want context.Canceled", err)
		}
		if store.Current() != nil {
			t.Error("cancelled login must leave the store anonymous")
		}
	})
}

// Requirement: UpdateProfile edits only role-appropriate fields of the
// current identity, writes through to the identity source, and refreshes the
// snapshot.
func TestSessionStore_UpdateProfile(t *testing.T) {
	identities := NewFakeIdentitySource(demoStudent())
	snapshots := NewFakeSnapshotStore()
	store := newTestStore(identities, snapshots)
	defer store.Close()

	// Anonymous stores cannot edit a profile.
	if _, err := store.UpdateProfile(context.Background(), core.ProfileChanges{}); !errors.Is(err, core.ErrNotAuthenticated) {
		t.Fatalf("UpdateProfile() while anonymous error = %v, want %v", err, core.ErrNotAuthenticated)
	}

	if _, err := store.Login(context.Background(), "student@example.com", "password"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	university := "Stanford"
	company := "Acme"
	updated, err := store.UpdateProfile(context.Background(), core.ProfileChanges{
		University: &university,
		Skills:     []string{"Go"},
		Company:    &company, // recruiter field, ignored for a student
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}

	if updated.University != "Stanford" {
		t.Errorf("University = %q, want %q", updated.University, "Stanford")
	}
	if len(updated.Skills) != 1 || updated.Skills[0] != "Go" {
		t.Errorf("Skills = %v, want [Go]", updated.Skills)
	}
	if updated.Company != "" {
		t.Error("recruiter-only field must be ignored for a student")
	}

	// The edit must be visible through the identity source and the snapshot.
	stored, err := identities.FindByEmail(context.Background(), "student@example.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if stored.University != "Stanford" {
		t.Error("UpdateProfile() must write through to the identity source")
	}

	restored, err := core.DecodeSnapshot(snapshots.Snapshot())
	if err != nil {
		t.Fatalf("DecodeSnapshot() error = %v", err)
	}
	if restored.University != "Stanford" {
		t.Error("UpdateProfile() must refresh the persisted snapshot")
	}
}
