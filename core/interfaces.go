package core

import (
	"context"
	"time"
)

// Ports define interfaces for external dependencies

// ============================================
// IDENTITY SOURCE PORT
// ============================================

// IdentitySource owns the authoritative set of registered identities. The
// bundled memory adapter seeds it with demo accounts; a real deployment
// substitutes a database-backed implementation without touching the session
// store's control flow.
//
// Email lookups are case-insensitive. Implementations must treat
// "Ann@X.com" and "ann@x.com" as the same key.
type IdentitySource interface {
	FindByEmail(ctx context.Context, email string) (*Identity, error)
	FindByID(ctx context.Context, id string) (*Identity, error)
	Add(ctx context.Context, identity *Identity) error
	Update(ctx context.Context, identity *Identity) error
}

// ============================================
// SNAPSHOT STORE PORT
// ============================================

// SnapshotStore is the durable key-value slot holding the serialized current
// identity, so a session survives process restarts. One logical key: Save
// overwrites it, Delete clears it, Load returns ErrSnapshotNotFound when it
// is absent.
type SnapshotStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, snapshot []byte) error
	Delete(ctx context.Context) error
}

// ============================================
// CREDENTIAL PORT
// ============================================

// CredentialVerifier decides whether a password is acceptable for an
// identity. The session store treats it as opaque; the demo deployment uses
// SentinelVerifier, a real one would check stored credentials.
type CredentialVerifier interface {
	Verify(ctx context.Context, identity *Identity, password string) (bool, error)
}

// ============================================
// JOB BOARD STORAGE PORTS
// ============================================

// JobSource defines job-related storage operations
type JobSource interface {
	ListJobs(ctx context.Context) ([]*Job, error)
	GetJob(ctx context.Context, id string) (*Job, error)
	AddJob(ctx context.Context, job *Job) error
}

// ApplicationStorage defines application-related storage operations
type ApplicationStorage interface {
	AddApplication(ctx context.Context, app *Application) error
	ListApplicationsByStudent(ctx context.Context, studentID string) ([]*Application, error)
	ListApplicationsByJob(ctx context.Context, jobID string) ([]*Application, error)
}

type JobBoardStorage interface {
	JobSource
	ApplicationStorage
}

// ============================================
// SESSION CONFIG
// ============================================

// SessionConfig tunes session store behavior. RoundTrip models the latency
// of a future networked identity provider; Login and Register hold
// loading=true for that long before resolving. Zero disables the delay.
type SessionConfig struct {
	RoundTrip time.Duration
}

func DefaultSessionConfig() SessionConfig {
	return SessionConfig{}
}
