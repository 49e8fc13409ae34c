package core

import "errors"

// Authentication errors
var (
	// Deliberately does not distinguish "no such email" from "wrong password"
	// so the error cannot be used to probe for registered accounts.
	ErrInvalidCredentials = errors.New("invalid email or password") // 401
	ErrDuplicateEmail     = errors.New("email already registered")  // 409
	ErrNotAuthenticated   = errors.New("not authenticated")         // 401
	ErrRoleNotRegistrable = errors.New("role cannot self-register") // 403
)

// Identity source errors
var (
	ErrIdentityNotFound = errors.New("identity not found") // 404
)

// Snapshot errors
var (
	// Never surfaced to callers; a malformed snapshot is discarded and the
	// store starts anonymous.
	ErrMalformedSnapshot = errors.New("persisted session snapshot is malformed")
	ErrSnapshotNotFound  = errors.New("no session snapshot persisted")
)

// Job board errors
var (
	ErrJobNotFound    = errors.New("job not found")                   // 404
	ErrRoleForbidden  = errors.New("role is not allowed to do this")  // 403
	ErrAlreadyApplied = errors.New("already applied to this job")     // 409
	ErrDeadlinePassed = errors.New("application deadline has passed") // 409
)

// Validation errors (client input)
var (
	ErrEmailRequired    = errors.New("email is required")     // 400
	ErrPasswordRequired = errors.New("password is required")  // 400
	ErrNameRequired     = errors.New("name is required")      // 400
	ErrTitleRequired    = errors.New("job title is required") // 400
	ErrInvalidRole      = errors.New("unknown role")          // 400
)

// Config errors (server-side configuration)
var (
	ErrIdentitySourceRequired = errors.New("identity source adapter is required") // 500
	ErrSnapshotStoreRequired  = errors.New("snapshot store adapter is required")  // 500
)
