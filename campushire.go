// Package campushire is an embeddable session and identity core for a
// campus job-board application: who is logged in, how they log in and
// register, and the job listing operations the role dashboards consume.
//
// The package wires three pluggable seams: an IdentitySource holding the
// registered identities (demo arrays in memory, or a database adapter), a
// SnapshotStore persisting the current session across restarts, and an
// optional HTTP adapter exposing the operations as routes.
package campushire

import (
	"github.com/campushire/campushire/core"
	"github.com/campushire/campushire/services"
)

// interfaces
type (
	IdentitySource     = core.IdentitySource
	SnapshotStore      = core.SnapshotStore
	CredentialVerifier = core.CredentialVerifier
	JobBoardStorage    = core.JobBoardStorage
	JobSource          = core.JobSource
	ApplicationStorage = core.ApplicationStorage
)

// structs
type (
	SessionStore  = services.SessionStore
	JobBoard      = services.JobBoard
	SessionConfig = core.SessionConfig
)

type (
	Identity          = core.Identity
	Role              = core.Role
	RegisterInput     = core.RegisterInput
	ProfileChanges    = core.ProfileChanges
	Job               = core.Job
	JobFilter         = core.JobFilter
	Application       = core.Application
	ApplicationStatus = core.ApplicationStatus
)

const (
	RoleStudent   = core.RoleStudent
	RoleRecruiter = core.RoleRecruiter
	RoleAdmin     = core.RoleAdmin
)

const (
	StatusApplied     = core.StatusApplied
	StatusViewed      = core.StatusViewed
	StatusShortlisted = core.StatusShortlisted
	StatusSelected    = core.StatusSelected
	StatusRejected    = core.StatusRejected
)

const (
	AllTypes     = core.AllTypes
	AllLocations = core.AllLocations
)

const (
	defaultBasePath = "/api/auth"

	// DefaultSentinelPassword is the demo credential every seeded identity
	// accepts when no CredentialVerifier is configured.
	DefaultSentinelPassword = "password"
)

// Constructors & helpers (convenience re-exports)
var (
	DefaultSessionConfig = core.DefaultSessionConfig
	DecodeSnapshot       = core.DecodeSnapshot
	EncodeSnapshot       = core.EncodeSnapshot
	NormalizeEmail       = core.NormalizeEmail
)

var (
	ErrInvalidCredentials = core.ErrInvalidCredentials
	ErrDuplicateEmail     = core.ErrDuplicateEmail
	ErrNotAuthenticated   = core.ErrNotAuthenticated
	ErrRoleNotRegistrable = core.ErrRoleNotRegistrable
	ErrIdentityNotFound   = core.ErrIdentityNotFound
	ErrMalformedSnapshot  = core.ErrMalformedSnapshot
	ErrSnapshotNotFound   = core.ErrSnapshotNotFound
)

var (
	ErrJobNotFound    = core.ErrJobNotFound
	ErrRoleForbidden  = core.ErrRoleForbidden
	ErrAlreadyApplied = core.ErrAlreadyApplied
	ErrDeadlinePassed = core.ErrDeadlinePassed
)

var (
	ErrEmailRequired    = core.ErrEmailRequired
	ErrPasswordRequired = core.ErrPasswordRequired
	ErrNameRequired     = core.ErrNameRequired
	ErrTitleRequired    = core.ErrTitleRequired
	ErrInvalidRole      = core.ErrInvalidRole
)

var (
	ErrIdentitySourceRequired = core.ErrIdentitySourceRequired
	ErrSnapshotStoreRequired  = core.ErrSnapshotStoreRequired
)

// HTTPAdapter registers the campushire routes on a host web framework.
type HTTPAdapter interface {
	RegisterRoutes(app *CampusHire) error
}

type Config struct {
	// Required adapters
	Identities IdentitySource
	Snapshots  SnapshotStore

	// Optional config
	Jobs          JobBoardStorage
	HTTP          HTTPAdapter
	Verifier      CredentialVerifier
	SessionConfig *SessionConfig
	BasePath      string
}

// CampusHire bundles the constructed services. Sessions is always present;
// Jobs is nil when no job storage was configured.
type CampusHire struct {
	Sessions *SessionStore
	Jobs     *JobBoard
	BasePath string
}

func New(config Config) (*CampusHire, error) {
	if config.Identities == nil {
		return nil, ErrIdentitySourceRequired
	}
	if config.Snapshots == nil {
		return nil, ErrSnapshotStoreRequired
	}

	// Set defaults

	verifier := config.Verifier
	if verifier == nil {
		verifier = core.SentinelVerifier{Password: DefaultSentinelPassword}
	}

	sessionConfig := config.SessionConfig
	if sessionConfig == nil {
		defaults := DefaultSessionConfig()
		sessionConfig = &defaults
	}

	basePath := config.BasePath
	if basePath == "" {
		basePath = defaultBasePath
	}

	app := &CampusHire{
		Sessions: services.NewSessionStore(*sessionConfig, config.Identities, config.Snapshots, verifier),
		BasePath: basePath,
	}

	if config.Jobs != nil {
		app.Jobs = services.NewJobBoard(config.Jobs)
	}

	if config.HTTP != nil {
		if err := config.HTTP.RegisterRoutes(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Close tears down the session store's notification dispatcher. Call it once
// at process shutdown.
func (c *CampusHire) Close() {
	if c == nil || c.Sessions == nil {
		return
	}
	c.Sessions.Close()
}
