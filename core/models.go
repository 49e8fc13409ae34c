package core

import "time"

// Role partitions identities into the three account kinds the board knows
// about. The lowercase string values are canonical; legacy uppercase enums
// are normalized on decode.
type Role string

const (
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

// Registrable reports whether an account with this role can be created
// through self-service registration. Admin accounts are provisioned out of
// band and never self-register.
func (r Role) Registrable() bool {
	return r == RoleStudent || r == RoleRecruiter
}

// Identity represents an authenticated principal
//
// This is the flattened canonical shape - the role decides which of the
// optional profile fields are meaningful.
type Identity struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Role      Role   `json:"role"`

	// Student profile fields
	University     string   `json:"university,omitempty"`
	Degree         string   `json:"degree,omitempty"`
	GraduationYear int      `json:"graduationYear,omitempty"`
	Skills         []string `json:"skills,omitempty"`

	// Recruiter profile fields
	Company  string `json:"company,omitempty"`
	Position string `json:"position,omitempty"`

	// Shared free-form bio
	About string `json:"about,omitempty"`
}

// ProfileChanges carries a partial profile update. Nil fields are left
// untouched; only the fields valid for the identity's role are applied.
type ProfileChanges struct {
	Name           *string
	University     *string
	Degree         *string
	GraduationYear *int
	Skills         []string
	Company        *string
	Position       *string
	About          *string
}

// RegisterInput contains the data needed to register a new identity
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

// Job represents an open position on the board
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	PostedAt    time.Time `json:"postedAt"`
	Deadline    time.Time `json:"deadline"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	Salary      string    `json:"salary"`
	PostedBy    string    `json:"postedBy,omitempty"`
}

// ApplicationStatus tracks where an application sits in the hiring funnel.
type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusViewed      ApplicationStatus = "viewed"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusSelected    ApplicationStatus = "selected"
	StatusRejected    ApplicationStatus = "rejected"
)

// Application links a student to a job they applied for
type Application struct {
	ID        string            `json:"id"`
	JobID     string            `json:"jobId"`
	StudentID string            `json:"studentId"`
	Status    ApplicationStatus `json:"status"`
	AppliedAt time.Time         `json:"appliedAt"`
}
