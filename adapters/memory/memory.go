// Package memory provides in-memory adapters backed by the demo data set.
// They are the default wiring for development and tests; a real deployment
// swaps in a database adapter without touching the services.
package memory

import (
	"context"
	"sync"

	"github.com/campushire/campushire"
)

// IdentitySource keeps identities in a map keyed by normalized email.
type IdentitySource struct {
	mu      sync.RWMutex
	byEmail map[string]*campushire.Identity
}

var _ campushire.IdentitySource = (*IdentitySource)(nil)

func NewIdentitySource(seed ...*campushire.Identity) *IdentitySource {
	s := &IdentitySource{byEmail: make(map[string]*campushire.Identity)}
	for _, identity := range seed {
		s.byEmail[campushire.NormalizeEmail(identity.Email)] = identity
	}
	return s
}

func (s *IdentitySource) FindByEmail(_ context.Context, email string) (*campushire.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	identity, ok := s.byEmail[campushire.NormalizeEmail(email)]
	if !ok {
		return nil, campushire.ErrIdentityNotFound
	}
	return identity, nil
}

func (s *IdentitySource) FindByID(_ context.Context, id string) (*campushire.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, identity := range s.byEmail {
		if identity.ID == id {
			return identity, nil
		}
	}
	return nil, campushire.ErrIdentityNotFound
}

func (s *IdentitySource) Add(_ context.Context, identity *campushire.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := campushire.NormalizeEmail(identity.Email)
	if _, exists := s.byEmail[key]; exists {
		return campushire.ErrDuplicateEmail
	}
	s.byEmail[key] = identity
	return nil
}

func (s *IdentitySource) Update(_ context.Context, identity *campushire.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := campushire.NormalizeEmail(identity.Email)
	if _, exists := s.byEmail[key]; !exists {
		return campushire.ErrIdentityNotFound
	}
	s.byEmail[key] = identity
	return nil
}

// DemoIdentities returns the three development accounts: a student, a
// recruiter, and an admin. They all accept the sentinel demo password.
func DemoIdentities() []*campushire.Identity {
	return []*campushire.Identity{
		{
			ID:             "1",
			Email:          "student@example.com",
			Name:           "John Student",
			FirstName:      "John",
			LastName:       "Student",
			Role:           campushire.RoleStudent,
			University:     "MIT",
			Degree:         "Computer Science",
			GraduationYear: 2024,
			Skills:         []string{"React", "JavaScript", "Java"},
			About:          "Passionate student looking for internships in software development.",
		},
		{
			ID:        "2",
			Email:     "recruiter@example.com",
			Name:      "Jane Recruiter",
			FirstName: "Jane",
			LastName:  "Recruiter",
			Role:      campushire.RoleRecruiter,
			Company:   "Tech Solutions Inc.",
			Position:  "HR Manager",
			About:     "Hiring manager for software engineering positions.",
		},
		{
			ID:        "3",
			Email:     "admin@example.com",
			Name:      "Admin User",
			FirstName: "Admin",
			LastName:  "User",
			Role:      campushire.RoleAdmin,
		},
	}
}
