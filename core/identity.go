package core

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// NormalizeEmail lowercases and trims an email so it can be used as a
// case-insensitive lookup key. The empty string stays empty.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SplitName derives first/last name parts from a display name, matching how
// the registration form populates them: first word is the first name,
// everything after it is the last name.
func SplitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// NewRegisteredIdentity builds a fresh identity for self-registration with
// role-appropriate empty profile fields. Students default to a graduation
// year four years out, mirroring a typical program length.
func NewRegisteredIdentity(id string, input RegisterInput) *Identity {
	first, last := SplitName(input.Name)
	identity := &Identity{
		ID:        id,
		Email:     NormalizeEmail(input.Email),
		Name:      input.Name,
		FirstName: first,
		LastName:  last,
		Role:      input.Role,
	}

	switch input.Role {
	case RoleStudent:
		identity.Skills = []string{}
		identity.GraduationYear = time.Now().Year() + 4
	case RoleRecruiter:
		// Company and position start empty until the profile is filled in.
	}

	return identity
}

// ApplyChanges folds a partial profile update into the identity. Fields that
// do not belong to the identity's role are ignored rather than rejected, the
// same way the profile form only ever submits role-appropriate inputs.
func (i *Identity) ApplyChanges(changes ProfileChanges) {
	if changes.Name != nil {
		i.Name = *changes.Name
		i.FirstName, i.LastName = SplitName(*changes.Name)
	}
	if changes.About != nil {
		i.About = *changes.About
	}

	switch i.Role {
	case RoleStudent:
		if changes.University != nil {
			i.University = *changes.University
		}
		if changes.Degree != nil {
			i.Degree = *changes.Degree
		}
		if changes.GraduationYear != nil {
			i.GraduationYear = *changes.GraduationYear
		}
		if changes.Skills != nil {
			i.Skills = changes.Skills
		}
	case RoleRecruiter:
		if changes.Company != nil {
			i.Company = *changes.Company
		}
		if changes.Position != nil {
			i.Position = *changes.Position
		}
	}
}

// EncodeSnapshot serializes an identity into the canonical snapshot format.
func EncodeSnapshot(identity *Identity) ([]byte, error) {
	return json.Marshal(identity)
}

// snapshotPayload is the tolerant wire form of a snapshot. Older snapshots
// used numeric ids, uppercase role enums, and comma-joined skill strings;
// all three are accepted and normalized. Unknown fields are ignored.
type snapshotPayload struct {
	ID             json.RawMessage `json:"id"`
	Email          string          `json:"email"`
	Name           string          `json:"name"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Role           string          `json:"role"`
	University     string          `json:"university"`
	Degree         string          `json:"degree"`
	GraduationYear int             `json:"graduationYear"`
	Skills         json.RawMessage `json:"skills"`
	Company        string          `json:"company"`
	Position       string          `json:"position"`
	About          string          `json:"about"`
}

// DecodeSnapshot parses a persisted snapshot into a canonical identity.
// Anything that cannot be normalized into a well-formed identity returns
// ErrMalformedSnapshot.
func DecodeSnapshot(data []byte) (*Identity, error) {
	var payload snapshotPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	id, err := decodeID(payload.ID)
	if err != nil {
		return nil, err
	}

	role := Role(strings.ToLower(strings.TrimSpace(payload.Role)))
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrMalformedSnapshot, payload.Role)
	}

	email := NormalizeEmail(payload.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: missing email", ErrMalformedSnapshot)
	}

	skills, err := decodeSkills(payload.Skills)
	if err != nil {
		return nil, err
	}

	name := payload.Name
	if name == "" {
		name = strings.TrimSpace(payload.FirstName + " " + payload.LastName)
	}

	return &Identity{
		ID:             id,
		Email:          email,
		Name:           name,
		FirstName:      payload.FirstName,
		LastName:       payload.LastName,
		Role:           role,
		University:     payload.University,
		Degree:         payload.Degree,
		GraduationYear: payload.GraduationYear,
		Skills:         skills,
		Company:        payload.Company,
		Position:       payload.Position,
		About:          payload.About,
	}, nil
}

// decodeID accepts string or numeric ids and normalizes both to a string.
func decodeID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("%w: missing id", ErrMalformedSnapshot)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return "", fmt.Errorf("%w: empty id", ErrMalformedSnapshot)
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if _, err := n.Int64(); err == nil {
			return n.String(), nil
		}
	}

	return "", fmt.Errorf("%w: id is neither string nor integer", ErrMalformedSnapshot)
}

// decodeSkills accepts either a JSON array of strings or a single
// comma-joined string, the two shapes the legacy data used.
func decodeSkills(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var joined string
	if err := json.Unmarshal(raw, &joined); err == nil {
		if joined == "" {
			return nil, nil
		}
		parts := strings.Split(joined, ",")
		skills := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				skills = append(skills, trimmed)
			}
		}
		return skills, nil
	}

	return nil, fmt.Errorf("%w: skills is neither list nor string", ErrMalformedSnapshot)
}
