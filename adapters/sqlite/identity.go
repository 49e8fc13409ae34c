package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campushire/campushire"
)

const identityColumns = `id, email, name, first_name, last_name, role, university, degree, graduation_year, skills, company, position, about`

func scanIdentity(row *sql.Row) (*campushire.Identity, error) {
	identity := &campushire.Identity{}
	var role, skills string
	err := row.Scan(
		&identity.ID,
		&identity.Email,
		&identity.Name,
		&identity.FirstName,
		&identity.LastName,
		&role,
		&identity.University,
		&identity.Degree,
		&identity.GraduationYear,
		&skills,
		&identity.Company,
		&identity.Position,
		&identity.About,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, campushire.ErrIdentityNotFound
		}
		return nil, err
	}
	identity.Role = campushire.Role(role)
	identity.Skills = splitSkills(skills)
	return identity, nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*campushire.Identity, error) {
	q := `SELECT ` + identityColumns + ` FROM identities WHERE lower(email) = lower(?)`
	return scanIdentity(s.db.QueryRowContext(ctx, q, email))
}

func (s *Store) FindByID(ctx context.Context, id string) (*campushire.Identity, error) {
	q := `SELECT ` + identityColumns + ` FROM identities WHERE id = ?`
	return scanIdentity(s.db.QueryRowContext(ctx, q, id))
}

func (s *Store) Add(ctx context.Context, identity *campushire.Identity) error {
	q := `INSERT INTO identities (` + identityColumns + `)
	      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, q,
		identity.ID,
		identity.Email,
		identity.Name,
		identity.FirstName,
		identity.LastName,
		string(identity.Role),
		identity.University,
		identity.Degree,
		identity.GraduationYear,
		joinSkills(identity.Skills),
		identity.Company,
		identity.Position,
		identity.About,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return campushire.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *Store) Update(ctx context.Context, identity *campushire.Identity) error {
	q := `UPDATE identities
	      SET email = ?, name = ?, first_name = ?, last_name = ?, role = ?,
	          university = ?, degree = ?, graduation_year = ?, skills = ?,
	          company = ?, position = ?, about = ?
	      WHERE id = ?`

	result, err := s.db.ExecContext(ctx, q,
		identity.Email,
		identity.Name,
		identity.FirstName,
		identity.LastName,
		string(identity.Role),
		identity.University,
		identity.Degree,
		identity.GraduationYear,
		joinSkills(identity.Skills),
		identity.Company,
		identity.Position,
		identity.About,
		identity.ID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return campushire.ErrIdentityNotFound
	}
	return nil
}
