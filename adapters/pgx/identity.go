package pgx

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campushire/campushire"
)

const identityColumns = `id, email, name, first_name, last_name, role, university, degree, graduation_year, skills, company, position, about`

func scanIdentity(row pgx.Row) (*campushire.Identity, error) {
	identity := &campushire.Identity{}
	err := row.Scan(
		&identity.ID,
		&identity.Email,
		&identity.Name,
		&identity.FirstName,
		&identity.LastName,
		&identity.Role,
		&identity.University,
		&identity.Degree,
		&identity.GraduationYear,
		&identity.Skills,
		&identity.Company,
		&identity.Position,
		&identity.About,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, campushire.ErrIdentityNotFound
		}
		return nil, err
	}
	return identity, nil
}

func (a *Adapter) FindByEmail(ctx context.Context, email string) (*campushire.Identity, error) {
	q := `SELECT ` + identityColumns + ` FROM identities WHERE lower(email) = lower($1)`
	return scanIdentity(a.pool.QueryRow(ctx, q, email))
}

func (a *Adapter) FindByID(ctx context.Context, id string) (*campushire.Identity, error) {
	q := `SELECT ` + identityColumns + ` FROM identities WHERE id = $1`
	return scanIdentity(a.pool.QueryRow(ctx, q, id))
}

func (a *Adapter) Add(ctx context.Context, identity *campushire.Identity) error {
	q := `INSERT INTO identities (` + identityColumns + `)
	      VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := a.pool.Exec(ctx, q,
		identity.ID,
		identity.Email,
		identity.Name,
		identity.FirstName,
		identity.LastName,
		identity.Role,
		identity.University,
		identity.Degree,
		identity.GraduationYear,
		identity.Skills,
		identity.Company,
		identity.Position,
		identity.About,
	)
	if err != nil {
		// 23505 is unique_violation, raised by the lower(email) index.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return campushire.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (a *Adapter) Update(ctx context.Context, identity *campushire.Identity) error {
	q := `UPDATE identities
	      SET email = $2, name = $3, first_name = $4, last_name = $5, role = $6,
	          university = $7, degree = $8, graduation_year = $9, skills = $10,
	          company = $11, position = $12, about = $13
	      WHERE id = $1`

	tag, err := a.pool.Exec(ctx, q,
		identity.ID,
		identity.Email,
		identity.Name,
		identity.FirstName,
		identity.LastName,
		identity.Role,
		identity.University,
		identity.Degree,
		identity.GraduationYear,
		identity.Skills,
		identity.Company,
		identity.Position,
		identity.About,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return campushire.ErrIdentityNotFound
	}
	return nil
}
