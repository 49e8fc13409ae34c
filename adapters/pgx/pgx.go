// Package pgx adapts PostgreSQL, via pgxpool, as the identity source and
// job board storage. Expected schema:
//
//	CREATE TABLE identities (
//	    id              text PRIMARY KEY,
//	    email           text NOT NULL,
//	    name            text NOT NULL DEFAULT '',
//	    first_name      text NOT NULL DEFAULT '',
//	    last_name       text NOT NULL DEFAULT '',
//	    role            text NOT NULL,
//	    university      text NOT NULL DEFAULT '',
//	    degree          text NOT NULL DEFAULT '',
//	    graduation_year int  NOT NULL DEFAULT 0,
//	    skills          text[] NOT NULL DEFAULT '{}',
//	    company         text NOT NULL DEFAULT '',
//	    position        text NOT NULL DEFAULT '',
//	    about           text NOT NULL DEFAULT ''
//	);
//	CREATE UNIQUE INDEX identities_email_key ON identities (lower(email));
//
//	CREATE TABLE jobs (
//	    id          text PRIMARY KEY,
//	    title       text NOT NULL,
//	    company     text NOT NULL DEFAULT '',
//	    location    text NOT NULL DEFAULT '',
//	    type        text NOT NULL DEFAULT '',
//	    posted_at   timestamptz NOT NULL,
//	    deadline    timestamptz,
//	    description text NOT NULL DEFAULT '',
//	    skills      text[] NOT NULL DEFAULT '{}',
//	    salary      text NOT NULL DEFAULT '',
//	    posted_by   text NOT NULL DEFAULT ''
//	);
//
//	CREATE TABLE applications (
//	    id         text PRIMARY KEY,
//	    job_id     text NOT NULL REFERENCES jobs (id),
//	    student_id text NOT NULL REFERENCES identities (id),
//	    status     text NOT NULL,
//	    applied_at timestamptz NOT NULL
//	);
package pgx

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/campushire"
)

type Adapter struct {
	pool *pgxpool.Pool
}

var (
	_ campushire.IdentitySource  = (*Adapter)(nil)
	_ campushire.JobBoardStorage = (*Adapter)(nil)
)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{
		pool: pool,
	}
}
