// Package sqlite adapts a single SQLite file as the identity source and job
// board storage. It needs no server, which makes it the durable option for
// single-node deployments and integration tests.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/campushire/campushire"
)

const schema = `
CREATE TABLE IF NOT EXISTS identities (
    id              TEXT PRIMARY KEY,
    email           TEXT NOT NULL,
    name            TEXT NOT NULL DEFAULT '',
    first_name      TEXT NOT NULL DEFAULT '',
    last_name       TEXT NOT NULL DEFAULT '',
    role            TEXT NOT NULL,
    university      TEXT NOT NULL DEFAULT '',
    degree          TEXT NOT NULL DEFAULT '',
    graduation_year INTEGER NOT NULL DEFAULT 0,
    skills          TEXT NOT NULL DEFAULT '',
    company         TEXT NOT NULL DEFAULT '',
    position        TEXT NOT NULL DEFAULT '',
    about           TEXT NOT NULL DEFAULT ''
);
CREATE UNIQUE INDEX IF NOT EXISTS identities_email_key ON identities (lower(email));

CREATE TABLE IF NOT EXISTS jobs (
    id          TEXT PRIMARY KEY,
    title       TEXT NOT NULL,
    company     TEXT NOT NULL DEFAULT '',
    location    TEXT NOT NULL DEFAULT '',
    type        TEXT NOT NULL DEFAULT '',
    posted_at   INTEGER NOT NULL,
    deadline    INTEGER NOT NULL DEFAULT 0,
    description TEXT NOT NULL DEFAULT '',
    skills      TEXT NOT NULL DEFAULT '',
    salary      TEXT NOT NULL DEFAULT '',
    posted_by   TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS applications (
    id         TEXT PRIMARY KEY,
    job_id     TEXT NOT NULL REFERENCES jobs (id),
    student_id TEXT NOT NULL REFERENCES identities (id),
    status     TEXT NOT NULL,
    applied_at INTEGER NOT NULL
);
`

// Store implements identity and job board persistence over one SQLite file.
type Store struct {
	db *sql.DB
}

var (
	_ campushire.IdentitySource  = (*Store)(nil)
	_ campushire.JobBoardStorage = (*Store)(nil)
)

// Open opens the store and applies the schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// toMillis normalizes timestamps into millisecond precision for storage.
func toMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

// fromMillis restores millisecond precision and keeps UTC normalization.
func fromMillis(value int64) time.Time {
	if value == 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

// joinSkills flattens a skill set into the comma-joined text column.
func joinSkills(skills []string) string {
	return strings.Join(skills, ",")
}

func splitSkills(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
