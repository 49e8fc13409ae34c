package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campushire/campushire"
)

const jobColumns = `id, title, company, location, type, posted_at, deadline, description, skills, salary, posted_by`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*campushire.Job, error) {
	job := &campushire.Job{}
	var postedAt, deadline int64
	var skills string
	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Company,
		&job.Location,
		&job.Type,
		&postedAt,
		&deadline,
		&job.Description,
		&skills,
		&job.Salary,
		&job.PostedBy,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, campushire.ErrJobNotFound
		}
		return nil, err
	}
	job.PostedAt = fromMillis(postedAt)
	job.Deadline = fromMillis(deadline)
	job.Skills = splitSkills(skills)
	return job, nil
}

func (s *Store) ListJobs(ctx context.Context) ([]*campushire.Job, error) {
	q := `SELECT ` + jobColumns + ` FROM jobs ORDER BY posted_at DESC`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*campushire.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (s *Store) GetJob(ctx context.Context, id string) (*campushire.Job, error) {
	q := `SELECT ` + jobColumns + ` FROM jobs WHERE id = ?`
	return scanJob(s.db.QueryRowContext(ctx, q, id))
}

func (s *Store) AddJob(ctx context.Context, job *campushire.Job) error {
	q := `INSERT INTO jobs (` + jobColumns + `)
	      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, q,
		job.ID,
		job.Title,
		job.Company,
		job.Location,
		job.Type,
		toMillis(job.PostedAt),
		toMillis(job.Deadline),
		job.Description,
		joinSkills(job.Skills),
		job.Salary,
		job.PostedBy,
	)
	return err
}

func (s *Store) AddApplication(ctx context.Context, app *campushire.Application) error {
	q := `INSERT INTO applications (id, job_id, student_id, status, applied_at)
	      VALUES (?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, q, app.ID, app.JobID, app.StudentID, string(app.Status), toMillis(app.AppliedAt))
	return err
}

func (s *Store) listApplications(ctx context.Context, q string, arg any) ([]*campushire.Application, error) {
	rows, err := s.db.QueryContext(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []*campushire.Application
	for rows.Next() {
		app := &campushire.Application{}
		var status string
		var appliedAt int64
		if err := rows.Scan(&app.ID, &app.JobID, &app.StudentID, &status, &appliedAt); err != nil {
			return nil, err
		}
		app.Status = campushire.ApplicationStatus(status)
		app.AppliedAt = fromMillis(appliedAt)
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (s *Store) ListApplicationsByStudent(ctx context.Context, studentID string) ([]*campushire.Application, error) {
	q := `SELECT id, job_id, student_id, status, applied_at FROM applications WHERE student_id = ? ORDER BY applied_at DESC`
	return s.listApplications(ctx, q, studentID)
}

func (s *Store) ListApplicationsByJob(ctx context.Context, jobID string) ([]*campushire.Application, error) {
	q := `SELECT id, job_id, student_id, status, applied_at FROM applications WHERE job_id = ? ORDER BY applied_at DESC`
	return s.listApplications(ctx, q, jobID)
}
