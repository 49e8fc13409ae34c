package pgx

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/campushire/campushire"
)

const jobColumns = `id, title, company, location, type, posted_at, deadline, description, skills, salary, posted_by`

func scanJob(row pgx.Row) (*campushire.Job, error) {
	job := &campushire.Job{}
	var deadline *time.Time
	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Company,
		&job.Location,
		&job.Type,
		&job.PostedAt,
		&deadline,
		&job.Description,
		&job.Skills,
		&job.Salary,
		&job.PostedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, campushire.ErrJobNotFound
		}
		return nil, err
	}
	if deadline != nil {
		job.Deadline = *deadline
	}
	return job, nil
}

func (a *Adapter) ListJobs(ctx context.Context) ([]*campushire.Job, error) {
	q := `SELECT ` + jobColumns + ` FROM jobs ORDER BY posted_at DESC`

	rows, err := a.pool.Query(ctx, q)
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

func (a *Adapter) GetJob(ctx context.Context, id string) (*campushire.Job, error) {
	q := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	return scanJob(a.pool.QueryRow(ctx, q, id))
}

func (a *Adapter) AddJob(ctx context.Context, job *campushire.Job) error {
	q := `INSERT INTO jobs (` + jobColumns + `)
	      VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	var deadline *time.Time
	if !job.Deadline.IsZero() {
		deadline = &job.Deadline
	}

	_, err := a.pool.Exec(ctx, q,
		job.ID,
		job.Title,
		job.Company,
		job.Location,
		job.Type,
		job.PostedAt,
		deadline,
		job.Description,
		job.Skills,
		job.Salary,
		job.PostedBy,
	)
	return err
}

func (a *Adapter) AddApplication(ctx context.Context, app *campushire.Application) error {
	q := `INSERT INTO applications (id, job_id, student_id, status, applied_at)
	      VALUES ($1, $2, $3, $4, $5)`

	_, err := a.pool.Exec(ctx, q, app.ID, app.JobID, app.StudentID, app.Status, app.AppliedAt)
	return err
}

func (a *Adapter) listApplications(ctx context.Context, q string, arg any) ([]*campushire.Application, error) {
	rows, err := a.pool.Query(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []*campushire.Application
	for rows.Next() {
		app := &campushire.Application{}
		if err := rows.Scan(&app.ID, &app.JobID, &app.StudentID, &app.Status, &app.AppliedAt); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (a *Adapter) ListApplicationsByStudent(ctx context.Context, studentID string) ([]*campushire.Application, error) {
	q := `SELECT id, job_id, student_id, status, applied_at FROM applications WHERE student_id = $1 ORDER BY applied_at DESC`
	return a.listApplications(ctx, q, studentID)
}

func (a *Adapter) ListApplicationsByJob(ctx context.Context, jobID string) ([]*campushire.Application, error) {
	q := `SELECT id, job_id, student_id, status, applied_at FROM applications WHERE job_id = $1 ORDER BY applied_at DESC`
	return a.listApplications(ctx, q, jobID)
}
