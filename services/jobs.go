package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campushire/campushire/core"
	"github.com/campushire/campushire/pkg/crypto"
)

// JobBoard exposes the job listing operations the dashboards and the public
// browse page are built on. Role checks are plain comparisons: recruiters
// post, students apply.
type JobBoard struct {
	storage core.JobBoardStorage
	ids     *crypto.NanoIDGenerator
}

func NewJobBoard(storage core.JobBoardStorage) *JobBoard {
	return &JobBoard{
		storage: storage,
		ids:     crypto.NewNanoID(),
	}
}

// Browse lists jobs passing the filter, newest first.
func (b *JobBoard) Browse(ctx context.Context, filter core.JobFilter) ([]*core.Job, error) {
	jobs, err := b.storage.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	matched := make([]*core.Job, 0, len(jobs))
	for _, job := range jobs {
		if filter.Matches(job) {
			matched = append(matched, job)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].PostedAt.After(matched[j].PostedAt)
	})

	return matched, nil
}

// Get returns a single job by id.
func (b *JobBoard) Get(ctx context.Context, id string) (*core.Job, error) {
	job, err := b.storage.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	return job, nil
}

// Post publishes a new job under the acting recruiter's name. The company
// defaults to the recruiter's own when the posting leaves it blank.
func (b *JobBoard) Post(ctx context.Context, actor *core.Identity, job core.Job) (*core.Job, error) {
	if actor == nil {
		return nil, core.ErrNotAuthenticated
	}
	if actor.Role != core.RoleRecruiter {
		return nil, core.ErrRoleForbidden
	}
	if strings.TrimSpace(job.Title) == "" {
		return nil, core.ErrTitleRequired
	}

	id, err := b.ids.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate job id: %w", err)
	}

	job.ID = id
	job.PostedAt = time.Now()
	job.PostedBy = actor.ID
	if job.Company == "" {
		job.Company = actor.Company
	}

	if err := b.storage.AddJob(ctx, &job); err != nil {
		return nil, fmt.Errorf("failed to add job: %w", err)
	}

	return &job, nil
}

// Apply files an application by the acting student for a job. Applying twice
// to the same job fails with core.ErrAlreadyApplied; a past deadline fails
// with core.ErrDeadlinePassed.
func (b *JobBoard) Apply(ctx context.Context, actor *core.Identity, jobID string) (*core.Application, error) {
	if actor == nil {
		return nil, core.ErrNotAuthenticated
	}
	if actor.Role != core.RoleStudent {
		return nil, core.ErrRoleForbidden
	}

	job, err := b.storage.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if !job.Deadline.IsZero() && time.Now().After(job.Deadline) {
		return nil, core.ErrDeadlinePassed
	}

	existing, err := b.storage.ListApplicationsByStudent(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	for _, app := range existing {
		if app.JobID == job.ID {
			return nil, core.ErrAlreadyApplied
		}
	}

	app := &core.Application{
		ID:        uuid.NewString(),
		JobID:     job.ID,
		StudentID: actor.ID,
		Status:    core.StatusApplied,
		AppliedAt: time.Now(),
	}

	if err := b.storage.AddApplication(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to add application: %w", err)
	}

	return app, nil
}

// ApplicationsFor lists a student's applications for their dashboard.
func (b *JobBoard) ApplicationsFor(ctx context.Context, studentID string) ([]*core.Application, error) {
	return b.storage.ListApplicationsByStudent(ctx, studentID)
}

// ApplicantsFor lists the applications filed against a job for the recruiter
// dashboard.
func (b *JobBoard) ApplicantsFor(ctx context.Context, jobID string) ([]*core.Application, error) {
	return b.storage.ListApplicationsByJob(ctx, jobID)
}
