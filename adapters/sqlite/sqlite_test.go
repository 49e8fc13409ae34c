package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/campushire/campushire"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "board.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	return store
}

// Requirement: identity persistence round-trips the full profile, finds by
// email ignoring case, and maps a unique violation to ErrDuplicateEmail.
func TestStore_Identities(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	student := &campushire.Identity{
		ID:             "stu-1",
		Email:          "ann@x.com",
		Name:           "Ann Lee",
		FirstName:      "Ann",
		LastName:       "Lee",
		Role:           campushire.RoleStudent,
		University:     "MIT",
		Degree:         "CS",
		GraduationYear: 2027,
		Skills:         []string{"Go", "SQL"},
		About:          "Looking for internships.",
	}

	if err := store.Add(ctx, student); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	found, err := store.FindByEmail(ctx, "ANN@X.COM")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if found.ID != "stu-1" || found.Role != campushire.RoleStudent || found.GraduationYear != 2027 {
		t.Errorf("FindByEmail() = %+v, want the stored student", found)
	}
	if len(found.Skills) != 2 || found.Skills[0] != "Go" || found.Skills[1] != "SQL" {
		t.Errorf("Skills = %v, want [Go SQL]", found.Skills)
	}

	err = store.Add(ctx, &campushire.Identity{ID: "stu-2", Email: "Ann@X.com", Role: campushire.RoleStudent})
	if !errors.Is(err, campushire.ErrDuplicateEmail) {
		t.Errorf("Add() duplicate error = %v, want %v", err, campushire.ErrDuplicateEmail)
	}

	if _, err := store.FindByID(ctx, "stu-1"); err != nil {
		t.Errorf("FindByID() error = %v", err)
	}
	if _, err := store.FindByEmail(ctx, "ghost@x.com"); !errors.Is(err, campushire.ErrIdentityNotFound) {
		t.Errorf("FindByEmail() unknown error = %v, want %v", err, campushire.ErrIdentityNotFound)
	}

	student.University = "Stanford"
	student.Skills = []string{"Go"}
	if err := store.Update(ctx, student); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	updated, _ := store.FindByID(ctx, "stu-1")
	if updated.University != "Stanford" || len(updated.Skills) != 1 {
		t.Errorf("Update() stored %+v", updated)
	}

	if err := store.Update(ctx, &campushire.Identity{ID: "ghost", Email: "g@x.com"}); !errors.Is(err, campushire.ErrIdentityNotFound) {
		t.Errorf("Update() unknown error = %v, want %v", err, campushire.ErrIdentityNotFound)
	}
}

// Requirement: jobs round-trip including timestamps and skills, list newest
// first, and applications are visible per student and per job.
func TestStore_Jobs(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	student := &campushire.Identity{ID: "stu-1", Email: "ann@x.com", Role: campushire.RoleStudent}
	if err := store.Add(ctx, student); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	older := &campushire.Job{
		ID:       "job-1",
		Title:    "Backend Developer",
		Company:  "ServerSolutions",
		Type:     "full-time",
		PostedAt: now.Add(-48 * time.Hour),
		Deadline: now.Add(30 * 24 * time.Hour),
		Skills:   []string{"Go", "Postgres"},
		PostedBy: "rec-1",
	}
	newer := &campushire.Job{
		ID:       "job-2",
		Title:    "Frontend Intern",
		Company:  "Creative Studio",
		Type:     "internship",
		PostedAt: now,
		// No deadline set: stays open.
	}

	for _, job := range []*campushire.Job{older, newer} {
		if err := store.AddJob(ctx, job); err != nil {
			t.Fatalf("AddJob(%s) error = %v", job.ID, err)
		}
	}

	jobs, err := store.ListJobs(ctx)
	if err != nil {
		t.Fatalf("ListJobs() error = %v", err)
	}
	if len(jobs) != 2 || jobs[0].ID != "job-2" || jobs[1].ID != "job-1" {
		t.Errorf("ListJobs() order = %v, want newest first", jobs)
	}

	got, err := store.GetJob(ctx, "job-1")
	if err != nil {
		t.Fatalf("GetJob() error = %v", err)
	}
	if !got.PostedAt.Equal(older.PostedAt) || !got.Deadline.Equal(older.Deadline) {
		t.Errorf("GetJob() timestamps = %v/%v, want %v/%v", got.PostedAt, got.Deadline, older.PostedAt, older.Deadline)
	}
	if len(got.Skills) != 2 {
		t.Errorf("GetJob() skills = %v", got.Skills)
	}

	if !newerDeadlineZero(t, store) {
		t.Error("a job stored without deadline must come back with a zero deadline")
	}

	if _, err := store.GetJob(ctx, "missing"); !errors.Is(err, campushire.ErrJobNotFound) {
		t.Errorf("GetJob() unknown error = %v, want %v", err, campushire.ErrJobNotFound)
	}

	app := &campushire.Application{
		ID:        "app-1",
		JobID:     "job-1",
		StudentID: "stu-1",
		Status:    campushire.StatusApplied,
		AppliedAt: now,
	}
	if err := store.AddApplication(ctx, app); err != nil {
		t.Fatalf("AddApplication() error = %v", err)
	}

	byStudent, err := store.ListApplicationsByStudent(ctx, "stu-1")
	if err != nil || len(byStudent) != 1 || byStudent[0].Status != campushire.StatusApplied {
		t.Errorf("ListApplicationsByStudent() = %v, %v", byStudent, err)
	}
	byJob, err := store.ListApplicationsByJob(ctx, "job-1")
	if err != nil || len(byJob) != 1 || !byJob[0].AppliedAt.Equal(now) {
		t.Errorf("ListApplicationsByJob() = %v, %v", byJob, err)
	}
}

func newerDeadlineZero(t *testing.T, store *Store) bool {
	t.Helper()
	job, err := store.GetJob(context.Background(), "job-2")
	if err != nil {
		t.Fatalf("GetJob(job-2) error = %v", err)
	}
	return job.Deadline.IsZero()
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Error("Open with blank path must fail")
	}
}
