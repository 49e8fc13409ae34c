package memory

import (
	"context"
	"sync"
	"time"

	"github.com/campushire/campushire"
)

// JobStorage keeps jobs and applications in memory.
type JobStorage struct {
	mu   sync.RWMutex
	jobs map[string]*campushire.Job
	apps []*campushire.Application
}

var _ campushire.JobBoardStorage = (*JobStorage)(nil)

func NewJobStorage(seed ...*campushire.Job) *JobStorage {
	s := &JobStorage{jobs: make(map[string]*campushire.Job)}
	for _, job := range seed {
		s.jobs[job.ID] = job
	}
	return s
}

func (s *JobStorage) ListJobs(_ context.Context) ([]*campushire.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]*campushire.Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func (s *JobStorage) GetJob(_ context.Context, id string) (*campushire.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, campushire.ErrJobNotFound
	}
	return job, nil
}

func (s *JobStorage) AddJob(_ context.Context, job *campushire.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs[job.ID] = job
	return nil
}

func (s *JobStorage) AddApplication(_ context.Context, app *campushire.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.apps = append(s.apps, app)
	return nil
}

func (s *JobStorage) ListApplicationsByStudent(_ context.Context, studentID string) ([]*campushire.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var apps []*campushire.Application
	for _, app := range s.apps {
		if app.StudentID == studentID {
			apps = append(apps, app)
		}
	}
	return apps, nil
}

func (s *JobStorage) ListApplicationsByJob(_ context.Context, jobID string) ([]*campushire.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var apps []*campushire.Application
	for _, app := range s.apps {
		if app.JobID == jobID {
			apps = append(apps, app)
		}
	}
	return apps, nil
}

// DemoJobs returns the development job listing. Posting times and deadlines
// are relative to now so the demo data always has open positions.
func DemoJobs() []*campushire.Job {
	now := time.Now()
	day := 24 * time.Hour

	return []*campushire.Job{
		{
			ID:          "1",
			Title:       "Frontend Developer Intern",
			Company:     "Tech Solutions Inc.",
			Location:    "Remote",
			Type:        "internship",
			PostedAt:    now.Add(-2 * day),
			Deadline:    now.Add(20 * day),
			Description: "We're looking for a motivated Frontend Developer Intern to join our team. You'll work on real projects using React, TypeScript, and modern web technologies.",
			Skills:      []string{"React", "JavaScript", "HTML/CSS"},
			Salary:      "$20-25/hr",
		},
		{
			ID:          "2",
			Title:       "UX/UI Design Intern",
			Company:     "Creative Studio",
			Location:    "New York, NY",
			Type:        "internship",
			PostedAt:    now.Add(-7 * day),
			Deadline:    now.Add(25 * day),
			Description: "Join our design team to create beautiful and functional user interfaces. You'll work closely with product managers and developers to bring designs to life.",
			Skills:      []string{"Figma", "Adobe XD", "UI Design"},
			Salary:      "$22/hr",
		},
		{
			ID:          "3",
			Title:       "Software Engineering Intern",
			Company:     "Mega Tech Corp",
			Location:    "San Francisco, CA",
			Type:        "internship",
			PostedAt:    now.Add(-3 * day),
			Deadline:    now.Add(35 * day),
			Description: "As a Software Engineering Intern, you'll help build and maintain our core products. This role involves full-stack development with modern technologies.",
			Skills:      []string{"Java", "Python", "Node.js"},
			Salary:      "$25-30/hr",
		},
		{
			ID:          "4",
			Title:       "Data Science Intern",
			Company:     "DataMetrics",
			Location:    "Boston, MA",
			Type:        "internship",
			PostedAt:    now.Add(-5 * day),
			Deadline:    now.Add(40 * day),
			Description: "Help us analyze large datasets and build machine learning models. You'll work with our data science team on real-world problems.",
			Skills:      []string{"Python", "SQL", "Machine Learning"},
			Salary:      "$24-28/hr",
		},
		{
			ID:          "5",
			Title:       "Marketing Coordinator",
			Company:     "BrandBuilders",
			Location:    "Chicago, IL",
			Type:        "full-time",
			PostedAt:    now.Add(-1 * day),
			Deadline:    now.Add(30 * day),
			Description: "Join our marketing team to help coordinate campaigns, analyze market trends, and support our brand growth initiatives.",
			Skills:      []string{"Digital Marketing", "Social Media", "Analytics"},
			Salary:      "$45,000-55,000/yr",
		},
		{
			ID:          "6",
			Title:       "Backend Developer",
			Company:     "ServerSolutions",
			Location:    "Austin, TX",
			Type:        "full-time",
			PostedAt:    now.Add(-4 * day),
			Deadline:    now.Add(45 * day),
			Description: "Looking for an experienced backend developer to help scale our infrastructure and implement new features.",
			Skills:      []string{"Node.js", "MongoDB", "AWS"},
			Salary:      "$80,000-95,000/yr",
		},
	}
}
