package services

import (
	"context"
	"sync"

	"github.com/campushire/campushire/core"
)

// FakeIdentitySource is a test-only fake implementing core.IdentitySource.
// It keys identities by normalized email and exposes error fields for
// behavior injection.
type FakeIdentitySource struct {
	mu        sync.RWMutex
	byEmail   map[string]*core.Identity
	findErr   error
	addErr    error
	updateErr error
}

func NewFakeIdentitySource(seed ...*core.Identity) *FakeIdentitySource {
	f := &FakeIdentitySource{byEmail: make(map[string]*core.Identity)}
	for _, identity := range seed {
		f.byEmail[core.NormalizeEmail(identity.Email)] = identity
	}
	return f
}

func (f *FakeIdentitySource) FindByEmail(_ context.Context, email string) (*core.Identity, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	identity, ok := f.byEmail[core.NormalizeEmail(email)]
	if !ok {
		return nil, core.ErrIdentityNotFound
	}
	return identity, nil
}

func (f *FakeIdentitySource) FindByID(_ context.Context, id string) (*core.Identity, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, identity := range f.byEmail {
		if identity.ID == id {
			return identity, nil
		}
	}
	return nil, core.ErrIdentityNotFound
}

func (f *FakeIdentitySource) Add(_ context.Context, identity *core.Identity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	key := core.NormalizeEmail(identity.Email)
	if _, exists := f.byEmail[key]; exists {
		return core.ErrDuplicateEmail
	}
	f.byEmail[key] = identity
	return nil
}

func (f *FakeIdentitySource) Update(_ context.Context, identity *core.Identity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	key := core.NormalizeEmail(identity.Email)
	if _, exists := f.byEmail[key]; !exists {
		return core.ErrIdentityNotFound
	}
	f.byEmail[key] = identity
	return nil
}

// Len reports how many identities the fake holds.
func (f *FakeIdentitySource) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.byEmail)
}

// FakeSnapshotStore is a test-only fake implementing core.SnapshotStore with
// a single in-memory slot and error injection.
type FakeSnapshotStore struct {
	mu        sync.Mutex
	data      []byte
	loadErr   error
	saveErr   error
	deleteErr error
	saves     int
	deletes   int
}

func NewFakeSnapshotStore() *FakeSnapshotStore {
	return &FakeSnapshotStore{}
}

func (f *FakeSnapshotStore) Load(_ context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.data == nil {
		return nil, core.ErrSnapshotNotFound
	}
	return f.data, nil
}

func (f *FakeSnapshotStore) Save(_ context.Context, snapshot []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.data = append([]byte(nil), snapshot...)
	f.saves++
	return nil
}

func (f *FakeSnapshotStore) Delete(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.data = nil
	f.deletes++
	return nil
}

// Snapshot returns a copy of the persisted bytes, or nil when absent.
func (f *FakeSnapshotStore) Snapshot() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]byte(nil), f.data...)
}

// FakeJobStorage is a test-only fake implementing core.JobBoardStorage.
type FakeJobStorage struct {
	mu      sync.RWMutex
	jobs    map[string]*core.Job
	apps    []*core.Application
	listErr error
	addErr  error
}

func NewFakeJobStorage(seed ...*core.Job) *FakeJobStorage {
	f := &FakeJobStorage{jobs: make(map[string]*core.Job)}
	for _, job := range seed {
		f.jobs[job.ID] = job
	}
	return f
}

func (f *FakeJobStorage) ListJobs(_ context.Context) ([]*core.Job, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	jobs := make([]*core.Job, 0, len(f.jobs))
	for _, job := range f.jobs {
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func (f *FakeJobStorage) GetJob(_ context.Context, id string) (*core.Job, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	job, ok := f.jobs[id]
	if !ok {
		return nil, core.ErrJobNotFound
	}
	return job, nil
}

func (f *FakeJobStorage) AddJob(_ context.Context, job *core.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	f.jobs[job.ID] = job
	return nil
}

func (f *FakeJobStorage) AddApplication(_ context.Context, app *core.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	f.apps = append(f.apps, app)
	return nil
}

func (f *FakeJobStorage) ListApplicationsByStudent(_ context.Context, studentID string) ([]*core.Application, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var apps []*core.Application
	for _, app := range f.apps {
		if app.StudentID == studentID {
			apps = append(apps, app)
		}
	}
	return apps, nil
}

func (f *FakeJobStorage) ListApplicationsByJob(_ context.Context, jobID string) ([]*core.Application, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var apps []*core.Application
	for _, app := range f.apps {
		if app.JobID == jobID {
			apps = append(apps, app)
		}
	}
	return apps, nil
}
