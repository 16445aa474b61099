package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"strings"
	"sync"
	"time"

	"career-match/internal/domain/job"
	"career-match/internal/domain/resource"
	"career-match/internal/domain/user"
	"career-match/internal/repository"

	"github.com/google/uuid"
)

var errBoom = errors.New("boom")

type memCache struct {
	mu    sync.Mutex
	items map[string][]byte
	sets  int
}

func newMemCache() *memCache {
	return &memCache{items: map[string][]byte{}}
}

func (m *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = b
	m.sets++
	return nil
}

func (m *memCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.items, k)
	}
	return nil
}

func (m *memCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.items {
		if ok, _ := path.Match(pattern, k); ok {
			delete(m.items, k)
		}
	}
	return nil
}

func (m *memCache) SetIfNotExists(_ context.Context, key string, value string, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[key]; ok {
		return false, nil
	}
	m.items[key] = []byte(value)
	return true, nil
}

func (m *memCache) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[key]
	return ok
}

type memJobs struct {
	items     []job.Job
	listCalls int
	allCalls  int
	lastList  repository.JobListFilter
	err       error
}

func (m *memJobs) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, j := range m.items {
		if j.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *memJobs) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	if m.err != nil {
		return job.Job{}, m.err
	}
	for _, j := range m.items {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, repository.ErrJobNotFound
}

func (m *memJobs) ListAll(context.Context) ([]job.Job, error) {
	m.allCalls++
	if m.err != nil {
		return nil, m.err
	}
	return append([]job.Job(nil), m.items...), nil
}

// List applies only the query filter; SQL semantics are covered in the
// repository package.
func (m *memJobs) List(_ context.Context, f repository.JobListFilter) ([]job.Job, error) {
	m.listCalls++
	m.lastList = f
	if m.err != nil {
		return nil, m.err
	}
	out := make([]job.Job, 0)
	for _, j := range m.items {
		if f.Query != "" && !strings.Contains(strings.ToLower(j.Title), strings.ToLower(f.Query)) {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (m *memJobs) Facets(context.Context) (repository.JobFacets, error) {
	if m.err != nil {
		return repository.JobFacets{}, m.err
	}
	return repository.JobFacets{Skills: []string{"Go"}, Locations: []string{"Dhaka"}, JobTypes: []string{job.TypeFullTime}}, nil
}

type memResources struct {
	mu          sync.Mutex
	items       []resource.Resource
	enrollments map[uuid.UUID][]uuid.UUID
	allCalls    int
	err         error
}

func newMemResources(items ...resource.Resource) *memResources {
	return &memResources{items: items, enrollments: map[uuid.UUID][]uuid.UUID{}}
}

func (m *memResources) ListAll(context.Context) ([]resource.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.allCalls++
	if m.err != nil {
		return nil, m.err
	}
	return append([]resource.Resource(nil), m.items...), nil
}

func (m *memResources) GetByID(_ context.Context, id uuid.UUID) (resource.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.items {
		if r.ID == id {
			return r, nil
		}
	}
	return resource.Resource{}, repository.ErrResourceNotFound
}

func (m *memResources) Create(_ context.Context, r resource.Resource) (resource.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if it.URL == r.URL {
			return resource.Resource{}, repository.ErrDuplicateURL
		}
	}
	r.ID = uuid.New()
	m.items = append(m.items, r)
	return r, nil
}

func (m *memResources) Update(_ context.Context, r resource.Resource) (resource.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.items {
		if it.ID == r.ID {
			r.EnrolledCount = it.EnrolledCount
			m.items[i] = r
			return r, nil
		}
	}
	return resource.Resource{}, repository.ErrResourceNotFound
}

func (m *memResources) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.items {
		if it.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrResourceNotFound
}

func (m *memResources) Enroll(_ context.Context, userID, resourceID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := -1
	for i, it := range m.items {
		if it.ID == resourceID {
			idx = i
		}
	}
	if idx < 0 {
		return 0, repository.ErrResourceNotFound
	}
	for _, id := range m.enrollments[userID] {
		if id == resourceID {
			return 0, repository.ErrAlreadyEnrolled
		}
	}
	m.enrollments[userID] = append(m.enrollments[userID], resourceID)
	m.items[idx].EnrolledCount++
	return m.items[idx].EnrolledCount, nil
}

func (m *memResources) ListEnrollments(_ context.Context, userID uuid.UUID) ([]resource.Enrollment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]resource.Enrollment, 0)
	for _, rid := range m.enrollments[userID] {
		for _, it := range m.items {
			if it.ID == rid {
				r := it
				out = append(out, resource.Enrollment{ID: uuid.New(), UserID: userID, ResourceID: rid, Resource: &r})
			}
		}
	}
	return out, nil
}

func (m *memResources) EnrolledResourceIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]uuid.UUID{}, m.enrollments[userID]...), nil
}

type memApplications struct {
	mu    sync.Mutex
	items []job.Application
	jobs  *memJobs
}

func (m *memApplications) Create(_ context.Context, userID, jobID uuid.UUID, notes string) (job.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.items {
		if a.UserID == userID && a.JobID == jobID {
			return job.Application{}, repository.ErrAlreadyApplied
		}
	}
	a := job.Application{ID: uuid.New(), UserID: userID, JobID: jobID, Status: job.ApplicationApplied, Notes: notes, AppliedAt: time.Now()}
	if m.jobs != nil {
		for _, j := range m.jobs.items {
			if j.ID == jobID {
				a.JobTitle, a.Company = j.Title, j.Company
			}
		}
	}
	m.items = append(m.items, a)
	return a, nil
}

func (m *memApplications) ListByUser(_ context.Context, userID uuid.UUID) ([]job.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]job.Application, 0)
	for _, a := range m.items {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memApplications) UpdateStatus(_ context.Context, userID, id uuid.UUID, status string) (job.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.items {
		if a.ID == id && a.UserID == userID {
			m.items[i].Status = status
			return m.items[i], nil
		}
	}
	return job.Application{}, repository.ErrApplicationNotFound
}

func (m *memApplications) AppliedJobIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]uuid.UUID, 0)
	for _, a := range m.items {
		if a.UserID == userID {
			out = append(out, a.JobID)
		}
	}
	return out, nil
}

type memUsers struct {
	byID map[uuid.UUID]user.User
	err  error
}

func newMemUsers(users ...user.User) *memUsers {
	m := &memUsers{byID: map[uuid.UUID]user.User{}}
	for _, u := range users {
		m.byID[u.ID] = u
	}
	return m
}

func (m *memUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}
func (m *memUsers) CreateUser(_ context.Context, u user.User) error {
	m.byID[u.ID] = u
	return nil
}
func (m *memUsers) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}
func (m *memUsers) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}
func (m *memUsers) UpdateUser(_ context.Context, u user.User) error {
	m.byID[u.ID] = u
	return nil
}

type recordedEvent struct {
	kind       string
	resourceID uuid.UUID
	count      int
}

type memEvents struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (m *memEvents) ResourcesUpdated(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, recordedEvent{kind: "updated", resourceID: id})
}

func (m *memEvents) ResourceEnrolled(id uuid.UUID, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, recordedEvent{kind: "enrolled", resourceID: id, count: count})
}

type observation struct {
	outcome         string
	jobs, resources int
}

type memObserver struct {
	mu   sync.Mutex
	seen []observation
}

func (m *memObserver) ObserveRecommendation(outcome string, jobs, resources int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seen = append(m.seen, observation{outcome: outcome, jobs: jobs, resources: resources})
}

func newJob(title string, skills ...string) job.Job {
	return job.Job{ID: uuid.New(), Title: title, Company: "Acme", JobType: job.TypeFullTime, RequiredSkills: skills}
}

func newResource(title string, skills ...string) resource.Resource {
	return resource.Resource{ID: uuid.New(), Title: title, Platform: "YouTube", URL: "https://example.com/" + uuid.NewString(), Cost: resource.CostFree, RelatedSkills: skills}
}
