// Package storetest provides an in-memory store.Store for tests of the
// layers above the database.
package storetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/store"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/models"
	"github.com/google/uuid"
)

// Memory keeps records in maps and mirrors the uniqueness and not-found
// behaviour of PostgresStore. Records are copied on the way in and out.
type Memory struct {
	mu         sync.Mutex
	jobs       map[uuid.UUID]models.Job
	admitCards map[uuid.UUID]models.AdmitCard
	now        func() time.Time

	// PingErr is returned by Ping.
	PingErr error
	// Calls counts store operations by method name.
	Calls map[string]int
}

func NewMemory() *Memory {
	return &Memory{
		jobs:       make(map[uuid.UUID]models.Job),
		admitCards: make(map[uuid.UUID]models.AdmitCard),
		now:        func() time.Time { return time.Now().UTC() },
		Calls:      make(map[string]int),
	}
}

var _ store.Store = (*Memory)(nil)

func (m *Memory) record(method string) {
	m.Calls[method]++
}

// CallCount is safe to use while other goroutines use the store.
func (m *Memory) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[method]
}

func (m *Memory) Ping(_ context.Context) error { return m.PingErr }

// --- Jobs ---

func (m *Memory) CreateJob(_ context.Context, job *models.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("CreateJob")

	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if _, exists := m.jobs[job.ID]; exists || m.jobSlugTaken(job.Slug, uuid.Nil) {
		return store.ErrDuplicateKey
	}
	job.CreatedAt = m.now()
	job.UpdatedAt = job.CreatedAt
	m.jobs[job.ID] = *job
	return nil
}

func (m *Memory) GetJob(_ context.Context, id uuid.UUID) (*models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("GetJob")

	job, ok := m.jobs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &job, nil
}

func (m *Memory) GetJobBySlug(_ context.Context, slug string) (*models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("GetJobBySlug")

	for _, job := range m.jobs {
		if job.Slug == slug {
			return &job, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *Memory) ListJobs(_ context.Context, filter store.ListFilter) ([]*models.Job, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("ListJobs")

	var matched []*models.Job
	for _, job := range m.jobs {
		if filter.Status != "" && string(job.Status) != filter.Status {
			continue
		}
		if filter.OrganizationID != uuid.Nil && job.OrganizationID != filter.OrganizationID {
			continue
		}
		matched = append(matched, &job)
	}
	sort.Slice(matched, func(i, j int) bool {
		return newerFirst(matched[i].CreatedAt, matched[j].CreatedAt, matched[i].ID, matched[j].ID)
	})
	return page(matched, filter), len(matched), nil
}

func (m *Memory) UpdateJob(_ context.Context, job *models.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("UpdateJob")

	current, ok := m.jobs[job.ID]
	if !ok {
		return store.ErrNotFound
	}
	if m.jobSlugTaken(job.Slug, job.ID) {
		return store.ErrDuplicateKey
	}
	job.CreatedAt = current.CreatedAt
	job.UpdatedAt = m.now()
	m.jobs[job.ID] = *job
	return nil
}

func (m *Memory) DeleteJob(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("DeleteJob")

	if _, ok := m.jobs[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.jobs, id)
	return nil
}

func (m *Memory) jobSlugTaken(slug string, except uuid.UUID) bool {
	for id, job := range m.jobs {
		if id != except && job.Slug == slug {
			return true
		}
	}
	return false
}

// --- Admit Cards ---

func (m *Memory) CreateAdmitCard(_ context.Context, card *models.AdmitCard) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("CreateAdmitCard")

	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}
	if _, exists := m.admitCards[card.ID]; exists || m.cardSlugTaken(card.Slug, uuid.Nil) {
		return store.ErrDuplicateKey
	}
	card.CreatedAt = m.now()
	card.UpdatedAt = card.CreatedAt
	m.admitCards[card.ID] = *card
	return nil
}

func (m *Memory) GetAdmitCard(_ context.Context, id uuid.UUID) (*models.AdmitCard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("GetAdmitCard")

	card, ok := m.admitCards[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &card, nil
}

func (m *Memory) ListAdmitCards(_ context.Context, filter store.ListFilter) ([]*models.AdmitCard, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("ListAdmitCards")

	var matched []*models.AdmitCard
	for _, card := range m.admitCards {
		if filter.Status != "" && string(card.Status) != filter.Status {
			continue
		}
		if filter.OrganizationID != uuid.Nil && card.OrganizationID != filter.OrganizationID {
			continue
		}
		if filter.JobID != uuid.Nil {
			if jobID, ok := card.JobID.Get(); !ok || jobID != filter.JobID {
				continue
			}
		}
		matched = append(matched, &card)
	}
	sort.Slice(matched, func(i, j int) bool {
		return newerFirst(matched[i].CreatedAt, matched[j].CreatedAt, matched[i].ID, matched[j].ID)
	})
	return page(matched, filter), len(matched), nil
}

func (m *Memory) UpdateAdmitCard(_ context.Context, card *models.AdmitCard) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("UpdateAdmitCard")

	current, ok := m.admitCards[card.ID]
	if !ok {
		return store.ErrNotFound
	}
	if m.cardSlugTaken(card.Slug, card.ID) {
		return store.ErrDuplicateKey
	}
	card.CreatedAt = current.CreatedAt
	card.UpdatedAt = m.now()
	m.admitCards[card.ID] = *card
	return nil
}

func (m *Memory) DeleteAdmitCard(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("DeleteAdmitCard")

	if _, ok := m.admitCards[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.admitCards, id)
	return nil
}

func (m *Memory) cardSlugTaken(slug string, except uuid.UUID) bool {
	for id, card := range m.admitCards {
		if id != except && card.Slug == slug {
			return true
		}
	}
	return false
}

func newerFirst(a, b time.Time, aID, bID uuid.UUID) bool {
	if !a.Equal(b) {
		return a.After(b)
	}
	return aID.String() < bID.String()
}

func page[T any](items []T, filter store.ListFilter) []T {
	limit, offset := filter.Normalize()
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
