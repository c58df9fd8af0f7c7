package store

import (
	"context"
	"errors"

	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/models"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("resource not found")
var ErrDuplicateKey = errors.New("duplicate key violation")

// Store is the data access interface. All database operations go through here.
// Records reaching the store have already been validated; the store only
// enforces identity and slug uniqueness.
type Store interface {
	Ping(ctx context.Context) error

	CreateJob(ctx context.Context, job *models.Job) error
	GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error)
	GetJobBySlug(ctx context.Context, slug string) (*models.Job, error)
	ListJobs(ctx context.Context, filter ListFilter) ([]*models.Job, int, error)
	UpdateJob(ctx context.Context, job *models.Job) error
	DeleteJob(ctx context.Context, id uuid.UUID) error

	CreateAdmitCard(ctx context.Context, card *models.AdmitCard) error
	GetAdmitCard(ctx context.Context, id uuid.UUID) (*models.AdmitCard, error)
	ListAdmitCards(ctx context.Context, filter ListFilter) ([]*models.AdmitCard, int, error)
	UpdateAdmitCard(ctx context.Context, card *models.AdmitCard) error
	DeleteAdmitCard(ctx context.Context, id uuid.UUID) error
}

// ListFilter narrows list queries. Zero values mean "any".
type ListFilter struct {
	Status         string
	OrganizationID uuid.UUID
	JobID          uuid.UUID // admit cards only
	Page           int
	Limit          int
}

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Normalize clamps pagination to sane bounds and returns limit and offset.
func (f ListFilter) Normalize() (limit, offset int) {
	limit = f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}
	return limit, (page - 1) * limit
}
