package catalog

import (
	"context"
	"fmt"

	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/cache"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/store"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/validate"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/models"
	"github.com/google/uuid"
)

// Jobs implements the Job use cases.
type Jobs struct {
	svc *Service
}

// Validate is a dry run: it normalizes raw without touching the store.
func (j *Jobs) Validate(raw any, mode validate.Mode) (*models.Job, error) {
	job, err := validate.ValidateJob(raw, mode)
	j.svc.observe(validate.EntityJob, err)
	return job, err
}

func (j *Jobs) Create(ctx context.Context, raw any) (*models.Job, error) {
	job, err := j.Validate(raw, validate.ModeCreate)
	if err != nil {
		return nil, err
	}
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.Slug == "" {
		job.Slug = deriveSlug(job.Title, job.ID)
	}

	if err := j.svc.store.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	j.svc.logger.Info("job created", "id", job.ID, "slug", job.Slug)
	return job, nil
}

// Get reads through the cache.
func (j *Jobs) Get(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	key := cache.JobKey(id)
	if rec, ok := cacheGet[models.JobRecord](ctx, j.svc, key); ok && rec.Job != nil {
		return rec.Unwrap(), nil
	}

	job, err := j.svc.store.GetJob(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	cacheSet(ctx, j.svc, key, models.NewJobRecord(job))
	return job, nil
}

// GetBySlug resolves a public slug. It bypasses the id-keyed cache.
func (j *Jobs) GetBySlug(ctx context.Context, slug string) (*models.Job, error) {
	job, err := j.svc.store.GetJobBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get job by slug: %w", err)
	}
	return job, nil
}

func (j *Jobs) List(ctx context.Context, filter store.ListFilter) ([]*models.Job, int, error) {
	jobs, total, err := j.svc.store.ListJobs(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, total, nil
}

// Update replaces the record at id. An omitted slug keeps the stored one.
func (j *Jobs) Update(ctx context.Context, id uuid.UUID, raw any) (*models.Job, error) {
	job, err := j.Validate(raw, validate.ModeUpdate)
	if err != nil {
		return nil, err
	}
	if err := checkPathID(job.ID, id); err != nil {
		return nil, err
	}

	if job.Slug == "" {
		current, err := j.svc.store.GetJob(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("update job: %w", err)
		}
		job.Slug = current.Slug
	}

	if err := j.svc.store.UpdateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	j.svc.invalidate(ctx, cache.JobKey(id))
	j.svc.logger.Info("job updated", "id", job.ID)
	return job, nil
}

func (j *Jobs) Delete(ctx context.Context, id uuid.UUID) error {
	if err := j.svc.store.DeleteJob(ctx, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	j.svc.invalidate(ctx, cache.JobKey(id))
	j.svc.logger.Info("job deleted", "id", id)
	return nil
}
