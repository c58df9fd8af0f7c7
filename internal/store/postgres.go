package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements the Store interface using pgx/v5. Each record is
// kept whole in a JSON document column; the plain columns beside it exist
// for filtering, ordering and uniqueness.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Ping checks database connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// --- Jobs ---

const jobColumns = `document, created_at, updated_at`

func (s *PostgresStore) CreateJob(ctx context.Context, job *models.Job) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	doc, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encode job: %w", err)
	}

	err = s.pool.QueryRow(ctx,
		`INSERT INTO jobs (id, slug, title, status, organization_id, category_id, total_vacancies, is_featured, expiry_date, document)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::json)
		 RETURNING created_at, updated_at`,
		job.ID, job.Slug, job.Title, job.Status, job.OrganizationID, job.CategoryID.Ptr(),
		job.TotalVacancies, job.IsFeatured, job.ExpiryDate.Ptr(), string(doc),
	).Scan(&job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("create job: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	job, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return job, nil
}

func (s *PostgresStore) GetJobBySlug(ctx context.Context, slug string) (*models.Job, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE slug = $1`, slug)
	job, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get job by slug: %w", err)
	}
	return job, nil
}

func (s *PostgresStore) ListJobs(ctx context.Context, filter ListFilter) ([]*models.Job, int, error) {
	where, args := filter.where()

	var total int
	if err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM jobs WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}

	limit, offset := filter.Normalize()
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE %s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`,
		jobColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []*models.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, total, rows.Err()
}

// UpdateJob replaces the stored record with job. CreatedAt is preserved.
func (s *PostgresStore) UpdateJob(ctx context.Context, job *models.Job) error {
	doc, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encode job: %w", err)
	}

	err = s.pool.QueryRow(ctx,
		`UPDATE jobs SET slug = $2, title = $3, status = $4, organization_id = $5, category_id = $6,
		   total_vacancies = $7, is_featured = $8, expiry_date = $9, document = $10::json, updated_at = NOW()
		 WHERE id = $1
		 RETURNING created_at, updated_at`,
		job.ID, job.Slug, job.Title, job.Status, job.OrganizationID, job.CategoryID.Ptr(),
		job.TotalVacancies, job.IsFeatured, job.ExpiryDate.Ptr(), string(doc),
	).Scan(&job.CreatedAt, &job.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteJob(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanJob(row pgx.Row) (*models.Job, error) {
	var (
		doc     []byte
		job     models.Job
		created time.Time
		updated time.Time
	)
	if err := row.Scan(&doc, &created, &updated); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(doc, &job); err != nil {
		return nil, fmt.Errorf("decode job document: %w", err)
	}
	job.CreatedAt, job.UpdatedAt = created.UTC(), updated.UTC()
	return &job, nil
}

// --- Admit Cards ---

const admitCardColumns = `document, created_at, updated_at`

func (s *PostgresStore) CreateAdmitCard(ctx context.Context, card *models.AdmitCard) error {
	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}
	doc, err := json.Marshal(card)
	if err != nil {
		return fmt.Errorf("encode admit card: %w", err)
	}

	err = s.pool.QueryRow(ctx,
		`INSERT INTO admit_cards (id, slug, title, status, review_status, organization_id, job_id, exam_date, document)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::json)
		 RETURNING created_at, updated_at`,
		card.ID, card.Slug, card.Title, card.Status, card.ReviewStatus, card.OrganizationID,
		card.JobID.Ptr(), card.ExamDate.Ptr(), string(doc),
	).Scan(&card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("create admit card: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetAdmitCard(ctx context.Context, id uuid.UUID) (*models.AdmitCard, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+admitCardColumns+` FROM admit_cards WHERE id = $1`, id)
	card, err := scanAdmitCard(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get admit card: %w", err)
	}
	return card, nil
}

func (s *PostgresStore) ListAdmitCards(ctx context.Context, filter ListFilter) ([]*models.AdmitCard, int, error) {
	where, args := filter.where()
	if filter.JobID != uuid.Nil {
		args = append(args, filter.JobID)
		where += fmt.Sprintf(" AND job_id = $%d", len(args))
	}

	var total int
	if err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM admit_cards WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count admit cards: %w", err)
	}

	limit, offset := filter.Normalize()
	query := fmt.Sprintf(`SELECT %s FROM admit_cards WHERE %s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`,
		admitCardColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list admit cards: %w", err)
	}
	defer rows.Close()

	cards := []*models.AdmitCard{}
	for rows.Next() {
		card, err := scanAdmitCard(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan admit card: %w", err)
		}
		cards = append(cards, card)
	}
	return cards, total, rows.Err()
}

// UpdateAdmitCard replaces the stored record with card. CreatedAt is preserved.
func (s *PostgresStore) UpdateAdmitCard(ctx context.Context, card *models.AdmitCard) error {
	doc, err := json.Marshal(card)
	if err != nil {
		return fmt.Errorf("encode admit card: %w", err)
	}

	err = s.pool.QueryRow(ctx,
		`UPDATE admit_cards SET slug = $2, title = $3, status = $4, review_status = $5, organization_id = $6,
		   job_id = $7, exam_date = $8, document = $9::json, updated_at = NOW()
		 WHERE id = $1
		 RETURNING created_at, updated_at`,
		card.ID, card.Slug, card.Title, card.Status, card.ReviewStatus, card.OrganizationID,
		card.JobID.Ptr(), card.ExamDate.Ptr(), string(doc),
	).Scan(&card.CreatedAt, &card.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("update admit card: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteAdmitCard(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM admit_cards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete admit card: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanAdmitCard(row pgx.Row) (*models.AdmitCard, error) {
	var (
		doc     []byte
		card    models.AdmitCard
		created time.Time
		updated time.Time
	)
	if err := row.Scan(&doc, &created, &updated); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(doc, &card); err != nil {
		return nil, fmt.Errorf("decode admit card document: %w", err)
	}
	card.CreatedAt, card.UpdatedAt = created.UTC(), updated.UTC()
	return &card, nil
}

// where builds the conditions shared by both list queries.
func (f ListFilter) where() (string, []any) {
	conditions := []string{"TRUE"}
	var args []any

	if f.Status != "" {
		args = append(args, f.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.OrganizationID != uuid.Nil {
		args = append(args, f.OrganizationID)
		conditions = append(conditions, fmt.Sprintf("organization_id = $%d", len(args)))
	}

	return strings.Join(conditions, " AND "), args
}

// isDuplicateKeyError checks if a pgx error is a unique constraint violation.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}
