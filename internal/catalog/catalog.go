// Package catalog is the application layer between the HTTP handlers and the
// store: it validates submitted records, derives slugs, persists, and keeps
// the read cache coherent.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/cache"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/metrics"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/store"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/validate"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/coerce"
	"github.com/google/uuid"
)

// ErrIDMismatch is returned when an update body names a different record than
// the one addressed.
var ErrIDMismatch = errors.New("record id does not match path id")

const defaultCacheTTL = 5 * time.Minute

// Service owns the Job and AdmitCard use cases.
type Service struct {
	store   store.Store
	cache   cache.Cache
	metrics *metrics.Collectors
	logger  *slog.Logger
	ttl     time.Duration
}

type Option func(*Service)

func WithMetrics(m *metrics.Collectors) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// New creates a Service. A nil cache disables read caching.
func New(st store.Store, c cache.Cache, opts ...Option) *Service {
	s := &Service{store: st, cache: c, logger: slog.Default(), ttl: defaultCacheTTL}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Jobs returns the Job use cases.
func (s *Service) Jobs() *Jobs { return &Jobs{svc: s} }

// AdmitCards returns the AdmitCard use cases.
func (s *Service) AdmitCards() *AdmitCards { return &AdmitCards{svc: s} }

// observe records the outcome of one validation in metrics and logs.
func (s *Service) observe(entity string, err error) {
	if err == nil {
		s.metrics.ObserveValidation(entity, nil)
		return
	}
	r, ok := validate.AsReport(err)
	if !ok {
		return
	}
	codes := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		codes[i] = string(issue.Code)
	}
	s.metrics.ObserveValidation(entity, codes)
	s.logger.Info("record rejected", "entity", entity, "issues", len(r.Issues))
}

// cacheGet reads a cached entry. Cache failures are logged and treated as a
// miss so a Redis outage never fails a read.
func cacheGet[T any](ctx context.Context, s *Service, key string) (T, bool) {
	var zero T
	if s.cache == nil {
		return zero, false
	}
	v, found, err := cache.GetJSON[T](ctx, s.cache, key)
	if err != nil {
		s.logger.Warn("cache read failed", "key", key, "error", err)
		return zero, false
	}
	if found {
		s.logger.Debug("cache hit", "key", key)
	}
	return v, found
}

func cacheSet[T any](ctx context.Context, s *Service, key string, v T) {
	if s.cache == nil {
		return
	}
	if err := cache.SetJSON(ctx, s.cache, key, v, s.ttl); err != nil {
		s.logger.Warn("cache write failed", "key", key, "error", err)
	}
}

func (s *Service) invalidate(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn("cache invalidation failed", "key", key, "error", err)
	}
}

// deriveSlug builds a slug from title, falling back to the record id when
// the title has no usable characters.
func deriveSlug(title string, id uuid.UUID) string {
	if slug := coerce.Slugify(title); slug != "" {
		return slug
	}
	return id.String()
}

func checkPathID(bodyID, pathID uuid.UUID) error {
	if bodyID != pathID {
		return fmt.Errorf("%w: body has %s, path has %s", ErrIDMismatch, bodyID, pathID)
	}
	return nil
}
