// Package handler holds the HTTP handlers for the admin API. Job and
// AdmitCard share one set of generic handlers parameterized by Resource.
package handler

import (
	"context"
	"net/http"

	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/api/response"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/store"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/validate"
	"github.com/google/uuid"
)

// Resource is the set of use cases one entity exposes over HTTP.
type Resource[T any] interface {
	Validate(raw any, mode validate.Mode) (*T, error)
	Create(ctx context.Context, raw any) (*T, error)
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	List(ctx context.Context, filter store.ListFilter) ([]*T, int, error)
	Update(ctx context.Context, id uuid.UUID, raw any) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SlugFinder is implemented by entities addressable by their public slug.
type SlugFinder[T any] interface {
	GetBySlug(ctx context.Context, slug string) (*T, error)
}

// Presenter converts a stored record into its response body.
type Presenter[T any] func(*T) any

// NewValidateHandler returns an http.HandlerFunc for POST /{resource}/validate.
// It validates without persisting; ?mode=update applies update rules.
func NewValidateHandler[T any](svc Resource[T], present Presenter[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode, err := parseMode(r)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
			return
		}
		body, ok := decodeBody(w, r)
		if !ok {
			return
		}

		rec, err := svc.Validate(body, mode)
		if err != nil {
			writeError(w, r, err)
			return
		}
		response.JSON(w, present(rec))
	}
}

// NewCreateHandler returns an http.HandlerFunc for POST /{resource}.
func NewCreateHandler[T any](svc Resource[T], present Presenter[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := decodeBody(w, r)
		if !ok {
			return
		}

		rec, err := svc.Create(r.Context(), body)
		if err != nil {
			writeError(w, r, err)
			return
		}
		response.Created(w, present(rec))
	}
}

// NewListHandler returns an http.HandlerFunc for GET /{resource}.
func NewListHandler[T any](svc Resource[T], present Presenter[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseListFilter(r)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
			return
		}

		recs, total, err := svc.List(r.Context(), filter)
		if err != nil {
			writeError(w, r, err)
			return
		}

		items := make([]any, len(recs))
		for i, rec := range recs {
			items[i] = present(rec)
		}
		limit, offset := filter.Normalize()
		response.Collection(w, items, response.NewPaginationMeta(offset/limit+1, limit, total))
	}
}

// NewGetHandler returns an http.HandlerFunc for GET /{resource}/{id}.
func NewGetHandler[T any](svc Resource[T], present Presenter[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		rec, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		response.JSON(w, present(rec))
	}
}

// NewGetBySlugHandler returns an http.HandlerFunc for GET /{resource}/by-slug/{slug}.
func NewGetBySlugHandler[T any](svc SlugFinder[T], present Presenter[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug, ok := pathSlug(w, r)
		if !ok {
			return
		}

		rec, err := svc.GetBySlug(r.Context(), slug)
		if err != nil {
			writeError(w, r, err)
			return
		}
		response.JSON(w, present(rec))
	}
}

// NewUpdateHandler returns an http.HandlerFunc for PUT /{resource}/{id}.
func NewUpdateHandler[T any](svc Resource[T], present Presenter[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		body, ok := decodeBody(w, r)
		if !ok {
			return
		}

		rec, err := svc.Update(r.Context(), id, body)
		if err != nil {
			writeError(w, r, err)
			return
		}
		response.JSON(w, present(rec))
	}
}

// NewDeleteHandler returns an http.HandlerFunc for DELETE /{resource}/{id}.
func NewDeleteHandler[T any](svc Resource[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
		response.NoContent(w)
	}
}
