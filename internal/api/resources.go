package api

import (
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/api/handler"
)

// NewResourceHandlers binds the generic handlers to one entity service.
func NewResourceHandlers[T any](svc handler.Resource[T], present handler.Presenter[T]) ResourceHandlers {
	return ResourceHandlers{
		Validate: handler.NewValidateHandler(svc, present),
		Create:   handler.NewCreateHandler(svc, present),
		List:     handler.NewListHandler(svc, present),
		Get:      handler.NewGetHandler(svc, present),
		Update:   handler.NewUpdateHandler(svc, present),
		Delete:   handler.NewDeleteHandler(svc),
	}
}

// WithSlugLookup adds GET /by-slug/{slug} to h.
func WithSlugLookup[T any](h ResourceHandlers, svc handler.SlugFinder[T], present handler.Presenter[T]) ResourceHandlers {
	h.GetBySlug = handler.NewGetBySlugHandler(svc, present)
	return h
}
