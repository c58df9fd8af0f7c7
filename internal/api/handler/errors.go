package handler

import (
	"errors"
	"log/slog"
	"net/http"

	mw "github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/api/middleware"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/api/response"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/catalog"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/store"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/validate"
)

// writeError maps service errors onto the API error envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if report, ok := validate.AsReport(err); ok {
		response.Error(w, http.StatusUnprocessableEntity, "VALIDATION_FAILED",
			"Record failed validation", report.Issues)
		return
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		response.Error(w, http.StatusNotFound, "NOT_FOUND", "Record not found", nil)
	case errors.Is(err, store.ErrDuplicateKey):
		response.Error(w, http.StatusConflict, "CONFLICT", "A record with this slug or id already exists", nil)
	case errors.Is(err, catalog.ErrIDMismatch):
		response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Body id does not match path id", nil)
	default:
		slog.Error("request failed",
			"error", err,
			"request_id", mw.GetRequestID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
		)
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", nil)
	}
}
