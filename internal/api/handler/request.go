package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/api/response"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/store"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/validate"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/coerce"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/jsonvalue"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// MaxBodyBytes caps request bodies. Records carry rich-text descriptions and
// tables, so this is well above the largest legitimate submission.
const MaxBodyBytes = 2 << 20

// decodeBody reads the request body as an ordered JSON tree so opaque
// payloads keep their key order. On failure it writes a 400 and reports false.
func decodeBody(w http.ResponseWriter, r *http.Request) (jsonvalue.Value, bool) {
	body, err := jsonvalue.Decode(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(w, http.StatusRequestEntityTooLarge, "INVALID_REQUEST", "Request body too large", nil)
			return jsonvalue.Value{}, false
		}
		response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body", nil)
		return jsonvalue.Value{}, false
	}
	return body, true
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "INVALID_ID", "Invalid id format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func pathSlug(w http.ResponseWriter, r *http.Request) (string, bool) {
	slug, err := coerce.Slug(chi.URLParam(r, "slug"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "INVALID_SLUG", err.Error(), nil)
		return "", false
	}
	return slug, true
}

func parseMode(r *http.Request) (validate.Mode, error) {
	switch m := r.URL.Query().Get("mode"); m {
	case "", "create":
		return validate.ModeCreate, nil
	case "update":
		return validate.ModeUpdate, nil
	default:
		return 0, fmt.Errorf("mode must be create or update, got %q", m)
	}
}

func parseListFilter(r *http.Request) (store.ListFilter, error) {
	q := r.URL.Query()
	f := store.ListFilter{Status: q.Get("status")}

	var err error
	if f.Page, err = queryInt(q.Get("page")); err != nil {
		return f, fmt.Errorf("page: %w", err)
	}
	if f.Limit, err = queryInt(q.Get("limit")); err != nil {
		return f, fmt.Errorf("limit: %w", err)
	}
	if f.OrganizationID, err = queryUUID(q.Get("organizationId")); err != nil {
		return f, fmt.Errorf("organizationId: %w", err)
	}
	if f.JobID, err = queryUUID(q.Get("jobId")); err != nil {
		return f, fmt.Errorf("jobId: %w", err)
	}
	return f, nil
}

func queryInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	if strings.TrimLeft(s, "0123456789") != "" {
		return 0, fmt.Errorf("must be a non-negative integer, got %q", s)
	}
	// cast parses with base 0, so a leading zero would mean octal.
	digits := strings.TrimLeft(s, "0")
	if digits == "" {
		return 0, nil
	}
	n, err := cast.ToIntE(digits)
	if err != nil {
		return 0, fmt.Errorf("must be a non-negative integer, got %q", s)
	}
	return n, nil
}

func queryUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("must be a UUID, got %q", s)
	}
	return id, nil
}
