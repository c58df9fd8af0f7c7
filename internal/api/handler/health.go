package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/api/response"
)

// Pinger is anything whose connectivity can be checked.
type Pinger interface {
	Ping(ctx context.Context) error
}

const healthTimeout = 2 * time.Second

// NewHealthHandler returns an http.HandlerFunc for GET /api/v1/health.
func NewHealthHandler(db, cache Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		checks := map[string]string{
			"database": pingStatus(ctx, db),
			"cache":    pingStatus(ctx, cache),
		}
		for _, status := range checks {
			if status != "ok" {
				response.Error(w, http.StatusServiceUnavailable, "DEGRADED",
					"One or more services degraded", checks)
				return
			}
		}
		response.JSON(w, map[string]string{"status": "ok"})
	}
}

func pingStatus(ctx context.Context, p Pinger) string {
	if p == nil || p.Ping(ctx) != nil {
		return "degraded"
	}
	return "ok"
}
