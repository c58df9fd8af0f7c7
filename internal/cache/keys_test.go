package cache_test

import (
	"testing"

	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/cache"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJobKey(t *testing.T) {
	id := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	assert.Equal(t, "job:22222222-2222-2222-2222-222222222222", cache.JobKey(id))
}

func TestAdmitCardKey(t *testing.T) {
	id := uuid.MustParse("33333333-3333-3333-3333-333333333333")
	assert.Equal(t, "admitcard:33333333-3333-3333-3333-333333333333", cache.AdmitCardKey(id))
}

func TestRateLimitKey(t *testing.T) {
	assert.Equal(t, "ratelimit:203.0.113.7", cache.RateLimitKey("203.0.113.7"))
}

func TestKeyBuilders_NonColliding(t *testing.T) {
	id := uuid.New()

	keys := map[string]bool{
		cache.JobKey(id):                true,
		cache.AdmitCardKey(id):          true,
		cache.RateLimitKey(id.String()): true,
	}
	assert.Len(t, keys, 3, "all keys should be unique")
}
