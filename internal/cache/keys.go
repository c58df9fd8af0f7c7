package cache

import (
	"fmt"

	"github.com/google/uuid"
)

func JobKey(id uuid.UUID) string {
	return fmt.Sprintf("job:%s", id)
}

func AdmitCardKey(id uuid.UUID) string {
	return fmt.Sprintf("admitcard:%s", id)
}

// RateLimitKey buckets requests per client and per minute window.
func RateLimitKey(client string) string {
	return fmt.Sprintf("ratelimit:%s", client)
}
