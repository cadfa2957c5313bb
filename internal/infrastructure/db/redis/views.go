package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ViewCounter tracks per-job view counts in Redis.
// Key format: job_views:<job_id>
type ViewCounter struct {
	client *redis.Client
}

// NewViewCounter creates a ViewCounter wrapping the given Redis client.
func NewViewCounter(client *redis.Client) *ViewCounter {
	return &ViewCounter{client: client}
}

// Hit increments the view count for a job and returns the new total.
func (v *ViewCounter) Hit(ctx context.Context, jobID string) (int64, error) {
	n, err := v.client.Incr(ctx, v.key(jobID)).Result()
	if err != nil {
		return 0, fmt.Errorf("view counter incr: %w", err)
	}
	return n, nil
}

func (v *ViewCounter) key(jobID string) string {
	return "job_views:" + jobID
}
