package generation

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PlanCache holds freshly generated documents for a short window so
// the result view can pick them up without a database round trip. An
// entry is consumed on first read.
type PlanCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPlanCache wraps a Redis client with the given entry TTL.
func NewPlanCache(client *redis.Client, ttl time.Duration) *PlanCache {
	return &PlanCache{client: client, ttl: ttl}
}

func planKey(interviewID string) string {
	return fmt.Sprintf("plan:%s", interviewID)
}

// Put stores a document under the session id.
func (c *PlanCache) Put(ctx context.Context, interviewID, plan string) error {
	return c.client.Set(ctx, planKey(interviewID), plan, c.ttl).Err()
}

// Take returns and removes the cached document. The second return is
// false on a miss.
func (c *PlanCache) Take(ctx context.Context, interviewID string) (string, bool, error) {
	plan, err := c.client.GetDel(ctx, planKey(interviewID)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return plan, true, nil
}
