package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fittrack/training-api/internal/core/ports"
)

const (
	cacheTTL   = 60 * time.Second
	versionKey = "exercises:list:ver"
)

// ExerciseListCache caches exercise list pages in Redis. Invalidation bumps
// a namespace version instead of scanning keys, so stale pages simply age
// out via TTL.
type ExerciseListCache struct {
	client *redis.Client
}

// NewExerciseListCache wraps the given Redis client.
func NewExerciseListCache(client *redis.Client) *ExerciseListCache {
	return &ExerciseListCache{client: client}
}

// Get returns the cached page for the query, if present.
func (c *ExerciseListCache) Get(ctx context.Context, query ports.ListExercisesInput) (*ports.ListExercisesResult, bool, error) {
	key, err := c.key(ctx, query)
	if err != nil {
		return nil, false, err
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("exercise cache get: %w", err)
	}

	var result ports.ListExercisesResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, false, fmt.Errorf("exercise cache decode: %w", err)
	}
	return &result, true, nil
}

// Set stores the page under the current namespace version.
func (c *ExerciseListCache) Set(ctx context.Context, query ports.ListExercisesInput, result *ports.ListExercisesResult) error {
	key, err := c.key(ctx, query)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("exercise cache encode: %w", err)
	}
	return c.client.Set(ctx, key, raw, cacheTTL).Err()
}

// Invalidate drops all cached pages by bumping the namespace version.
func (c *ExerciseListCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, versionKey).Err()
}

func (c *ExerciseListCache) key(ctx context.Context, query ports.ListExercisesInput) (string, error) {
	ver, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil && err != redis.Nil {
		return "", fmt.Errorf("exercise cache version: %w", err)
	}

	programID := uint(0)
	if query.ProgramID != nil {
		programID = *query.ProgramID
	}
	return fmt.Sprintf("exercises:list:%d:p%d:l%d:prog%d:q%s",
		ver, query.Page, query.Limit, programID, query.Search), nil
}
