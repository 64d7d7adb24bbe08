package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"careercompass-jobs/internal/config"
	"careercompass-jobs/internal/logging"
	"careercompass-jobs/pkg/models"
)

// RedisClient wraps the Redis client for the durable user tier. The
// in-memory caches remain authoritative; Redis only survives restarts.
type RedisClient struct {
	client *redis.Client
	config *config.Config
	logger logging.Logger
}

// userRecord is the Redis representation of a user tier entry.
type userRecord struct {
	UserID      string              `json:"user_id"`
	Fingerprint string              `json:"fingerprint"`
	Jobs        []models.JobPosting `json:"jobs"`
	CachedAt    time.Time           `json:"cached_at"`
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(cfg *config.Config) *RedisClient {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	return &RedisClient{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Ping tests the Redis connection
func (r *RedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *RedisClient) Close() error {
	return r.client.Close()
}

// SetUserJobs stores a user's ranked jobs with the user tier TTL.
func (r *RedisClient) SetUserJobs(ctx context.Context, userID, fingerprint string, jobs []models.JobPosting) error {
	record := userRecord{
		UserID:      userID,
		Fingerprint: fingerprint,
		Jobs:        jobs,
		CachedAt:    time.Now(),
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal user jobs: %w", err)
	}

	err = r.client.Set(ctx, r.getUserKey(userID), recordJSON, r.config.Cache.UserTTL).Err()
	if err != nil {
		r.logger.Error("Failed to store user jobs in Redis", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return fmt.Errorf("failed to store user jobs: %w", err)
	}

	return nil
}

// GetUserJobs retrieves a user's ranked jobs if present and built from the
// same profile fingerprint. A missing key is not an error; it returns
// (nil, false, nil).
func (r *RedisClient) GetUserJobs(ctx context.Context, userID, fingerprint string) ([]models.JobPosting, bool, error) {
	recordJSON, err := r.client.Get(ctx, r.getUserKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get user jobs: %w", err)
	}

	var record userRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal user jobs: %w", err)
	}

	if record.Fingerprint != fingerprint {
		return nil, false, nil
	}

	return record.Jobs, true, nil
}

// DeleteUserJobs removes a user's cached jobs.
func (r *RedisClient) DeleteUserJobs(ctx context.Context, userID string) error {
	return r.client.Del(ctx, r.getUserKey(userID)).Err()
}

// getUserKey generates the Redis key for a user's cached jobs
func (r *RedisClient) getUserKey(userID string) string {
	return fmt.Sprintf("jobs:user:%s", userID)
}

// IsHealthy checks if Redis is connected and healthy
func (r *RedisClient) IsHealthy(ctx context.Context) error {
	return r.Ping(ctx)
}
