package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kayan/internal/config"
	"kayan/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Redis key prefixes
	OverviewKeyPrefix = "kayan:overview:"
	OverviewCacheTTL  = 5 * time.Minute
)

// RedisRepository caches computed analytics reports. The cache is optional:
// when no address is configured, the constructor returns nil and every method
// degrades to a miss.
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository, or nil when caching is
// not configured
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	if cfg.Addr == "" {
		log.Info().Msg("Redis not configured, report caching disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	if r == nil {
		return nil
	}
	return r.client
}

// GetOverviewReport retrieves a cached overview report for the period.
// Returns (nil, nil) on a miss.
func (r *RedisRepository) GetOverviewReport(ctx context.Context, period string) (*model.OverviewReport, error) {
	if r == nil {
		return nil, nil
	}
	data, err := r.client.Get(ctx, r.overviewKey(period)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var report model.OverviewReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// SaveOverviewReport caches an overview report for the period
func (r *RedisRepository) SaveOverviewReport(ctx context.Context, period string, report *model.OverviewReport) error {
	if r == nil {
		return nil
	}
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.overviewKey(period), data, OverviewCacheTTL).Err()
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	if r == nil {
		return nil
	}
	return r.client.Close()
}

func (r *RedisRepository) overviewKey(period string) string {
	return fmt.Sprintf("%s%s", OverviewKeyPrefix, period)
}
