// Package cache wraps Redis for the triage service: scores keyed by feature
// digest and recently produced assessments keyed by ID.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"fraudtriage/internal/models"

	"github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Key generation
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// Score caching. Scores are stored as plain floats, not JSON.
func (s *CacheService) GetScore(ctx context.Context, key string) (float64, bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get score: %w", err)
	}

	score, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false, fmt.Errorf("failed to parse cached score: %w", err)
	}
	return score, true, nil
}

func (s *CacheService) SetScore(ctx context.Context, key string, score float64) error {
	return s.client.Set(ctx, key, strconv.FormatFloat(score, 'g', -1, 64), s.ttl).Err()
}

// Assessment caching
func (s *CacheService) CacheAssessment(ctx context.Context, a *models.Assessment) error {
	if a == nil {
		return errors.New("cannot cache nil assessment")
	}
	return s.Set(ctx, s.GenerateKey("assessment", "id", a.ID), a)
}

// GetAssessment returns nil, nil on a miss.
func (s *CacheService) GetAssessment(ctx context.Context, id string) (*models.Assessment, error) {
	var a models.Assessment
	found, err := s.Get(ctx, s.GenerateKey("assessment", "id", id), &a)
	if err != nil || !found {
		return nil, err
	}
	return &a, nil
}

// HealthCheck pings Redis.
func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (s *CacheService) GetStats() *redis.PoolStats {
	return s.client.PoolStats()
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}
