package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestGenerateKey(t *testing.T) {
	s := NewCacheService(nil, time.Minute)
	assert.Equal(t, "assessment:id:abc", s.GenerateKey("assessment", "id", "abc"))
	assert.Equal(t, "score:features:7", s.GenerateKey("score", "features", 7))
}

func TestCacheAssessmentRejectsNil(t *testing.T) {
	s := NewCacheService(nil, time.Minute)
	assert.Error(t, s.CacheAssessment(context.Background(), nil))
}

func TestHealthCheckUnreachable(t *testing.T) {
	client := NewRedisClient(&RedisConfig{Host: "127.0.0.1", Port: "1"})
	s := NewCacheService(client, time.Minute)
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := s.HealthCheck(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "redis connection failed")

	_, found, err := s.GetScore(ctx, "score:features:x")
	assert.False(t, found)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, redis.Nil)
}
