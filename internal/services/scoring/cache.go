package scoring

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"log"
	"math"

	"golang.org/x/crypto/blake2b"
)

const scoreKeyPrefix = "score:"

// ScoreCache stores scores by feature digest. Get reports false on a miss.
type ScoreCache interface {
	GetScore(ctx context.Context, key string) (float64, bool, error)
	SetScore(ctx context.Context, key string, score float64) error
}

// CachingScorer memoizes an underlying Scorer by model and feature vector.
// Cache failures fall through to the underlying scorer. Scores that fail
// ValidateScore are returned but never cached.
type CachingScorer struct {
	next    Scorer
	cache   ScoreCache
	modelID string
}

// NewCachingScorer wraps next. modelID must change whenever next would
// score the same features differently.
func NewCachingScorer(next Scorer, cache ScoreCache, modelID string) *CachingScorer {
	return &CachingScorer{next: next, cache: cache, modelID: modelID}
}

func (s *CachingScorer) Score(ctx context.Context, features []float64) (float64, error) {
	key := FeatureKey(s.modelID, features)

	score, found, err := s.cache.GetScore(ctx, key)
	if err != nil {
		log.Printf("Score cache read failed for %s: %v", key, err)
	} else if found {
		return score, nil
	}

	score, err = s.next.Score(ctx, features)
	if err != nil {
		return 0, err
	}

	if err := ValidateScore(score); err != nil {
		log.Printf("Not caching score from %s: %v", s.modelID, err)
		return score, nil
	}

	if err := s.cache.SetScore(ctx, key, score); err != nil {
		log.Printf("Score cache write failed for %s: %v", key, err)
	}
	return score, nil
}

// FeatureKey derives a stable cache key from the model identity and the
// exact bit pattern of each feature.
func FeatureKey(modelID string, features []float64) string {
	buf := make([]byte, 8*len(features))
	for i, f := range features {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(f))
	}
	sum := blake2b.Sum256(buf)
	return scoreKeyPrefix + modelID + ":" + hex.EncodeToString(sum[:])
}
