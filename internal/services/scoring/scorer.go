// Package scoring provides the fraud risk scoring capability used by triage.
package scoring

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
)

var ErrScoreOutOfRange = errors.New("risk score outside [0, 1]")

// Scorer returns the estimated fraud probability for a feature vector.
type Scorer interface {
	Score(ctx context.Context, features []float64) (float64, error)
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(ctx context.Context, features []float64) (float64, error)

func (f ScorerFunc) Score(ctx context.Context, features []float64) (float64, error) {
	return f(ctx, features)
}

// StaticScorer returns the same score for every input. It stands in for a
// trained model until one is deployed.
type StaticScorer struct {
	score float64
}

func NewStaticScorer(score float64) *StaticScorer {
	return &StaticScorer{score: score}
}

// ModelID identifies the scorer for cache namespacing. It changes with the score.
func (s *StaticScorer) ModelID() string {
	return "static-" + strconv.FormatFloat(s.score, 'g', -1, 64)
}

func (s *StaticScorer) Score(ctx context.Context, _ []float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.score, nil
}

// ValidateScore rejects scores that are not a probability.
func ValidateScore(score float64) error {
	if math.IsNaN(score) || score < 0 || score > 1 {
		return fmt.Errorf("%w: %v", ErrScoreOutOfRange, score)
	}
	return nil
}
