package triage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"fraudtriage/internal/models"
	"fraudtriage/internal/services/scoring"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

type service struct {
	scorer  scoring.Scorer
	store   AssessmentStore
	cache   AssessmentCache
	metrics MetricsCollector
}

// NewService creates a triage service. store and cache may be nil, in which
// case decisions are not recorded and lookups report ErrAssessmentNotFound.
func NewService(scorer scoring.Scorer, store AssessmentStore, cache AssessmentCache, metrics MetricsCollector) Service {
	if scorer == nil {
		panic("scorer is required")
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		scorer:  scorer,
		store:   store,
		cache:   cache,
		metrics: metrics,
	}
}

func (s *service) Analyze(ctx context.Context, tx models.Transaction) (*models.TriageResult, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration("analyze", time.Since(start))
	}()

	if math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) || tx.Amount < 0 {
		s.metrics.RecordError("analyze", "invalid_amount")
		return nil, fmt.Errorf("%w: amount must be a non-negative number", ErrInvalidTransaction)
	}

	score, err := s.scorer.Score(ctx, tx.Features)
	if err != nil {
		s.metrics.RecordError("analyze", "scoring")
		return nil, fmt.Errorf("%w: %v", ErrScoringFailed, err)
	}
	if err := scoring.ValidateScore(score); err != nil {
		s.metrics.RecordError("analyze", "invalid_score")
		return nil, fmt.Errorf("%w: %v", ErrInvalidScore, err)
	}

	priority := AssignPriority(score, tx.Amount, tx.VelocityFlag, tx.GeoMismatch)
	explanation := GenerateExplanation(tx, score, priority)

	result := &models.TriageResult{
		RiskScore:   RoundScore(score),
		Priority:    priority,
		Explanation: explanation,
	}
	s.metrics.RecordAssessment(priority, score)

	if s.store != nil {
		assessment := &models.Assessment{
			ID:            uuid.NewString(),
			TransactionID: tx.TransactionID,
			Amount:        tx.Amount,
			VelocityFlag:  tx.VelocityFlag,
			GeoMismatch:   tx.GeoMismatch,
			Features:      tx.Features,
			RiskScore:     score,
			Priority:      priority,
			Explanation:   explanation,
			Metadata: models.JSON{
				"feature_count": len(tx.Features),
			},
		}

		if err := s.store.Create(ctx, assessment); err != nil {
			log.Printf("Failed to record assessment for transaction %q: %v", tx.TransactionID, err)
			s.metrics.RecordError("analyze", "record")
			return result, nil
		}
		result.AssessmentID = assessment.ID

		if s.cache != nil {
			if err := s.cache.CacheAssessment(ctx, assessment); err != nil {
				log.Printf("Failed to cache assessment %s: %v", assessment.ID, err)
			}
		}
	}

	return result, nil
}

func (s *service) GetAssessment(ctx context.Context, id string) (*models.Assessment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrAssessmentNotFound
	}

	if s.cache != nil {
		cached, err := s.cache.GetAssessment(ctx, id)
		switch {
		case err != nil:
			log.Printf("Assessment cache read failed for %s: %v", id, err)
		case cached != nil:
			s.metrics.RecordCacheHit("assessment")
			return cached, nil
		default:
			s.metrics.RecordCacheMiss("assessment")
		}
	}

	if s.store == nil {
		return nil, ErrAssessmentNotFound
	}

	assessment, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("failed to load assessment: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.CacheAssessment(ctx, assessment); err != nil {
			log.Printf("Failed to cache assessment %s: %v", id, err)
		}
	}
	return assessment, nil
}

func (s *service) ListAssessments(ctx context.Context, filter models.AssessmentFilter) ([]models.Assessment, int64, error) {
	if filter.Priority != "" && !filter.Priority.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown priority %q", ErrInvalidFilter, filter.Priority)
	}
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	if s.store == nil {
		return []models.Assessment{}, 0, nil
	}

	assessments, total, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list assessments: %w", err)
	}
	return assessments, total, nil
}

// RoundScore rounds a risk score to three decimals for display. Rounding is
// done on the exact binary value with ties to even.
func RoundScore(score float64) float64 {
	f, err := strconv.ParseFloat(strconv.FormatFloat(score, 'f', 3, 64), 64)
	if err != nil {
		return score
	}
	return f
}
