package triage

import (
	"context"
	"time"

	"fraudtriage/internal/models"
)

// Service defines the triage pipeline and the analyst queue reads.
type Service interface {
	Analyze(ctx context.Context, tx models.Transaction) (*models.TriageResult, error)
	GetAssessment(ctx context.Context, id string) (*models.Assessment, error)
	ListAssessments(ctx context.Context, filter models.AssessmentFilter) ([]models.Assessment, int64, error)
}

// AssessmentStore persists triage decisions. FindByID returns
// gorm.ErrRecordNotFound for unknown IDs.
type AssessmentStore interface {
	Create(ctx context.Context, a *models.Assessment) error
	FindByID(ctx context.Context, id string) (*models.Assessment, error)
	List(ctx context.Context, filter models.AssessmentFilter) ([]models.Assessment, int64, error)
}

// AssessmentCache is a read-through cache in front of the store.
// GetAssessment returns nil, nil on a miss.
type AssessmentCache interface {
	CacheAssessment(ctx context.Context, a *models.Assessment) error
	GetAssessment(ctx context.Context, id string) (*models.Assessment, error)
}

// MetricsCollector receives pipeline measurements.
type MetricsCollector interface {
	RecordOperationDuration(op string, duration time.Duration)
	RecordAssessment(priority models.Priority, riskScore float64)
	RecordError(op, reason string)
	RecordCacheHit(key string)
	RecordCacheMiss(key string)
}
