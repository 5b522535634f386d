package repositories

import (
	"context"

	"fraudtriage/internal/models"

	"gorm.io/gorm"
)

// AssessmentRepository stores triage decisions for the analyst queue.
type AssessmentRepository interface {
	Create(ctx context.Context, a *models.Assessment) error
	FindByID(ctx context.Context, id string) (*models.Assessment, error)
	List(ctx context.Context, filter models.AssessmentFilter) ([]models.Assessment, int64, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(ctx context.Context, a *models.Assessment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *assessmentRepository) FindByID(ctx context.Context, id string) (*models.Assessment, error) {
	var assessment models.Assessment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&assessment).Error; err != nil {
		return nil, err
	}
	return &assessment, nil
}

// List returns one page of assessments, newest first, with the total number
// of rows matching the filter.
func (r *assessmentRepository) List(ctx context.Context, filter models.AssessmentFilter) ([]models.Assessment, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var assessments []models.Assessment
	err := r.filtered(ctx, filter).
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&assessments).Error
	return assessments, total, err
}

func (r *assessmentRepository) filtered(ctx context.Context, filter models.AssessmentFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Assessment{})
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}
	return q
}
