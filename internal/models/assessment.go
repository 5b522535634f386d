package models

import (
	"time"

	"github.com/lib/pq"
)

// Assessment is the audit record of one triage decision.
type Assessment struct {
	ID            string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	TransactionID string          `gorm:"index" json:"transaction_id,omitempty"`
	Amount        float64         `gorm:"not null" json:"amount"`
	VelocityFlag  bool            `gorm:"not null;default:false" json:"velocity_flag"`
	GeoMismatch   bool            `gorm:"not null;default:false" json:"geo_mismatch"`
	Features      pq.Float64Array `gorm:"type:float8[]" json:"features,omitempty"`
	RiskScore     float64         `gorm:"not null" json:"risk_score"`
	Priority      Priority        `gorm:"type:varchar(10);not null;index" json:"priority"`
	Explanation   string          `gorm:"type:text;not null" json:"explanation"`
	Metadata      JSON            `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt     time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// AssessmentFilter narrows an assessment listing.
type AssessmentFilter struct {
	Priority Priority
	Limit    int
	Offset   int
}
