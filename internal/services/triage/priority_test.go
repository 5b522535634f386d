package triage

import (
	"testing"

	"fraudtriage/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAssignPriority(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		amount   float64
		velocity bool
		geo      bool
		want     models.Priority
	}{
		{"high score with velocity", 0.91, 1200, true, false, models.PriorityHigh},
		{"high score alone", 0.85, 0, false, false, models.PriorityHigh},
		{"high score ignores context", 0.99, 10, false, false, models.PriorityHigh},
		{"medium score high amount", 0.70, 600, false, false, models.PriorityMedium},
		{"medium score velocity", 0.60, 10, true, false, models.PriorityMedium},
		{"medium score geo", 0.84, 10, false, true, models.PriorityMedium},
		{"medium score no context", 0.70, 100, false, false, models.PriorityLow},
		{"amount exactly at threshold", 0.70, 500, false, false, models.PriorityLow},
		{"low score all signals", 0.50, 10000, true, true, models.PriorityLow},
		{"just below medium floor", 0.5999, 10000, true, true, models.PriorityLow},
		{"negative score passes through", -0.3, 10000, true, true, models.PriorityLow},
		{"score above one passes through", 1.7, 0, false, false, models.PriorityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssignPriority(tt.score, tt.amount, tt.velocity, tt.geo)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssignPriorityBands(t *testing.T) {
	contexts := []struct {
		amount   float64
		velocity bool
		geo      bool
	}{
		{0, false, false},
		{501, false, false},
		{0, true, false},
		{0, false, true},
		{10000, true, true},
	}

	for score := 0.0; score <= 1.0; score += 0.01 {
		for _, c := range contexts {
			got := AssignPriority(score, c.amount, c.velocity, c.geo)
			corroborated := c.amount > 500 || c.velocity || c.geo

			switch {
			case score >= HighRiskThreshold:
				assert.Equal(t, models.PriorityHigh, got, "score %.2f", score)
			case score >= MediumRiskThreshold && corroborated:
				assert.Equal(t, models.PriorityMedium, got, "score %.2f", score)
			default:
				assert.Equal(t, models.PriorityLow, got, "score %.2f", score)
			}

			assert.Equal(t, got, AssignPriority(score, c.amount, c.velocity, c.geo))
		}
	}
}
