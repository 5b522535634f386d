package triage

import "fraudtriage/internal/models"

// Fixed escalation thresholds.
const (
	HighRiskThreshold   = 0.85
	MediumRiskThreshold = 0.60
	HighAmountThreshold = 500.0
)

// AssignPriority maps a risk score and contextual signals to an analyst priority.
// Rules are evaluated in order and the first match wins:
//   - a score at or above HighRiskThreshold is HIGH on its own
//   - a score at or above MediumRiskThreshold is MEDIUM when corroborated by a
//     high amount, a velocity flag or a geo mismatch
//   - everything else is LOW
//
// The score is not range checked.
func AssignPriority(riskScore, amount float64, velocityFlag, geoMismatch bool) models.Priority {
	if riskScore >= HighRiskThreshold {
		return models.PriorityHigh
	}

	if riskScore >= MediumRiskThreshold && (amount > HighAmountThreshold || velocityFlag || geoMismatch) {
		return models.PriorityMedium
	}

	return models.PriorityLow
}
