package triage

import (
	"fmt"
	"strings"

	"fraudtriage/internal/models"
)

const (
	amountClause   = "The transaction amount is higher than typical spending behavior. "
	velocityClause = "Multiple rapid transactions were detected in a short time window. "
	geoClause      = "The transaction location differs from recent customer activity. "
	disclaimer     = "These indicators suggest elevated risk, but do not confirm fraud. " +
		"Manual review is recommended before taking action."
)

// GenerateExplanation builds the compliance-safe text shown to analysts.
// Clauses are appended in a fixed order: opening, amount, velocity, geo, disclaimer.
func GenerateExplanation(tx models.Transaction, riskScore float64, priority models.Priority) string {
	var b strings.Builder

	fmt.Fprintf(&b, "This transaction was flagged for review with a %s priority. ", priority)
	fmt.Fprintf(&b, "The fraud risk model assigned a risk score of %.2f. ", riskScore)

	if tx.Amount > HighAmountThreshold {
		b.WriteString(amountClause)
	}
	if tx.VelocityFlag {
		b.WriteString(velocityClause)
	}
	if tx.GeoMismatch {
		b.WriteString(geoClause)
	}

	b.WriteString(disclaimer)
	return b.String()
}
