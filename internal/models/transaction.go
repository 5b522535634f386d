package models

// Transaction is the record submitted for triage.
// Amount is required; the contextual flags default to false when absent.
// Features are opaque to triage and only consumed by the scoring model.
type Transaction struct {
	TransactionID string    `json:"transaction_id,omitempty"`
	Amount        float64   `json:"amount"`
	Features      []float64 `json:"features,omitempty"`
	VelocityFlag  bool      `json:"velocity_flag"`
	GeoMismatch   bool      `json:"geo_mismatch"`
}

// TriageResult is what the pipeline returns to its caller.
type TriageResult struct {
	AssessmentID string   `json:"id,omitempty"`
	RiskScore    float64  `json:"risk_score"`
	Priority     Priority `json:"priority"`
	Explanation  string   `json:"explanation"`
}
