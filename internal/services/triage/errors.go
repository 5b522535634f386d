package triage

import "errors"

// Service errors
var (
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrScoringFailed      = errors.New("risk scoring failed")
	ErrInvalidScore       = errors.New("invalid risk score")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrInvalidFilter      = errors.New("invalid assessment filter")
)
