package validation

import (
	"fmt"
	"math"
	"strings"
)

// MaxTransactionIDLength bounds the caller-supplied reference.
const MaxTransactionIDLength = 100

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type Validator struct {
	Errors []ValidationError
}

func New() *Validator {
	return &Validator{
		Errors: make([]ValidationError, 0),
	}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

func (v *Validator) AddError(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Error joins all collected messages; empty when valid.
func (v *Validator) Error() string {
	msgs := make([]string, len(v.Errors))
	for i, e := range v.Errors {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Finite reports whether f is neither NaN nor infinite.
func Finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ValidateTransaction checks an analyze payload. amount is nil when the
// field was absent from the request.
func ValidateTransaction(amount *float64, transactionID string, features []float64) *Validator {
	v := New()

	v.Check(amount != nil, "amount", "amount is required")
	if amount != nil {
		v.Check(Finite(*amount) && *amount >= 0, "amount", "amount must be a non-negative number")
	}
	v.Check(len(transactionID) <= MaxTransactionIDLength, "transaction_id",
		fmt.Sprintf("must be at most %d characters", MaxTransactionIDLength))

	for i, f := range features {
		if !Finite(f) {
			v.AddError(fmt.Sprintf("features[%d]", i), "must be a finite number")
			break
		}
	}
	return v
}
