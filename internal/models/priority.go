package models

import "strings"

// Priority is the analyst-facing urgency label assigned to a flagged transaction.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Severity orders priorities: HIGH > MEDIUM > LOW. Unknown values rank 0.
func (p Priority) Severity() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

func (p Priority) String() string {
	return string(p)
}

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	return p.Severity() > 0
}

// ParsePriority converts a case-insensitive token into a Priority.
func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", false
	}
	return p, true
}
