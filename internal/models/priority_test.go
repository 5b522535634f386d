package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrioritySeverityOrder(t *testing.T) {
	assert.Greater(t, PriorityHigh.Severity(), PriorityMedium.Severity())
	assert.Greater(t, PriorityMedium.Severity(), PriorityLow.Severity())
	assert.Equal(t, 0, Priority("URGENT").Severity())
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
		ok   bool
	}{
		{"HIGH", PriorityHigh, true},
		{"medium", PriorityMedium, true},
		{" Low ", PriorityLow, true},
		{"", "", false},
		{"critical", "", false},
	}

	for _, tt := range tests {
		got, ok := ParsePriority(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestJSONScan(t *testing.T) {
	var j JSON
	assert.NoError(t, j.Scan([]byte(`{"scorer":"static"}`)))
	assert.Equal(t, "static", j["scorer"])

	assert.NoError(t, j.Scan(nil))
	assert.Nil(t, j)

	assert.Error(t, j.Scan(42))
}
