package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{name: "Already two places", in: 12.34, expected: 12.34},
		{name: "Rounds down", in: 12.344, expected: 12.34},
		{name: "Rounds up", in: 12.345, expected: 12.35},
		{name: "Float artifact", in: 0.1 + 0.2, expected: 0.3},
		{name: "Zero", in: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Round(tt.in))
		})
	}
}

func TestAddSub(t *testing.T) {
	assert.Equal(t, 0.3, Add(0.1, 0.2))
	assert.Equal(t, 33.33, Sub(50, 16.67))
	assert.Equal(t, -5.0, Sub(10, 15))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		count    int
		expected float64
	}{
		{name: "Even split", total: 90, count: 3, expected: 30},
		{name: "Drift accepted", total: 100, count: 3, expected: 33.33},
		{name: "Single participant", total: 17.5, count: 1, expected: 17.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Split(tt.total, tt.count))
		})
	}
}
