package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{7.499999, 7.5},
		{8.333333, 8.33},
		{2.0 / 3.0 * 100, 66.67},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Round(tt.in), 1e-9)
	}
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "8", FormatHours(8))
	assert.Equal(t, "7.5", FormatHours(7.5))
	assert.Equal(t, "3.33", FormatHours(10.0/3.0))
	assert.Equal(t, "0", FormatHours(0))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "-", FormatPercentage(math.NaN()))
	assert.Equal(t, "25.00%", FormatPercentage(25))
	assert.Equal(t, "66.67%", FormatPercentage(2.0/3.0*100))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "long tex…", TruncateString("long text here", 9))
}
