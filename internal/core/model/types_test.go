package model

import (
	"math"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIgnoreSet(t *testing.T) {
	set, err := NewIgnoreSet([]string{"2024-01-15", "2024-01-02"})
	require.NoError(t, err)

	assert.True(t, set.Contains("2024-01-15"))
	assert.False(t, set.Contains("2024-01-16"))
	assert.Equal(t, []string{"2024-01-02", "2024-01-15"}, set.Dates())
}

func TestNewIgnoreSetRejectsMalformedDates(t *testing.T) {
	tests := []string{"15/01/2024", "2024-1-5", "not a date", "2024-13-01"}
	for _, bad := range tests {
		_, err := NewIgnoreSet([]string{bad})
		assert.Error(t, err, "expected error for %q", bad)
	}
}

func TestNewIgnoreSetEmpty(t *testing.T) {
	set, err := NewIgnoreSet(nil)
	require.NoError(t, err)
	assert.Empty(t, set)
	assert.False(t, set.Contains("2024-01-15"))
}

func TestAnalysisMarshalJSON(t *testing.T) {
	analysis := Analysis{
		LateCount:      1,
		FullCount:      3,
		SmallerThan7:   1,
		TotalDays:      4,
		LatePercentage: 25,
		Data:           map[string]float64{"2024-01-02": 8},
	}

	data, err := sonic.Marshal(analysis)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, sonic.Unmarshal(data, &decoded))
	assert.Equal(t, float64(25), decoded["latePercentage"])
	assert.Equal(t, float64(4), decoded["totalDays"])
}

func TestAnalysisMarshalJSONUndefinedPercentage(t *testing.T) {
	analysis := Analysis{
		LatePercentage: math.NaN(),
		Data:           map[string]float64{},
	}

	data, err := sonic.Marshal(analysis)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"latePercentage":null`)

	var decoded map[string]interface{}
	require.NoError(t, sonic.Unmarshal(data, &decoded))
	assert.Nil(t, decoded["latePercentage"])
}

func TestAnalysisHasJudgedDays(t *testing.T) {
	assert.False(t, (&Analysis{}).HasJudgedDays())
	assert.True(t, (&Analysis{FullCount: 1}).HasJudgedDays())
	assert.True(t, (&Analysis{LateCount: 2}).HasJudgedDays())
}
