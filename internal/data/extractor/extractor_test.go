package extractor

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanBasicGrouping(t *testing.T) {
	raw := `badge-in 2024-01-02 08:00:00 gate A
badge-out 2024-01-02 18:30:00 gate A
badge-in 2024-01-03 09:00:00 gate B`

	result := Scan(raw, time.UTC)

	require.Len(t, result.Moments, 3)
	require.Len(t, result.ByDay, 2)
	assert.Equal(t, []string{"2024-01-02", "2024-01-03"}, result.Days)
	assert.Len(t, result.ByDay["2024-01-02"], 2)
	assert.Len(t, result.ByDay["2024-01-03"], 1)

	want := time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)
	assert.True(t, result.Moments[0].Equal(want))
}

func TestScanNoMatches(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "plain text", raw: "no timestamps here at all"},
		{name: "date only", raw: "2024-01-02 was a Tuesday"},
		{name: "time only", raw: "at 08:30:00 the gate opened"},
		{name: "wrong separator", raw: "2024-01-02T08:30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Scan(tt.raw, time.UTC)
			assert.Empty(t, result.Moments)
			assert.Empty(t, result.ByDay)
			assert.Empty(t, result.Days)
		})
	}
}

func TestScanSkipsUnparseableMatches(t *testing.T) {
	// Shape matches the pattern but the components are out of range.
	raw := "2024-13-40 25:61:61 and a real one 2024-01-02 10:00:00"

	result := Scan(raw, time.UTC)

	require.Len(t, result.Moments, 1)
	assert.Equal(t, []string{"2024-01-02"}, result.Days)
}

func TestScanPreservesSourceOrderWithinDay(t *testing.T) {
	// The later clock event appears first in the text.
	raw := "2024-01-02 18:00:00 then 2024-01-02 08:30:00"

	result := Scan(raw, time.UTC)

	moments := result.ByDay["2024-01-02"]
	require.Len(t, moments, 2)
	assert.Equal(t, 18, moments[0].Hour())
	assert.Equal(t, 8, moments[1].Hour())
}

func TestScanDayKeyUsesGivenLocation(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	result := Scan("2024-01-02 08:30:00", loc)

	require.Len(t, result.Moments, 1)
	assert.Equal(t, "2024-01-02", result.Days[0])
	assert.Equal(t, loc, result.Moments[0].Location())
}

func TestScanMatchesMidLine(t *testing.T) {
	raw := "prefix2024-01-02 08:30:00suffix 2024-01-02 09:00:00x2024-01-02 10:00:00"

	result := Scan(raw, time.UTC)

	assert.Len(t, result.Moments, 3)
}

func TestScanLargeInputTerminates(t *testing.T) {
	// Dense adjacent matches must each advance the scan.
	raw := strings.Repeat("2024-01-02 08:30:00", 1000)

	result := Scan(raw, time.UTC)

	assert.Len(t, result.Moments, 1000)
	assert.Len(t, result.Days, 1)
}

func TestScanFreshResultPerCall(t *testing.T) {
	raw := "2024-01-02 08:30:00 2024-01-02 18:00:00"

	first := Scan(raw, time.UTC)
	second := Scan(raw, time.UTC)

	require.Equal(t, first.Days, second.Days)
	require.Len(t, second.Moments, 2)

	// Mutating one result must not leak into the next scan.
	first.ByDay["2024-01-02"] = nil
	third := Scan(raw, time.UTC)
	assert.Len(t, third.ByDay["2024-01-02"], 2)
}
