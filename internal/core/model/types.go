package model

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/bytedance/sonic"
)

// DayKeyLayout is the calendar-date format used as the grouping key.
const DayKeyLayout = "2006-01-02"

// DayRecord maps a day key (YYYY-MM-DD in the organizational timezone) to the
// clock events extracted for that day, in order of appearance in the source
// text. The sequence is not necessarily chronological.
type DayRecord map[string][]time.Time

// IgnoreSet holds dates the user excluded from lateness judgment. An ignored
// day is always counted as full regardless of its computed duration.
type IgnoreSet map[string]struct{}

// NewIgnoreSet builds an IgnoreSet from YYYY-MM-DD date strings. A malformed
// date is a caller error, not data to be skipped.
func NewIgnoreSet(dates []string) (IgnoreSet, error) {
	set := make(IgnoreSet, len(dates))
	for _, d := range dates {
		if _, err := time.Parse(DayKeyLayout, d); err != nil {
			return nil, fmt.Errorf("invalid ignore date '%s': expected YYYY-MM-DD: %w", d, err)
		}
		set[d] = struct{}{}
	}
	return set, nil
}

// Contains reports whether the given day key is ignored.
func (s IgnoreSet) Contains(day string) bool {
	_, ok := s[day]
	return ok
}

// Dates returns the ignored dates in ascending order.
func (s IgnoreSet) Dates() []string {
	dates := make([]string, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Analysis is the aggregate classification result. It is a derived,
// disposable value: recomputed wholesale on every change to the raw text or
// the ignore set, never patched incrementally.
type Analysis struct {
	LateCount      int                `json:"lateCount"`
	FullCount      int                `json:"fullCount"`
	SmallerThan7   int                `json:"smallerThan7"`
	From7To8       int                `json:"from7To8"`
	TotalDays      int                `json:"totalDays"`
	LatePercentage float64            `json:"latePercentage"` // NaN when no day has been judged yet
	Data           map[string]float64 `json:"data"`
}

// HasJudgedDays reports whether any day contributed to the late percentage.
// When false, LatePercentage is NaN and means "no data yet".
func (a *Analysis) HasJudgedDays() bool {
	return a.LateCount+a.FullCount > 0
}

// MarshalJSON emits the undefined late percentage as null so the result stays
// valid JSON.
func (a Analysis) MarshalJSON() ([]byte, error) {
	type analysisJSON struct {
		LateCount      int                `json:"lateCount"`
		FullCount      int                `json:"fullCount"`
		SmallerThan7   int                `json:"smallerThan7"`
		From7To8       int                `json:"from7To8"`
		TotalDays      int                `json:"totalDays"`
		LatePercentage *float64           `json:"latePercentage"`
		Data           map[string]float64 `json:"data"`
	}
	out := analysisJSON{
		LateCount:    a.LateCount,
		FullCount:    a.FullCount,
		SmallerThan7: a.SmallerThan7,
		From7To8:     a.From7To8,
		TotalDays:    a.TotalDays,
		Data:         a.Data,
	}
	if !math.IsNaN(a.LatePercentage) {
		pct := a.LatePercentage
		out.LatePercentage = &pct
	}
	return sonic.Marshal(out)
}
