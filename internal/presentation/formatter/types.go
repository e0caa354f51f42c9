package formatter

import (
	"github.com/lhtran/go-attendance-monitor/internal/core/model"
)

// DayDetail is one renderable report row.
type DayDetail struct {
	Date     string   `json:"date"`
	Duration float64  `json:"duration"`
	Records  []string `json:"records"` // clock events as DD/MM/YYYY - HH:mm, in source order
	Ignored  bool     `json:"ignored"`
	Today    bool     `json:"today"`
}

// Report is the full renderable result of one pipeline run: the aggregate
// analysis plus the per-day detail rows in order of first appearance in the
// source text.
type Report struct {
	Analysis  *model.Analysis `json:"analysis"`
	Days      []DayDetail     `json:"days"`
	CapHours  float64         `json:"capHours"`
	LeaveTime string          `json:"leaveTime,omitempty"` // projected earliest leave time for today, HH:MM
}

// DateRange returns the first and last day keys of the report, in row order.
func (r *Report) DateRange() (string, string) {
	if len(r.Days) == 0 {
		return "", ""
	}
	return r.Days[0].Date, r.Days[len(r.Days)-1].Date
}
