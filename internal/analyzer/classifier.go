package analyzer

import (
	"math"

	"github.com/lhtran/go-attendance-monitor/internal/core/model"
	"github.com/lhtran/go-attendance-monitor/internal/core/workday"
)

// Classify aggregates per-day durations into the attendance analysis.
//
// A day counts as full when its duration reaches the daily cap, or when it is
// in the ignore set regardless of duration. A short day counts as late and is
// bucketed by severity, except today: an in-progress day is exempt from
// lateness judgment until it is no longer today, so while under the cap it
// contributes to neither counter (its duration still appears in Data). Once
// today reaches the cap it counts as full like any other day.
//
// LatePercentage is lateCount/(lateCount+fullCount)*100 and NaN when no day
// has been judged yet.
func Classify(record model.DayRecord, ignore model.IgnoreSet, schedule *workday.Schedule, today string) (*model.Analysis, error) {
	analysis := &model.Analysis{
		TotalDays: len(record),
		Data:      make(map[string]float64, len(record)),
	}

	capHours := schedule.DailyCapHours()
	severityBoundary := capHours - 1

	for day, moments := range record {
		duration, err := schedule.ValidDuration(day, moments)
		if err != nil {
			return nil, err
		}
		analysis.Data[day] = duration

		if ignore.Contains(day) {
			analysis.FullCount++
			continue
		}

		if duration < capHours {
			if day == today {
				continue
			}
			analysis.LateCount++
			if duration < severityBoundary {
				analysis.SmallerThan7++
			} else {
				analysis.From7To8++
			}
		} else {
			analysis.FullCount++
		}
	}

	judged := analysis.LateCount + analysis.FullCount
	if judged == 0 {
		analysis.LatePercentage = math.NaN()
	} else {
		analysis.LatePercentage = float64(analysis.LateCount) / float64(judged) * 100
	}

	return analysis, nil
}
