// Package extractor pulls timestamp-shaped substrings out of free-form
// attendance-log text and groups them by calendar day.
package extractor

import (
	"regexp"
	"time"

	"github.com/lhtran/go-attendance-monitor/internal/core/model"
)

// timestampLayout is the shape every countable clock event must have.
const timestampLayout = "2006-01-02 15:04:05"

// timestampPattern matches YYYY-MM-DD HH:MM:SS anywhere in the text, not
// anchored to line boundaries. The compiled pattern is stateless, so
// concurrent and repeated scans are independent of each other.
var timestampPattern = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2}) (\d{2}):(\d{2}):(\d{2})`)

// Result holds one scan over a raw text blob. Moments is the flat extraction
// in source order; ByDay groups them under their local calendar date; Days
// lists the day keys in order of first appearance, since map iteration would
// lose it.
type Result struct {
	Moments []time.Time
	ByDay   model.DayRecord
	Days    []string
}

// Scan extracts every parseable timestamp from raw text. Non-matching text
// contributes nothing; matches with out-of-range components (such as a 13th
// month) are skipped the same way. The day key is taken from the moment's
// own local date in the given organizational timezone at parse time.
func Scan(raw string, loc *time.Location) Result {
	result := Result{ByDay: make(model.DayRecord)}

	for _, match := range timestampPattern.FindAllString(raw, -1) {
		moment, err := time.ParseInLocation(timestampLayout, match, loc)
		if err != nil {
			continue
		}

		key := moment.Format(model.DayKeyLayout)
		result.Moments = append(result.Moments, moment)
		if _, seen := result.ByDay[key]; !seen {
			result.Days = append(result.Days, key)
		}
		result.ByDay[key] = append(result.ByDay[key], moment)
	}

	return result
}
