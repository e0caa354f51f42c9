package util

import (
	"fmt"
	"time"
)

// DayKeyLayout is the calendar-date grouping key format.
const DayKeyLayout = "2006-01-02"

// Clock provides timezone-aware time operations pinned to the organizational
// timezone. The current-time source is injectable so that "today" is
// deterministic in tests; it is never read from the ambient environment.
type Clock struct {
	location *time.Location
	nowFn    func() time.Time
}

// NewClock creates a Clock for the given IANA timezone identifier.
func NewClock(timezone string) (*Clock, error) {
	return NewClockAt(timezone, time.Now)
}

// NewClockAt creates a Clock with an explicit current-time source.
func NewClockAt(timezone string, nowFn func() time.Time) (*Clock, error) {
	if timezone == "" {
		return nil, fmt.Errorf("timezone must not be empty")
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone '%s': %w\nValid examples: UTC, Asia/Ho_Chi_Minh, Asia/Shanghai, Europe/London, America/New_York", timezone, err)
	}
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Clock{location: loc, nowFn: nowFn}, nil
}

// Location returns the organizational timezone.
func (c *Clock) Location() *time.Location {
	return c.location
}

// Now returns the current time in the organizational timezone.
func (c *Clock) Now() time.Time {
	return c.nowFn().In(c.location)
}

// In converts a time to the organizational timezone.
func (c *Clock) In(t time.Time) time.Time {
	return t.In(c.location)
}

// Today returns the current calendar date as a day key.
func (c *Clock) Today() string {
	return c.Now().Format(DayKeyLayout)
}

// Format formats a time according to the layout in the organizational timezone.
func (c *Clock) Format(t time.Time, layout string) string {
	return t.In(c.location).Format(layout)
}
