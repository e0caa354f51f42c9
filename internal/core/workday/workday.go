// Package workday reconciles raw clock events into countable work time.
// A day's events are clipped to the organizational working hours, the lunch
// break is deducted, and the result is capped at the daily maximum.
package workday

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lhtran/go-attendance-monitor/internal/core/model"
)

// clockTime is a wall-clock time of day within the organizational timezone.
type clockTime struct {
	hour   int
	minute int
}

func parseClockTime(s string) (clockTime, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return clockTime{}, fmt.Errorf("invalid time of day '%s': expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return clockTime{}, fmt.Errorf("invalid hour in '%s'", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return clockTime{}, fmt.Errorf("invalid minute in '%s'", s)
	}
	return clockTime{hour: hour, minute: minute}, nil
}

func (c clockTime) minutes() int {
	return c.hour*60 + c.minute
}

// Options configures the organizational schedule. Times of day are HH:MM
// strings in the organizational timezone.
type Options struct {
	WorkStart     string  // earliest countable clock-in
	WorkEnd       string  // latest countable clock-out
	LunchStart    string  // lunch break begins; morning half ends here
	LunchEnd      string  // lunch break ends; afternoon half begins here
	DailyCapHours float64 // maximum countable hours per day
	RequiredHours float64 // presence required from the valid start (cap plus lunch)
}

// DefaultOptions returns the standard schedule: 08:30-18:00 working hours,
// 12:00-13:00 lunch, 8 countable hours, 9 hours required presence.
func DefaultOptions() Options {
	return Options{
		WorkStart:     "08:30",
		WorkEnd:       "18:00",
		LunchStart:    "12:00",
		LunchEnd:      "13:00",
		DailyCapHours: 8,
		RequiredHours: 9,
	}
}

// Schedule is an immutable description of the organizational workday,
// pinned to an explicit timezone. All window arithmetic goes through it.
type Schedule struct {
	location   *time.Location
	workStart  clockTime
	workEnd    clockTime
	lunchStart clockTime
	lunchEnd   clockTime
	capHours   float64
	required   time.Duration
}

// NewSchedule validates the options and builds a Schedule in the given
// organizational timezone.
func NewSchedule(opts Options, loc *time.Location) (*Schedule, error) {
	if loc == nil {
		return nil, fmt.Errorf("schedule requires an explicit timezone")
	}

	workStart, err := parseClockTime(opts.WorkStart)
	if err != nil {
		return nil, fmt.Errorf("work_start: %w", err)
	}
	workEnd, err := parseClockTime(opts.WorkEnd)
	if err != nil {
		return nil, fmt.Errorf("work_end: %w", err)
	}
	lunchStart, err := parseClockTime(opts.LunchStart)
	if err != nil {
		return nil, fmt.Errorf("lunch_start: %w", err)
	}
	lunchEnd, err := parseClockTime(opts.LunchEnd)
	if err != nil {
		return nil, fmt.Errorf("lunch_end: %w", err)
	}

	if workEnd.minutes() <= workStart.minutes() {
		return nil, fmt.Errorf("work_end %s must be after work_start %s", opts.WorkEnd, opts.WorkStart)
	}
	if lunchEnd.minutes() < lunchStart.minutes() {
		return nil, fmt.Errorf("lunch_end %s must not be before lunch_start %s", opts.LunchEnd, opts.LunchStart)
	}
	if opts.DailyCapHours <= 0 {
		return nil, fmt.Errorf("daily_cap_hours must be positive, got %v", opts.DailyCapHours)
	}
	if opts.RequiredHours <= 0 {
		return nil, fmt.Errorf("required_hours must be positive, got %v", opts.RequiredHours)
	}

	return &Schedule{
		location:   loc,
		workStart:  workStart,
		workEnd:    workEnd,
		lunchStart: lunchStart,
		lunchEnd:   lunchEnd,
		capHours:   opts.DailyCapHours,
		required:   time.Duration(opts.RequiredHours * float64(time.Hour)),
	}, nil
}

// Location returns the organizational timezone the schedule operates in.
func (s *Schedule) Location() *time.Location {
	return s.location
}

// DailyCapHours returns the maximum countable hours per day.
func (s *Schedule) DailyCapHours() float64 {
	return s.capHours
}

// Window bounds the countable work time of one day. The zero value is
// invalid and yields zero duration.
type Window struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether the window covers any countable time. A single clock
// event, or events entirely outside working hours, produce an invalid window.
func (w Window) Valid() bool {
	return w.End.After(w.Start)
}

// at pins a time of day onto the given calendar day in the schedule's zone.
func (s *Schedule) at(day string, ct clockTime) (time.Time, error) {
	d, err := time.ParseInLocation(model.DayKeyLayout, day, s.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key '%s': %w", day, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), ct.hour, ct.minute, 0, 0, s.location), nil
}

// ResolveWindow computes the effective start and end of countable work time
// for one day: the earliest and latest clock events, clipped to working
// hours. Fewer than two events yield an invalid window, not an error; a
// malformed day key is caller misuse and is reported as one.
func (s *Schedule) ResolveWindow(day string, moments []time.Time) (Window, error) {
	earliest, err := s.at(day, s.workStart)
	if err != nil {
		return Window{}, err
	}
	if len(moments) < 2 {
		return Window{}, nil
	}
	latest, err := s.at(day, s.workEnd)
	if err != nil {
		return Window{}, err
	}

	lo := s.location
	minM := moments[0].In(lo)
	maxM := moments[0].In(lo)
	for _, m := range moments[1:] {
		m = m.In(lo)
		if m.Before(minM) {
			minM = m
		}
		if m.After(maxM) {
			maxM = m
		}
	}

	start := minM
	if earliest.After(start) {
		start = earliest
	}
	end := maxM
	if latest.Before(end) {
		end = latest
	}

	if !end.After(start) {
		return Window{}, nil
	}
	return Window{Start: start, End: end}, nil
}

// WindowDuration computes the lunch-adjusted, capped worked hours for a
// resolved window. The morning and afternoon halves are computed
// independently and each floored at zero, so a start after noon or an end
// before the lunch resumption contributes nothing.
func (s *Schedule) WindowDuration(day string, w Window) (float64, error) {
	if !w.Valid() {
		return 0, nil
	}

	noon, err := s.at(day, s.lunchStart)
	if err != nil {
		return 0, err
	}
	resume, err := s.at(day, s.lunchEnd)
	if err != nil {
		return 0, err
	}

	morning := noon.Sub(w.Start).Hours()
	if morning < 0 {
		morning = 0
	}

	afternoonFrom := w.Start
	if resume.After(afternoonFrom) {
		afternoonFrom = resume
	}
	afternoon := w.End.Sub(afternoonFrom).Hours()
	if afternoon < 0 {
		afternoon = 0
	}

	duration := morning + afternoon
	if duration > s.capHours {
		duration = s.capHours
	}
	return duration, nil
}

// ValidDuration resolves the day's window and computes its worked hours in
// one step. The result is always within [0, DailyCapHours].
func (s *Schedule) ValidDuration(day string, moments []time.Time) (float64, error) {
	w, err := s.ResolveWindow(day, moments)
	if err != nil {
		return 0, err
	}
	return s.WindowDuration(day, w)
}

// LeaveTime projects the earliest compliant leave time for a day with at
// least one clock event: the required presence measured from the valid
// start, never later than the end of working hours. ok is false when the day
// has no events yet.
func (s *Schedule) LeaveTime(day string, moments []time.Time) (time.Time, bool, error) {
	if len(moments) == 0 {
		return time.Time{}, false, nil
	}

	earliest, err := s.at(day, s.workStart)
	if err != nil {
		return time.Time{}, false, err
	}
	latest, err := s.at(day, s.workEnd)
	if err != nil {
		return time.Time{}, false, err
	}

	validStart := moments[0].In(s.location)
	for _, m := range moments[1:] {
		m = m.In(s.location)
		if m.Before(validStart) {
			validStart = m
		}
	}
	if earliest.After(validStart) {
		validStart = earliest
	}

	leave := validStart.Add(s.required)
	if latest.Before(leave) {
		leave = latest
	}
	return leave, true, nil
}
