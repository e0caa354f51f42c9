// Package analyzer runs the attendance pipeline: scan the raw text, resolve
// each day's work window, classify the days, and hand the result to a
// formatter. Every run is a pure function of the raw text and the ignore
// set; nothing is carried over between runs.
package analyzer

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lhtran/go-attendance-monitor/internal/core/model"
	"github.com/lhtran/go-attendance-monitor/internal/core/workday"
	"github.com/lhtran/go-attendance-monitor/internal/data/extractor"
	"github.com/lhtran/go-attendance-monitor/internal/presentation/formatter"
	"github.com/lhtran/go-attendance-monitor/internal/util"
)

// recordLayout is how raw clock events are rendered in detail rows.
const recordLayout = "02/01/2006 - 15:04"

type Config struct {
	InputPath    string // attendance log file; "-" or empty reads stdin
	OutputFormat string // table, json, csv, summary
	Timezone     string
	IgnoreDates  []string
	Schedule     workday.Options
}

type Analyzer struct {
	config   *Config
	clock    *util.Clock
	schedule *workday.Schedule
	ignore   model.IgnoreSet
}

// New creates an Analyzer with a wall-clock time source.
func New(config *Config) (*Analyzer, error) {
	clock, err := util.NewClock(config.Timezone)
	if err != nil {
		return nil, err
	}
	return NewWithClock(config, clock)
}

// NewWithClock creates an Analyzer with an injected clock, so "today" is
// deterministic in tests.
func NewWithClock(config *Config, clock *util.Clock) (*Analyzer, error) {
	schedule, err := workday.NewSchedule(config.Schedule, clock.Location())
	if err != nil {
		return nil, fmt.Errorf("invalid schedule: %w", err)
	}
	ignore, err := model.NewIgnoreSet(config.IgnoreDates)
	if err != nil {
		return nil, err
	}
	return &Analyzer{
		config:   config,
		clock:    clock,
		schedule: schedule,
		ignore:   ignore,
	}, nil
}

// Run reads the input, analyzes it, and writes the formatted report.
func (a *Analyzer) Run() error {
	startTime := time.Now()
	util.LogInfo("Starting attendance analysis...")

	raw, err := a.readInput()
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	util.LogDebugf("Read %d bytes of raw log text", len(raw))

	report, err := a.Analyze(raw)
	if err != nil {
		return err
	}
	util.LogDebugf("Analysis finished: %d days, %d late, %d full, duration %v",
		report.Analysis.TotalDays, report.Analysis.LateCount, report.Analysis.FullCount, time.Since(startTime))

	return a.formatAndOutput(report)
}

// Analyze runs the computation pipeline over one raw text blob and builds
// the renderable report. Recomputation is wholesale: a fresh scan, a fresh
// classification, a fresh report.
func (a *Analyzer) Analyze(raw string) (*formatter.Report, error) {
	scan := extractor.Scan(raw, a.clock.Location())
	util.LogDebugf("Extracted %d timestamps across %d days", len(scan.Moments), len(scan.Days))

	today := a.clock.Today()
	analysis, err := Classify(scan.ByDay, a.ignore, a.schedule, today)
	if err != nil {
		return nil, err
	}

	report := &formatter.Report{
		Analysis: analysis,
		Days:     make([]formatter.DayDetail, 0, len(scan.Days)),
		CapHours: a.schedule.DailyCapHours(),
	}

	for _, day := range scan.Days {
		moments := scan.ByDay[day]
		records := make([]string, len(moments))
		for i, m := range moments {
			records[i] = a.clock.Format(m, recordLayout)
		}
		report.Days = append(report.Days, formatter.DayDetail{
			Date:     day,
			Duration: analysis.Data[day],
			Records:  records,
			Ignored:  a.ignore.Contains(day),
			Today:    day == today,
		})
	}

	if moments, ok := scan.ByDay[today]; ok {
		leave, ok, err := a.schedule.LeaveTime(today, moments)
		if err != nil {
			return nil, err
		}
		if ok {
			report.LeaveTime = leave.Format("15:04")
		}
	}

	return report, nil
}

func (a *Analyzer) readInput() (string, error) {
	if a.config.InputPath == "" || a.config.InputPath == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(a.config.InputPath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (a *Analyzer) formatAndOutput(report *formatter.Report) error {
	switch a.config.OutputFormat {
	case "json":
		return formatter.NewJSONFormatter().Format(report)
	case "csv":
		return formatter.NewCSVFormatter().Format(report)
	case "summary":
		return formatter.NewSummaryFormatter().Format(report)
	default:
		return formatter.NewTableFormatter().Format(report)
	}
}
