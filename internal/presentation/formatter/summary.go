package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"

	"github.com/lhtran/go-attendance-monitor/internal/util"
)

// SummaryFormatter renders the aggregate analysis without per-day rows.
type SummaryFormatter struct{}

func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

func (f *SummaryFormatter) Format(report *Report) error {
	analysis := report.Analysis

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Attendance Analysis Summary")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	if analysis.TotalDays == 0 {
		fmt.Println("No attendance records found")
		fmt.Println()
		fmt.Println(strings.Repeat("=", 60))
		return nil
	}

	first, last := report.DateRange()
	if first == last {
		fmt.Printf("Date Range: %s\n", first)
	} else {
		fmt.Printf("Date Range: %d days from %s to %s\n", analysis.TotalDays, first, last)
	}
	fmt.Println()

	fmt.Println("Day Counts:")
	fmt.Printf("  Total Days:     %d\n", analysis.TotalDays)
	fmt.Printf("  Full Days:      %d\n", analysis.FullCount)
	fmt.Printf("  Late Days:      %d\n", analysis.LateCount)
	fmt.Println()

	fmt.Println("Late Severity:")
	fmt.Printf("  Under %s hours:   %d\n", util.FormatHours(report.CapHours-1), analysis.SmallerThan7)
	fmt.Printf("  %s to %s hours:   %d\n", util.FormatHours(report.CapHours-1), util.FormatHours(report.CapHours), analysis.From7To8)
	fmt.Println()

	fmt.Printf("Late Percentage: %s\n", colorPercentage(analysis.LatePercentage))

	if report.LeaveTime != "" {
		fmt.Println()
		fmt.Printf("You may leave at %s\n", report.LeaveTime)
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))

	return nil
}

// colorPercentage colors the late percentage by severity: above 20 red,
// above 15 yellow, otherwise green. An undefined percentage renders as "-".
func colorPercentage(pct float64) string {
	text := util.FormatPercentage(pct)
	switch {
	case math.IsNaN(pct):
		return text
	case pct > 20:
		return color.New(color.FgRed).Sprint(text)
	case pct > 15:
		return color.New(color.FgYellow).Sprint(text)
	default:
		return color.New(color.FgGreen).Sprint(text)
	}
}
