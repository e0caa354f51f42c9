package formatter

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/lhtran/go-attendance-monitor/internal/core/model"
)

func TestTableFormatterFormat(t *testing.T) {
	color.NoColor = true

	out := captureOutput(t, func() error {
		return NewTableFormatter().Format(sampleReport())
	})

	wantInBody := []string{
		"Date", "Hours", "Status", "Records",
		"2024-01-02", "full",
		"2024-01-03", "late",
		"Total", "3 days",
		"You may leave at 17:40",
	}
	for _, want := range wantInBody {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q\noutput:\n%s", want, out)
		}
	}
}

func TestTableFormatterStatuses(t *testing.T) {
	color.NoColor = true

	report := &Report{
		Analysis: &model.Analysis{TotalDays: 3, Data: map[string]float64{}},
		Days: []DayDetail{
			{Date: "2024-01-02", Duration: 5, Ignored: true},
			{Date: "2024-01-03", Duration: 7.5},
			{Date: "2024-01-05", Duration: 2.5, Today: true},
		},
		CapHours: 8,
	}

	out := captureOutput(t, func() error {
		return NewTableFormatter().Format(report)
	})

	for _, want := range []string{"ignored", "late", "in progress"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing status %q\noutput:\n%s", want, out)
		}
	}
}

func TestTableFormatterEmptyReport(t *testing.T) {
	color.NoColor = true

	report := &Report{
		Analysis: &model.Analysis{Data: map[string]float64{}},
		CapHours: 8,
	}

	out := captureOutput(t, func() error {
		return NewTableFormatter().Format(report)
	})

	if !strings.Contains(out, "Date") {
		t.Errorf("expected header row even with no data, got:\n%s", out)
	}
	if strings.Contains(out, "Total") {
		t.Errorf("no total row expected for an empty report, got:\n%s", out)
	}
}
