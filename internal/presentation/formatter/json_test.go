package formatter

import (
	"math"
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/lhtran/go-attendance-monitor/internal/core/model"
)

func TestJSONFormatterFormat(t *testing.T) {
	out := captureOutput(t, func() error {
		return NewJSONFormatter().Format(sampleReport())
	})

	var decoded struct {
		Analysis struct {
			LateCount      int      `json:"lateCount"`
			FullCount      int      `json:"fullCount"`
			TotalDays      int      `json:"totalDays"`
			LatePercentage *float64 `json:"latePercentage"`
		} `json:"analysis"`
		Days      []DayDetail `json:"days"`
		LeaveTime string      `json:"leaveTime"`
	}
	if err := sonic.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput:\n%s", err, out)
	}

	if decoded.Analysis.LateCount != 1 || decoded.Analysis.FullCount != 2 {
		t.Errorf("unexpected counts: %+v", decoded.Analysis)
	}
	if decoded.Analysis.LatePercentage == nil {
		t.Fatal("latePercentage should be a number here")
	}
	if len(decoded.Days) != 3 {
		t.Errorf("expected 3 day rows, got %d", len(decoded.Days))
	}
	if decoded.LeaveTime != "17:40" {
		t.Errorf("leaveTime = %q, want 17:40", decoded.LeaveTime)
	}
}

func TestJSONFormatterUndefinedPercentage(t *testing.T) {
	report := &Report{
		Analysis: &model.Analysis{LatePercentage: math.NaN(), Data: map[string]float64{}},
		CapHours: 8,
	}

	out := captureOutput(t, func() error {
		return NewJSONFormatter().Format(report)
	})

	if !strings.Contains(out, `"latePercentage": null`) && !strings.Contains(out, `"latePercentage":null`) {
		t.Errorf("NaN percentage must serialize as null, got:\n%s", out)
	}
}
