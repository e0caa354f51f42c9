package formatter

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/lhtran/go-attendance-monitor/internal/util"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(report *Report) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	headers := []string{"Date", "Hours", "Status", "Records"}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, day := range report.Days {
		record := []string{
			day.Date,
			fmt.Sprintf("%.2f", util.Round(day.Duration)),
			dayStatus(day, report.CapHours),
			strings.Join(day.Records, "; "),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}
