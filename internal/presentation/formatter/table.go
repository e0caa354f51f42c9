package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/lhtran/go-attendance-monitor/internal/util"
)

// minRecordsWidth keeps the records column readable on narrow terminals.
const minRecordsWidth = 20

type TableFormatter struct {
	headers []string
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{"#", "Date", "Hours", "Status", "Records"},
	}
}

func (f *TableFormatter) Format(report *Report) error {
	rows := f.buildRows(report)
	widths := f.calculateColumnWidths(rows)

	f.printBorder(widths, "top")
	f.printRow(f.headers, widths, nil)
	f.printBorder(widths, "middle")

	var totalHours float64
	for i, row := range rows {
		f.printRow(row, widths, rowColor(report.Days[i], report.CapHours))
		totalHours += report.Days[i].Duration
	}

	if len(rows) > 0 {
		f.printBorder(widths, "middle")
		total := []string{"", "Total", util.FormatHours(totalHours), fmt.Sprintf("%d days", len(rows)), ""}
		f.printRow(total, widths, nil)
	}
	f.printBorder(widths, "bottom")

	if report.LeaveTime != "" {
		fmt.Printf("\nYou may leave at %s\n", report.LeaveTime)
	}

	return nil
}

func (f *TableFormatter) buildRows(report *Report) [][]string {
	rows := make([][]string, 0, len(report.Days))
	for i, day := range report.Days {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			day.Date,
			util.FormatHours(day.Duration),
			dayStatus(day, report.CapHours),
			strings.Join(day.Records, ", "),
		})
	}
	return rows
}

// calculateColumnWidths sizes each column to its content, then shrinks the
// records column so the table fits the terminal.
func (f *TableFormatter) calculateColumnWidths(rows [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.DisplayWidth(header)
	}
	for _, row := range rows {
		for i, value := range row {
			if w := util.DisplayWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}

	// Each column costs width+3 (padding and separator), plus one for the
	// closing border.
	overhead := 1
	fixed := 0
	last := len(widths) - 1
	for i := 0; i < last; i++ {
		fixed += widths[i] + 3
	}
	available := util.TerminalWidth() - fixed - 3 - overhead
	if available < minRecordsWidth {
		available = minRecordsWidth
	}
	if widths[last] > available {
		widths[last] = available
	}
	return widths
}

func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right, separator string

	switch borderType {
	case "top":
		left, middle, right, separator = "┌", "┬", "┐", "─"
	case "middle":
		left, middle, right, separator = "├", "┼", "┤", "─"
	case "bottom":
		left, middle, right, separator = "└", "┴", "┘", "─"
	}

	fmt.Print(left)
	for i, width := range widths {
		fmt.Print(strings.Repeat(separator, width+2))
		if i < len(widths)-1 {
			fmt.Print(middle)
		}
	}
	fmt.Println(right)
}

// printRow prints one row; when colorize is set it is applied to the padded
// cells, after width calculation, so colored rows still line up.
func (f *TableFormatter) printRow(values []string, widths []int, colorize *color.Color) {
	fmt.Print("│")
	for i, value := range values {
		value = util.TruncateString(value, widths[i])
		var cell string
		if i == 0 || i == 2 {
			// Index and hours are right-aligned.
			cell = strings.Repeat(" ", widths[i]-util.DisplayWidth(value)) + value
		} else {
			cell = util.PadRight(value, widths[i])
		}
		if colorize != nil {
			cell = colorize.Sprint(cell)
		}
		fmt.Printf(" %s │", cell)
	}
	fmt.Println()
}

// dayStatus names what the classifier did with the day.
func dayStatus(day DayDetail, capHours float64) string {
	switch {
	case day.Ignored:
		return "ignored"
	case day.Duration >= capHours:
		return "full"
	case day.Today:
		return "in progress"
	default:
		return "late"
	}
}

// rowColor reproduces the severity coloring of the report rows: a full day
// is green, a near-full one yellow, anything shorter red.
func rowColor(day DayDetail, capHours float64) *color.Color {
	switch {
	case day.Ignored || day.Duration >= capHours:
		return color.New(color.FgGreen)
	case day.Today || day.Duration > capHours-1:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}
