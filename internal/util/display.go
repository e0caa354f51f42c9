package util

import (
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const defaultTerminalWidth = 80

// TerminalWidth returns the current terminal width in columns, falling back
// to a default when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}

// DisplayWidth calculates the display width of a string, accounting for
// wide runes.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// TruncateString shortens text to at most width display columns, appending
// an ellipsis when anything was cut.
func TruncateString(text string, width int) string {
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width <= 1 {
		return runewidth.Truncate(text, width, "")
	}
	return runewidth.Truncate(text, width, "…")
}

// PadRight pads text with spaces to the given display width.
func PadRight(text string, width int) string {
	return runewidth.FillRight(text, width)
}
