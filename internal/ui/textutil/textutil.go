// Package textutil measures and fits text to terminal cells.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// StyledWidth is Width for strings that may carry ANSI escapes.
func StyledWidth(s string) int {
	return lipgloss.Width(s)
}

// Truncate fits s into maxWidth columns, ending with Ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// PadRight fits s into exactly width columns.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = Truncate(s, width)
	return runewidth.FillRight(s, width)
}

// Block fits text into a width x height block: every line padded or cut to
// width, missing lines blank, extra lines dropped.
func Block(text string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	var lines []string
	if text != "" {
		lines = strings.Split(text, "\n")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	out := make([]string, height)
	for i := range out {
		if i < len(lines) {
			out[i] = PadRight(lines[i], width)
		} else {
			out[i] = strings.Repeat(" ", width)
		}
	}
	return strings.Join(out, "\n")
}
