package utils

import "github.com/mattn/go-runewidth"

// TruncateString shortens s to at most width display cells.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// TruncateWithEllipsis shortens s to width cells, marking the cut with "...".
func TruncateWithEllipsis(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return TruncateString("...", width)
	}
	return runewidth.Truncate(s, width, "...")
}
