package view

import "github.com/mattn/go-runewidth"

// SafeIcon pads icon to two cells so columns line up whatever width the
// terminal assigns to the glyph.
func SafeIcon(icon string) string {
	if icon == "" {
		return ""
	}
	if runewidth.StringWidth(icon) >= 2 {
		return icon
	}
	return icon + " "
}

const (
	IconCheck   = "✓"
	IconCross   = "✗"
	IconWarning = "⚠"
	IconInfo    = "ℹ"
	IconCluster = "☸"
)
