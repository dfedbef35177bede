package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kubeview/internal/tui/design"
	"kubeview/internal/tui/model"
)

// logTitleHeight is the title line plus its bottom margin.
const logTitleHeight = 2

// LogOverlaySize returns the outer size of the activity log overlay for a
// terminal of width x height.
func LogOverlaySize(width, height int) (int, int) {
	return width * 4 / 5, height * 4 / 5
}

// LogViewportSize returns the viewport size that fits inside the log overlay.
func LogViewportSize(width, height int) (int, int) {
	ow, oh := LogOverlaySize(width, height)
	vw := ow - design.LogOverlayStyle.GetHorizontalFrameSize()
	vh := oh - design.LogOverlayStyle.GetVerticalFrameSize() - logTitleHeight
	return max(vw, 0), max(vh, 0)
}

func renderLogOverlay(m *model.Model) string {
	width, height := LogOverlaySize(m.Width, m.Height)
	title := design.LogPanelTitleStyle.Render("Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	return design.LogOverlayStyle.
		Width(width - design.LogOverlayStyle.GetHorizontalBorderSize()).
		Height(height - design.LogOverlayStyle.GetVerticalBorderSize()).
		Render(content)
}

// PrepareLogContent styles each activity log line by its level marker.
// Lines longer than maxWidth are left for the viewport to clip.
func PrepareLogContent(lines []string, maxWidth int) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = styleLogLine(l)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
