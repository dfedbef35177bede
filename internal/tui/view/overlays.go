package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"kubeview/internal/tui/components"
	"kubeview/internal/tui/design"
	"kubeview/internal/tui/model"
)

func renderPromptDialog(m *model.Model) string {
	if m.Prompt == nil {
		return ""
	}
	title := m.Prompt.Action.String()
	if n := len(m.Prompt.Steps); n > 1 {
		title = fmt.Sprintf("%s (%d/%d)", title, m.Prompt.StepIndex()+1, n)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.Prompt.Current().Label,
		design.InputStyle.Render(m.PromptInput.View()),
	)
	return components.NewDialog(title).
		WithBody(body).
		WithHint("enter confirm • esc cancel").
		WithWidth(overlayWidth(m.Width)).
		Render()
}

func renderErrorDialog(m *model.Model) string {
	return components.NewDialog(SafeIcon(IconCross) + m.ErrorTitle).
		AsError().
		WithBody(m.ErrorDetail).
		WithHint("enter/esc dismiss").
		WithWidth(overlayWidth(m.Width)).
		Render()
}

func renderHelpOverlay(m *model.Model) string {
	title := design.HelpTitleStyle.Render("Shortcuts")
	h := m.Help
	h.ShowAll = true
	return design.CenteredOverlayContainerStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, title, h.View(m.Keys)),
	)
}

// PromptInputWidth is the text input width that fits the prompt dialog on a
// terminal w cells wide.
func PromptInputWidth(w int) int {
	dw := min(max(overlayWidth(w), design.MinDialogWidth), design.MaxDialogWidth)
	// dialog frame, input frame, prompt marker and cursor
	return max(dw-design.DialogStyle.GetHorizontalFrameSize()-design.InputStyle.GetHorizontalFrameSize()-3, 1)
}
