package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"kubeview/internal/tui/components"
	"kubeview/internal/tui/design"
	"kubeview/internal/tui/model"
)

// Render projects the model onto the terminal.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return m.QuittingMessage
	case model.ModeInitializing:
		if m.Width == 0 || m.Height == 0 {
			return "Initializing..."
		}
		return renderDashboard(m)
	case model.ModePrompt:
		return place(m, renderPromptDialog(m))
	case model.ModeErrorDialog:
		return place(m, renderErrorDialog(m))
	case model.ModeHelpOverlay:
		return place(m, renderHelpOverlay(m))
	case model.ModeLogOverlay:
		return place(m, renderLogOverlay(m))
	default:
		return renderDashboard(m)
	}
}

func place(m *model.Model, box string) string {
	if m.Width == 0 || m.Height == 0 {
		return box
	}
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}

func renderDashboard(m *model.Model) string {
	l := DashboardLayout(m.Width, m.Height)

	sections := make([]string, 0, 6)
	sections = append(sections, renderHeader(m))
	for i := range m.Tables {
		k := model.TableKey(i)
		panel := components.NewPanel(k.Title()).
			WithCount(len(m.Tables[k].Rows())).
			WithContent(m.Tables[k].View()).
			WithDimensions(l.PanelWidth, l.PanelHeight[k]).
			SetFocused(k == m.FocusedKey)
		sections = append(sections, panel.Render())
	}
	sections = append(sections, renderCommandBar(m), renderStatusBar(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func contextLabel(m *model.Model) string {
	if m.KubeContext == "" {
		return "no context"
	}
	return m.KubeContext
}

func renderHeader(m *model.Model) string {
	h := components.NewHeader(SafeIcon(IconCluster) + model.AppTitle).
		WithSubtitle(contextLabel(m)).
		WithWidth(m.Width)
	if m.Busy {
		h.WithSpinner(m.Spinner.View())
	}
	if !m.LastRefresh.IsZero() {
		h.WithRightContent("Updated " + m.LastRefresh.Format("15:04:05"))
	}
	return h.Render()
}

func renderCommandBar(m *model.Model) string {
	h := m.Help
	h.Width = m.Width - design.CommandBarStyle.GetHorizontalFrameSize()
	bar := h.ShortHelpView(m.Keys.ShortHelp())
	if m.Busy {
		bar = design.BusyStyle.Render("working…") + "  " + bar
	}
	return design.CommandBarStyle.Render(bar)
}

func renderStatusBar(m *model.Model) string {
	summary := fmt.Sprintf("Nodes: %d  Pods: %d  Services: %d",
		len(m.State.Nodes), len(m.State.Pods), len(m.State.Services))
	if m.DebugMode {
		summary += "  [debug]"
	}
	sb := components.NewStatusBar(m.Width).
		WithLeftText(summary).
		WithRightText("ctx: " + contextLabel(m))
	if m.StatusBarMessage != "" {
		sb.WithMessage(statusIcon(m.StatusBarMessageType)+m.StatusBarMessage, m.StatusBarMessageType)
	}
	return sb.Render()
}

func statusIcon(t model.MessageType) string {
	switch t {
	case model.StatusBarSuccess:
		return SafeIcon(IconCheck)
	case model.StatusBarError:
		return SafeIcon(IconCross)
	case model.StatusBarWarning:
		return SafeIcon(IconWarning)
	default:
		return SafeIcon(IconInfo)
	}
}

// overlayWidth is the preferred width of dialogs for a terminal of width w.
func overlayWidth(w int) int {
	return w * 3 / 5
}
