package controller

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"kubeview/internal/tui/model"
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

func handleKeyMsg(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if keyMsg.String() == "ctrl+c" {
		return quit(m)
	}
	switch m.CurrentAppMode {
	case model.ModePrompt:
		return handleKeyMsgInputMode(m, keyMsg)
	case model.ModeErrorDialog:
		return handleKeyMsgErrorDialog(m, keyMsg)
	default:
		return handleKeyMsgGlobal(m, keyMsg)
	}
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Bye."
	return m, tea.Quit
}

func handleKeyMsgErrorDialog(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(keyMsg, m.Keys.Enter, m.Keys.Esc) {
		m.ErrorTitle = ""
		m.ErrorDetail = ""
		m.CurrentAppMode = model.ModeMainDashboard
	}
	return m, nil
}

// handleKeyMsgGlobal handles keys on the dashboard and the read-only overlays.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(keyMsg, m.Keys.Quit) {
		return quit(m)
	}

	if m.CurrentAppMode == model.ModeLogOverlay {
		switch keyMsg.String() {
		case "L", "esc":
			m.CurrentAppMode = model.ModeMainDashboard
			return m, nil
		case "y":
			if err := clipboardWrite(strings.Join(m.ActivityLog, "\n")); err != nil {
				LogError(err, "Failed to copy logs")
				return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, statusShort)
			}
			return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, statusShort)
		case "k", "up", "j", "down", "pgup", "pgdown", "home", "end":
			var cmd tea.Cmd
			m.LogViewport, cmd = m.LogViewport.Update(keyMsg)
			return m, cmd
		default:
			return m, nil
		}
	}

	if m.CurrentAppMode == model.ModeHelpOverlay && key.Matches(keyMsg, m.Keys.Esc) {
		m.CurrentAppMode = model.ModeMainDashboard
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Help):
		if m.CurrentAppMode == model.ModeHelpOverlay {
			m.CurrentAppMode = model.ModeMainDashboard
		} else {
			m.CurrentAppMode = model.ModeHelpOverlay
		}
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleDark):
		lipgloss.SetHasDarkBackground(!lipgloss.HasDarkBackground())
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleDebug):
		m.DebugMode = !m.DebugMode
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.ActivityLogDirty = true
		return m, nil
	}

	if m.CurrentAppMode == model.ModeHelpOverlay {
		return m, nil
	}
	return handleKeyMsgDashboard(m, keyMsg)
}

func handleKeyMsgDashboard(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Tab):
		m.CycleFocus(1)
		return m, nil
	case key.Matches(keyMsg, m.Keys.ShiftTab):
		m.CycleFocus(-1)
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Refresh):
		return guarded(m, func() tea.Cmd { return startRefresh(m) })
	case key.Matches(keyMsg, m.Keys.ReloadConfig):
		return guarded(m, func() tea.Cmd { return startReload(m) })
	case key.Matches(keyMsg, m.Keys.CreateNamespace):
		return guarded(m, func() tea.Cmd { return startPrompt(m, model.ActionCreateNamespace) })
	case key.Matches(keyMsg, m.Keys.CreatePod):
		return guarded(m, func() tea.Cmd { return startPrompt(m, model.ActionCreatePod) })
	case key.Matches(keyMsg, m.Keys.CreateService):
		return guarded(m, func() tea.Cmd { return startPrompt(m, model.ActionCreateService) })
	}

	t := m.FocusedTable()
	var cmd tea.Cmd
	*t, cmd = t.Update(keyMsg)
	return m, cmd
}

// guarded runs start unless another operation is in flight.
func guarded(m *model.Model, start func() tea.Cmd) (*model.Model, tea.Cmd) {
	if m.Busy {
		return m, m.SetStatusMessage("Busy: wait for the current operation to finish", model.StatusBarWarning, statusShort)
	}
	return m, start()
}
