package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"kubeview/internal/tui/model"
	"kubeview/internal/tui/view"
	"kubeview/pkg/logging"
)

// Update is the single entry point for every message the program receives.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m, cmd = handleWindowSizeMsg(m, msg)
	case tea.KeyMsg:
		m, cmd = handleKeyMsg(m, msg)
	case model.ClusterStateMsg:
		m, cmd = handleClusterStateMsg(m, msg)
	case model.PromptCompletedMsg:
		m, cmd = handlePromptCompletedMsg(m, msg)
	case model.PromptCancelledMsg:
		LogDebug(m, "%s cancelled", msg.Action)
	case model.CreateResultMsg:
		m, cmd = handleCreateResultMsg(m, msg)
	case model.ReloadResultMsg:
		m, cmd = handleReloadResultMsg(m, msg)
	case model.NewLogEntryMsg:
		handleNewLogEntry(m, msg)
		cmd = model.ListenForLogEntriesCmd(m.LogChannel)
	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		if m.StatusBarClearCancel != nil {
			close(m.StatusBarClearCancel)
			m.StatusBarClearCancel = nil
		}
	case spinner.TickMsg:
		m.Spinner, cmd = m.Spinner.Update(msg)
	default:
		if m.CurrentAppMode == model.ModePrompt {
			m.PromptInput, cmd = m.PromptInput.Update(msg)
		}
	}
	cmds = append(cmds, cmd)

	refreshLogViewport(m)
	return m, tea.Batch(cmds...)
}

func refreshLogViewport(m *model.Model) {
	if m.CurrentAppMode != model.ModeLogOverlay {
		return
	}
	if !m.ActivityLogDirty && m.LogViewport.Width == m.LogViewportLastWidth {
		return
	}
	atBottom := m.LogViewport.AtBottom()
	m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
	if atBottom || m.ActivityLogDirty {
		m.LogViewport.GotoBottom()
	}
	m.ActivityLogDirty = false
	m.LogViewportLastWidth = m.LogViewport.Width
}

// handleNewLogEntry formats an entry for the activity log. Debug entries are
// kept only in debug mode.
func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) {
	e := msg.Entry
	if !m.DebugMode && e.Level < logging.LevelInfo {
		return
	}
	line := fmt.Sprintf("%s [%s] [%s] %s", e.Timestamp.Format("15:04:05.000"), e.Level, e.Subsystem, e.Message)
	if e.Err != nil {
		line += fmt.Sprintf(" -- Error: %v", e.Err)
	}
	model.AddRawLineToActivityLog(m, line)
}
