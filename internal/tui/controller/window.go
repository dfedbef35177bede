package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"kubeview/internal/tui/model"
	"kubeview/internal/tui/view"
)

// handleWindowSizeMsg stores the terminal size and refits every sized
// component. The first size message leaves ModeInitializing.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height

	view.ApplyLayout(m)
	m.LogViewport.Width, m.LogViewport.Height = view.LogViewportSize(m.Width, m.Height)
	m.PromptInput.Width = view.PromptInputWidth(m.Width)
	m.Help.Width = m.Width

	if m.CurrentAppMode == model.ModeInitializing {
		m.CurrentAppMode = model.ModeMainDashboard
	}
	return m, nil
}
