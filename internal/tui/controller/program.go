package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"kubeview/internal/tui/model"
)

// NewProgram builds the dashboard program on the alternate screen.
func NewProgram(cfg model.TUIConfig) *tea.Program {
	m := model.InitialModel(cfg)
	return tea.NewProgram(NewAppModel(m), tea.WithAltScreen())
}
