package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"kubeview/internal/tui/model"
	"kubeview/internal/tui/view"
)

// AppModel adapts *model.Model to tea.Model, routing updates through the
// controller and rendering through the view package.
type AppModel struct {
	model *model.Model
}

// NewAppModel wraps m.
func NewAppModel(m *model.Model) *AppModel {
	return &AppModel{model: m}
}

func (a *AppModel) Init() tea.Cmd {
	return a.model.Init()
}

func (a *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.model, cmd = Update(msg, a.model)
	return a, cmd
}

func (a *AppModel) View() string {
	return view.Render(a.model)
}
