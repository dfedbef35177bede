package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"kubeview/internal/tui/model"
)

// handleKeyMsgInputMode drives the open prompt. Enter answers the current
// step, esc cancels the whole flow and every other key edits the input.
func handleKeyMsgInputMode(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if m.Prompt == nil {
		m.CurrentAppMode = model.ModeMainDashboard
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return cancelPrompt(m)
	case "enter":
		flow := m.Prompt
		switch flow.Submit(m.PromptInput.Value()) {
		case model.PromptNext:
			resetPromptInput(m)
			return m, nil
		case model.PromptCompleted:
			closePrompt(m)
			// Held until the create result arrives.
			m.Busy = true
			done := model.PromptCompletedMsg{Action: flow.Action, Values: flow.Values}
			return m, func() tea.Msg { return done }
		default:
			return cancelPrompt(m)
		}
	}

	var cmd tea.Cmd
	m.PromptInput, cmd = m.PromptInput.Update(keyMsg)
	return m, cmd
}

func cancelPrompt(m *model.Model) (*model.Model, tea.Cmd) {
	a := m.Prompt.Action
	closePrompt(m)
	return m, func() tea.Msg { return model.PromptCancelledMsg{Action: a} }
}
