package controller

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"kubeview/internal/kube"
	"kubeview/internal/tui/model"
)

const (
	statusShort = 3 * time.Second
	statusLong  = 5 * time.Second
)

var errNoFacade = fmt.Errorf("no cluster client configured")

func startRefresh(m *model.Model) tea.Cmd {
	if m.Facade == nil {
		return m.SetStatusMessage(errNoFacade.Error(), model.StatusBarError, 0)
	}
	m.Busy = true
	LogDebug(m, "Refreshing cluster state")
	return model.FetchClusterStateCmd(m.Facade, m.RequestTimeout)
}

func startReload(m *model.Model) tea.Cmd {
	if m.Reloader == nil {
		LogWarn("Reload requested without a kubeconfig loader")
		return m.SetStatusMessage("Kubeconfig reload is not available", model.StatusBarWarning, statusShort)
	}
	m.Busy = true
	LogInfo("Reloading kubeconfig")
	return model.ReloadClientCmd(m.Reloader)
}

// startPrompt opens the modal prompt for a at its first step.
func startPrompt(m *model.Model, a model.Action) tea.Cmd {
	m.Prompt = model.NewPromptFlow(a)
	m.LastAppMode = m.CurrentAppMode
	m.CurrentAppMode = model.ModePrompt
	resetPromptInput(m)
	return textinput.Blink
}

func resetPromptInput(m *model.Model) {
	m.PromptInput.Reset()
	m.PromptInput.Placeholder = m.Prompt.Current().Placeholder
	m.PromptInput.Prompt = "> "
	m.PromptInput.Focus()
}

func closePrompt(m *model.Model) {
	m.Prompt = nil
	m.PromptInput.Blur()
	m.PromptInput.Reset()
	m.CurrentAppMode = model.ModeMainDashboard
}

func handleClusterStateMsg(m *model.Model, msg model.ClusterStateMsg) (*model.Model, tea.Cmd) {
	m.Busy = false
	if msg.Err != nil {
		LogError(msg.Err, "Failed to fetch cluster state")
		return m, m.SetStatusMessage(fmt.Sprintf("Error fetching cluster info: %v", msg.Err), model.StatusBarError, 0)
	}

	m.ApplyClusterState(msg.State)
	m.LastRefresh = time.Now()
	LogDebug(m, "Cluster state: %d nodes, %d pods, %d services",
		len(msg.State.Nodes), len(msg.State.Pods), len(msg.State.Services))

	if m.StatusBarMessage != "" && m.StatusBarMessageType == model.StatusBarError {
		return m, m.SetStatusMessage("", model.StatusBarInfo, 0)
	}
	return m, nil
}

// handlePromptCompletedMsg issues the create call. The enter key that
// completed the prompt already marked the model busy.
func handlePromptCompletedMsg(m *model.Model, msg model.PromptCompletedMsg) (*model.Model, tea.Cmd) {
	if m.Facade == nil {
		m.Busy = false
		return m, m.SetStatusMessage(errNoFacade.Error(), model.StatusBarError, 0)
	}
	m.Busy = true
	LogInfo("%s %v", msg.Action, msg.Values)
	return m, model.CreateResourceCmd(m.Facade, msg.Action, msg.Values, m.RequestTimeout)
}

func handleCreateResultMsg(m *model.Model, msg model.CreateResultMsg) (*model.Model, tea.Cmd) {
	m.Busy = false
	if msg.Err != nil {
		LogError(msg.Err, "%s failed", msg.Action)
		m.ErrorTitle = "Error"
		if kube.KindOf(msg.Err) == kube.KindConnection {
			m.ErrorTitle = "Connection Error"
		}
		m.ErrorDetail = fmt.Sprintf("Failed to create %s: %v", msg.Action.Resource(), msg.Err)
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeErrorDialog
		return m, nil
	}

	success := msg.Action.SuccessMessage(msg.Values)
	LogInfo("%s", success)
	statusCmd := m.SetStatusMessage(success, model.StatusBarSuccess, statusLong)
	return m, tea.Batch(statusCmd, startRefresh(m))
}

func handleReloadResultMsg(m *model.Model, msg model.ReloadResultMsg) (*model.Model, tea.Cmd) {
	m.Busy = false
	if msg.Err != nil {
		LogError(msg.Err, "Kubeconfig reload failed")
		return m, m.SetStatusMessage(fmt.Sprintf("Reload failed: %v", msg.Err), model.StatusBarError, 0)
	}
	m.KubeContext = msg.Context
	statusCmd := m.SetStatusMessage(fmt.Sprintf("Using context %s", msg.Context), model.StatusBarInfo, statusShort)
	return m, tea.Batch(statusCmd, startRefresh(m))
}
