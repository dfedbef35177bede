package model

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"kubeview/internal/kube"
	"kubeview/pkg/logging"
)

func callContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(context.Background(), timeout)
	}
	return context.WithCancel(context.Background())
}

// FetchClusterStateCmd lists nodes, pods and services off the event loop.
func FetchClusterStateCmd(f kube.Facade, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := callContext(timeout)
		defer cancel()

		state, err := f.ListClusterState(ctx)
		return ClusterStateMsg{State: state, Err: err}
	}
}

// CreateResourceCmd performs the single facade call for a completed prompt.
func CreateResourceCmd(f kube.Facade, action Action, values []string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := callContext(timeout)
		defer cancel()

		err := action.Invoke(ctx, f, values)
		return CreateResultMsg{Action: action, Values: values, Err: err}
	}
}

// ReloadClientCmd rebuilds the cluster client from kubeconfig.
func ReloadClientCmd(r Reloader) tea.Cmd {
	return func() tea.Msg {
		err := r.Reload()
		return ReloadResultMsg{Context: r.CurrentContext(), Err: err}
	}
}

// ListenForLogEntriesCmd waits for the next entry on ch. It returns nil once
// the channel is closed.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
