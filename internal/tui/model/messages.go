package model

import (
	"kubeview/internal/kube"
	"kubeview/pkg/logging"
)

// ClusterStateMsg carries the result of a refresh.
type ClusterStateMsg struct {
	State kube.ClusterState
	Err   error
}

// PromptCompletedMsg is emitted once every step of a prompt flow was
// answered. It is translated into exactly one facade call.
type PromptCompletedMsg struct {
	Action Action
	Values []string
}

// PromptCancelledMsg is emitted when a flow is aborted.
type PromptCancelledMsg struct {
	Action Action
}

// CreateResultMsg carries the result of a create call.
type CreateResultMsg struct {
	Action Action
	Values []string
	Err    error
}

// ReloadResultMsg carries the result of rebuilding the cluster client.
type ReloadResultMsg struct {
	Context string
	Err     error
}

// NewLogEntryMsg wraps a log entry received from pkg/logging.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ClearStatusBarMsg clears a temporary status bar message.
type ClearStatusBarMsg struct{}
