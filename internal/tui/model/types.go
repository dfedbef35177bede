package model

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"kubeview/internal/kube"
	"kubeview/pkg/logging"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeInitializing AppMode = iota
	ModeMainDashboard
	ModePrompt
	ModeErrorDialog
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeInitializing:
		return "Initializing"
	case ModeMainDashboard:
		return "MainDashboard"
	case ModePrompt:
		return "Prompt"
	case ModeErrorDialog:
		return "ErrorDialog"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// TableKey identifies one of the three dashboard tables.
type TableKey int

const (
	NodesTable TableKey = iota
	PodsTable
	ServicesTable
)

const tableCount = 3

// Title is the table heading shown above it.
func (k TableKey) Title() string {
	switch k {
	case NodesTable:
		return "Nodes"
	case PodsTable:
		return "Pods"
	case ServicesTable:
		return "Services"
	default:
		return ""
	}
}

// Constants for UI
const (
	MaxActivityLogLines = 1000
	AppTitle            = "Kubernetes Cluster Info"
)

// Reloader rebuilds the cluster client from kubeconfig.
type Reloader interface {
	Reload() error
	CurrentContext() string
}

// TUIConfig carries everything the dashboard needs from the command line.
type TUIConfig struct {
	Facade         kube.Facade
	Reloader       Reloader
	KubeContext    string
	DebugMode      bool
	RequestTimeout time.Duration
	LogChannel     <-chan logging.LogEntry
}

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up              key.Binding
	Down            key.Binding
	Tab             key.Binding
	ShiftTab        key.Binding
	Enter           key.Binding
	Esc             key.Binding
	Quit            key.Binding
	Help            key.Binding
	Refresh         key.Binding
	CreateNamespace key.Binding
	CreatePod       key.Binding
	CreateService   key.Binding
	ReloadConfig    key.Binding
	ToggleDark      key.Binding
	ToggleDebug     key.Binding
	CopyLogs        key.Binding
	ToggleLog       key.Binding
}

// Model represents the state of the dashboard.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	CurrentAppMode  AppMode
	LastAppMode     AppMode
	DebugMode       bool
	Busy            bool
	QuittingMessage string

	// Cluster access
	Facade         kube.Facade
	Reloader       Reloader
	KubeContext    string
	RequestTimeout time.Duration

	// Cluster state, replaced wholesale on each successful refresh
	State       kube.ClusterState
	LastRefresh time.Time
	Tables      [tableCount]table.Model
	FocusedKey  TableKey

	// Prompt and error dialog
	Prompt      *PromptFlow
	PromptInput textinput.Model
	ErrorTitle  string
	ErrorDetail string

	// UI State & Output
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	LogViewportLastWidth int
	Spinner              spinner.Model
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Logging
	LogChannel <-chan logging.LogEntry
}

// FocusedTable returns the table that receives navigation keys.
func (m *Model) FocusedTable() *table.Model {
	return &m.Tables[m.FocusedKey]
}

// FocusTable moves keyboard focus to k.
func (m *Model) FocusTable(k TableKey) {
	for i := range m.Tables {
		if TableKey(i) == k {
			m.Tables[i].Focus()
		} else {
			m.Tables[i].Blur()
		}
	}
	m.FocusedKey = k
}

// CycleFocus moves focus forward (delta 1) or backward (delta -1).
func (m *Model) CycleFocus(delta int) {
	next := (int(m.FocusedKey) + delta + tableCount) % tableCount
	m.FocusTable(TableKey(next))
}

// SetStatusMessage updates the status bar message. A positive clearAfter
// schedules a ClearStatusBarMsg; otherwise the message stays until replaced.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
		m.StatusBarClearCancel = nil
	}
	if clearAfter <= 0 {
		return nil
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}
