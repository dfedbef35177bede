package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next table"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous table"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		CreateNamespace: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "create namespace"),
		),
		CreatePod: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "create pod"),
		),
		CreateService: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "create service"),
		),
		ReloadConfig: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload kubeconfig"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "toggle dark/light mode"),
		),
		ToggleDebug: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "toggle debug info"),
		),
		CopyLogs: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy logs"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
	}
}

// ShortHelp lists the bindings shown in the command bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.CreateNamespace, k.CreatePod, k.CreateService, k.Help, k.Quit}
}

// FullHelp lists every binding, grouped by column, for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Refresh, k.CreateNamespace, k.CreatePod, k.CreateService, k.ReloadConfig},
		{k.Up, k.Down, k.Tab, k.ShiftTab},
		{k.ToggleLog, k.CopyLogs, k.ToggleDebug, k.ToggleDark},
		{k.Help, k.Esc, k.Quit},
	}
}

// InitialModel constructs the initial model with sensible defaults.
func InitialModel(cfg TUIConfig) *Model {
	ti := textinput.New()
	ti.CharLimit = 253
	ti.Width = 50

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	kubeContext := cfg.KubeContext
	if kubeContext == "" && cfg.Reloader != nil {
		kubeContext = cfg.Reloader.CurrentContext()
	}

	m := &Model{
		CurrentAppMode:   ModeInitializing,
		DebugMode:        cfg.DebugMode,
		Facade:           cfg.Facade,
		Reloader:         cfg.Reloader,
		KubeContext:      kubeContext,
		RequestTimeout:   cfg.RequestTimeout,
		PromptInput:      ti,
		ActivityLog:      make([]string, 0),
		ActivityLogDirty: true,
		LogViewport:      viewport.New(0, 0),
		Spinner:          s,
		Keys:             DefaultKeyMap(),
		Help:             help.New(),
		LogChannel:       cfg.LogChannel,
	}
	for i := range m.Tables {
		m.Tables[i] = newTable(TableKey(i))
	}
	m.FocusTable(NodesTable)
	return m
}

// Init starts the spinner, the log listener and the initial refresh.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.Spinner.Tick}
	if m.LogChannel != nil {
		cmds = append(cmds, ListenForLogEntriesCmd(m.LogChannel))
	}
	if m.Facade != nil {
		m.Busy = true
		cmds = append(cmds, FetchClusterStateCmd(m.Facade, m.RequestTimeout))
	}
	return tea.Batch(cmds...)
}
