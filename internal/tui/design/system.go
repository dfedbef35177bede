package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Spacing units, in terminal cells.
const (
	spaceXS = 1
	spaceSM = 2

	// Component dimensions
	MinPanelHeight = 4
	MinPanelWidth  = 20
	MinDialogWidth = 40
	MaxDialogWidth = 80
)

// Color Palette - Semantic colors with light/dark mode support
var (
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#326CE5",
		Dark:  "#5B8DEF",
	}
	ColorSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}

	// State Colors
	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}

	// Neutral Colors
	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#0F0F0F",
	}
	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#F9FAFB",
		Dark:  "#1A1A1A",
	}
	ColorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#F3F4F6",
		Dark:  "#262626",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#D1D5DB",
		Dark:  "#404040",
	}
	ColorBorderFocus = ColorPrimary

	// Text Colors
	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}
	ColorBackgroundOverlay = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#1E1E1E",
	}
)

// Text Styles
var (
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(ColorTextSecondary)
	TextSuccessStyle   = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextErrorStyle     = lipgloss.NewStyle().Foreground(ColorError)
	TextWarningStyle   = lipgloss.NewStyle().Foreground(ColorWarning)
	DimStyle           = lipgloss.NewStyle().Foreground(ColorTextMuted)
)

// Component Styles
var (
	// Table panels keep vertical padding at zero so the table owns every row.
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, spaceXS)

	PanelFocusedStyle = PanelStyle.
				Border(lipgloss.ThickBorder()).
				BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	PanelTitleFocusedStyle = PanelTitleStyle.
				Foreground(ColorPrimary)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(0, spaceSM)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, spaceSM).
			Height(1)

	StatusBarSuccessStyle = StatusBarStyle.
				Background(ColorSuccess).
				Foreground(ColorBackground)

	StatusBarErrorStyle = StatusBarStyle.
				Background(ColorError).
				Foreground(ColorBackground)

	StatusBarWarningStyle = StatusBarStyle.
				Background(ColorWarning).
				Foreground(ColorBackground)

	StatusBarInfoStyle = StatusBarStyle.
				Background(ColorInfo).
				Foreground(ColorBackground)

	CommandBarStyle = lipgloss.NewStyle().
			Padding(0, spaceSM)

	BusyStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Italic(true)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorderFocus).
			Padding(0, spaceXS)

	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderFocus).
			Background(ColorBackgroundOverlay).
			Foreground(ColorText).
			Padding(1, spaceSM)

	ErrorDialogStyle = DialogStyle.
				BorderForeground(ColorError)

	DialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				MarginBottom(1).
				Foreground(ColorText)

	ErrorDialogTitleStyle = DialogTitleStyle.
				Foreground(ColorError)

	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1).
			Align(lipgloss.Center).
			Foreground(ColorText)

	CenteredOverlayContainerStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(ColorBorder).
					Background(ColorBackgroundOverlay).
					Foreground(ColorText).
					Padding(1, spaceSM)

	LogOverlayStyle = CenteredOverlayContainerStyle

	LogPanelTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				MarginBottom(1).
				Foreground(ColorText)
)

// Log level styles
var (
	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorText)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
)

// NodeStatusStyle colors the Status cell of the Nodes table.
func NodeStatusStyle(status string) lipgloss.Style {
	if status == "Ready" {
		return TextSuccessStyle
	}
	return TextErrorStyle
}

// PodPhaseStyle colors a pod phase.
func PodPhaseStyle(phase string) lipgloss.Style {
	switch phase {
	case "Running", "Succeeded":
		return TextSuccessStyle
	case "Pending":
		return TextWarningStyle
	case "Failed":
		return TextErrorStyle
	default:
		return TextSecondaryStyle
	}
}
