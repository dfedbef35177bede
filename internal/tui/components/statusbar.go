package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kubeview/internal/tui/design"
	"kubeview/internal/tui/model"
	"kubeview/internal/tui/utils"
)

// StatusBar is the single status line at the bottom of the dashboard.
type StatusBar struct {
	Message     string
	MessageType model.MessageType
	LeftText    string
	RightText   string
	Width       int
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{Width: width}
}

// WithMessage sets the transient message shown in the centre.
func (s *StatusBar) WithMessage(msg string, msgType model.MessageType) *StatusBar {
	s.Message = msg
	s.MessageType = msgType
	return s
}

// WithLeftText sets the left text
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

func (s *StatusBar) style() lipgloss.Style {
	if s.Message == "" {
		return design.StatusBarStyle
	}
	switch s.MessageType {
	case model.StatusBarSuccess:
		return design.StatusBarSuccessStyle
	case model.StatusBarError:
		return design.StatusBarErrorStyle
	case model.StatusBarWarning:
		return design.StatusBarWarningStyle
	default:
		return design.StatusBarInfoStyle
	}
}

// Render renders the status bar
func (s *StatusBar) Render() string {
	style := s.style()
	inner := s.Width - style.GetHorizontalFrameSize()
	if inner <= 0 {
		return ""
	}

	left := s.LeftText
	if s.Message != "" {
		left = s.Message
	}

	rightWidth := lipgloss.Width(s.RightText)
	if rightWidth > 0 && rightWidth+1 < inner {
		left = utils.TruncateWithEllipsis(left, inner-rightWidth-1)
		gap := inner - lipgloss.Width(left) - rightWidth
		return style.Width(s.Width).Render(left + strings.Repeat(" ", gap) + s.RightText)
	}
	return style.Width(s.Width).Render(utils.TruncateWithEllipsis(left, inner))
}
