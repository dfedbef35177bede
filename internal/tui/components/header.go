package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kubeview/internal/tui/design"
)

// Header renders the top line of the dashboard.
type Header struct {
	Title        string
	Subtitle     string
	Spinner      string
	ShowSpinner  bool
	RightContent string
	Width        int
}

// NewHeader creates a new header component
func NewHeader(title string) *Header {
	return &Header{Title: title}
}

// WithSubtitle sets the subtitle
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.Subtitle = subtitle
	return h
}

// WithSpinner shows the given spinner frame before the title.
func (h *Header) WithSpinner(frame string) *Header {
	h.Spinner = frame
	h.ShowSpinner = frame != ""
	return h
}

// WithRightContent sets content for the right side
func (h *Header) WithRightContent(content string) *Header {
	h.RightContent = content
	return h
}

// WithWidth sets the header width
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// Render renders the header
func (h *Header) Render() string {
	var left strings.Builder
	if h.ShowSpinner {
		left.WriteString(h.Spinner)
		left.WriteString(" ")
	}
	left.WriteString(h.Title)
	if h.Subtitle != "" {
		left.WriteString(design.TextSecondaryStyle.Render(" - " + h.Subtitle))
	}

	style := design.HeaderStyle
	if h.Width <= 0 {
		return style.Render(left.String())
	}

	inner := h.Width - style.GetHorizontalFrameSize()
	leftText := left.String()
	gap := inner - lipgloss.Width(leftText) - lipgloss.Width(h.RightContent)
	if h.RightContent == "" || gap < 1 {
		return style.Width(h.Width).Render(leftText)
	}
	return style.Width(h.Width).Render(leftText + strings.Repeat(" ", gap) + h.RightContent)
}
