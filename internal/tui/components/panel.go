package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kubeview/internal/tui/design"
)

// Panel frames a titled block of content, typically one of the tables.
type Panel struct {
	Title   string
	Count   int
	Content string
	Width   int
	Height  int
	Focused bool
}

// NewPanel creates a new panel
func NewPanel(title string) *Panel {
	return &Panel{Title: title, Count: -1}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithCount appends an item count to the title.
func (p *Panel) WithCount(n int) *Panel {
	p.Count = n
	return p
}

// WithDimensions sets the outer panel dimensions
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// SetFocused sets whether the panel is focused
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// Render renders the panel
func (p *Panel) Render() string {
	style := design.PanelStyle
	titleStyle := design.PanelTitleStyle
	if p.Focused {
		style = design.PanelFocusedStyle
		titleStyle = design.PanelTitleFocusedStyle
	}

	title := p.Title
	if p.Count >= 0 {
		title = fmt.Sprintf("%s (%d)", p.Title, p.Count)
	}

	body := titleStyle.Render(title)
	if p.Content != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, p.Content)
	}

	if p.Width <= 0 || p.Height <= 0 {
		return style.Render(body)
	}

	innerHeight := p.Height - style.GetVerticalFrameSize()
	if innerHeight < 1 {
		innerHeight = 1
	}
	lines := strings.Split(body, "\n")
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	return style.
		Width(p.Width - style.GetHorizontalBorderSize()).
		Height(innerHeight).
		Render(strings.Join(lines, "\n"))
}
