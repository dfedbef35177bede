package components

import (
	"github.com/charmbracelet/lipgloss"

	"kubeview/internal/tui/design"
)

// Dialog is a centered modal box with a title, a body and a hint line.
type Dialog struct {
	Title string
	Body  string
	Hint  string
	Error bool
	Width int
}

// NewDialog creates a new dialog
func NewDialog(title string) *Dialog {
	return &Dialog{Title: title}
}

// WithBody sets the body
func (d *Dialog) WithBody(body string) *Dialog {
	d.Body = body
	return d
}

// WithHint sets the dimmed hint shown under the body.
func (d *Dialog) WithHint(hint string) *Dialog {
	d.Hint = hint
	return d
}

// AsError switches the dialog to the error palette.
func (d *Dialog) AsError() *Dialog {
	d.Error = true
	return d
}

// WithWidth sets the dialog width; it is clamped to the design limits.
func (d *Dialog) WithWidth(width int) *Dialog {
	d.Width = width
	return d
}

// Render renders the dialog
func (d *Dialog) Render() string {
	style := design.DialogStyle
	titleStyle := design.DialogTitleStyle
	if d.Error {
		style = design.ErrorDialogStyle
		titleStyle = design.ErrorDialogTitleStyle
	}

	width := d.Width
	if width < design.MinDialogWidth {
		width = design.MinDialogWidth
	}
	if width > design.MaxDialogWidth {
		width = design.MaxDialogWidth
	}
	inner := width - style.GetHorizontalFrameSize()

	parts := []string{titleStyle.Render(d.Title)}
	if d.Body != "" {
		parts = append(parts, lipgloss.NewStyle().Width(inner).Render(d.Body))
	}
	if d.Hint != "" {
		parts = append(parts, "", design.DimStyle.Render(d.Hint))
	}
	return style.Width(width - style.GetHorizontalBorderSize()).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
