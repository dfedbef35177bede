package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"kubeview/internal/tui/model"
)

func TestPanel_Render(t *testing.T) {
	tests := []struct {
		name     string
		panel    *Panel
		contains []string
		width    int
		height   int
	}{
		{
			name:     "title only",
			panel:    NewPanel("Nodes"),
			contains: []string{"Nodes"},
		},
		{
			name:     "title with count",
			panel:    NewPanel("Pods").WithCount(3),
			contains: []string{"Pods (3)"},
		},
		{
			name:     "content and fixed size",
			panel:    NewPanel("Services").WithContent("default  kubernetes").WithDimensions(40, 6),
			contains: []string{"Services", "kubernetes"},
			width:    40,
			height:   6,
		},
		{
			name:     "focused",
			panel:    NewPanel("Nodes").SetFocused(true).WithDimensions(30, 4),
			contains: []string{"Nodes"},
			width:    30,
			height:   4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.panel.Render()
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			if tt.width > 0 {
				assert.Equal(t, tt.width, lipgloss.Width(out))
				assert.Equal(t, tt.height, lipgloss.Height(out))
			}
		})
	}
}

func TestPanel_ClipsOverflowingContent(t *testing.T) {
	content := strings.Join([]string{"a", "b", "c", "d", "e", "f"}, "\n")
	out := NewPanel("Pods").WithContent(content).WithDimensions(20, 5).Render()

	assert.Equal(t, 5, lipgloss.Height(out))
	assert.Contains(t, out, "b")
	assert.NotContains(t, out, "f")
}

func TestStatusBar_Render(t *testing.T) {
	out := NewStatusBar(60).WithLeftText("Nodes: 2").WithRightText("ctx: kind").Render()
	assert.Contains(t, out, "Nodes: 2")
	assert.Contains(t, out, "ctx: kind")
	assert.Equal(t, 60, lipgloss.Width(out))

	out = NewStatusBar(60).
		WithLeftText("Nodes: 2").
		WithMessage("Namespace 'demo' created successfully!", model.StatusBarSuccess).
		Render()
	assert.Contains(t, out, "created successfully")
	assert.NotContains(t, out, "Nodes: 2")

	assert.Empty(t, NewStatusBar(2).WithLeftText("x").Render())
}

func TestHeader_Render(t *testing.T) {
	out := NewHeader("Kubernetes Cluster Info").
		WithSubtitle("kind-dev").
		WithSpinner("*").
		WithRightContent("12:00:00").
		WithWidth(80).
		Render()

	assert.Contains(t, out, "* Kubernetes Cluster Info")
	assert.Contains(t, out, "kind-dev")
	assert.Contains(t, out, "12:00:00")
	assert.Equal(t, 80, lipgloss.Width(out))
}

func TestDialog_Render(t *testing.T) {
	out := NewDialog("Create Pod").WithBody("Enter Pod Name:").WithHint("enter confirm").WithWidth(10).Render()
	assert.Contains(t, out, "Create Pod")
	assert.Contains(t, out, "Enter Pod Name:")
	assert.Equal(t, 40, lipgloss.Width(out))

	out = NewDialog("Error").AsError().WithBody("Failed to create pod: boom").WithWidth(200).Render()
	assert.Contains(t, out, "Failed to create pod: boom")
	assert.Equal(t, 80, lipgloss.Width(out))
}
