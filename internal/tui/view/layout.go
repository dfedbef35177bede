package view

import (
	"kubeview/internal/tui/design"
	"kubeview/internal/tui/model"
)

const (
	headerHeight     = 1
	commandBarHeight = 1
	statusBarHeight  = 1
	panelTitleHeight = 1
)

// Layout holds the dimensions of the three stacked table panels.
type Layout struct {
	PanelWidth  int
	PanelHeight [3]int
	TableWidth  int
	TableHeight [3]int
}

// DashboardLayout splits a terminal of width x height between the header,
// the three table panels, the command bar and the status line. Leftover
// rows go to the Pods panel, which is usually the longest.
func DashboardLayout(width, height int) Layout {
	var l Layout
	l.PanelWidth = width
	if l.PanelWidth < design.MinPanelWidth {
		l.PanelWidth = design.MinPanelWidth
	}
	l.TableWidth = l.PanelWidth - design.PanelStyle.GetHorizontalFrameSize()

	avail := height - headerHeight - commandBarHeight - statusBarHeight
	each := avail / 3
	if each < design.MinPanelHeight {
		each = design.MinPanelHeight
	}
	for i := range l.PanelHeight {
		l.PanelHeight[i] = each
	}
	if rest := avail - 3*each; rest > 0 {
		l.PanelHeight[model.PodsTable] += rest
	}

	for i, h := range l.PanelHeight {
		l.TableHeight[i] = h - design.PanelStyle.GetVerticalFrameSize() - panelTitleHeight
	}
	return l
}

// ApplyLayout resizes the tables of m to fit its current window size.
func ApplyLayout(m *model.Model) {
	l := DashboardLayout(m.Width, m.Height)
	for i := range m.Tables {
		m.ResizeTable(model.TableKey(i), l.TableWidth, l.TableHeight[i])
	}
}
