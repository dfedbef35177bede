package model

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"kubeview/internal/kube"
)

// column holds a header and its share of the table width.
type column struct {
	title  string
	weight int
}

var tableColumns = [tableCount][]column{
	NodesTable:    {{"Node Name", 3}, {"Status", 2}},
	PodsTable:     {{"Namespace", 2}, {"Pod Name", 3}, {"Status", 2}},
	ServicesTable: {{"Namespace", 2}, {"Service Name", 3}},
}

// ColumnTitles returns the header titles of table k.
func ColumnTitles(k TableKey) []string {
	titles := make([]string, 0, len(tableColumns[k]))
	for _, c := range tableColumns[k] {
		titles = append(titles, c.title)
	}
	return titles
}

// columnsFor splits width among the columns of k by weight. Each cell carries
// one column of padding on both sides.
func columnsFor(k TableKey, width int) []table.Column {
	cols := tableColumns[k]
	totalWeight := 0
	for _, c := range cols {
		totalWeight += c.weight
	}
	usable := width - 2*len(cols)
	if usable < len(cols)*4 {
		usable = len(cols) * 4
	}

	out := make([]table.Column, 0, len(cols))
	remaining := usable
	for i, c := range cols {
		w := usable * c.weight / totalWeight
		if i == len(cols)-1 {
			w = remaining
		}
		remaining -= w
		out = append(out, table.Column{Title: c.title, Width: w})
	}
	return out
}

func newTable(k TableKey) table.Model {
	t := table.New(
		table.WithColumns(columnsFor(k, 60)),
		table.WithRows([]table.Row{}),
		table.WithHeight(5),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(styles)
	return t
}

// NodeTableRows projects node rows into table rows.
func NodeTableRows(rows []kube.NodeRow) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, table.Row{r.Name, r.Status})
	}
	return out
}

// PodTableRows projects pod rows into table rows.
func PodTableRows(rows []kube.PodRow) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, table.Row{r.Namespace, r.Name, r.Phase})
	}
	return out
}

// ServiceTableRows projects service rows into table rows.
func ServiceTableRows(rows []kube.ServiceRow) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, table.Row{r.Namespace, r.Name})
	}
	return out
}

// ApplyClusterState replaces all three tables with state.
func (m *Model) ApplyClusterState(state kube.ClusterState) {
	m.State = state
	m.Tables[NodesTable].SetRows(NodeTableRows(state.Nodes))
	m.Tables[PodsTable].SetRows(PodTableRows(state.Pods))
	m.Tables[ServicesTable].SetRows(ServiceTableRows(state.Services))
}

// ResizeTable fits table k into width columns and height rows.
func (m *Model) ResizeTable(k TableKey, width, height int) {
	if height < 3 {
		height = 3
	}
	m.Tables[k].SetColumns(columnsFor(k, width))
	m.Tables[k].SetWidth(width)
	m.Tables[k].SetHeight(height)
}
