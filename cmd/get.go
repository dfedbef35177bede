package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"kubeview/internal/kube"
	"kubeview/internal/tui/design"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print nodes, pods and services once and exit",
		Long: `Lists the nodes, pods (all namespaces) and services (all namespaces)
of the cluster and prints them as three tables. Exits non-zero when the
cluster cannot be listed.`,
		Args: cobra.NoArgs,
		RunE: runGet,
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	cfg, f, err := setupCLI(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(cmd.Context(), cfg.RequestTimeout)
	defer cancel()

	state, err := f.ListClusterState(ctx)
	if err != nil {
		return fmt.Errorf("error fetching cluster info: %w", err)
	}
	printClusterState(cmd.OutOrStdout(), state)
	return nil
}

var tableTitleStyle = lipgloss.NewStyle().Bold(true)

func printClusterState(w io.Writer, state kube.ClusterState) {
	nodes := make([][]string, 0, len(state.Nodes))
	for _, n := range state.Nodes {
		nodes = append(nodes, []string{n.Name, n.Status})
	}
	pods := make([][]string, 0, len(state.Pods))
	for _, p := range state.Pods {
		pods = append(pods, []string{p.Namespace, p.Name, p.Phase})
	}
	services := make([][]string, 0, len(state.Services))
	for _, s := range state.Services {
		services = append(services, []string{s.Namespace, s.Name})
	}

	printTable(w, "Nodes", []string{"Node Name", "Status"}, nodes, cellStyles(nodes, 1, design.NodeStatusStyle))
	printTable(w, "Pods", []string{"Namespace", "Pod Name", "Status"}, pods, cellStyles(pods, 2, design.PodPhaseStyle))
	printTable(w, "Services", []string{"Namespace", "Service Name"}, services, cellStyles(services, -1, nil))
}

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// cellStyles pads every cell and colors the status column by its value.
// statusCol < 0 leaves all cells uncolored.
func cellStyles(rows [][]string, statusCol int, status func(string) lipgloss.Style) table.StyleFunc {
	return func(row, col int) lipgloss.Style {
		if row == table.HeaderRow || col != statusCol || status == nil || row >= len(rows) {
			return cellStyle
		}
		return status(rows[row][col]).Padding(0, 1)
	}
}

func printTable(w io.Writer, title string, headers []string, rows [][]string, styles table.StyleFunc) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(styles)
	fmt.Fprintf(w, "%s (%d)\n%s\n\n", tableTitleStyle.Render(title), len(rows), t.String())
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}
