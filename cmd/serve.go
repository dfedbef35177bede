package cmd

import (
	"github.com/spf13/cobra"

	"kubeview/internal/mcpserver"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the cluster operations as MCP tools over stdio",
		Long: `Starts a Model Context Protocol server on stdin/stdout exposing
list_cluster_state, create_namespace, create_pod and create_service.
Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, f, err := setupCLI(cmd)
			if err != nil {
				return err
			}
			return mcpserver.New(f, versionString(), cfg.RequestTimeout).ServeStdio()
		},
	}
}
