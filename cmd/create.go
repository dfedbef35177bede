package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"kubeview/internal/kube"
)

func newCreateCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a namespace, pod or service",
		Long: `Creates a single resource with the same parameters the dashboard prompts for.
Pods and services use the workload template from the configuration
(default: an nginx container, and a ClusterIP service selecting app=nginx on port 80).`,
	}

	createCmd.AddCommand(&cobra.Command{
		Use:   "namespace <name>",
		Short: "Create a namespace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, kube.ResourceNamespace, "", args[0],
				func(ctx context.Context, f kube.Facade) error { return f.CreateNamespace(ctx, args[0]) })
		},
	})

	createCmd.AddCommand(&cobra.Command{
		Use:   "pod <namespace> <name>",
		Short: "Create a pod from the workload template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, kube.ResourcePod, args[0], args[1],
				func(ctx context.Context, f kube.Facade) error { return f.CreatePod(ctx, args[0], args[1]) })
		},
	})

	createCmd.AddCommand(&cobra.Command{
		Use:     "service <namespace> <name>",
		Aliases: []string{"svc"},
		Short:   "Create a ClusterIP service selecting the workload template label",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, kube.ResourceService, args[0], args[1],
				func(ctx context.Context, f kube.Facade) error { return f.CreateService(ctx, args[0], args[1]) })
		},
	})

	return createCmd
}

// runCreate performs one create call and prints the confirmation on stdout.
func runCreate(cmd *cobra.Command, resource, namespace, name string, create func(context.Context, kube.Facade) error) error {
	cfg, f, err := setupCLI(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(cmd.Context(), cfg.RequestTimeout)
	defer cancel()

	if err := create(ctx, f); err != nil {
		return fmt.Errorf("failed to create %s: %w", resource, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), kube.CreatedMessage(resource, namespace, name))
	return nil
}
