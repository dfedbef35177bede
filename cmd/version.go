package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func versionString() string {
	if rootCmd.Version == "" {
		return "dev"
	}
	return rootCmd.Version
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of kubeview",
		Long:  `All software has versions. This is kubeview's.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kubeview version %s\n", versionString())
		},
	}
}
