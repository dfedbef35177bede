package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kubeview/internal/config"
	"kubeview/internal/kube"
	"kubeview/pkg/logging"
)

// loadSettings merges the configuration files with the flags that were set
// explicitly on cmd. The report is meant to be logged once logging is set up.
func loadSettings(cmd *cobra.Command) (config.KubeviewConfig, config.LoadReport, error) {
	cfg, report, err := config.LoadConfig()
	if err != nil {
		return cfg, report, fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("kubeconfig") {
		cfg.Kubeconfig = kubeconfigFlag
	}
	if flags.Changed("context") {
		cfg.Context = contextFlag
	}
	if flags.Changed("request-timeout") {
		cfg.RequestTimeout = requestTimeoutFlag
	}
	if flags.Changed("metrics-address") {
		cfg.Metrics.Address = metricsAddressFlag
	}
	if debugFlag {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return cfg, report, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, report, nil
}

func logLevel(cfg config.KubeviewConfig) logging.LogLevel {
	// Validate already rejected unknown levels.
	level, _ := logging.ParseLevel(cfg.LogLevel)
	return level
}

func kubeOptions(cfg config.KubeviewConfig) kube.Options {
	return kube.Options{
		Kubeconfig: cfg.Kubeconfig,
		Context:    cfg.Context,
		Timeout:    cfg.RequestTimeout,
		Template: kube.WorkloadTemplate{
			ContainerName: cfg.Workload.ContainerName,
			Image:         cfg.Workload.Image,
			Selector:      cfg.Workload.Selector,
			Port:          cfg.Workload.Port,
			TargetPort:    cfg.Workload.TargetPort,
		},
	}
}

// newFacade builds the cluster facade for the non-interactive commands. It is
// replaced in tests.
var newFacade = func(cfg config.KubeviewConfig) (kube.Facade, error) {
	client := kube.NewClient(kubeOptions(cfg))
	if err := client.Err(); err != nil {
		return nil, err
	}
	logging.Debug("CLI", "Using context %s (%s)", client.CurrentContext(), client.Server())
	return client, nil
}

// setupCLI loads settings, routes logs to stderr and returns the facade.
func setupCLI(cmd *cobra.Command) (config.KubeviewConfig, kube.Facade, error) {
	cfg, report, err := loadSettings(cmd)
	if err != nil {
		return cfg, nil, err
	}
	logging.InitForCLI(logLevel(cfg), os.Stderr)
	report.Log()

	f, err := newFacade(cfg)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, f, nil
}
