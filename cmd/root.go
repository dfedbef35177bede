package cmd

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"kubeview/internal/config"
	"kubeview/internal/kube"
	"kubeview/internal/metrics"
	"kubeview/internal/tui/controller"
	"kubeview/internal/tui/model"
	"kubeview/pkg/logging"
)

var (
	kubeconfigFlag     string
	contextFlag        string
	debugFlag          bool
	requestTimeoutFlag time.Duration
	metricsAddressFlag string
)

// rootCmd starts the interactive dashboard when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "kubeview",
	Short: "Browse Kubernetes nodes, pods and services from the terminal",
	Long: `kubeview shows the nodes, pods and services of the current Kubernetes
cluster in a terminal dashboard and creates namespaces, pods and services
through short prompts.

Keys: r refresh, n create namespace, p create pod, s create service,
R reload kubeconfig, tab switch table, L activity log, h help, q quit.`,
	Args: cobra.NoArgs,
	// Errors are reported by us; the usage text adds nothing there.
	SilenceUsage: true,
	RunE:         runDashboard,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "kubeview version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&kubeconfigFlag, "kubeconfig", "", "Path to the kubeconfig file (default: $KUBECONFIG or ~/.kube/config)")
	pf.StringVar(&contextFlag, "context", "", "Kubeconfig context to use (default: current-context)")
	pf.BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	pf.DurationVar(&requestTimeoutFlag, "request-timeout", 0, "Timeout for each Kubernetes API call (default 15s)")

	rootCmd.Flags().StringVar(&metricsAddressFlag, "metrics-address", "", "Serve Prometheus metrics on this address, e.g. :9090")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, report, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logChan := logging.InitForTUI(logLevel(cfg))
	defer logging.CloseTUIChannel()
	report.Log()
	// client-go writes warnings through klog; they would corrupt the screen.
	klog.SetOutput(io.Discard)
	klog.LogToStderr(false)

	client := kube.NewClient(kubeOptions(cfg))
	var facade kube.Facade = client

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if cfg.Metrics.Address != "" {
		reg := metrics.NewRegistry()
		facade = metrics.NewRecorder(reg).Instrument(client)
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.Address, reg); err != nil {
				logging.Error("Metrics", err, "Metrics endpoint stopped")
			}
		}()
	}

	tuiCfg := tuiConfig(cfg, logChan)
	tuiCfg.Facade = facade
	tuiCfg.Reloader = client
	tuiCfg.KubeContext = client.CurrentContext()

	_, err = controller.NewProgram(tuiCfg).Run()
	return err
}

// tuiConfig carries the settings over to the dashboard. The debug view follows
// the effective log level, so a config file can enable it as well as --debug.
func tuiConfig(cfg config.KubeviewConfig, logChan <-chan logging.LogEntry) model.TUIConfig {
	return model.TUIConfig{
		DebugMode:      cfg.LogLevel == "debug",
		RequestTimeout: cfg.RequestTimeout,
		LogChannel:     logChan,
	}
}
