package kube

import (
	"context"
	"fmt"
	"sync"
	"time"

	"k8s.io/client-go/kubernetes"
	_ "k8s.io/client-go/plugin/pkg/client/auth"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"kubeview/pkg/logging"
)

// OpLoadConfig names kubeconfig loading failures.
const OpLoadConfig = "load kubeconfig"

// Options select the kubeconfig, context and workload template of a Client.
type Options struct {
	// Kubeconfig is an explicit kubeconfig path. Empty uses the standard
	// loading rules ($KUBECONFIG, then ~/.kube/config).
	Kubeconfig string
	// Context overrides the kubeconfig current-context when set.
	Context string
	// Timeout is applied to every request. Zero means no client-side timeout.
	Timeout  time.Duration
	Template WorkloadTemplate
}

// For mocking in tests
var newClientset = func(restConfig *rest.Config) (kubernetes.Interface, error) {
	return kubernetes.NewForConfig(restConfig)
}

// Client is a Facade over a clientset built from kubeconfig. A Client that
// failed to load returns the load error from every call until Reload succeeds.
type Client struct {
	opts Options

	mu          sync.RWMutex
	facade      Facade
	contextName string
	server      string
	loadErr     error
}

// NewClient builds the rest config once and returns a ready Client. Load
// failures are kept and reported by every call instead of aborting startup.
func NewClient(opts Options) *Client {
	c := &Client{opts: opts}
	if err := c.Reload(); err != nil {
		logging.Warn(subsystem, "Initial kubeconfig load failed: %v", err)
	}
	return c
}

// Reload rebuilds the rest config and clientset from kubeconfig. On failure
// the previous clientset is dropped and calls return the new error.
func (c *Client) Reload() error {
	restConfig, contextName, err := loadRESTConfig(c.opts)
	var clientset kubernetes.Interface
	if err == nil {
		clientset, err = newClientset(restConfig)
		if err != nil {
			err = &ConnectionError{Op: OpLoadConfig, Reason: ReasonConfig, Err: fmt.Errorf("failed to create Kubernetes clientset: %w", err)}
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.contextName = contextName
	if err != nil {
		c.facade = nil
		c.server = ""
		c.loadErr = err
		return err
	}
	c.facade = NewFacade(clientset, c.opts.Template)
	c.server = restConfig.Host
	c.loadErr = nil
	logging.Info(subsystem, "Using context %q (%s)", contextName, restConfig.Host)
	logging.Debug(subsystem, "Workload template: %s", c.opts.Template)
	return nil
}

// CurrentContext returns the kubeconfig context in use, or the one that
// failed to load.
func (c *Client) CurrentContext() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.contextName
}

// Server returns the API server URL of the loaded context.
func (c *Client) Server() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.server
}

// Err returns the last load error, if any.
func (c *Client) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadErr
}

func (c *Client) current() (Facade, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.facade == nil {
		return nil, c.loadErr
	}
	return c.facade, nil
}

func (c *Client) ListClusterState(ctx context.Context) (ClusterState, error) {
	f, err := c.current()
	if err != nil {
		return ClusterState{}, err
	}
	return f.ListClusterState(ctx)
}

func (c *Client) CreateNamespace(ctx context.Context, name string) error {
	f, err := c.current()
	if err != nil {
		return err
	}
	return f.CreateNamespace(ctx, name)
}

func (c *Client) CreatePod(ctx context.Context, namespace, podName string) error {
	f, err := c.current()
	if err != nil {
		return err
	}
	return f.CreatePod(ctx, namespace, podName)
}

func (c *Client) CreateService(ctx context.Context, namespace, serviceName string) error {
	f, err := c.current()
	if err != nil {
		return err
	}
	return f.CreateService(ctx, namespace, serviceName)
}

// loadRESTConfig resolves the kubeconfig through the standard loading rules and
// returns the rest config together with the effective context name.
func loadRESTConfig(opts Options) (*rest.Config, string, error) {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	if opts.Kubeconfig != "" {
		loadingRules.ExplicitPath = opts.Kubeconfig
	}
	configOverrides := &clientcmd.ConfigOverrides{}
	if opts.Context != "" {
		configOverrides.CurrentContext = opts.Context
	}
	kubeConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, configOverrides)

	contextName := opts.Context
	if rawConfig, err := kubeConfig.RawConfig(); err == nil && contextName == "" {
		contextName = rawConfig.CurrentContext
	}

	restConfig, err := kubeConfig.ClientConfig()
	if err != nil {
		return nil, contextName, &ConnectionError{
			Op:     OpLoadConfig,
			Reason: ReasonConfig,
			Err:    fmt.Errorf("failed to get REST config for context %q: %w", contextName, err),
		}
	}
	restConfig.Timeout = opts.Timeout
	restConfig.WarningHandler = rest.NoWarnings{}
	return restConfig, contextName, nil
}

var _ Facade = (*Client)(nil)
