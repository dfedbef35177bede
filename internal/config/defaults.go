package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultRequestTimeout = 15 * time.Second
	DefaultContainerName  = "nginx"
	DefaultImage          = "nginx"
	DefaultServicePort    = 80
)

// GetDefaultConfig returns the configuration used when no file overrides it.
func GetDefaultConfig() KubeviewConfig {
	return KubeviewConfig{
		RequestTimeout: DefaultRequestTimeout,
		LogLevel:       "info",
		Workload: WorkloadConfig{
			ContainerName: DefaultContainerName,
			Image:         DefaultImage,
			Selector:      map[string]string{"app": "nginx"},
			Port:          DefaultServicePort,
			TargetPort:    DefaultServicePort,
		},
	}
}

// Validate reports the first setting that cannot be used to build a client
// or a workload.
func (c KubeviewConfig) Validate() error {
	if c.RequestTimeout < 0 {
		return fmt.Errorf("requestTimeout must not be negative, got %s", c.RequestTimeout)
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown logLevel %q", c.LogLevel)
	}
	w := c.Workload
	if w.ContainerName == "" {
		return fmt.Errorf("workload.containerName must not be empty")
	}
	if w.Image == "" {
		return fmt.Errorf("workload.image must not be empty")
	}
	if len(w.Selector) == 0 {
		return fmt.Errorf("workload.selector must contain at least one label")
	}
	if !validPort(w.Port) {
		return fmt.Errorf("workload.port %d is out of range", w.Port)
	}
	if !validPort(w.TargetPort) {
		return fmt.Errorf("workload.targetPort %d is out of range", w.TargetPort)
	}
	return nil
}

func validPort(p int32) bool {
	return p > 0 && p <= 65535
}
