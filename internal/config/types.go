package config

import (
	"time"
)

// KubeviewConfig is the top-level configuration structure for kubeview.
type KubeviewConfig struct {
	Kubeconfig     string         `yaml:"kubeconfig,omitempty"`
	Context        string         `yaml:"context,omitempty"`
	RequestTimeout time.Duration  `yaml:"requestTimeout,omitempty"`
	LogLevel       string         `yaml:"logLevel,omitempty"`
	Workload       WorkloadConfig `yaml:"workload"`
	Metrics        MetricsConfig  `yaml:"metrics"`
}

// WorkloadConfig is the fixed template for created pods and services.
type WorkloadConfig struct {
	ContainerName string            `yaml:"containerName,omitempty"`
	Image         string            `yaml:"image,omitempty"`
	Selector      map[string]string `yaml:"selector,omitempty"`
	Port          int32             `yaml:"port,omitempty"`
	TargetPort    int32             `yaml:"targetPort,omitempty"`
}

// MetricsConfig controls the optional Prometheus endpoint.
type MetricsConfig struct {
	Address string `yaml:"address,omitempty"`
}
