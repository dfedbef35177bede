package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"kubeview/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/kubeview"
	projectConfigDir = ".kubeview"
	configFileName   = "config.yaml"
)

// LoadReport records what LoadConfig did with the optional layers. Logging is
// usually not initialized while the configuration is read, so the report is
// logged by the caller afterwards.
type LoadReport struct {
	Loaded  []string
	Skipped []error
}

// Log writes the report through pkg/logging.
func (r LoadReport) Log() {
	for _, err := range r.Skipped {
		logging.Warn("Config", "%v", err)
	}
	for _, path := range r.Loaded {
		logging.Debug("Config", "Loaded config from %s", path)
	}
}

// LoadConfig loads the kubeview configuration by layering default, user, and
// project settings. It does not log.
func LoadConfig() (KubeviewConfig, LoadReport, error) {
	config := GetDefaultConfig()
	var report LoadReport

	for _, layer := range []struct {
		name string
		path func() (string, error)
	}{
		{"user", getUserConfigPath},
		{"project", getProjectConfigPath},
	} {
		path, err := layer.path()
		if err != nil {
			// Optional layer.
			report.Skipped = append(report.Skipped, fmt.Errorf("could not determine %s config path: %w", layer.name, err))
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		overlay, err := loadConfigFromFile(path)
		if err != nil {
			return KubeviewConfig{}, report, fmt.Errorf("error loading %s config from %s: %w", layer.name, path, err)
		}
		report.Loaded = append(report.Loaded, path)
		config = mergeConfigs(config, overlay)
	}

	if err := config.Validate(); err != nil {
		return KubeviewConfig{}, report, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, report, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a KubeviewConfig from a YAML file.
func loadConfigFromFile(filePath string) (KubeviewConfig, error) {
	var config KubeviewConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return KubeviewConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return KubeviewConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in the
// overlay leave the base untouched; a non-empty selector replaces the base
// selector as a whole.
func mergeConfigs(base, overlay KubeviewConfig) KubeviewConfig {
	merged := base

	if overlay.Kubeconfig != "" {
		merged.Kubeconfig = overlay.Kubeconfig
	}
	if overlay.Context != "" {
		merged.Context = overlay.Context
	}
	if overlay.RequestTimeout != 0 {
		merged.RequestTimeout = overlay.RequestTimeout
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}

	w := overlay.Workload
	if w.ContainerName != "" {
		merged.Workload.ContainerName = w.ContainerName
	}
	if w.Image != "" {
		merged.Workload.Image = w.Image
	}
	if len(w.Selector) > 0 {
		merged.Workload.Selector = make(map[string]string, len(w.Selector))
		for k, v := range w.Selector {
			merged.Workload.Selector[k] = v
		}
	}
	if w.Port != 0 {
		merged.Workload.Port = w.Port
	}
	if w.TargetPort != 0 {
		merged.Workload.TargetPort = w.TargetPort
	}

	if overlay.Metrics.Address != "" {
		merged.Metrics.Address = overlay.Metrics.Address
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
