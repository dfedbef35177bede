package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfigPaths points both config layers at the given files for the
// duration of the test.
func withConfigPaths(t *testing.T, userPath, projectPath string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})
	getUserConfigPath = func() (string, error) { return userPath, nil }
	getProjectConfigPath = func() (string, error) { return projectPath, nil }
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	tempDir := t.TempDir()
	withConfigPaths(t,
		filepath.Join(tempDir, "non-existent-user-config.yaml"),
		filepath.Join(tempDir, "non-existent-project-config.yaml"))

	loaded, report, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)
	assert.Empty(t, report.Loaded)
	assert.Equal(t, "nginx", loaded.Workload.Image)
	assert.Equal(t, map[string]string{"app": "nginx"}, loaded.Workload.Selector)
	assert.Equal(t, int32(80), loaded.Workload.Port)
	assert.Equal(t, int32(80), loaded.Workload.TargetPort)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	tempDir := t.TempDir()
	userPath := filepath.Join(tempDir, "home", userConfigDir, configFileName)
	projectPath := filepath.Join(tempDir, "work", projectConfigDir, configFileName)
	withConfigPaths(t, userPath, projectPath)

	writeFile(t, userPath, `
context: kind-dev
requestTimeout: 30s
workload:
  image: nginx:1.27
metrics:
  address: ":9090"
`)
	writeFile(t, projectPath, `
context: staging
logLevel: debug
workload:
  selector:
    tier: web
`)

	loaded, report, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{userPath, projectPath}, report.Loaded)
	assert.Equal(t, "staging", loaded.Context)
	assert.Equal(t, 30*time.Second, loaded.RequestTimeout)
	assert.Equal(t, "debug", loaded.LogLevel)
	assert.Equal(t, "nginx:1.27", loaded.Workload.Image)
	assert.Equal(t, "nginx", loaded.Workload.ContainerName)
	assert.Equal(t, map[string]string{"tier": "web"}, loaded.Workload.Selector)
	assert.Equal(t, ":9090", loaded.Metrics.Address)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	tempDir := t.TempDir()
	userPath := filepath.Join(tempDir, "user.yaml")
	withConfigPaths(t, userPath, filepath.Join(tempDir, "missing.yaml"))
	writeFile(t, userPath, "workload: [not, a, map")

	_, _, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading user config")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tempDir := t.TempDir()
	projectPath := filepath.Join(tempDir, "project.yaml")
	withConfigPaths(t, filepath.Join(tempDir, "missing.yaml"), projectPath)
	writeFile(t, projectPath, "workload:\n  port: 70000\n")

	_, _, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workload.port 70000 is out of range")
}

func TestLoadConfig_PathErrorSkipsLayer(t *testing.T) {
	tempDir := t.TempDir()
	projectPath := filepath.Join(tempDir, "project.yaml")
	withConfigPaths(t, "", projectPath)
	getUserConfigPath = func() (string, error) { return "", errors.New("no home") }
	writeFile(t, projectPath, "context: from-project\n")

	loaded, report, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-project", loaded.Context)
	require.Len(t, report.Skipped, 1)
	assert.Contains(t, report.Skipped[0].Error(), "no home")
}

func TestLoadConfig_WritesNothingToStderr(t *testing.T) {
	tempDir := t.TempDir()
	userPath := filepath.Join(tempDir, "user.yaml")
	withConfigPaths(t, userPath, filepath.Join(tempDir, "missing.yaml"))
	writeFile(t, userPath, "logLevel: error\n")

	stderr := captureStderr(t, func() {
		loaded, report, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "error", loaded.LogLevel)
		assert.Equal(t, []string{userPath}, report.Loaded)
	})
	assert.Empty(t, stderr)
}

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	original := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = original }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *KubeviewConfig)
		wantErr string
	}{
		{"defaults are valid", func(c *KubeviewConfig) {}, ""},
		{"negative timeout", func(c *KubeviewConfig) { c.RequestTimeout = -time.Second }, "requestTimeout"},
		{"bad log level", func(c *KubeviewConfig) { c.LogLevel = "loud" }, "logLevel"},
		{"empty image", func(c *KubeviewConfig) { c.Workload.Image = "" }, "workload.image"},
		{"empty container", func(c *KubeviewConfig) { c.Workload.ContainerName = "" }, "workload.containerName"},
		{"empty selector", func(c *KubeviewConfig) { c.Workload.Selector = nil }, "workload.selector"},
		{"zero target port", func(c *KubeviewConfig) { c.Workload.TargetPort = -1 }, "workload.targetPort"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetUserConfigDir(t *testing.T) {
	original := osUserHomeDir
	defer func() { osUserHomeDir = original }()
	osUserHomeDir = func() (string, error) { return "/home/tester", nil }

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".config", "kubeview"), dir)
}
