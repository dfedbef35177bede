package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetVersion(t *testing.T) {
	orig := rootCmd.Version
	defer func() { rootCmd.Version = orig }()

	SetVersion("1.2.3-test")
	assert.Equal(t, "1.2.3-test", rootCmd.Version)
	assert.Equal(t, "1.2.3-test", versionString())

	SetVersion("")
	assert.Equal(t, "dev", versionString())
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "kubeview", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)
	assert.NotNil(t, rootCmd.RunE)

	for _, name := range []string{"kubeconfig", "context", "debug", "request-timeout"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.NotNil(t, rootCmd.Flags().Lookup("metrics-address"))
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}
	testCmd.SetVersionTemplate(`{{printf "kubeview version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)
	testCmd.SetArgs([]string{"--version"})
	require.NoError(t, testCmd.Execute())

	assert.Equal(t, "kubeview version 1.0.0\n", buf.String())
}

func TestSubcommands(t *testing.T) {
	found := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		found[c.Name()] = true
	}
	for _, want := range []string{"get", "create", "serve", "version", "self-update"} {
		assert.True(t, found[want], "subcommand %s not registered", want)
	}
}

func TestVersionCommand(t *testing.T) {
	orig := rootCmd.Version
	defer func() { rootCmd.Version = orig }()
	rootCmd.Version = "0.4.0"

	var buf bytes.Buffer
	c := newVersionCmd()
	c.SetOut(&buf)
	c.SetArgs(nil)
	require.NoError(t, c.Execute())
	assert.Equal(t, "kubeview version 0.4.0\n", buf.String())
}

func TestTUIConfig_DebugFollowsConfiguredLevel(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	configDir := filepath.Join(home, ".config", "kubeview")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("logLevel: debug\n"), 0644))

	cfg, report, err := loadSettings(&cobra.Command{})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(configDir, "config.yaml")}, report.Loaded)
	assert.True(t, tuiConfig(cfg, nil).DebugMode)

	cfg.LogLevel = "info"
	assert.False(t, tuiConfig(cfg, nil).DebugMode)
}
