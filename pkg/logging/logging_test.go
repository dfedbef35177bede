package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"", LevelInfo, false},
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitForCLI_WritesSubsystemAndError(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Debug("Kube", "hidden %d", 1)
	Error("Kube", errors.New("boom"), "list failed for %s", "pods")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "list failed for pods")
	assert.Contains(t, out, "subsystem=Kube")
	assert.Contains(t, out, "error=boom")
}

func TestInitForTUI_FiltersByLevel(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	defer CloseTUIChannel()

	Debug("TUI", "dropped")
	Warn("TUI", "kept %s", "warning")

	select {
	case entry := <-ch:
		assert.Equal(t, LevelWarn, entry.Level)
		assert.Equal(t, "TUI", entry.Subsystem)
		assert.Equal(t, "kept warning", entry.Message)
	default:
		t.Fatal("expected a log entry on the TUI channel")
	}

	select {
	case entry := <-ch:
		t.Fatalf("unexpected extra entry: %+v", entry)
	default:
	}
}

func TestCloseTUIChannel_LoggingAfterCloseDoesNotPanic(t *testing.T) {
	InitForTUI(LevelDebug)
	CloseTUIChannel()
	assert.NotPanics(t, func() { Info("TUI", "after close") })
}
