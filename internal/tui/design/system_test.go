package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeStatusStyle(t *testing.T) {
	assert.Equal(t, ColorSuccess, NodeStatusStyle("Ready").GetForeground())
	assert.Equal(t, ColorError, NodeStatusStyle("Not Ready").GetForeground())
}

func TestPodPhaseStyle(t *testing.T) {
	tests := map[string]any{
		"Running":   ColorSuccess,
		"Succeeded": ColorSuccess,
		"Pending":   ColorWarning,
		"Failed":    ColorError,
		"Unknown":   ColorTextSecondary,
	}
	for phase, want := range tests {
		assert.Equal(t, want, PodPhaseStyle(phase).GetForeground(), phase)
	}
}
