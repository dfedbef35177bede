package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kubeview/internal/config"
	"kubeview/internal/kube"
	"kubeview/internal/kube/kubefake"
	"kubeview/internal/tui/design"
)

// useFacade makes the CLI commands talk to f for the duration of the test.
func useFacade(t *testing.T, f kube.Facade) {
	t.Helper()
	orig := newFacade
	newFacade = func(config.KubeviewConfig) (kube.Facade, error) { return f, nil }
	t.Cleanup(func() { newFacade = orig })
}

func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	c.SilenceErrors = true
	c.SilenceUsage = true
	err := c.Execute()
	return out.String(), err
}

func TestGet_PrintsThreeTables(t *testing.T) {
	f := kubefake.New(kube.ClusterState{
		Nodes: []kube.NodeRow{
			{Name: "node-a", Status: kube.NodeStatusReady},
			{Name: "node-b", Status: kube.NodeStatusNotReady},
		},
		Pods: []kube.PodRow{{Namespace: "default", Name: "web", Phase: "Running"}},
	})
	useFacade(t, f)

	out, err := execute(t, newGetCmd())
	require.NoError(t, err)

	for _, want := range []string{
		"Nodes (2)", "Pods (1)", "Services (0)",
		"Node Name", "Pod Name", "Service Name",
		"node-a", "Not Ready", "web", "Running",
	} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 1, f.CallCount(kube.OpListClusterState))
}

func TestGet_FailureReturnsError(t *testing.T) {
	f := kubefake.New(kube.ClusterState{})
	f.ListErr = &kube.ConnectionError{Op: kube.OpListNodes, Reason: kube.ReasonUnreachable, Err: errors.New("connection refused")}
	useFacade(t, f)

	_, err := execute(t, newGetCmd())
	require.Error(t, err)
	assert.ErrorIs(t, err, kube.ErrConnection)
	assert.Contains(t, err.Error(), "error fetching cluster info")
}

func TestGet_FacadeConstructionFailure(t *testing.T) {
	orig := newFacade
	newFacade = func(config.KubeviewConfig) (kube.Facade, error) {
		return nil, &kube.ConnectionError{Op: kube.OpLoadConfig, Reason: kube.ReasonConfig, Err: errors.New("no configuration")}
	}
	defer func() { newFacade = orig }()

	_, err := execute(t, newGetCmd())
	assert.ErrorIs(t, err, kube.ErrConnection)
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCall kubefake.Call
		wantOut  string
	}{
		{
			name:     "namespace",
			args:     []string{"namespace", "demo"},
			wantCall: kubefake.Call{Op: kube.OpCreateNamespace, Args: []string{"demo"}},
			wantOut:  "Namespace 'demo' created successfully!\n",
		},
		{
			name:     "pod",
			args:     []string{"pod", "demo", "web"},
			wantCall: kubefake.Call{Op: kube.OpCreatePod, Args: []string{"demo", "web"}},
			wantOut:  "Pod 'web' created successfully in namespace 'demo'!\n",
		},
		{
			name:     "service alias",
			args:     []string{"svc", "demo", "web"},
			wantCall: kubefake.Call{Op: kube.OpCreateService, Args: []string{"demo", "web"}},
			wantOut:  "Service 'web' created successfully in namespace 'demo'!\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := kubefake.New(kube.ClusterState{})
			useFacade(t, f)

			out, err := execute(t, newCreateCmd(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, out)
			assert.Equal(t, []kubefake.Call{tt.wantCall}, f.Calls())
		})
	}
}

func TestCreate_Errors(t *testing.T) {
	f := kubefake.New(kube.ClusterState{})
	f.CreateNamespaceErr = &kube.APIError{Op: kube.OpCreateNamespace, Reason: "AlreadyExists", Code: 409, Err: errors.New(`namespaces "demo" already exists`)}
	useFacade(t, f)

	_, err := execute(t, newCreateCmd(), "namespace", "demo")
	require.Error(t, err)
	assert.ErrorIs(t, err, kube.ErrAPI)
	assert.Contains(t, err.Error(), "failed to create namespace")

	_, err = execute(t, newCreateCmd(), "pod", "demo")
	assert.Error(t, err, "pod needs a namespace and a name")
	assert.Equal(t, 1, f.CallCount(""))
}

func TestCellStyles_ColorStatusColumn(t *testing.T) {
	rows := [][]string{{"node-a", kube.NodeStatusReady}, {"node-b", kube.NodeStatusNotReady}}
	styles := cellStyles(rows, 1, design.NodeStatusStyle)

	assert.Equal(t, design.ColorSuccess, styles(0, 1).GetForeground())
	assert.Equal(t, design.ColorError, styles(1, 1).GetForeground())
	assert.Equal(t, cellStyle, styles(0, 0), "name column is not colored")
	assert.Equal(t, cellStyle, styles(table.HeaderRow, 1), "header is not colored")
	assert.Equal(t, 1, styles(1, 1).GetPaddingLeft())

	plain := cellStyles(rows, -1, nil)
	assert.Equal(t, cellStyle, plain(0, 1))
}
