package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kubeview/internal/kube"
	"kubeview/internal/kube/kubefake"
)

func TestInstrument_CountsResults(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewRecorder(reg)

	fake := kubefake.New(kube.ClusterState{Nodes: []kube.NodeRow{{Name: "A", Status: kube.NodeStatusReady}}})
	fake.CreatePodErr = &kube.APIError{Op: kube.OpCreatePod, Err: errors.New("exists")}
	fake.CreateServiceErr = &kube.ConnectionError{Op: kube.OpCreateService, Reason: kube.ReasonTimeout, Err: errors.New("timeout")}
	f := rec.Instrument(fake)

	state, err := f.ListClusterState(context.Background())
	require.NoError(t, err)
	assert.Len(t, state.Nodes, 1)
	require.NoError(t, f.CreateNamespace(context.Background(), "demo"))
	assert.Error(t, f.CreatePod(context.Background(), "demo", "web"))
	assert.Error(t, f.CreateService(context.Background(), "demo", "web"))

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.calls.WithLabelValues(kube.OpListClusterState, "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.calls.WithLabelValues(kube.OpCreateNamespace, "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.calls.WithLabelValues(kube.OpCreatePod, "api_error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.calls.WithLabelValues(kube.OpCreateService, "connection_error")))
	assert.Equal(t, 4, fake.CallCount(""))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	reg := NewRegistry()
	rec := NewRecorder(reg)
	rec.Observe(kube.OpCreateNamespace, 0, nil)

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	n, err := testutil.GatherAndCount(reg, "kubeview_cluster_calls_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, "127.0.0.1:0", prometheus.NewRegistry()) }()

	cancel()
	assert.NoError(t, <-done)
}
