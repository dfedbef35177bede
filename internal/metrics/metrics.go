// Package metrics exposes Prometheus counters and latency histograms for the
// cluster-access calls and serves them over HTTP.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kubeview/internal/kube"
	"kubeview/pkg/logging"
)

const (
	namespace = "kubeview"
	subsystem = "Metrics"

	resultSuccess = "success"
)

// Recorder holds the facade call metrics.
type Recorder struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRecorder creates the metrics and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cluster_calls_total",
			Help:      "Cluster-access calls by operation and result.",
		}, []string{"operation", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cluster_call_duration_seconds",
			Help:      "Latency of cluster-access calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	reg.MustRegister(r.calls, r.duration)
	return r
}

// Observe records one call of op that took d and ended with err.
func (r *Recorder) Observe(op string, d time.Duration, err error) {
	result := resultSuccess
	if err != nil {
		result = kube.KindOf(err).String()
	}
	r.calls.WithLabelValues(op, result).Inc()
	r.duration.WithLabelValues(op).Observe(d.Seconds())
}

// Instrument wraps f so every call is observed by r.
func (r *Recorder) Instrument(f kube.Facade) kube.Facade {
	return &instrumentedFacade{next: f, rec: r}
}

type instrumentedFacade struct {
	next kube.Facade
	rec  *Recorder
}

func (i *instrumentedFacade) ListClusterState(ctx context.Context) (kube.ClusterState, error) {
	start := time.Now()
	state, err := i.next.ListClusterState(ctx)
	i.rec.Observe(kube.OpListClusterState, time.Since(start), err)
	return state, err
}

func (i *instrumentedFacade) CreateNamespace(ctx context.Context, name string) error {
	start := time.Now()
	err := i.next.CreateNamespace(ctx, name)
	i.rec.Observe(kube.OpCreateNamespace, time.Since(start), err)
	return err
}

func (i *instrumentedFacade) CreatePod(ctx context.Context, namespace, podName string) error {
	start := time.Now()
	err := i.next.CreatePod(ctx, namespace, podName)
	i.rec.Observe(kube.OpCreatePod, time.Since(start), err)
	return err
}

func (i *instrumentedFacade) CreateService(ctx context.Context, namespace, serviceName string) error {
	start := time.Now()
	err := i.next.CreateService(ctx, namespace, serviceName)
	i.rec.Observe(kube.OpCreateService, time.Since(start), err)
	return err
}

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(g))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logging.Info(subsystem, "Serving metrics on %s/metrics", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
