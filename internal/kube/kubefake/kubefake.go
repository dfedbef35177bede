// Package kubefake provides a recording kube.Facade for tests of the layers
// above the cluster-access package.
package kubefake

import (
	"context"
	"sync"

	"kubeview/internal/kube"
)

// Call records one facade invocation.
type Call struct {
	Op   string
	Args []string
}

// Facade is a kube.Facade that records every call and answers with the
// configured state and errors.
type Facade struct {
	mu    sync.Mutex
	calls []Call

	State kube.ClusterState

	ListErr            error
	CreateNamespaceErr error
	CreatePodErr       error
	CreateServiceErr   error
}

// New returns a Facade answering ListClusterState with state.
func New(state kube.ClusterState) *Facade {
	return &Facade{State: state}
}

func (f *Facade) record(op string, args ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Op: op, Args: args})
}

// Calls returns a copy of the recorded calls in invocation order.
func (f *Facade) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount returns how many calls of op were recorded. An empty op counts all.
func (f *Facade) CallCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if op == "" || c.Op == op {
			n++
		}
	}
	return n
}

func (f *Facade) ListClusterState(ctx context.Context) (kube.ClusterState, error) {
	f.record(kube.OpListClusterState)
	if f.ListErr != nil {
		return kube.ClusterState{}, f.ListErr
	}
	return f.State, nil
}

func (f *Facade) CreateNamespace(ctx context.Context, name string) error {
	f.record(kube.OpCreateNamespace, name)
	return f.CreateNamespaceErr
}

func (f *Facade) CreatePod(ctx context.Context, namespace, podName string) error {
	f.record(kube.OpCreatePod, namespace, podName)
	return f.CreatePodErr
}

func (f *Facade) CreateService(ctx context.Context, namespace, serviceName string) error {
	f.record(kube.OpCreateService, namespace, serviceName)
	return f.CreateServiceErr
}

var _ kube.Facade = (*Facade)(nil)
