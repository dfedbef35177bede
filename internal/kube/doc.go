// Package kube is kubeview's cluster-access layer.
//
// It performs exactly six API operations against a cluster: list nodes, list
// pods in all namespaces, list services in all namespaces, and create a
// namespace, a pod or a service. Every operation is a single pass-through call
// with no retries, caching or pagination.
//
// # Core Components
//
// Facade: the interface the presentation layers depend on. NewFacade builds one
// over any kubernetes.Interface, which is how tests plug in the client-go fake
// clientset.
//
// Client: a Facade backed by a real clientset built from kubeconfig loading
// rules. The rest config is built once and rebuilt only when Reload is called.
//
// Rows: ClusterState carries NodeRow, PodRow and ServiceRow slices projected
// from the list responses in API order.
//
// # Error Handling
//
// Every error returned by a Facade is either a *ConnectionError (the cluster
// could not be reached or authenticated against) or an *APIError (the server
// rejected the request). Use errors.Is with ErrConnection / ErrAPI, or KindOf,
// to branch on them.
//
// # Usage Example
//
//	client := kube.NewClient(kube.Options{Context: "kind-dev", Timeout: 15 * time.Second})
//	state, err := client.ListClusterState(ctx)
//	if errors.Is(err, kube.ErrConnection) {
//	    // show "cannot reach cluster"
//	}
//
// # Thread Safety
//
// Client guards its clientset with a RWMutex; Reload may run concurrently with
// in-flight calls, which finish on the clientset they started with.
package kube
