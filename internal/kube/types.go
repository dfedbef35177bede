package kube

import (
	"context"
	"fmt"
	"strings"
)

// Facade is the cluster-access contract used by the dashboard, the CLI and the
// MCP server.
type Facade interface {
	// ListClusterState lists nodes, pods and services, in that order. Any
	// failure aborts the remaining calls and no partial state is returned.
	ListClusterState(ctx context.Context) (ClusterState, error)
	CreateNamespace(ctx context.Context, name string) error
	CreatePod(ctx context.Context, namespace, podName string) error
	CreateService(ctx context.Context, namespace, serviceName string) error
}

const (
	NodeStatusReady    = "Ready"
	NodeStatusNotReady = "Not Ready"
)

// Resource kinds the facade can create.
const (
	ResourceNamespace = "namespace"
	ResourcePod       = "pod"
	ResourceService   = "service"
)

// CreatedMessage confirms a successful create. namespace is left out of the
// message when empty, as for namespaces themselves.
func CreatedMessage(resource, namespace, name string) string {
	title := resource
	if title != "" {
		title = strings.ToUpper(title[:1]) + title[1:]
	}
	if namespace == "" {
		return fmt.Sprintf("%s '%s' created successfully!", title, name)
	}
	return fmt.Sprintf("%s '%s' created successfully in namespace '%s'!", title, name, namespace)
}

// NodeRow is one line of the Nodes table.
type NodeRow struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// PodRow is one line of the Pods table. Phase is copied verbatim from the API.
type PodRow struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	Phase     string `json:"phase"`
}

// ServiceRow is one line of the Services table.
type ServiceRow struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
}

// ClusterState is the result of one successful refresh.
type ClusterState struct {
	Nodes    []NodeRow    `json:"nodes"`
	Pods     []PodRow     `json:"pods"`
	Services []ServiceRow `json:"services"`
}

// WorkloadTemplate holds the fixed parameters of created pods and services.
type WorkloadTemplate struct {
	ContainerName string
	Image         string
	Selector      map[string]string
	Port          int32
	TargetPort    int32
}

// DefaultWorkloadTemplate returns a single nginx container and a ClusterIP
// service selecting app=nginx on port 80.
func DefaultWorkloadTemplate() WorkloadTemplate {
	return WorkloadTemplate{
		ContainerName: "nginx",
		Image:         "nginx",
		Selector:      map[string]string{"app": "nginx"},
		Port:          80,
		TargetPort:    80,
	}
}
