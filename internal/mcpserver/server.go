// Package mcpserver exposes the cluster facade as MCP tools over stdio so
// that assistants can read cluster state and create resources.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"kubeview/internal/kube"
	"kubeview/pkg/logging"
)

const subsystem = "MCPServer"

// Tool names.
const (
	ToolListClusterState = "list_cluster_state"
	ToolCreateNamespace  = "create_namespace"
	ToolCreatePod        = "create_pod"
	ToolCreateService    = "create_service"
)

// Server wires a kube.Facade to an MCP server.
type Server struct {
	facade  kube.Facade
	timeout time.Duration
	mcp     *server.MCPServer
}

// New registers the cluster tools on a fresh MCP server. A positive timeout
// bounds every facade call.
func New(f kube.Facade, version string, timeout time.Duration) *Server {
	s := &Server{
		facade:  f,
		timeout: timeout,
		mcp: server.NewMCPServer(
			"kubeview",
			version,
			server.WithToolCapabilities(false),
		),
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool(ToolListClusterState,
		mcp.WithDescription("List nodes, pods and services of the cluster"),
	), s.handleListClusterState)

	s.mcp.AddTool(mcp.NewTool(ToolCreateNamespace,
		mcp.WithDescription("Create a namespace"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Namespace name"),
		),
	), s.handleCreateNamespace)

	s.mcp.AddTool(mcp.NewTool(ToolCreatePod,
		mcp.WithDescription("Create a pod from the configured workload template"),
		mcp.WithString("namespace",
			mcp.Required(),
			mcp.Description("Namespace of the pod"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Pod name"),
		),
	), s.handleCreatePod)

	s.mcp.AddTool(mcp.NewTool(ToolCreateService,
		mcp.WithDescription("Create a ClusterIP service selecting the workload template label"),
		mcp.WithString("namespace",
			mcp.Required(),
			mcp.Description("Namespace of the service"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Service name"),
		),
	), s.handleCreateService)
}

// MCPServer returns the underlying server, e.g. to mount another transport.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// ServeStdio blocks serving requests on stdin/stdout.
func (s *Server) ServeStdio() error {
	logging.Info(subsystem, "Serving MCP tools on stdio")
	return server.ServeStdio(s.mcp)
}

func (s *Server) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return context.WithCancel(ctx)
}

func (s *Server) handleListClusterState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	state, err := s.facade.ListClusterState(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error fetching cluster info: %v", err)), nil
	}

	// nil slices would encode as null
	if state.Nodes == nil {
		state.Nodes = []kube.NodeRow{}
	}
	if state.Pods == nil {
		state.Pods = []kube.PodRow{}
	}
	if state.Services == nil {
		state.Services = []kube.ServiceRow{}
	}

	jsonData, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format cluster state: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (s *Server) handleCreateNamespace(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil || name == "" {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	ctx, cancel := s.callContext(ctx)
	defer cancel()

	if err := s.facade.CreateNamespace(ctx, name); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create namespace: %v", err)), nil
	}
	return mcp.NewToolResultText(kube.CreatedMessage(kube.ResourceNamespace, "", name)), nil
}

func (s *Server) handleCreatePod(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	namespace, name, errResult := namespacedName(request)
	if errResult != nil {
		return errResult, nil
	}

	ctx, cancel := s.callContext(ctx)
	defer cancel()

	if err := s.facade.CreatePod(ctx, namespace, name); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create pod: %v", err)), nil
	}
	return mcp.NewToolResultText(kube.CreatedMessage(kube.ResourcePod, namespace, name)), nil
}

func (s *Server) handleCreateService(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	namespace, name, errResult := namespacedName(request)
	if errResult != nil {
		return errResult, nil
	}

	ctx, cancel := s.callContext(ctx)
	defer cancel()

	if err := s.facade.CreateService(ctx, namespace, name); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create service: %v", err)), nil
	}
	return mcp.NewToolResultText(kube.CreatedMessage(kube.ResourceService, namespace, name)), nil
}

func namespacedName(request mcp.CallToolRequest) (string, string, *mcp.CallToolResult) {
	namespace, err := request.RequireString("namespace")
	if err != nil || namespace == "" {
		return "", "", mcp.NewToolResultError("namespace parameter is required")
	}
	name, err := request.RequireString("name")
	if err != nil || name == "" {
		return "", "", mcp.NewToolResultError("name parameter is required")
	}
	return namespace, name, nil
}
