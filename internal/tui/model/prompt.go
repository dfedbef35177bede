package model

import (
	"context"
	"fmt"
	"strings"

	"kubeview/internal/kube"
)

// Action is a create command that collects its arguments through a prompt.
type Action int

const (
	ActionCreateNamespace Action = iota
	ActionCreatePod
	ActionCreateService
)

// String returns the command label shown in the command bar.
func (a Action) String() string {
	switch a {
	case ActionCreateNamespace:
		return "Create Namespace"
	case ActionCreatePod:
		return "Create Pod"
	case ActionCreateService:
		return "Create Service"
	default:
		return "Unknown"
	}
}

// Resource is the lower-case kind used in result messages.
func (a Action) Resource() string {
	switch a {
	case ActionCreateNamespace:
		return kube.ResourceNamespace
	case ActionCreatePod:
		return kube.ResourcePod
	case ActionCreateService:
		return kube.ResourceService
	default:
		return "resource"
	}
}

// Steps returns the prompts asked, in order, before a is executed.
func (a Action) Steps() []PromptStep {
	switch a {
	case ActionCreateNamespace:
		return []PromptStep{{Label: "Enter Namespace Name:", Placeholder: "namespace"}}
	case ActionCreatePod:
		return []PromptStep{
			{Label: "Enter Namespace for Pod:", Placeholder: "namespace"},
			{Label: "Enter Pod Name:", Placeholder: "pod name"},
		}
	case ActionCreateService:
		return []PromptStep{
			{Label: "Enter Namespace for Service:", Placeholder: "namespace"},
			{Label: "Enter Service Name:", Placeholder: "service name"},
		}
	default:
		return nil
	}
}

// Invoke issues the single facade call for a with the collected values.
func (a Action) Invoke(ctx context.Context, f kube.Facade, values []string) error {
	if want := len(a.Steps()); len(values) != want {
		return fmt.Errorf("%s expects %d values, got %d", a, want, len(values))
	}
	switch a {
	case ActionCreateNamespace:
		return f.CreateNamespace(ctx, values[0])
	case ActionCreatePod:
		return f.CreatePod(ctx, values[0], values[1])
	case ActionCreateService:
		return f.CreateService(ctx, values[0], values[1])
	default:
		return fmt.Errorf("unknown action %d", a)
	}
}

// SuccessMessage is shown in the status bar after a created the resource.
func (a Action) SuccessMessage(values []string) string {
	switch a {
	case ActionCreateNamespace:
		return kube.CreatedMessage(a.Resource(), "", values[0])
	case ActionCreatePod, ActionCreateService:
		return kube.CreatedMessage(a.Resource(), values[0], values[1])
	default:
		return "Done"
	}
}

// PromptStep is one question of a PromptFlow.
type PromptStep struct {
	Label       string
	Placeholder string
}

// PromptOutcome is the result of answering the current step.
type PromptOutcome int

const (
	PromptNext PromptOutcome = iota
	PromptCompleted
	PromptAborted
)

// PromptFlow walks an Action's steps and accumulates the answers. An empty
// answer or a cancel aborts the whole flow.
type PromptFlow struct {
	Action Action
	Steps  []PromptStep
	Values []string
}

// NewPromptFlow starts the flow for a at its first step.
func NewPromptFlow(a Action) *PromptFlow {
	steps := a.Steps()
	return &PromptFlow{Action: a, Steps: steps, Values: make([]string, 0, len(steps))}
}

// Current returns the step awaiting an answer.
func (f *PromptFlow) Current() PromptStep {
	if f.Done() {
		return PromptStep{}
	}
	return f.Steps[len(f.Values)]
}

// StepIndex is the zero-based index of the current step.
func (f *PromptFlow) StepIndex() int {
	return len(f.Values)
}

// Done reports whether every step has been answered.
func (f *PromptFlow) Done() bool {
	return len(f.Values) >= len(f.Steps)
}

// Submit answers the current step. Surrounding whitespace is trimmed.
func (f *PromptFlow) Submit(value string) PromptOutcome {
	value = strings.TrimSpace(value)
	if value == "" || f.Done() {
		return PromptAborted
	}
	f.Values = append(f.Values, value)
	if f.Done() {
		return PromptCompleted
	}
	return PromptNext
}
