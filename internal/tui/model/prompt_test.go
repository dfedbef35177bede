package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kubeview/internal/kube"
	"kubeview/internal/kube/kubefake"
)

func TestAction_Steps(t *testing.T) {
	tests := []struct {
		action Action
		labels []string
	}{
		{ActionCreateNamespace, []string{"Enter Namespace Name:"}},
		{ActionCreatePod, []string{"Enter Namespace for Pod:", "Enter Pod Name:"}},
		{ActionCreateService, []string{"Enter Namespace for Service:", "Enter Service Name:"}},
	}
	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			var labels []string
			for _, s := range tt.action.Steps() {
				labels = append(labels, s.Label)
			}
			assert.Equal(t, tt.labels, labels)
		})
	}
}

func TestPromptFlow_TwoSteps(t *testing.T) {
	f := NewPromptFlow(ActionCreatePod)
	assert.Equal(t, "Enter Namespace for Pod:", f.Current().Label)
	assert.Equal(t, 0, f.StepIndex())

	assert.Equal(t, PromptNext, f.Submit("demo"))
	assert.Equal(t, "Enter Pod Name:", f.Current().Label)
	assert.False(t, f.Done())

	assert.Equal(t, PromptCompleted, f.Submit("  web  "))
	assert.True(t, f.Done())
	assert.Equal(t, []string{"demo", "web"}, f.Values)
	assert.Equal(t, PromptStep{}, f.Current())
}

func TestPromptFlow_EmptyAnswerAborts(t *testing.T) {
	f := NewPromptFlow(ActionCreateService)
	require.Equal(t, PromptNext, f.Submit("demo"))
	assert.Equal(t, PromptAborted, f.Submit("   "))
	assert.Equal(t, []string{"demo"}, f.Values)
}

func TestPromptFlow_SubmitAfterDone(t *testing.T) {
	f := NewPromptFlow(ActionCreateNamespace)
	require.Equal(t, PromptCompleted, f.Submit("demo"))
	assert.Equal(t, PromptAborted, f.Submit("again"))
	assert.Equal(t, []string{"demo"}, f.Values)
}

func TestAction_InvokeIssuesExactlyOneCall(t *testing.T) {
	tests := []struct {
		action Action
		values []string
		wantOp string
	}{
		{ActionCreateNamespace, []string{"demo"}, kube.OpCreateNamespace},
		{ActionCreatePod, []string{"demo", "web"}, kube.OpCreatePod},
		{ActionCreateService, []string{"demo", "web"}, kube.OpCreateService},
	}
	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			fake := kubefake.New(kube.ClusterState{})
			require.NoError(t, tt.action.Invoke(context.Background(), fake, tt.values))

			calls := fake.Calls()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.wantOp, calls[0].Op)
			assert.Equal(t, tt.values, calls[0].Args)
		})
	}
}

func TestAction_InvokeRejectsWrongArity(t *testing.T) {
	fake := kubefake.New(kube.ClusterState{})
	err := ActionCreatePod.Invoke(context.Background(), fake, []string{"demo"})
	require.Error(t, err)
	assert.Equal(t, 0, fake.CallCount(""))
}

func TestAction_SuccessMessage(t *testing.T) {
	assert.Equal(t, "Namespace 'demo' created successfully!", ActionCreateNamespace.SuccessMessage([]string{"demo"}))
	assert.Equal(t, "Pod 'web' created successfully in namespace 'demo'!", ActionCreatePod.SuccessMessage([]string{"demo", "web"}))
	assert.Equal(t, "Service 'web' created successfully in namespace 'demo'!", ActionCreateService.SuccessMessage([]string{"demo", "web"}))
}
