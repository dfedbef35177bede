package kube

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   ErrorKind
		wantReason string
	}{
		{
			name:       "already exists",
			err:        apierrors.NewAlreadyExists(schema.GroupResource{Resource: "pods"}, "web"),
			wantKind:   KindAPI,
			wantReason: "AlreadyExists",
		},
		{
			name:       "forbidden",
			err:        apierrors.NewForbidden(schema.GroupResource{Resource: "namespaces"}, "demo", errors.New("rbac")),
			wantKind:   KindAPI,
			wantReason: "Forbidden",
		},
		{
			name:       "unauthorized is a connection failure",
			err:        apierrors.NewUnauthorized("bad token"),
			wantKind:   KindConnection,
			wantReason: ReasonUnauthorized,
		},
		{
			name:       "context deadline",
			err:        fmt.Errorf("Get \"https://k8s/api/v1/nodes\": %w", context.DeadlineExceeded),
			wantKind:   KindConnection,
			wantReason: ReasonTimeout,
		},
		{
			name:       "unknown authority",
			err:        &url.Error{Op: "Get", URL: "https://k8s", Err: x509.UnknownAuthorityError{}},
			wantKind:   KindConnection,
			wantReason: ReasonTLS,
		},
		{
			name:       "connection refused",
			err:        errors.New("dial tcp 127.0.0.1:6443: connect: connection refused"),
			wantKind:   KindConnection,
			wantReason: ReasonUnreachable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Classify("op", tt.err)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, KindOf(err))
			assert.True(t, errors.Is(err, tt.err), "original error must stay in the chain")

			switch tt.wantKind {
			case KindAPI:
				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, tt.wantReason, apiErr.Reason)
			case KindConnection:
				var connErr *ConnectionError
				require.True(t, errors.As(err, &connErr))
				assert.Equal(t, tt.wantReason, connErr.Reason)
			}
		})
	}
}

func TestClassify_NilAndIdempotent(t *testing.T) {
	assert.NoError(t, Classify("op", nil))

	first := Classify("create pod", apierrors.NewAlreadyExists(schema.GroupResource{Resource: "pods"}, "web"))
	second := Classify("other", first)
	assert.Same(t, first, second)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindAPI, KindOf(fmt.Errorf("wrapped: %w", &APIError{Op: "x", Err: errors.New("y")})))
	assert.Equal(t, KindConnection, KindOf(&ConnectionError{Op: "x", Err: errors.New("y")}))

	assert.Equal(t, "api_error", KindAPI.String())
	assert.Equal(t, "connection_error", KindConnection.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestErrorMessages(t *testing.T) {
	connErr := &ConnectionError{Op: OpListNodes, Reason: ReasonTimeout, Err: errors.New("i/o timeout")}
	assert.Equal(t, "list nodes: cannot reach cluster (timeout): i/o timeout", connErr.Error())

	apiErr := &APIError{Op: OpCreatePod, Err: errors.New(`pods "web" already exists`)}
	assert.Equal(t, `create pod: pods "web" already exists`, apiErr.Error())
}
