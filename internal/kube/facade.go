package kube

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/client-go/kubernetes"

	"kubeview/pkg/logging"
)

const subsystem = "Kube"

// Operation names used in errors, logs and metrics.
const (
	OpListClusterState = "list cluster state"
	OpListNodes        = "list nodes"
	OpListPods         = "list pods"
	OpListServices     = "list services"
	OpCreateNamespace  = "create namespace"
	OpCreatePod        = "create pod"
	OpCreateService    = "create service"
)

type facade struct {
	clientset kubernetes.Interface
	template  WorkloadTemplate
}

// NewFacade returns a Facade issuing its calls through clientset.
func NewFacade(clientset kubernetes.Interface, template WorkloadTemplate) Facade {
	return &facade{clientset: clientset, template: template}
}

func (f *facade) ListClusterState(ctx context.Context) (ClusterState, error) {
	core := f.clientset.CoreV1()

	nodes, err := core.Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return ClusterState{}, Classify(OpListNodes, err)
	}
	pods, err := core.Pods(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
	if err != nil {
		return ClusterState{}, Classify(OpListPods, err)
	}
	services, err := core.Services(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
	if err != nil {
		return ClusterState{}, Classify(OpListServices, err)
	}

	state := ClusterState{
		Nodes:    nodeRows(nodes),
		Pods:     podRows(pods),
		Services: serviceRows(services),
	}
	logging.Debug(subsystem, "Listed %d nodes, %d pods, %d services", len(state.Nodes), len(state.Pods), len(state.Services))
	return state, nil
}

func (f *facade) CreateNamespace(ctx context.Context, name string) error {
	ns := &corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: name}}
	if _, err := f.clientset.CoreV1().Namespaces().Create(ctx, ns, metav1.CreateOptions{}); err != nil {
		return Classify(OpCreateNamespace, err)
	}
	logging.Info(subsystem, "Created namespace %s", name)
	return nil
}

func (f *facade) CreatePod(ctx context.Context, namespace, podName string) error {
	pod := f.podFor(namespace, podName)
	if _, err := f.clientset.CoreV1().Pods(namespace).Create(ctx, pod, metav1.CreateOptions{}); err != nil {
		return Classify(OpCreatePod, err)
	}
	logging.Info(subsystem, "Created pod %s/%s", namespace, podName)
	return nil
}

func (f *facade) CreateService(ctx context.Context, namespace, serviceName string) error {
	svc := f.serviceFor(namespace, serviceName)
	if _, err := f.clientset.CoreV1().Services(namespace).Create(ctx, svc, metav1.CreateOptions{}); err != nil {
		return Classify(OpCreateService, err)
	}
	logging.Info(subsystem, "Created service %s/%s", namespace, serviceName)
	return nil
}

func (f *facade) podFor(namespace, name string) *corev1.Pod {
	return &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
		Spec: corev1.PodSpec{
			Containers: []corev1.Container{{
				Name:  f.template.ContainerName,
				Image: f.template.Image,
			}},
		},
	}
}

func (f *facade) serviceFor(namespace, name string) *corev1.Service {
	selector := make(map[string]string, len(f.template.Selector))
	for k, v := range f.template.Selector {
		selector[k] = v
	}
	return &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
		Spec: corev1.ServiceSpec{
			Type:     corev1.ServiceTypeClusterIP,
			Selector: selector,
			Ports: []corev1.ServicePort{{
				Protocol:   corev1.ProtocolTCP,
				Port:       f.template.Port,
				TargetPort: intstr.FromInt32(f.template.TargetPort),
			}},
		},
	}
}

// String is used in debug logs.
func (t WorkloadTemplate) String() string {
	return fmt.Sprintf("container=%s image=%s selector=%v port=%d->%d",
		t.ContainerName, t.Image, t.Selector, t.Port, t.TargetPort)
}
