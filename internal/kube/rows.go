package kube

import (
	corev1 "k8s.io/api/core/v1"
)

// nodeStatus reports "Ready" when any condition has type Ready. The condition's
// Status value is deliberately not inspected, so a node whose Ready condition
// is False or Unknown still shows as Ready.
func nodeStatus(node *corev1.Node) string {
	for _, condition := range node.Status.Conditions {
		if condition.Type == corev1.NodeReady {
			return NodeStatusReady
		}
	}
	return NodeStatusNotReady
}

func nodeRows(list *corev1.NodeList) []NodeRow {
	rows := make([]NodeRow, 0, len(list.Items))
	for i := range list.Items {
		rows = append(rows, NodeRow{
			Name:   list.Items[i].Name,
			Status: nodeStatus(&list.Items[i]),
		})
	}
	return rows
}

func podRows(list *corev1.PodList) []PodRow {
	rows := make([]PodRow, 0, len(list.Items))
	for _, pod := range list.Items {
		rows = append(rows, PodRow{
			Namespace: pod.Namespace,
			Name:      pod.Name,
			Phase:     string(pod.Status.Phase),
		})
	}
	return rows
}

func serviceRows(list *corev1.ServiceList) []ServiceRow {
	rows := make([]ServiceRow, 0, len(list.Items))
	for _, svc := range list.Items {
		rows = append(rows, ServiceRow{Namespace: svc.Namespace, Name: svc.Name})
	}
	return rows
}
