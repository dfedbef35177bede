// Package config provides configuration management for kubeview.
//
// Configuration is loaded and merged in the following order, with later
// sources overriding earlier ones:
//
//  1. Default configuration (compiled in, see GetDefaultConfig)
//  2. User configuration (~/.config/kubeview/config.yaml)
//  3. Project configuration (./.kubeview/config.yaml)
//  4. Command line flags (applied by the cmd package)
//
// # Configuration Structure
//
//	kubeconfig: /home/me/.kube/config   # empty means the standard loading rules
//	context: kind-dev                   # empty means the kubeconfig current-context
//	requestTimeout: 15s
//	logLevel: info
//	workload:
//	  containerName: nginx
//	  image: nginx
//	  selector:
//	    app: nginx
//	  port: 80
//	  targetPort: 80
//	metrics:
//	  address: ":9090"                  # empty disables the metrics endpoint
//
// The workload section is the template used by the create pod and create
// service commands. Callers only ever supply names and namespaces.
package config
