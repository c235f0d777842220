package k8s

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jtarchie/conductor/engine/messaging"
	"github.com/jtarchie/conductor/orchestra"
	"k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

type K8s struct {
	clientset    *kubernetes.Clientset
	config       *rest.Config
	logger       *slog.Logger
	messaging    *messaging.Client
	namespace    string // Orchestra namespace (for labeling)
	k8sNamespace string // Kubernetes namespace (for resource placement)
	serviceAccount string
	healthWait    int
	healthRetries int
}

// runnerLabel mirrors the Docker driver's discriminator so both
// backends' provisioned resources are identifiable by the same
// convention.
const runnerLabel = "cicada-2-runner"

// Close deletes every Pod and Service this driver has labeled,
// regardless of which run provisioned it. It is a safety net for
// process exit, not the per-test teardown path (RemoveRunner handles
// that).
func (k *K8s) Close() error {
	ctx := context.Background()
	labelSelector := fmt.Sprintf("type=%s", sanitizeLabel(runnerLabel))
	deletePolicy := metav1.DeletePropagationForeground

	err := k.clientset.CoreV1().Pods(k.k8sNamespace).DeleteCollection(
		ctx,
		metav1.DeleteOptions{PropagationPolicy: &deletePolicy},
		metav1.ListOptions{LabelSelector: labelSelector},
	)
	if err != nil && !errors.IsNotFound(err) {
		return fmt.Errorf("failed to delete pods: %w", err)
	}

	services, err := k.clientset.CoreV1().Services(k.k8sNamespace).List(ctx, metav1.ListOptions{LabelSelector: labelSelector})
	if err != nil && !errors.IsNotFound(err) {
		return fmt.Errorf("failed to list services: %w", err)
	}

	for _, service := range services.Items {
		err := k.clientset.CoreV1().Services(k.k8sNamespace).Delete(ctx, service.Name, metav1.DeleteOptions{})
		if err != nil && !errors.IsNotFound(err) {
			return fmt.Errorf("failed to delete service %s: %w", service.Name, err)
		}
	}

	return nil
}

func NewK8s(namespace string, logger *slog.Logger, params map[string]string) (orchestra.Driver, error) {
	// Try to get in-cluster config first (for running inside k8s)
	config, err := rest.InClusterConfig()
	if err != nil {
		// Fall back to kubeconfig (for local development)
		loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()

		// Check DSN parameter for kubeconfig path
		if kubeconfigPath := params["kubeconfig"]; kubeconfigPath != "" {
			loadingRules.ExplicitPath = kubeconfigPath
		}

		configOverrides := &clientcmd.ConfigOverrides{}
		kubeConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, configOverrides)
		config, err = kubeConfig.ClientConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to get kubernetes config: %w", err)
		}
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	// Determine the K8s namespace to use for resources from DSN parameters
	k8sNamespace := orchestra.GetParam(params, "namespace", "POD_NAMESPACE", "default")

	logger.Info("k8s.config", "k8sNamespace", k8sNamespace, "orchestraNamespace", namespace)

	healthWait, _ := strconv.Atoi(orchestra.GetParam(params, "healthcheckInitialWait", "HEALTHCHECK_INITIAL_WAIT", "1"))
	healthRetries, _ := strconv.Atoi(orchestra.GetParam(params, "healthcheckMaxRetries", "HEALTHCHECK_MAX_RETRIES", "5"))

	return &K8s{
		clientset:      clientset,
		config:         config,
		logger:         logger,
		messaging:      messaging.New(logger),
		namespace:      namespace,
		k8sNamespace:   k8sNamespace,
		serviceAccount: orchestra.GetParam(params, "serviceAccount", "POD_SERVICE_ACCOUNT", ""),
		healthWait:     healthWait,
		healthRetries:  healthRetries,
	}, nil
}

func (k *K8s) Name() string {
	return "k8s"
}

func init() {
	orchestra.Add("k8s", NewK8s)
}

var _ orchestra.Driver = &K8s{}
