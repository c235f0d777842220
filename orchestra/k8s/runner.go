package k8s

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jtarchie/conductor/orchestra"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
)

func intstrFromInt(value int) intstr.IntOrString {
	return intstr.FromInt(value)
}

// Runner is a Pod+Service pair: the Pod hosts the runner image, the
// Service gives it a name stable enough to dial before the Pod's own
// IP is known.
type Runner struct {
	id       string
	hostname string
}

func (r *Runner) ID() string       { return r.id }
func (r *Runner) Hostname() string { return r.hostname }

var _ orchestra.Runner = &Runner{}

// CreateRunner implements orchestra.Driver. Volumes reference
// already-existing PersistentVolumeClaims by name; this driver never
// creates or owns the backing claim.
func (k *K8s) CreateRunner(ctx context.Context, spec orchestra.RunnerSpec) (orchestra.Runner, error) {
	suffix := uuid.New().String()[:8]

	containerID := sanitizeName(fmt.Sprintf("%s-%s", orchestra.RunnerType(spec.Image), suffix))

	volumes := make([]corev1.Volume, 0, len(spec.Volumes))
	volumeMounts := make([]corev1.VolumeMount, 0, len(spec.Volumes))

	for _, v := range spec.Volumes {
		volumes = append(volumes, corev1.Volume{
			Name: sanitizeName(v.Source),
			VolumeSource: corev1.VolumeSource{
				PersistentVolumeClaim: &corev1.PersistentVolumeClaimVolumeSource{
					ClaimName: v.Source,
				},
			},
		})
		volumeMounts = append(volumeMounts, corev1.VolumeMount{
			Name:      sanitizeName(v.Source),
			MountPath: v.Destination,
		})
	}

	env := make([]corev1.EnvVar, 0, len(spec.Env))
	for key, value := range spec.Env {
		env = append(env, corev1.EnvVar{Name: key, Value: value})
	}

	pod := &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name: containerID,
			Labels: map[string]string{
				"run_id": sanitizeLabel(spec.RunID),
				"run":    sanitizeLabel(containerID),
				"family": "cicada",
				"type":   runnerLabel,
			},
		},
		Spec: corev1.PodSpec{
			Containers: []corev1.Container{
				{
					Name:         containerID,
					Image:        spec.Image,
					Ports:        []corev1.ContainerPort{{ContainerPort: 50051}},
					VolumeMounts: volumeMounts,
					Env:          env,
				},
			},
			Volumes:            volumes,
			ServiceAccountName: k.serviceAccount,
		},
	}

	if _, err := k.clientset.CoreV1().Pods(k.k8sNamespace).Create(ctx, pod, metav1.CreateOptions{}); err != nil {
		return nil, fmt.Errorf("unable to create pod: %w", err)
	}

	for {
		current, err := k.clientset.CoreV1().Pods(k.k8sNamespace).Get(ctx, containerID, metav1.GetOptions{})
		if err != nil {
			return nil, fmt.Errorf("unable to read pod %s: %w", containerID, err)
		}

		if current.Status.Phase == corev1.PodRunning {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled waiting for pod %s: %w", containerID, ctx.Err())
		case <-time.After(time.Second):
		}
	}

	service := &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name: containerID,
			Labels: map[string]string{
				"run_id": sanitizeLabel(spec.RunID),
				"family": "cicada",
				"type":   runnerLabel,
			},
		},
		Spec: corev1.ServiceSpec{
			Selector: map[string]string{"run": sanitizeLabel(containerID)},
			Ports: []corev1.ServicePort{
				{Port: 50051, TargetPort: intstrFromInt(50051)},
			},
		},
	}

	if _, err := k.clientset.CoreV1().Services(k.k8sNamespace).Create(ctx, service, metav1.CreateOptions{}); err != nil {
		return nil, fmt.Errorf("unable to create service: %w", err)
	}

	hostname := fmt.Sprintf("%s:50051", containerID)

	k.logger.Debug("k8s.runner.healthchecking", "hostname", hostname)

	if !orchestra.WaitHealthy(ctx, k.messaging, hostname, k.healthWait, k.healthRetries) {
		if err := k.RemoveRunner(ctx, &Runner{id: containerID, hostname: hostname}); err != nil {
			k.logger.Warn("k8s.runner.teardown.failed", "hostname", hostname, "err", err)
		}

		return nil, fmt.Errorf("unable to successfully contact pod %s", containerID)
	}

	k.logger.Info("k8s.runner.created", "hostname", hostname)

	return &Runner{id: containerID, hostname: hostname}, nil
}

// RemoveRunner deletes both the Pod and Service backing runner.
func (k *K8s) RemoveRunner(ctx context.Context, runner orchestra.Runner) error {
	err := k.clientset.CoreV1().Pods(k.k8sNamespace).Delete(ctx, runner.ID(), metav1.DeleteOptions{})
	if err != nil && !errors.IsNotFound(err) {
		return fmt.Errorf("unable to delete pod %s: %w", runner.ID(), err)
	}

	err = k.clientset.CoreV1().Services(k.k8sNamespace).Delete(ctx, runner.ID(), metav1.DeleteOptions{})
	if err != nil && !errors.IsNotFound(err) {
		return fmt.Errorf("unable to delete service %s: %w", runner.ID(), err)
	}

	return nil
}
