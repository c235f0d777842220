package docker

import (
	"context"
	"fmt"
	"io"

	"github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/api/types/network"
	"github.com/google/uuid"
	"github.com/jtarchie/conductor/orchestra"
)

// Runner is a detached, network-attached container running a runner
// image. Its address is its container name: Docker's embedded DNS
// resolves it on the shared network without a published port.
type Runner struct {
	id       string
	hostname string
}

func (r *Runner) ID() string       { return r.id }
func (r *Runner) Hostname() string { return r.hostname }

var _ orchestra.Runner = &Runner{}

func (d *Docker) ensureNetwork(ctx context.Context) error {
	_, err := d.client.NetworkInspect(ctx, d.network, network.InspectOptions{})
	if err == nil {
		return nil
	}

	if !errdefs.IsNotFound(err) {
		return fmt.Errorf("failed to inspect network %s: %w", d.network, err)
	}

	if !d.createNetwork {
		return fmt.Errorf("docker network %s not configured", d.network)
	}

	if _, err := d.client.NetworkCreate(ctx, d.network, network.CreateOptions{}); err != nil {
		return fmt.Errorf("failed to create network %s: %w", d.network, err)
	}

	d.logger.Info("docker.network.created", "network", d.network)

	return nil
}

// CreateRunner implements orchestra.Driver. It attaches the container
// to the configured network, bind-mounts spec.Volumes verbatim, and
// blocks until the runner answers Healthcheck. A container that never
// answers is stopped before the error is returned.
func (d *Docker) CreateRunner(ctx context.Context, spec orchestra.RunnerSpec) (orchestra.Runner, error) {
	if err := d.ensureNetwork(ctx); err != nil {
		return nil, err
	}

	reader, err := d.client.ImagePull(ctx, spec.Image, image.PullOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to initiate pull image: %w", err)
	}

	_, _ = io.Copy(io.Discard, reader)
	_ = reader.Close()

	suffix := uuid.New().String()[:8]

	containerName := fmt.Sprintf("%s-%s", orchestra.RunnerType(spec.Image), suffix)

	mounts := make([]mount.Mount, 0, len(spec.Volumes))
	for _, v := range spec.Volumes {
		mounts = append(mounts, mount.Mount{
			Type:   mount.TypeBind,
			Source: v.Source,
			Target: v.Destination,
		})
	}

	env := make([]string, 0, len(spec.Env))
	for k, v := range spec.Env {
		env = append(env, k+"="+v)
	}

	resp, err := d.client.ContainerCreate(
		ctx,
		&container.Config{
			Image: spec.Image,
			Env:   env,
			Labels: map[string]string{
				runnerLabel: "",
				spec.RunID:  "",
			},
		},
		&container.HostConfig{
			NetworkMode: container.NetworkMode(d.network),
			Mounts:      mounts,
		},
		nil, nil,
		containerName,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create container: %w", err)
	}

	if err := d.client.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		return nil, fmt.Errorf("unable to start container: %w", err)
	}

	hostname := fmt.Sprintf("%s:50051", containerName)

	d.logger.Debug("docker.runner.healthchecking", "hostname", hostname)

	if !orchestra.WaitHealthy(ctx, d.messaging, hostname, d.healthWait, d.healthRetries) {
		if err := d.RemoveRunner(ctx, &Runner{id: resp.ID, hostname: hostname}); err != nil {
			d.logger.Warn("docker.runner.teardown.failed", "hostname", hostname, "err", err)
		}

		return nil, fmt.Errorf("unable to successfully contact container %s", containerName)
	}

	d.logger.Info("docker.runner.created", "hostname", hostname)

	return &Runner{id: resp.ID, hostname: hostname}, nil
}

// RemoveRunner stops the container with a short grace period, mirroring
// how Docker's own CLI "stop" behaves for a cooperative shutdown.
func (d *Docker) RemoveRunner(ctx context.Context, runner orchestra.Runner) error {
	timeout := 3

	if err := d.client.ContainerStop(ctx, runner.ID(), container.StopOptions{Timeout: &timeout}); err != nil {
		return fmt.Errorf("unable to stop container %s: %w", runner.ID(), err)
	}

	return nil
}
