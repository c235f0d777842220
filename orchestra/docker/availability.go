package docker

import (
	"context"
	"time"

	"github.com/docker/docker/client"
)

// IsAvailable reports whether a Docker daemon is reachable, the same
// way k8s.IsAvailable gates its own integration tests.
func IsAvailable() bool {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false
	}
	defer func() { _ = cli.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err = cli.Ping(ctx)

	return err == nil
}
