package docker

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/containerd/errdefs"
	"github.com/docker/cli/cli/connhelper"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
	"github.com/jtarchie/conductor/engine/messaging"
	"github.com/jtarchie/conductor/orchestra"
)

// runnerLabel discriminates conductor-managed containers from anything
// else on the same Docker host; run IDs are never reused across
// invocations so the (label, run_id) pair is globally unique.
const runnerLabel = "cicada-2-runner"

// Docker provisions runners as detached containers attached to a
// shared bridge network, addressed by container name.
type Docker struct {
	client    *client.Client
	logger    *slog.Logger
	messaging *messaging.Client
	namespace string

	network       string
	createNetwork bool
	healthWait    int
	healthRetries int
}

// Close prunes every stopped container carrying the runner label,
// regardless of which run provisioned it; containers that are still
// running are not stopped or removed. It is a safety net for process
// exit, not the per-test teardown path (RemoveRunner handles that).
func (d *Docker) Close() error {
	attempts := 5
	for currentAttempt := range attempts {
		_, err := d.client.ContainersPrune(context.Background(), filters.NewArgs(
			filters.Arg("label", runnerLabel),
		))
		if err == nil {
			return nil
		}

		if !errdefs.IsConflict(err) {
			return fmt.Errorf("failed to prune containers: %w", err)
		}

		if currentAttempt < attempts-1 {
			time.Sleep(time.Duration(1<<currentAttempt) * time.Second)
		} else {
			return fmt.Errorf("failed to prune containers after %d attempts: %w", attempts, err)
		}
	}

	return nil
}

// NewDocker satisfies orchestra.InitFunc. params may set "network",
// "createNetwork", "healthcheckInitialWait", and "healthcheckMaxRetries",
// each falling back to the env vars documented for the engine and then
// to a built-in default.
func NewDocker(namespace string, logger *slog.Logger, params map[string]string) (orchestra.Driver, error) {
	var clientOpts []client.Opt

	dockerHost := os.Getenv("DOCKER_HOST")
	if strings.HasPrefix(dockerHost, "ssh://") {
		helper, err := connhelper.GetConnectionHelper(dockerHost)
		if err != nil {
			return nil, fmt.Errorf("failed to get connection helper: %w", err)
		}

		httpClient := &http.Client{
			Transport: &http.Transport{
				DialContext: helper.Dialer,
			},
		}

		clientOpts = append(clientOpts,
			client.WithHTTPClient(httpClient),
			client.WithHost(helper.Host),
			client.WithDialContext(helper.Dialer),
			client.WithAPIVersionNegotiation(),
		)
	} else {
		clientOpts = append(clientOpts, client.FromEnv, client.WithAPIVersionNegotiation())
	}

	cli, err := client.NewClientWithOpts(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}

	createNetwork, _ := strconv.ParseBool(orchestra.GetParam(params, "createNetwork", "CREATE_NETWORK", "true"))
	healthWait, _ := strconv.Atoi(orchestra.GetParam(params, "healthcheckInitialWait", "HEALTHCHECK_INITIAL_WAIT", "1"))
	healthRetries, _ := strconv.Atoi(orchestra.GetParam(params, "healthcheckMaxRetries", "HEALTHCHECK_MAX_RETRIES", "5"))

	return &Docker{
		client:        cli,
		logger:        logger,
		messaging:     messaging.New(logger),
		namespace:     namespace,
		network:       orchestra.GetParam(params, "network", "CONTAINER_NETWORK", "conductor-runners"),
		createNetwork: createNetwork,
		healthWait:    healthWait,
		healthRetries: healthRetries,
	}, nil
}

func (d *Docker) Name() string {
	return "docker"
}

func init() {
	orchestra.Add("docker", NewDocker)
}

var _ orchestra.Driver = &Docker{}
