// Package orchestra provisions and tears down runner backends (Docker
// containers, Kubernetes Pod+Service pairs) behind one Driver interface.
// A Driver never executes a command and reports an exit code: a runner
// is a long-lived gRPC service that the engine dials by hostname.
package orchestra

import (
	"context"
	"errors"
)

// ErrRunnerNotFound is returned when attempting to operate on a runner
// that does not exist.
var ErrRunnerNotFound = errors.New("runner not found")

// Runner is a handle to one provisioned, addressable gRPC service.
type Runner interface {
	// ID is the driver-specific identifier (container ID, pod name, ...).
	ID() string
	// Hostname is the "host:port" address the messaging client dials.
	Hostname() string
}

// Driver provisions and removes Runners for a single backend.
type Driver interface {
	Close() error
	Name() string
	// CreateRunner provisions one runner from spec and blocks until it
	// answers Healthcheck, or returns an error if it never becomes ready.
	CreateRunner(ctx context.Context, spec RunnerSpec) (Runner, error)
	// RemoveRunner tears down a previously created runner. Teardown
	// failures are reported but never change a test's outcome.
	RemoveRunner(ctx context.Context, runner Runner) error
}
