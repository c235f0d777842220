// Package orchestrator is the closure orchestrator: for one test, it
// provisions the runner pool the test's config asks for, runs the
// test to completion (or timeout) against that pool, tears the pool
// down again, and folds the result into the accumulating State. It
// never returns an error — every failure mode becomes a TestSummary
// with its Error field set, so a sequence of tests can always proceed
// to the next one.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jtarchie/conductor/engine/dispatch"
	"github.com/jtarchie/conductor/engine/model"
	"github.com/jtarchie/conductor/engine/timeout"
	"github.com/jtarchie/conductor/orchestra"
)

// ErrMissingImage is InvalidConfig: a test must resolve to a runner
// image, whether through a recognized "runner" name or an explicit
// "image".
var ErrMissingImage = errors.New("must specify a valid 'runner' or 'image'")

// Orchestrator wires one provisioning Driver and one messaging Sender
// together to run tests.
type Orchestrator struct {
	driver orchestra.Driver
	sender dispatch.Sender
	logger *slog.Logger
}

// New returns an Orchestrator that provisions runners through driver
// and dispatches actions/asserts through sender.
func New(driver orchestra.Driver, sender dispatch.Sender, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}

	return &Orchestrator{driver: driver, sender: sender, logger: logger.WithGroup("orchestrator")}
}

// configToRunnerEnv formats a runner's config map into the RUNNER_*
// environment contract every runner image expects.
func configToRunnerEnv(config map[string]string) map[string]string {
	env := make(map[string]string, len(config))

	for key, value := range config {
		env["RUNNER_"+strings.ToUpper(key)] = value
	}

	return env
}

// errorSummary synthesizes the terminal TestSummary used for every
// fatal outcome: provisioning failures, config errors, and execution
// errors alike.
func errorSummary(config model.TestConfig, err error) *model.TestSummary {
	message := err.Error()

	return &model.TestSummary{
		Description:      config.Description,
		CompletedCycles:  0,
		RemainingAsserts: []string{},
		Error:            &message,
		DurationSeconds:  0,
		Filename:         config.Filename,
	}
}

// RunTest provisions config's runners, runs the test, tears the
// runners down, and returns incoming with config.Name's entry
// replaced. runID groups this test's runners for bulk identification
// by the backend driver.
func (o *Orchestrator) RunTest(ctx context.Context, config model.TestConfig, incoming model.State, runID string) model.State {
	logger := o.logger.With("test", config.Name)

	normalized := config.Normalize()

	image := resolveImage(normalized.Runner, normalized.Image)
	if image == "" {
		logger.Error("test.config.invalid", "err", ErrMissingImage)

		return incoming.Merge(config.Name, model.TestState{Summary: errorSummary(config, ErrMissingImage)})
	}

	env := configToRunnerEnv(normalized.Config)

	volumes := make([]orchestra.Volume, len(normalized.Volumes))
	for i, v := range normalized.Volumes {
		volumes[i] = orchestra.Volume{Source: v.Source, Destination: v.Destination}
	}

	runners := make([]orchestra.Runner, 0, normalized.RunnerCount)

	for i := 0; i < normalized.RunnerCount; i++ {
		runner, err := o.driver.CreateRunner(ctx, orchestra.RunnerSpec{
			Name:    fmt.Sprintf("%s-%d", config.Name, i),
			Image:   image,
			Env:     env,
			Volumes: volumes,
			RunID:   runID,
		})
		if err != nil {
			logger.Error("test.provisioning.failed", "err", err)
			o.teardown(ctx, logger, runners)

			return incoming.Merge(config.Name, model.TestState{Summary: errorSummary(config, fmt.Errorf("provisioning runner: %w", err))})
		}

		runners = append(runners, runner)
	}

	hostnames := make([]string, len(runners))
	for i, runner := range runners {
		hostnames[i] = runner.Hostname()
	}

	newState, err := timeout.Run(ctx, o.sender, normalized, incoming, hostnames, normalized.Timeout)
	if err != nil {
		logger.Error("test.execution.failed", "err", err)

		newState = incoming.Merge(config.Name, model.TestState{Summary: errorSummary(config, err)})
	}

	// Runners are reaped unconditionally — on the error path above and
	// here on success — because they belong exclusively to this one
	// test run and are never reused across tests.
	o.teardown(ctx, logger, runners)

	return newState
}

// teardown removes every provisioned runner. Failures are logged, not
// propagated: a teardown error never changes a test's recorded
// outcome.
func (o *Orchestrator) teardown(ctx context.Context, logger *slog.Logger, runners []orchestra.Runner) {
	for _, runner := range runners {
		if err := o.driver.RemoveRunner(ctx, runner); err != nil {
			logger.Warn("test.teardown.failed", "runner", runner.ID(), "err", err)
		}
	}
}
