// Package cycle runs one test's repeated action/assert loop: each
// cycle dispatches actions, then asserts, against the test's runner
// pool, until the test's cycle budget and assert state say to stop.
package cycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jtarchie/conductor/engine/dispatch"
	"github.com/jtarchie/conductor/engine/distribution"
	"github.com/jtarchie/conductor/engine/model"
)

// ErrNoHostnames is InvalidConfig: a test cannot run without at least
// one provisioned runner.
var ErrNoHostnames = errors.New("must have at least one host to run tests")

// Unlimited is the cycles sentinel meaning "run until every assert is
// satisfied, however many cycles that takes."
const Unlimited = -1

// DefaultCycles mirrors get_default_cycles: unlimited if the test has
// any top-level or inner asserts, one pass if it has only actions, and
// zero (never run) if it has neither.
func DefaultCycles(actions []model.Action, asserts []model.Assert) int {
	if model.HasAnyAsserts(actions, asserts) {
		return Unlimited
	}

	if len(actions) > 0 {
		return 1
	}

	return 0
}

// ContinueRunning reports whether another cycle should run: it never
// continues once remaining reaches zero, and once the test carries any
// asserts it also stops as soon as every top-level and inner assert is
// satisfied, regardless of remaining cycles.
func ContinueRunning(actions []model.Action, asserts []model.Assert, remaining int, actionsData model.ActionsData, assertStatuses model.AssertStatuses) bool {
	if remaining == 0 {
		return false
	}

	if !model.HasAnyAsserts(actions, asserts) {
		return true
	}

	if len(model.Remaining(asserts, assertStatuses)) > 0 {
		return true
	}

	for _, action := range actions {
		innerStatuses := actionsData[action.Name].Asserts
		if len(model.Remaining(action.Asserts, innerStatuses)) > 0 {
			return true
		}
	}

	return false
}

// Run executes config against hostnames, starting from incoming state,
// until ContinueRunning says to stop or keepGoing reports false at a
// cycle boundary. keepGoing may be nil, meaning run to completion
// uncancelled — the shape the timeout supervisor wraps to request
// cooperative early exit.
func Run(
	ctx context.Context,
	sender dispatch.Sender,
	config model.TestConfig,
	incoming model.State,
	hostnames []string,
	keepGoing func() bool,
) (model.State, error) {
	if len(hostnames) == 0 {
		return incoming, ErrNoHostnames
	}

	config = config.Normalize()

	actions := config.Actions
	asserts := config.Asserts

	if err := model.VerifyActionNames(actions); err != nil {
		return incoming, fmt.Errorf("invalid action config: %w", err)
	}

	if err := model.VerifyAssertNames(asserts); err != nil {
		return incoming, fmt.Errorf("invalid assert config: %w", err)
	}

	remaining := DefaultCycles(actions, asserts)
	if config.Cycles != nil {
		remaining = *config.Cycles
	}

	completed := 0
	state := incoming.Clone()
	startTime := time.Now()

	for ContinueRunning(actions, asserts, remaining, state[config.Name].Actions, state[config.Name].Asserts) {
		if keepGoing != nil && !keepGoing() {
			break
		}

		entry := state[config.Name]

		if len(actions) > 0 {
			actionsData, err := distribution.Actions(
				ctx, sender, config.ActionDistributionStrategy, actions, hostnames,
				config.SecondsBetweenActions, entry.Actions,
			)
			if err != nil {
				return incoming, fmt.Errorf("dispatching actions: %w", err)
			}

			entry.Actions = actionsData
		}

		if len(asserts) > 0 {
			assertStatuses, err := distribution.Asserts(
				ctx, sender, config.AssertDistributionStrategy, asserts, hostnames,
				config.SecondsBetweenAsserts, entry.Asserts,
			)
			if err != nil {
				return incoming, fmt.Errorf("dispatching asserts: %w", err)
			}

			entry.Asserts = assertStatuses
		}

		state = state.Merge(config.Name, entry)

		remaining--
		completed++

		if ContinueRunning(actions, asserts, remaining, state[config.Name].Actions, state[config.Name].Asserts) {
			sleep(*config.SecondsBetweenCycles)
		}
	}

	remainingAsserts := model.Remaining(asserts, state[config.Name].Asserts)
	names := make([]string, len(remainingAsserts))

	for i, a := range remainingAsserts {
		names[i] = a.Name
	}

	state = state.Merge(config.Name, model.TestState{
		Actions: state[config.Name].Actions,
		Asserts: state[config.Name].Asserts,
		Summary: &model.TestSummary{
			Description:      config.Description,
			CompletedCycles:  completed,
			RemainingAsserts: names,
			Error:            nil,
			DurationSeconds:  int(time.Since(startTime).Seconds()),
			Filename:         config.Filename,
		},
	})

	return state, nil
}

func sleep(seconds float64) {
	if seconds <= 0 {
		return
	}

	time.Sleep(time.Duration(seconds * float64(time.Second)))
}
