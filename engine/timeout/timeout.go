// Package timeout supervises one test run with a soft deadline: it
// asks the cycle loop to stop at its next cycle boundary once the
// deadline elapses, but — because in-flight RPCs are never
// cancelled — it always returns the test's actual result rather than
// a synthetic timeout value.
package timeout

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jtarchie/conductor/engine/cycle"
	"github.com/jtarchie/conductor/engine/dispatch"
	"github.com/jtarchie/conductor/engine/model"
)

// Run executes config with a soft deadline of duration seconds. A nil
// or negative duration runs the test inline with no deadline at all —
// the same as calling cycle.Run directly.
//
// Internally this plays the role that cicada's dask Variable +
// Future + wait(return_when="FIRST_COMPLETED") trio played: a shared
// cancellation flag (atomic.Bool) stands in for the distributed
// Variable, and two goroutines joined by a WaitGroup stand in for the
// two Futures.
func Run(
	ctx context.Context,
	sender dispatch.Sender,
	config model.TestConfig,
	incoming model.State,
	hostnames []string,
	duration *int,
) (model.State, error) {
	if duration == nil || *duration < 0 {
		return cycle.Run(ctx, sender, config, incoming, hostnames, nil)
	}

	secondsBetweenCycles := model.DefaultSecondsBetweenCycles
	if config.SecondsBetweenCycles != nil {
		secondsBetweenCycles = *config.SecondsBetweenCycles
	}

	var keepGoing atomic.Bool
	keepGoing.Store(true)

	type testResult struct {
		state model.State
		err   error
	}

	resultCh := make(chan testResult, 1)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		state, err := cycle.Run(ctx, sender, config, incoming, hostnames, keepGoing.Load)
		resultCh <- testResult{state: state, err: err}
	}()

	deadlineCh := make(chan struct{})

	wg.Add(1)

	go func() {
		defer wg.Done()
		defer close(deadlineCh)

		end := time.Now().Add(time.Duration(*duration) * time.Second)

		for time.Now().Before(end) && keepGoing.Load() {
			sleep(secondsBetweenCycles)
		}
	}()

	// Wait for whichever finishes first; the deadline firing does not
	// cancel the test, it only asks it to stop at its next boundary.
	select {
	case result := <-resultCh:
		keepGoing.Store(false)
		wg.Wait()

		return result.state, result.err
	case <-deadlineCh:
		keepGoing.Store(false)
	}

	// The test is cooperative, not preemptive: an in-flight dispatch at
	// the moment the deadline fired is never cancelled, so the final
	// wait has no hard ceiling. As a defensive bound — see Open
	// Questions — log if the test runs substantially past its own
	// configured duration instead of blocking silently forever.
	overrun := time.Duration(*duration)*time.Second + time.Duration(secondsBetweenCycles*float64(time.Second))

	select {
	case result := <-resultCh:
		return result.state, result.err
	case <-time.After(overrun):
		slog.Warn("timeout.overrun", "test", config.Name, "duration", *duration, "overrun", overrun)

		result := <-resultCh

		return result.state, result.err
	}
}

func sleep(seconds float64) {
	if seconds <= 0 {
		return
	}

	time.Sleep(time.Duration(seconds * float64(time.Second)))
}
