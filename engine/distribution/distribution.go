// Package distribution spreads a cycle's actions or asserts across a
// test's runner pool using one of two strategies: parallel gives every
// hostname the full item list, series round-robins items one-per-host.
// Both fan out over a bounded worker pool and fold results back on the
// calling goroutine; ordering within one hostname's shard is strict,
// ordering across hostnames is unspecified.
package distribution

import (
	"context"
	"fmt"
	"sync"

	"github.com/jtarchie/conductor/engine/dispatch"
	"github.com/jtarchie/conductor/engine/model"
	"github.com/samber/lo"
)

// ErrInvalidStrategy is InvalidConfig: strategy was neither "parallel"
// nor "series".
var ErrInvalidStrategy = fmt.Errorf("distribution strategy must be %q or %q", model.StrategyParallel, model.StrategySeries)

// Actions runs actions across hostnames per strategy, seeded with and
// folded onto seed (the test's current recorded ActionsData).
func Actions(
	ctx context.Context,
	sender dispatch.Sender,
	strategy model.DistributionStrategy,
	actions []model.Action,
	hostnames []string,
	secondsBetween float64,
	seed model.ActionsData,
) (model.ActionsData, error) {
	switch strategy {
	case model.StrategyParallel:
		return actionsParallel(ctx, sender, actions, hostnames, secondsBetween, seed), nil
	case model.StrategySeries:
		return actionsSeries(ctx, sender, actions, hostnames, secondsBetween, seed), nil
	default:
		return nil, ErrInvalidStrategy
	}
}

// Asserts runs asserts across hostnames per strategy, seeded with and
// folded onto seed (the test's current recorded AssertStatuses).
// Already-satisfied asserts are skipped before dispatch.
func Asserts(
	ctx context.Context,
	sender dispatch.Sender,
	strategy model.DistributionStrategy,
	asserts []model.Assert,
	hostnames []string,
	secondsBetween float64,
	seed model.AssertStatuses,
) (model.AssertStatuses, error) {
	remaining := model.Remaining(asserts, seed)

	switch strategy {
	case model.StrategyParallel:
		return assertsParallel(ctx, sender, remaining, hostnames, secondsBetween, seed), nil
	case model.StrategySeries:
		return assertsSeries(ctx, sender, remaining, hostnames, secondsBetween, seed), nil
	default:
		return nil, ErrInvalidStrategy
	}
}

// actionsParallel gives every hostname the complete action list: m
// hostnames and n actions issue m*n action RPCs per cycle.
func actionsParallel(
	ctx context.Context,
	sender dispatch.Sender,
	actions []model.Action,
	hostnames []string,
	secondsBetween float64,
	seed model.ActionsData,
) model.ActionsData {
	shards := runEach(hostnames, func(hostname string) model.ActionsData {
		return dispatch.RunActions(ctx, sender, actions, hostname, secondsBetween)
	})

	combined := seed

	for _, shard := range shards {
		combined = dispatch.CombineActionData(combined, shard)
	}

	return combined
}

// actionsSeries round-robins actions one-per-hostname: n actions issue
// exactly n action RPCs per cycle regardless of hostname count.
func actionsSeries(
	ctx context.Context,
	sender dispatch.Sender,
	actions []model.Action,
	hostnames []string,
	secondsBetween float64,
	seed model.ActionsData,
) model.ActionsData {
	shardsByHost := zipByHostname(hostnames, len(actions))

	shards := runEach(hostKeys(shardsByHost), func(hostname string) model.ActionsData {
		hostActions := make([]model.Action, len(shardsByHost[hostname]))
		for i, idx := range shardsByHost[hostname] {
			hostActions[i] = actions[idx]
		}

		return dispatch.RunActions(ctx, sender, hostActions, hostname, secondsBetween)
	})

	combined := seed

	for _, shard := range shards {
		combined = dispatch.CombineActionData(combined, shard)
	}

	return combined
}

func assertsParallel(
	ctx context.Context,
	sender dispatch.Sender,
	asserts []model.Assert,
	hostnames []string,
	secondsBetween float64,
	seed model.AssertStatuses,
) model.AssertStatuses {
	shards := runEach(hostnames, func(hostname string) model.AssertStatuses {
		return dispatch.RunAsserts(ctx, sender, asserts, hostname, secondsBetween)
	})

	combined := seed

	for _, shard := range shards {
		combined = dispatch.CombineAssertStatuses(combined, shard)
	}

	return combined
}

func assertsSeries(
	ctx context.Context,
	sender dispatch.Sender,
	asserts []model.Assert,
	hostnames []string,
	secondsBetween float64,
	seed model.AssertStatuses,
) model.AssertStatuses {
	shardsByHost := zipByHostname(hostnames, len(asserts))

	shards := runEach(hostKeys(shardsByHost), func(hostname string) model.AssertStatuses {
		hostAsserts := make([]model.Assert, len(shardsByHost[hostname]))
		for i, idx := range shardsByHost[hostname] {
			hostAsserts[i] = asserts[idx]
		}

		return dispatch.RunAsserts(ctx, sender, hostAsserts, hostname, secondsBetween)
	})

	combined := seed

	for _, shard := range shards {
		combined = dispatch.CombineAssertStatuses(combined, shard)
	}

	return combined
}

// zipByHostname distributes item indices [0, itemCount) across
// hostnames by cycling through hostnames in order, matching
// Python's zip(cycle(hostnames), items).
func zipByHostname(hostnames []string, itemCount int) map[string][]int {
	byHost := make(map[string][]int)

	for i := 0; i < itemCount; i++ {
		hostname := hostnames[i%len(hostnames)]
		byHost[hostname] = append(byHost[hostname], i)
	}

	return byHost
}

func hostKeys(byHost map[string][]int) []string {
	return lo.Keys(byHost)
}

// maxConcurrentShards bounds how many hostname shards run at once. A
// test's hostname pool is small (it is bounded by runnerCount), so this
// exists to cap worst-case fan-out rather than to throttle steady load.
const maxConcurrentShards = 32

// runEach fans fn out over keys on a bounded worker pool and returns
// one result per key, order unspecified. A driving WaitGroup ensures
// every shard has finished before runEach returns; the caller folds
// the results afterwards.
func runEach[T any](keys []string, fn func(string) T) []T {
	results := make([]T, len(keys))

	var wg sync.WaitGroup

	sem := make(chan struct{}, maxConcurrentShards)

	for i, key := range keys {
		wg.Add(1)

		sem <- struct{}{}

		go func(i int, key string) {
			defer wg.Done()
			defer func() { <-sem }()

			results[i] = fn(key)
		}(i, key)
	}

	wg.Wait()

	return results
}
