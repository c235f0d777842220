// Package dispatch runs actions and asserts against a single hostname
// and folds per-hostname results together into one ActionsData or
// AssertStatuses map, independent of which distribution strategy chose
// the hostname's share of the work.
package dispatch

import (
	"context"
	"time"

	"github.com/jtarchie/conductor/engine/messaging"
	"github.com/jtarchie/conductor/engine/model"
)

// Sender is the subset of messaging.Client that dispatch needs; it lets
// tests substitute a stub without standing up a gRPC server.
type Sender interface {
	SendAction(ctx context.Context, address string, action model.Action) model.RawValue
	SendAssert(ctx context.Context, address string, asrt model.Assert) model.AssertStatus
}

var _ Sender = (*messaging.Client)(nil)

// RunActions sends every action in order to hostname, sleeping
// secondsBetween between each. Inner asserts run against the same
// hostname immediately after their action.
func RunActions(ctx context.Context, sender Sender, actions []model.Action, hostname string, secondsBetween float64) model.ActionsData {
	data := make(model.ActionsData, len(actions))

	for i, action := range actions {
		outputs := sender.SendAction(ctx, hostname, action)

		entry := model.ActionData{Outputs: outputs}

		if len(action.Asserts) > 0 {
			entry.Asserts = make(model.AssertStatuses, len(action.Asserts))
			for _, asrt := range action.Asserts {
				entry.Asserts[asrt.Name] = sender.SendAssert(ctx, hostname, asrt)
			}
		}

		data[action.Name] = entry

		if i < len(actions)-1 {
			sleep(secondsBetween)
		}
	}

	return data
}

// RunAsserts sends every assert in order to hostname, sleeping
// secondsBetween between each.
func RunAsserts(ctx context.Context, sender Sender, asserts []model.Assert, hostname string, secondsBetween float64) model.AssertStatuses {
	statuses := make(model.AssertStatuses, len(asserts))

	for i, asrt := range asserts {
		statuses[asrt.Name] = sender.SendAssert(ctx, hostname, asrt)

		if i < len(asserts)-1 {
			sleep(secondsBetween)
		}
	}

	return statuses
}

func sleep(seconds float64) {
	if seconds <= 0 {
		return
	}

	time.Sleep(time.Duration(seconds * float64(time.Second)))
}

// CombineActionData folds b's entries onto a: an action's Outputs is
// last-write-wins, while any previously-satisfied assert remains
// satisfied (Satisfied is monotonic — see model.AssertStatus).
func CombineActionData(a, b model.ActionsData) model.ActionsData {
	combined := make(model.ActionsData, len(a)+len(b))

	for name, data := range a {
		combined[name] = data
	}

	for name, incoming := range b {
		existing, ok := combined[name]
		if !ok {
			combined[name] = incoming

			continue
		}

		combined[name] = model.ActionData{
			Outputs: incoming.Outputs,
			Asserts: CombineAssertStatuses(existing.Asserts, incoming.Asserts),
		}
	}

	return combined
}

// CombineAssertStatuses folds b's statuses onto a, keeping a's recorded
// status for any name already satisfied and taking b's status
// otherwise. This is the "sticky once passed" merge used for both
// top-level and inner asserts.
func CombineAssertStatuses(a, b model.AssertStatuses) model.AssertStatuses {
	combined := make(model.AssertStatuses, len(a)+len(b))

	for name, status := range a {
		combined[name] = status
	}

	for name, incoming := range b {
		if existing, ok := combined[name]; ok && existing.Satisfied() {
			continue
		}

		combined[name] = incoming
	}

	return combined
}
