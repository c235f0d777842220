package orchestra

import (
	"context"
	"time"
)

// Pinger checks whether a single runner address is ready to accept
// messages. engine/messaging.Client satisfies this.
type Pinger interface {
	Healthcheck(ctx context.Context, address string) bool
}

// WaitHealthy polls hostname with an exponential backoff: sleep
// initialWait before the first check, double the wait after every
// failure, and give up after maxRetries failed attempts.
func WaitHealthy(ctx context.Context, pinger Pinger, hostname string, initialWait, maxRetries int) bool {
	wait := initialWait

	for retries := 0; retries < maxRetries; retries++ {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(time.Duration(wait) * time.Second):
		}

		if pinger.Healthcheck(ctx, hostname) {
			return true
		}

		wait *= 2
	}

	return false
}
