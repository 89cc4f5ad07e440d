package pipeline

import (
	"context"
	"time"
)

// Exponential backoff after extract or load failures: start at 200ms,
// double each retry, cap at 5s.
const (
	initialBackoff = 200 * time.Millisecond
	maxBackoff     = 5 * time.Second
)

type retryBackoff struct {
	initial, max, current time.Duration
}

func newRetryBackoff(initial, maxDelay time.Duration) *retryBackoff {
	return &retryBackoff{initial: initial, max: maxDelay, current: initial}
}

func (b *retryBackoff) reset() { b.current = b.initial }

// wait sleeps for the current delay and doubles it. Returns false if ctx
// ended first.
func (b *retryBackoff) wait(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	if !sleepWithContext(ctx, b.current) {
		return false
	}
	b.current = min(b.current*2, b.max)
	return true
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
