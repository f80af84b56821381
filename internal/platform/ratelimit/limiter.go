// Package ratelimit provides a minimum-gap pacer shared by everything that
// talks to one upstream host.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Interval enforces a minimum delay between the completion of one operation
// and the start of the next. Callers Wait before an operation and Mark once
// it finishes; the gap is measured end to start, so slow operations do not
// earn extra budget.
type Interval struct {
	mu       sync.Mutex
	gap      time.Duration
	lastDone time.Time

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func NewInterval(gap time.Duration) *Interval {
	if gap < 0 {
		gap = 0
	}
	return &Interval{
		gap:   gap,
		now:   time.Now,
		sleep: sleepCtx,
	}
}

// Wait blocks until at least the configured gap has passed since the last
// Mark. The first Wait returns immediately. Returns the context error when
// the wait is interrupted.
func (i *Interval) Wait(ctx context.Context) error {
	i.mu.Lock()
	var remaining time.Duration
	if !i.lastDone.IsZero() {
		elapsed := i.now().Sub(i.lastDone)
		if elapsed < i.gap {
			remaining = i.gap - elapsed
		}
	}
	i.mu.Unlock()

	if remaining <= 0 {
		return ctx.Err()
	}
	return i.sleep(ctx, remaining)
}

// Mark records the completion time of the operation that just finished.
func (i *Interval) Mark() {
	i.mu.Lock()
	i.lastDone = i.now()
	i.mu.Unlock()
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
