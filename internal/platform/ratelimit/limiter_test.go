package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestInterval(gap time.Duration) (*Interval, *time.Time, *[]time.Duration) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var slept []time.Duration

	limiter := NewInterval(gap)
	limiter.now = func() time.Time { return now }
	limiter.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		now = now.Add(d)
		return nil
	}
	return limiter, &now, &slept
}

func TestIntervalFirstWaitIsImmediate(t *testing.T) {
	limiter, _, slept := newTestInterval(time.Second)

	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if len(*slept) != 0 {
		t.Fatalf("first Wait slept %v, want no sleep", *slept)
	}
}

func TestIntervalEnforcesGapFromMark(t *testing.T) {
	limiter, now, slept := newTestInterval(time.Second)

	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	// Operation takes 300ms, then completes.
	*now = now.Add(300 * time.Millisecond)
	limiter.Mark()

	// Next Wait 100ms later must sleep the remaining 900ms.
	*now = now.Add(100 * time.Millisecond)
	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if len(*slept) != 1 || (*slept)[0] != 900*time.Millisecond {
		t.Fatalf("slept %v, want [900ms]", *slept)
	}
}

func TestIntervalSlowOperationEarnsNoCredit(t *testing.T) {
	limiter, now, slept := newTestInterval(time.Second)

	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	// A 5s operation still forces a full gap before the next start.
	*now = now.Add(5 * time.Second)
	limiter.Mark()

	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if len(*slept) != 1 || (*slept)[0] != time.Second {
		t.Fatalf("slept %v, want [1s]", *slept)
	}
}

func TestIntervalNoSleepAfterGapElapsed(t *testing.T) {
	limiter, now, slept := newTestInterval(time.Second)

	limiter.Mark()
	*now = now.Add(2 * time.Second)

	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if len(*slept) != 0 {
		t.Fatalf("slept %v, want no sleep", *slept)
	}
}

func TestIntervalWaitHonorsCancelledContext(t *testing.T) {
	limiter := NewInterval(time.Hour)
	limiter.Mark()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := limiter.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Wait() error = %v, want context.Canceled", err)
	}
}
