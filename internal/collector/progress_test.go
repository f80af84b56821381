package collector

import (
	"testing"
	"time"
)

func TestEstimateRemaining(t *testing.T) {
	cases := []struct {
		name    string
		elapsed time.Duration
		done    int
		total   int
		want    time.Duration
	}{
		{"nothing done yet", 5 * time.Second, 0, 10, 0},
		{"halfway", 10 * time.Second, 5, 10, 10 * time.Second},
		{"one of three", 2 * time.Second, 1, 3, 4 * time.Second},
		{"all done", 30 * time.Second, 10, 10, 0},
		{"overrun guard", 30 * time.Second, 12, 10, 0},
	}
	for _, tc := range cases {
		if got := estimateRemaining(tc.elapsed, tc.done, tc.total); got != tc.want {
			t.Errorf("%s: estimateRemaining(%v, %d, %d) = %v, want %v",
				tc.name, tc.elapsed, tc.done, tc.total, got, tc.want)
		}
	}
}
