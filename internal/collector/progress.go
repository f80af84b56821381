package collector

import "time"

// Progress is a snapshot of a run, emitted after every finished item.
type Progress struct {
	Total       int
	Completed   int
	Failed      int
	CurrentItem string
	Elapsed     time.Duration
	ETA         time.Duration
}

// ProgressFunc receives progress snapshots. Implementations must be fast;
// the collector calls them inline between items.
type ProgressFunc func(Progress)

// estimateRemaining projects the time left from the average pace so far:
// elapsed/done scaled by what remains. Zero until the first item finishes.
func estimateRemaining(elapsed time.Duration, done, total int) time.Duration {
	if done <= 0 || total <= done {
		return 0
	}
	perItem := elapsed / time.Duration(done)
	return perItem * time.Duration(total-done)
}
