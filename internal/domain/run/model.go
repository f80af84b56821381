package run

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Run tracks one collection pass over an event, from the API's point of
// view. Progress counters mirror what the collector reports while working.
type Run struct {
	ID          string
	EventID     int64
	Status      Status
	Total       int
	Completed   int
	Failed      int
	CurrentItem string
	ETASeconds  float64
	Errors      []ItemError
	StartedAt   time.Time
	FinishedAt  time.Time
}

// ItemError records one work item that failed during a run. The run itself
// keeps going; these surface in the final report.
type ItemError struct {
	Item   string
	Reason string
}
