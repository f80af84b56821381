package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/eprasetya/vlrscout/internal/collector"
	"github.com/eprasetya/vlrscout/internal/domain/run"
	"github.com/eprasetya/vlrscout/internal/platform/id"
	"github.com/eprasetya/vlrscout/internal/platform/logging"
)

// Runner executes one collection pass over an event, reporting progress
// between items.
type Runner interface {
	Run(ctx context.Context, eventID int64, cfg collector.Config, onProgress collector.ProgressFunc) (collector.Result, error)
}

// CollectorRunner backs Runner with a live collector. A fresh collector is
// built per run so each run gets its own progress callback.
type CollectorRunner struct {
	fetcher collector.Fetcher
	logger  *logging.Logger
}

func NewCollectorRunner(fetcher collector.Fetcher, logger *logging.Logger) *CollectorRunner {
	return &CollectorRunner{fetcher: fetcher, logger: logger}
}

func (r *CollectorRunner) Run(ctx context.Context, eventID int64, cfg collector.Config, onProgress collector.ProgressFunc) (collector.Result, error) {
	return collector.New(r.fetcher, r.logger, onProgress).Run(ctx, eventID, cfg)
}

// RunService starts and tracks collection runs. At most one run is active
// at a time; the source site's rate budget is shared, so parallel runs
// would starve each other.
type RunService struct {
	runner  Runner
	archive *ArchiveService
	runs    run.Repository
	ids     id.Generator
	logger  *logging.Logger

	background *conc.WaitGroup
	now        func() time.Time

	mu           sync.Mutex
	activeID     string
	cancelActive context.CancelFunc
}

func NewRunService(runner Runner, archive *ArchiveService, runs run.Repository, ids id.Generator, logger *logging.Logger) *RunService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RunService{
		runner:     runner,
		archive:    archive,
		runs:       runs,
		ids:        ids,
		logger:     logger,
		background: conc.NewWaitGroup(),
		now:        time.Now,
	}
}

// StartRun registers a new run and launches collection in the background.
// The returned run is in pending state; poll GetRun for progress.
func (s *RunService) StartRun(ctx context.Context, eventID int64, cfg collector.Config) (run.Run, error) {
	ctx, span := startUsecaseSpan(ctx, "RunService.StartRun")
	defer span.End()

	if eventID <= 0 {
		return run.Run{}, fmt.Errorf("%w: event id must be greater than zero", ErrInvalidInput)
	}

	s.mu.Lock()
	if s.activeID != "" {
		active := s.activeID
		s.mu.Unlock()
		return run.Run{}, fmt.Errorf("%w: run %s is still active", ErrRunActive, active)
	}

	runID, err := s.ids.NewID()
	if err != nil {
		s.mu.Unlock()
		return run.Run{}, fmt.Errorf("generate run id: %w", err)
	}

	r := run.Run{
		ID:        runID,
		EventID:   eventID,
		Status:    run.StatusPending,
		StartedAt: s.now(),
	}
	if err := s.runs.Save(ctx, r); err != nil {
		s.mu.Unlock()
		return run.Run{}, fmt.Errorf("save run: %w", err)
	}
	s.activeID = runID
	// The run must outlive the request that started it; it stops only
	// through CancelRun.
	bg, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancelActive = cancel
	s.mu.Unlock()

	s.background.Go(func() {
		s.execute(bg, r, cfg)
	})

	s.logger.InfoContext(ctx, "collection run started", "run_id", runID, "event_id", eventID)
	return r, nil
}

// CancelRun asks the active run to stop after its current item. A
// cancelled run still persists what it gathered and finishes as completed;
// cancelling a finished run is a no-op. The returned run is the state at
// the time of the request, so callers poll GetRun for the final one.
func (s *RunService) CancelRun(ctx context.Context, runID string) (run.Run, error) {
	ctx, span := startUsecaseSpan(ctx, "RunService.CancelRun")
	defer span.End()

	if runID == "" {
		return run.Run{}, fmt.Errorf("%w: run id is required", ErrInvalidInput)
	}

	s.mu.Lock()
	if s.activeID == runID && s.cancelActive != nil {
		s.cancelActive()
		s.logger.InfoContext(ctx, "collection run cancel requested", "run_id", runID)
	}
	s.mu.Unlock()

	return s.runs.GetByID(ctx, runID)
}

func (s *RunService) GetRun(ctx context.Context, runID string) (run.Run, error) {
	ctx, span := startUsecaseSpan(ctx, "RunService.GetRun")
	defer span.End()

	if runID == "" {
		return run.Run{}, fmt.Errorf("%w: run id is required", ErrInvalidInput)
	}
	return s.runs.GetByID(ctx, runID)
}

func (s *RunService) ListRuns(ctx context.Context, limit int) ([]run.Run, error) {
	ctx, span := startUsecaseSpan(ctx, "RunService.ListRuns")
	defer span.End()

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.runs.List(ctx, limit)
}

// Wait blocks until any background run has finished. Shutdown path.
func (s *RunService) Wait() {
	s.background.Wait()
}

func (s *RunService) execute(ctx context.Context, r run.Run, cfg collector.Config) {
	defer func() {
		s.mu.Lock()
		s.activeID = ""
		if s.cancelActive != nil {
			s.cancelActive()
			s.cancelActive = nil
		}
		s.mu.Unlock()
	}()

	// Run state and results must still be written after a cancel.
	persist := context.WithoutCancel(ctx)

	r.Status = run.StatusRunning
	s.saveRun(persist, r)

	res, err := s.runner.Run(ctx, r.EventID, cfg, func(p collector.Progress) {
		r.Total = p.Total
		r.Completed = p.Completed
		r.Failed = p.Failed
		r.CurrentItem = p.CurrentItem
		r.ETASeconds = p.ETA.Seconds()
		s.saveRun(persist, r)
	})
	if err != nil {
		r.Status = run.StatusFailed
		r.CurrentItem = ""
		r.Errors = append(r.Errors, run.ItemError{Item: "run", Reason: err.Error()})
		r.FinishedAt = s.now()
		s.saveRun(persist, r)
		s.logger.ErrorContext(ctx, "collection run failed", "run_id", r.ID, "error", err)
		return
	}

	r.Completed = len(res.Succeeded)
	r.Failed = len(res.Errors)
	r.Total = r.Completed + r.Failed
	r.CurrentItem = ""
	r.ETASeconds = 0
	r.Errors = r.Errors[:0]
	for _, ie := range res.Errors {
		r.Errors = append(r.Errors, run.ItemError{Item: ie.Item, Reason: ie.Err.Error()})
	}

	if err := s.archive.SaveResult(persist, res); err != nil {
		r.Status = run.StatusFailed
		r.Errors = append(r.Errors, run.ItemError{Item: "persist", Reason: err.Error()})
		r.FinishedAt = s.now()
		s.saveRun(persist, r)
		s.logger.ErrorContext(ctx, "collection run persist failed", "run_id", r.ID, "error", err)
		return
	}

	// A cancelled run still completed cleanly with whatever it gathered.
	r.Status = run.StatusCompleted
	r.FinishedAt = s.now()
	s.saveRun(persist, r)
	s.logger.InfoContext(ctx, "collection run finished",
		"run_id", r.ID,
		"event_id", r.EventID,
		"succeeded", r.Completed,
		"failed", r.Failed,
		"canceled", res.Canceled)
}

func (s *RunService) saveRun(ctx context.Context, r run.Run) {
	if err := s.runs.Save(ctx, r); err != nil {
		s.logger.WarnContext(ctx, "save run state", "run_id", r.ID, "error", err)
	}
}
