package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eprasetya/vlrscout/internal/collector"
	"github.com/eprasetya/vlrscout/internal/domain/run"
	"github.com/eprasetya/vlrscout/internal/infrastructure/repository/memory"
	"github.com/eprasetya/vlrscout/internal/platform/id"
	"github.com/eprasetya/vlrscout/internal/platform/logging"
	"github.com/eprasetya/vlrscout/internal/usecase"
)

type fakeRunner struct {
	result  collector.Result
	err     error
	block   chan struct{}
	gotCfg  collector.Config
	eventID int64
}

func (f *fakeRunner) Run(_ context.Context, eventID int64, cfg collector.Config, onProgress collector.ProgressFunc) (collector.Result, error) {
	f.eventID = eventID
	f.gotCfg = cfg
	if f.block != nil {
		<-f.block
	}
	if onProgress != nil {
		onProgress(collector.Progress{Total: 3, Completed: 1, CurrentItem: "event stats", ETA: 2 * time.Second})
	}
	return f.result, f.err
}

func newRunService(runner usecase.Runner) (*usecase.RunService, *memory.RunStore) {
	runs := memory.NewRunStore()
	svc := usecase.NewRunService(runner, newArchiveService(), runs, id.NewRandomGenerator("run_"), logging.NewNop())
	return svc, runs
}

func TestRunServiceLifecycle(t *testing.T) {
	runner := &fakeRunner{result: sampleResult()}
	svc, _ := newRunService(runner)
	ctx := context.Background()

	started, err := svc.StartRun(ctx, 2097, collector.Config{Matches: true, EventStats: true})
	if err != nil {
		t.Fatalf("StartRun() error = %v", err)
	}
	if started.Status != run.StatusPending {
		t.Fatalf("status = %q, want pending", started.Status)
	}
	svc.Wait()

	if runner.eventID != 2097 {
		t.Fatalf("runner saw event %d", runner.eventID)
	}
	if !runner.gotCfg.EventStats {
		t.Fatalf("runner config = %+v", runner.gotCfg)
	}

	got, err := svc.GetRun(ctx, started.ID)
	if err != nil {
		t.Fatalf("GetRun() error = %v", err)
	}
	if got.Status != run.StatusCompleted {
		t.Fatalf("status = %q, want completed", got.Status)
	}
	if got.Completed != 1 || got.Failed != 0 {
		t.Fatalf("completed = %d, failed = %d", got.Completed, got.Failed)
	}
	if got.FinishedAt.IsZero() {
		t.Fatalf("finished at not set")
	}

	// The result must have been persisted, not just reported.
	if _, err := svc.GetRun(ctx, "missing"); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("GetRun(missing) error = %v, want ErrNotFound", err)
	}
}

func TestRunServicePersistsResult(t *testing.T) {
	runner := &fakeRunner{result: sampleResult()}
	runs := memory.NewRunStore()
	archive := newArchiveService()
	svc := usecase.NewRunService(runner, archive, runs, id.NewRandomGenerator("run_"), logging.NewNop())

	if _, err := svc.StartRun(context.Background(), 2097, collector.Config{Matches: true}); err != nil {
		t.Fatalf("StartRun() error = %v", err)
	}
	svc.Wait()

	arch, err := archive.GetEventArchive(context.Background(), 2097)
	if err != nil {
		t.Fatalf("GetEventArchive() error = %v", err)
	}
	if len(arch.Matches) != 2 {
		t.Fatalf("matches = %d, want 2", len(arch.Matches))
	}
}

func TestRunServiceSingleActiveRun(t *testing.T) {
	runner := &fakeRunner{result: sampleResult(), block: make(chan struct{})}
	svc, _ := newRunService(runner)
	ctx := context.Background()

	if _, err := svc.StartRun(ctx, 2097, collector.Config{Matches: true}); err != nil {
		t.Fatalf("StartRun() error = %v", err)
	}
	if _, err := svc.StartRun(ctx, 2098, collector.Config{Matches: true}); !errors.Is(err, usecase.ErrRunActive) {
		t.Fatalf("second StartRun() error = %v, want ErrRunActive", err)
	}

	close(runner.block)
	svc.Wait()

	// Once the first run finished, a new one is accepted again.
	if _, err := svc.StartRun(ctx, 2098, collector.Config{Matches: true}); err != nil {
		t.Fatalf("StartRun() after finish error = %v", err)
	}
	svc.Wait()
}

// cancellableRunner stops on context cancellation and hands back what it
// gathered so far, the way the collector does between items.
type cancellableRunner struct {
	result collector.Result
}

func (r *cancellableRunner) Run(ctx context.Context, _ int64, _ collector.Config, _ collector.ProgressFunc) (collector.Result, error) {
	<-ctx.Done()
	res := r.result
	res.Canceled = true
	return res, nil
}

func TestRunServiceCancelRun(t *testing.T) {
	runner := &cancellableRunner{result: sampleResult()}
	runs := memory.NewRunStore()
	archive := newArchiveService()
	svc := usecase.NewRunService(runner, archive, runs, id.NewRandomGenerator("run_"), logging.NewNop())
	ctx := context.Background()

	started, err := svc.StartRun(ctx, 2097, collector.Config{Matches: true})
	if err != nil {
		t.Fatalf("StartRun() error = %v", err)
	}
	if _, err := svc.CancelRun(ctx, started.ID); err != nil {
		t.Fatalf("CancelRun() error = %v", err)
	}
	svc.Wait()

	// The cancelled run persisted its partial result and completed.
	got, err := svc.GetRun(ctx, started.ID)
	if err != nil {
		t.Fatalf("GetRun() error = %v", err)
	}
	if got.Status != run.StatusCompleted {
		t.Fatalf("status = %q, want completed", got.Status)
	}
	if _, err := archive.GetEventArchive(ctx, 2097); err != nil {
		t.Fatalf("GetEventArchive() after cancel error = %v", err)
	}

	// The slot is free again, and cancelling a finished run is a no-op.
	second, err := svc.StartRun(ctx, 2098, collector.Config{Matches: true})
	if err != nil {
		t.Fatalf("StartRun() after cancel error = %v", err)
	}
	if _, err := svc.CancelRun(ctx, started.ID); err != nil {
		t.Fatalf("CancelRun() on finished run error = %v", err)
	}
	if _, err := svc.CancelRun(ctx, second.ID); err != nil {
		t.Fatalf("CancelRun() on second run error = %v", err)
	}
	svc.Wait()
}

func TestRunServiceCancelUnknownRun(t *testing.T) {
	svc, _ := newRunService(&fakeRunner{result: sampleResult()})

	if _, err := svc.CancelRun(context.Background(), "missing"); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("CancelRun(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := svc.CancelRun(context.Background(), ""); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("CancelRun(\"\") error = %v, want ErrInvalidInput", err)
	}
}

func TestRunServiceRecordsFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("event page unreachable")}
	svc, _ := newRunService(runner)
	ctx := context.Background()

	started, err := svc.StartRun(ctx, 2097, collector.Config{Matches: true})
	if err != nil {
		t.Fatalf("StartRun() error = %v", err)
	}
	svc.Wait()

	got, err := svc.GetRun(ctx, started.ID)
	if err != nil {
		t.Fatalf("GetRun() error = %v", err)
	}
	if got.Status != run.StatusFailed {
		t.Fatalf("status = %q, want failed", got.Status)
	}
	if len(got.Errors) != 1 || got.Errors[0].Reason != "event page unreachable" {
		t.Fatalf("errors = %+v", got.Errors)
	}
}

func TestRunServiceRecordsItemErrors(t *testing.T) {
	res := sampleResult()
	res.Errors = []collector.ItemError{{Item: "match 510230 economy", Err: errors.New("vlr layout changed")}}
	runner := &fakeRunner{result: res}
	svc, _ := newRunService(runner)
	ctx := context.Background()

	started, err := svc.StartRun(ctx, 2097, collector.Config{Matches: true, Economy: true})
	if err != nil {
		t.Fatalf("StartRun() error = %v", err)
	}
	svc.Wait()

	got, err := svc.GetRun(ctx, started.ID)
	if err != nil {
		t.Fatalf("GetRun() error = %v", err)
	}
	if got.Status != run.StatusCompleted {
		t.Fatalf("status = %q, want completed", got.Status)
	}
	if got.Failed != 1 || len(got.Errors) != 1 {
		t.Fatalf("failed = %d, errors = %+v", got.Failed, got.Errors)
	}
	if got.Errors[0].Item != "match 510230 economy" {
		t.Fatalf("error item = %q", got.Errors[0].Item)
	}
}

func TestRunServiceValidatesInput(t *testing.T) {
	svc, _ := newRunService(&fakeRunner{})

	if _, err := svc.StartRun(context.Background(), 0, collector.Config{}); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("StartRun(0) error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.GetRun(context.Background(), ""); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("GetRun(\"\") error = %v, want ErrInvalidInput", err)
	}
}
