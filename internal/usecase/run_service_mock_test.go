package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/eprasetya/vlrscout/internal/collector"
	"github.com/eprasetya/vlrscout/internal/domain/run"
	"github.com/eprasetya/vlrscout/internal/platform/id"
	"github.com/eprasetya/vlrscout/internal/platform/logging"
	"github.com/eprasetya/vlrscout/internal/usecase"
)

type mockRunRepository struct {
	mock.Mock
}

func (m *mockRunRepository) Save(ctx context.Context, r run.Run) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *mockRunRepository) GetByID(ctx context.Context, id string) (run.Run, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(run.Run), args.Error(1)
}

func (m *mockRunRepository) List(ctx context.Context, limit int) ([]run.Run, error) {
	args := m.Called(ctx, limit)
	runs, _ := args.Get(0).([]run.Run)
	return runs, args.Error(1)
}

func TestRunServiceStartRunSaveError(t *testing.T) {
	repo := &mockRunRepository{}
	repo.
		On("Save", mock.Anything, mock.MatchedBy(func(r run.Run) bool { return r.Status == run.StatusPending })).
		Return(errors.New("store unavailable")).
		Once()

	svc := usecase.NewRunService(&fakeRunner{}, newArchiveService(), repo, id.NewRandomGenerator("run_"), logging.NewNop())

	_, err := svc.StartRun(context.Background(), 2097, collector.Config{Matches: true})
	if err == nil || !strings.Contains(err.Error(), "save run") {
		t.Fatalf("StartRun() error = %v, want save failure", err)
	}
	repo.AssertExpectations(t)

	// A failed save must not leave the service thinking a run is active.
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)
	if _, err := svc.StartRun(context.Background(), 2097, collector.Config{Matches: true}); err != nil {
		t.Fatalf("StartRun() after failed save error = %v", err)
	}
	svc.Wait()
}
