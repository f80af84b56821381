package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/eprasetya/vlrscout/internal/domain/run"
	"github.com/eprasetya/vlrscout/internal/usecase"
)

// RunStore keeps collection runs in memory. Runs are operational state, not
// collected data, so they do not survive a restart.
type RunStore struct {
	mu   sync.RWMutex
	runs map[string]run.Run
}

func NewRunStore() *RunStore {
	return &RunStore{runs: make(map[string]run.Run)}
}

func (s *RunStore) Save(_ context.Context, r run.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[r.ID] = r
	return nil
}

func (s *RunStore) GetByID(_ context.Context, id string) (run.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.runs[id]
	if !ok {
		return run.Run{}, usecase.ErrNotFound
	}
	return r, nil
}

func (s *RunStore) List(_ context.Context, limit int) ([]run.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]run.Run, 0, len(s.runs))
	for _, r := range s.runs {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].StartedAt.After(out[j].StartedAt)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
