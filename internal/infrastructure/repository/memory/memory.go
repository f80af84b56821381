// Package memory holds map-backed repositories. The run store backs the API
// in every deployment; the entity stores serve tests and DB-less runs.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/eprasetya/vlrscout/internal/domain/agentusage"
	"github.com/eprasetya/vlrscout/internal/domain/economy"
	"github.com/eprasetya/vlrscout/internal/domain/event"
	"github.com/eprasetya/vlrscout/internal/domain/match"
	"github.com/eprasetya/vlrscout/internal/domain/performance"
	"github.com/eprasetya/vlrscout/internal/domain/playerstat"
	"github.com/eprasetya/vlrscout/internal/usecase"
)

type EventRepository struct {
	mu     sync.RWMutex
	events map[int64]event.Event
}

func NewEventRepository() *EventRepository {
	return &EventRepository{events: make(map[int64]event.Event)}
}

func (r *EventRepository) Upsert(_ context.Context, ev event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[ev.ID] = ev
	return nil
}

func (r *EventRepository) GetByID(_ context.Context, id int64) (event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ev, ok := r.events[id]
	if !ok {
		return event.Event{}, usecase.ErrNotFound
	}
	return ev, nil
}

func (r *EventRepository) List(_ context.Context, filter event.Filter) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, 0, len(r.events))
	for _, ev := range r.events {
		if filter.Region != "" && ev.Region != filter.Region {
			continue
		}
		if filter.Status != "" && ev.Status != filter.Status {
			continue
		}
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID > out[j].ID
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

type MatchRepository struct {
	mu      sync.RWMutex
	matches map[int64]match.Match
	maps    map[string]match.MapResult
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{
		matches: make(map[int64]match.Match),
		maps:    make(map[string]match.MapResult),
	}
}

func (r *MatchRepository) UpsertMatches(_ context.Context, matches []match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range matches {
		r.matches[m.ID] = m
	}
	return nil
}

func (r *MatchRepository) UpsertMapResults(_ context.Context, results []match.MapResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range results {
		r.maps[fmt.Sprintf("%d:%d", m.MatchID, m.MapOrder)] = m
	}
	return nil
}

func (r *MatchRepository) ListByEvent(_ context.Context, eventID int64) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []match.Match
	for _, m := range r.matches {
		if m.EventID == eventID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MatchRepository) ListMapResults(_ context.Context, matchID int64) ([]match.MapResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []match.MapResult
	for _, m := range r.maps {
		if m.MatchID == matchID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MapOrder < out[j].MapOrder })
	return out, nil
}

type PlayerStatRepository struct {
	mu         sync.RWMutex
	matchStats map[string]playerstat.MatchStat
	eventStats map[string]playerstat.EventStat
}

func NewPlayerStatRepository() *PlayerStatRepository {
	return &PlayerStatRepository{
		matchStats: make(map[string]playerstat.MatchStat),
		eventStats: make(map[string]playerstat.EventStat),
	}
}

func (r *PlayerStatRepository) UpsertMatchStats(_ context.Context, stats []playerstat.MatchStat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range stats {
		key := fmt.Sprintf("%d:%d:%s:%s", s.MatchID, s.MapOrder, s.Player, s.Side)
		r.matchStats[key] = s
	}
	return nil
}

func (r *PlayerStatRepository) UpsertEventStats(_ context.Context, stats []playerstat.EventStat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range stats {
		r.eventStats[fmt.Sprintf("%d:%s", s.EventID, s.Player)] = s
	}
	return nil
}

func (r *PlayerStatRepository) ListMatchStats(_ context.Context, matchID int64) ([]playerstat.MatchStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []playerstat.MatchStat
	for _, s := range r.matchStats {
		if s.MatchID == matchID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MapOrder != out[j].MapOrder {
			return out[i].MapOrder < out[j].MapOrder
		}
		if out[i].Player != out[j].Player {
			return out[i].Player < out[j].Player
		}
		return out[i].Side < out[j].Side
	})
	return out, nil
}

func (r *PlayerStatRepository) ListEventStats(_ context.Context, eventID int64) ([]playerstat.EventStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []playerstat.EventStat
	for _, s := range r.eventStats {
		if s.EventID == eventID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].Player < out[j].Player
	})
	return out, nil
}

type AgentUsageRepository struct {
	mu    sync.RWMutex
	usage map[string]agentusage.AgentUsage
	maps  map[string]agentusage.MapStat
}

func NewAgentUsageRepository() *AgentUsageRepository {
	return &AgentUsageRepository{
		usage: make(map[string]agentusage.AgentUsage),
		maps:  make(map[string]agentusage.MapStat),
	}
}

func (r *AgentUsageRepository) UpsertAgentUsage(_ context.Context, usage []agentusage.AgentUsage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range usage {
		r.usage[fmt.Sprintf("%d:%s:%s", u.EventID, u.MapName, u.Agent)] = u
	}
	return nil
}

func (r *AgentUsageRepository) UpsertMapStats(_ context.Context, stats []agentusage.MapStat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range stats {
		r.maps[fmt.Sprintf("%d:%s", s.EventID, s.MapName)] = s
	}
	return nil
}

func (r *AgentUsageRepository) ListAgentUsage(_ context.Context, eventID int64) ([]agentusage.AgentUsage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []agentusage.AgentUsage
	for _, u := range r.usage {
		if u.EventID == eventID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MapName != out[j].MapName {
			return out[i].MapName < out[j].MapName
		}
		return out[i].Agent < out[j].Agent
	})
	return out, nil
}

func (r *AgentUsageRepository) ListMapStats(_ context.Context, eventID int64) ([]agentusage.MapStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []agentusage.MapStat
	for _, s := range r.maps {
		if s.EventID == eventID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MapName < out[j].MapName })
	return out, nil
}

type EconomyRepository struct {
	mu   sync.RWMutex
	rows map[string]economy.TeamEconomy
}

func NewEconomyRepository() *EconomyRepository {
	return &EconomyRepository{rows: make(map[string]economy.TeamEconomy)}
}

func (r *EconomyRepository) Upsert(_ context.Context, rows []economy.TeamEconomy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range rows {
		r.rows[fmt.Sprintf("%d:%d:%s", e.MatchID, e.MapOrder, e.Team)] = e
	}
	return nil
}

func (r *EconomyRepository) ListByMatch(_ context.Context, matchID int64) ([]economy.TeamEconomy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []economy.TeamEconomy
	for _, e := range r.rows {
		if e.MatchID == matchID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MapOrder != out[j].MapOrder {
			return out[i].MapOrder < out[j].MapOrder
		}
		return out[i].Team < out[j].Team
	})
	return out, nil
}

type PerformanceRepository struct {
	mu   sync.RWMutex
	rows map[string]performance.PlayerPerformance
}

func NewPerformanceRepository() *PerformanceRepository {
	return &PerformanceRepository{rows: make(map[string]performance.PlayerPerformance)}
}

func (r *PerformanceRepository) Upsert(_ context.Context, rows []performance.PlayerPerformance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range rows {
		r.rows[fmt.Sprintf("%d:%d:%s", p.MatchID, p.MapOrder, p.Player)] = p
	}
	return nil
}

func (r *PerformanceRepository) ListByMatch(_ context.Context, matchID int64) ([]performance.PlayerPerformance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []performance.PlayerPerformance
	for _, p := range r.rows {
		if p.MatchID == matchID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MapOrder != out[j].MapOrder {
			return out[i].MapOrder < out[j].MapOrder
		}
		return out[i].Player < out[j].Player
	})
	return out, nil
}
