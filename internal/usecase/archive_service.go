package usecase

import (
	"context"
	"fmt"

	"github.com/eprasetya/vlrscout/internal/collector"
	"github.com/eprasetya/vlrscout/internal/domain/agentusage"
	"github.com/eprasetya/vlrscout/internal/domain/economy"
	"github.com/eprasetya/vlrscout/internal/domain/event"
	"github.com/eprasetya/vlrscout/internal/domain/match"
	"github.com/eprasetya/vlrscout/internal/domain/performance"
	"github.com/eprasetya/vlrscout/internal/domain/playerstat"
	"github.com/eprasetya/vlrscout/internal/export"
	"github.com/eprasetya/vlrscout/internal/platform/logging"
)

// EventArchive is everything stored for one event, assembled for readers.
type EventArchive struct {
	Event      event.Event
	Matches    []match.Match
	EventStats []playerstat.EventStat
	AgentUsage []agentusage.AgentUsage
	MapStats   []agentusage.MapStat
}

// MatchArchive is everything stored for one match.
type MatchArchive struct {
	Match        match.Match
	MapResults   []match.MapResult
	Stats        []playerstat.MatchStat
	Economy      []economy.TeamEconomy
	Performances []performance.PlayerPerformance
}

// ArchiveService persists collection results and serves them back. Writes
// go through the repositories' natural-key upserts, so saving the same
// result twice leaves the archive unchanged.
type ArchiveService struct {
	events       event.Repository
	matches      match.Repository
	playerStats  playerstat.Repository
	agentUsage   agentusage.Repository
	economies    economy.Repository
	performances performance.Repository
	logger       *logging.Logger
}

func NewArchiveService(
	events event.Repository,
	matches match.Repository,
	playerStats playerstat.Repository,
	agentUsage agentusage.Repository,
	economies economy.Repository,
	performances performance.Repository,
	logger *logging.Logger,
) *ArchiveService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ArchiveService{
		events:       events,
		matches:      matches,
		playerStats:  playerStats,
		agentUsage:   agentUsage,
		economies:    economies,
		performances: performances,
		logger:       logger,
	}
}

// SaveResult writes every section a run produced. The event row goes first
// so foreign references always land on an existing event.
func (s *ArchiveService) SaveResult(ctx context.Context, res collector.Result) error {
	ctx, span := startUsecaseSpan(ctx, "ArchiveService.SaveResult")
	defer span.End()

	if res.Event.ID <= 0 {
		return fmt.Errorf("%w: result has no event", ErrInvalidInput)
	}

	if err := s.events.Upsert(ctx, res.Event); err != nil {
		return fmt.Errorf("save event: %w", err)
	}
	if len(res.Matches) > 0 {
		if err := s.matches.UpsertMatches(ctx, res.Matches); err != nil {
			return fmt.Errorf("save matches: %w", err)
		}
	}
	if len(res.MapResults) > 0 {
		if err := s.matches.UpsertMapResults(ctx, res.MapResults); err != nil {
			return fmt.Errorf("save map results: %w", err)
		}
	}
	if len(res.MatchStats) > 0 {
		if err := s.playerStats.UpsertMatchStats(ctx, res.MatchStats); err != nil {
			return fmt.Errorf("save match stats: %w", err)
		}
	}
	if len(res.EventStats) > 0 {
		if err := s.playerStats.UpsertEventStats(ctx, res.EventStats); err != nil {
			return fmt.Errorf("save event stats: %w", err)
		}
	}
	if len(res.AgentUsage) > 0 {
		if err := s.agentUsage.UpsertAgentUsage(ctx, res.AgentUsage); err != nil {
			return fmt.Errorf("save agent usage: %w", err)
		}
	}
	if len(res.MapStats) > 0 {
		if err := s.agentUsage.UpsertMapStats(ctx, res.MapStats); err != nil {
			return fmt.Errorf("save map stats: %w", err)
		}
	}
	if len(res.Economies) > 0 {
		if err := s.economies.Upsert(ctx, res.Economies); err != nil {
			return fmt.Errorf("save team economy: %w", err)
		}
	}
	if len(res.Performances) > 0 {
		if err := s.performances.Upsert(ctx, res.Performances); err != nil {
			return fmt.Errorf("save player performance: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "collection result saved",
		"event_id", res.Event.ID,
		"matches", len(res.Matches),
		"match_stats", len(res.MatchStats),
		"event_stats", len(res.EventStats))
	return nil
}

func (s *ArchiveService) ListEvents(ctx context.Context, filter event.Filter) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "ArchiveService.ListEvents")
	defer span.End()

	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}
	return s.events.List(ctx, filter)
}

func (s *ArchiveService) GetEventArchive(ctx context.Context, eventID int64) (EventArchive, error) {
	ctx, span := startUsecaseSpan(ctx, "ArchiveService.GetEventArchive")
	defer span.End()

	if eventID <= 0 {
		return EventArchive{}, fmt.Errorf("%w: event id must be greater than zero", ErrInvalidInput)
	}

	ev, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return EventArchive{}, err
	}

	matches, err := s.matches.ListByEvent(ctx, eventID)
	if err != nil {
		return EventArchive{}, fmt.Errorf("load matches: %w", err)
	}
	stats, err := s.playerStats.ListEventStats(ctx, eventID)
	if err != nil {
		return EventArchive{}, fmt.Errorf("load event stats: %w", err)
	}
	usage, err := s.agentUsage.ListAgentUsage(ctx, eventID)
	if err != nil {
		return EventArchive{}, fmt.Errorf("load agent usage: %w", err)
	}
	mapStats, err := s.agentUsage.ListMapStats(ctx, eventID)
	if err != nil {
		return EventArchive{}, fmt.Errorf("load map stats: %w", err)
	}

	return EventArchive{
		Event:      ev,
		Matches:    matches,
		EventStats: stats,
		AgentUsage: usage,
		MapStats:   mapStats,
	}, nil
}

// ExportBundle gathers every stored section of an event for export. Match
// level sections are loaded per match, so big events mean many reads; the
// export endpoint is expected to be rare.
func (s *ArchiveService) ExportBundle(ctx context.Context, eventID int64) (export.Bundle, error) {
	ctx, span := startUsecaseSpan(ctx, "ArchiveService.ExportBundle")
	defer span.End()

	arch, err := s.GetEventArchive(ctx, eventID)
	if err != nil {
		return export.Bundle{}, err
	}

	b := export.Bundle{
		Event:      arch.Event,
		Matches:    arch.Matches,
		EventStats: arch.EventStats,
		AgentUsage: arch.AgentUsage,
		MapStats:   arch.MapStats,
	}
	for _, m := range arch.Matches {
		maps, err := s.matches.ListMapResults(ctx, m.ID)
		if err != nil {
			return export.Bundle{}, fmt.Errorf("load map results for match %d: %w", m.ID, err)
		}
		stats, err := s.playerStats.ListMatchStats(ctx, m.ID)
		if err != nil {
			return export.Bundle{}, fmt.Errorf("load match stats for match %d: %w", m.ID, err)
		}
		econ, err := s.economies.ListByMatch(ctx, m.ID)
		if err != nil {
			return export.Bundle{}, fmt.Errorf("load team economy for match %d: %w", m.ID, err)
		}
		perf, err := s.performances.ListByMatch(ctx, m.ID)
		if err != nil {
			return export.Bundle{}, fmt.Errorf("load player performance for match %d: %w", m.ID, err)
		}
		b.MapResults = append(b.MapResults, maps...)
		b.MatchStats = append(b.MatchStats, stats...)
		b.Economies = append(b.Economies, econ...)
		b.Performances = append(b.Performances, perf...)
	}
	return b, nil
}

func (s *ArchiveService) GetMatchArchive(ctx context.Context, eventID, matchID int64) (MatchArchive, error) {
	ctx, span := startUsecaseSpan(ctx, "ArchiveService.GetMatchArchive")
	defer span.End()

	if matchID <= 0 {
		return MatchArchive{}, fmt.Errorf("%w: match id must be greater than zero", ErrInvalidInput)
	}

	matches, err := s.matches.ListByEvent(ctx, eventID)
	if err != nil {
		return MatchArchive{}, fmt.Errorf("load matches: %w", err)
	}
	var found *match.Match
	for i := range matches {
		if matches[i].ID == matchID {
			found = &matches[i]
			break
		}
	}
	if found == nil {
		return MatchArchive{}, ErrNotFound
	}

	maps, err := s.matches.ListMapResults(ctx, matchID)
	if err != nil {
		return MatchArchive{}, fmt.Errorf("load map results: %w", err)
	}
	stats, err := s.playerStats.ListMatchStats(ctx, matchID)
	if err != nil {
		return MatchArchive{}, fmt.Errorf("load match stats: %w", err)
	}
	econ, err := s.economies.ListByMatch(ctx, matchID)
	if err != nil {
		return MatchArchive{}, fmt.Errorf("load team economy: %w", err)
	}
	perf, err := s.performances.ListByMatch(ctx, matchID)
	if err != nil {
		return MatchArchive{}, fmt.Errorf("load player performance: %w", err)
	}

	return MatchArchive{
		Match:        *found,
		MapResults:   maps,
		Stats:        stats,
		Economy:      econ,
		Performances: perf,
	}, nil
}
