package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/eprasetya/vlrscout/internal/domain/agentusage"
	qb "github.com/eprasetya/vlrscout/internal/platform/querybuilder"
)

const agentUsageUpsertSuffix = `ON CONFLICT (event_id, map_name, agent) DO UPDATE SET
	pick_count = EXCLUDED.pick_count,
	pick_percent = EXCLUDED.pick_percent`

const mapStatUpsertSuffix = `ON CONFLICT (event_id, map_name) DO UPDATE SET
	times_played = EXCLUDED.times_played,
	attack_win_pct = EXCLUDED.attack_win_pct,
	defense_win_pct = EXCLUDED.defense_win_pct`

type agentUsageTableModel struct {
	EventID     int64   `db:"event_id"`
	MapName     string  `db:"map_name"`
	Agent       string  `db:"agent"`
	PickCount   int     `db:"pick_count"`
	PickPercent float64 `db:"pick_percent"`
}

type mapStatTableModel struct {
	EventID       int64   `db:"event_id"`
	MapName       string  `db:"map_name"`
	TimesPlayed   int     `db:"times_played"`
	AttackWinPct  float64 `db:"attack_win_pct"`
	DefenseWinPct float64 `db:"defense_win_pct"`
}

type AgentUsageRepository struct {
	db *sqlx.DB
}

func NewAgentUsageRepository(db *sqlx.DB) *AgentUsageRepository {
	return &AgentUsageRepository{db: db}
}

func (r *AgentUsageRepository) UpsertAgentUsage(ctx context.Context, usage []agentusage.AgentUsage) error {
	return chunked(len(usage), func(start, end int) error {
		builder := qb.InsertInto("agent_usage").
			Columns("event_id", "map_name", "agent", "pick_count", "pick_percent")
		for _, u := range usage[start:end] {
			builder = builder.Values(u.EventID, u.MapName, u.Agent, u.PickCount, u.PickPercent)
		}
		query, args, err := builder.Suffix(agentUsageUpsertSuffix).ToSQL()
		if err != nil {
			return fmt.Errorf("build upsert agent usage query: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert agent usage: %w", err)
		}
		return nil
	})
}

func (r *AgentUsageRepository) UpsertMapStats(ctx context.Context, stats []agentusage.MapStat) error {
	return chunked(len(stats), func(start, end int) error {
		builder := qb.InsertInto("map_stats").
			Columns("event_id", "map_name", "times_played", "attack_win_pct", "defense_win_pct")
		for _, s := range stats[start:end] {
			builder = builder.Values(s.EventID, s.MapName, s.TimesPlayed, s.AttackWinPct, s.DefenseWinPct)
		}
		query, args, err := builder.Suffix(mapStatUpsertSuffix).ToSQL()
		if err != nil {
			return fmt.Errorf("build upsert map stats query: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert map stats: %w", err)
		}
		return nil
	})
}

func (r *AgentUsageRepository) ListAgentUsage(ctx context.Context, eventID int64) ([]agentusage.AgentUsage, error) {
	query, args, err := qb.Select("*").From("agent_usage").
		Where(qb.Eq("event_id", eventID)).
		OrderBy("map_name", "pick_percent DESC", "agent").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list agent usage query: %w", err)
	}

	var rows []agentUsageTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list agent usage event_id=%d: %w", eventID, err)
	}

	out := make([]agentusage.AgentUsage, 0, len(rows))
	for _, row := range rows {
		out = append(out, agentusage.AgentUsage(row))
	}
	return out, nil
}

func (r *AgentUsageRepository) ListMapStats(ctx context.Context, eventID int64) ([]agentusage.MapStat, error) {
	query, args, err := qb.Select("*").From("map_stats").
		Where(qb.Eq("event_id", eventID)).
		OrderBy("times_played DESC", "map_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list map stats query: %w", err)
	}

	var rows []mapStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list map stats event_id=%d: %w", eventID, err)
	}

	out := make([]agentusage.MapStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, agentusage.MapStat(row))
	}
	return out, nil
}
