package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/eprasetya/vlrscout/internal/domain/playerstat"
	qb "github.com/eprasetya/vlrscout/internal/platform/querybuilder"
)

const matchStatUpsertSuffix = `ON CONFLICT (match_id, map_order, player, side) DO UPDATE SET
	map_name = EXCLUDED.map_name,
	team = EXCLUDED.team,
	agents = EXCLUDED.agents,
	rating = EXCLUDED.rating,
	acs = EXCLUDED.acs,
	kills = EXCLUDED.kills,
	deaths = EXCLUDED.deaths,
	assists = EXCLUDED.assists,
	kd_diff = EXCLUDED.kd_diff,
	kast = EXCLUDED.kast,
	adr = EXCLUDED.adr,
	hs_percent = EXCLUDED.hs_percent,
	first_kills = EXCLUDED.first_kills,
	first_deaths = EXCLUDED.first_deaths,
	fk_diff = EXCLUDED.fk_diff`

const eventStatUpsertSuffix = `ON CONFLICT (event_id, player) DO UPDATE SET
	team = EXCLUDED.team,
	agents = EXCLUDED.agents,
	rounds_played = EXCLUDED.rounds_played,
	rating = EXCLUDED.rating,
	acs = EXCLUDED.acs,
	kd = EXCLUDED.kd,
	kast = EXCLUDED.kast,
	adr = EXCLUDED.adr,
	kpr = EXCLUDED.kpr,
	apr = EXCLUDED.apr,
	fkpr = EXCLUDED.fkpr,
	fdpr = EXCLUDED.fdpr,
	hs_percent = EXCLUDED.hs_percent,
	clutch_percent = EXCLUDED.clutch_percent,
	clutches_won_of = EXCLUDED.clutches_won_of,
	k_max = EXCLUDED.k_max,
	kills = EXCLUDED.kills,
	deaths = EXCLUDED.deaths,
	assists = EXCLUDED.assists,
	first_kills = EXCLUDED.first_kills,
	first_deaths = EXCLUDED.first_deaths`

var matchStatColumns = []string{
	"match_id", "map_order", "map_name", "player", "team", "agents", "side",
	"rating", "acs", "kills", "deaths", "assists", "kd_diff", "kast", "adr",
	"hs_percent", "first_kills", "first_deaths", "fk_diff",
}

var eventStatColumns = []string{
	"event_id", "player", "team", "agents", "rounds_played", "rating", "acs",
	"kd", "kast", "adr", "kpr", "apr", "fkpr", "fdpr", "hs_percent",
	"clutch_percent", "clutches_won_of", "k_max", "kills", "deaths",
	"assists", "first_kills", "first_deaths",
}

type PlayerStatRepository struct {
	db *sqlx.DB
}

func NewPlayerStatRepository(db *sqlx.DB) *PlayerStatRepository {
	return &PlayerStatRepository{db: db}
}

func (r *PlayerStatRepository) UpsertMatchStats(ctx context.Context, stats []playerstat.MatchStat) error {
	return chunked(len(stats), func(start, end int) error {
		builder := qb.InsertInto("match_player_stats").Columns(matchStatColumns...)
		for _, s := range stats[start:end] {
			row := matchStatToRow(s)
			builder = builder.Values(
				row.MatchID, row.MapOrder, row.MapName, row.Player, row.Team,
				row.Agents, row.Side, row.Rating, row.ACS, row.Kills,
				row.Deaths, row.Assists, row.KDDiff, row.KAST, row.ADR,
				row.HSPercent, row.FirstKills, row.FirstDeaths, row.FKDiff,
			)
		}
		query, args, err := builder.Suffix(matchStatUpsertSuffix).ToSQL()
		if err != nil {
			return fmt.Errorf("build upsert match stats query: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert match stats: %w", err)
		}
		return nil
	})
}

func (r *PlayerStatRepository) UpsertEventStats(ctx context.Context, stats []playerstat.EventStat) error {
	return chunked(len(stats), func(start, end int) error {
		builder := qb.InsertInto("event_player_stats").Columns(eventStatColumns...)
		for _, s := range stats[start:end] {
			row := eventStatToRow(s)
			builder = builder.Values(
				row.EventID, row.Player, row.Team, row.Agents, row.RoundsPlayed,
				row.Rating, row.ACS, row.KD, row.KAST, row.ADR, row.KPR,
				row.APR, row.FKPR, row.FDPR, row.HSPercent, row.ClutchPercent,
				row.ClutchesWonOf, row.KMax, row.Kills, row.Deaths,
				row.Assists, row.FirstKills, row.FirstDeaths,
			)
		}
		query, args, err := builder.Suffix(eventStatUpsertSuffix).ToSQL()
		if err != nil {
			return fmt.Errorf("build upsert event stats query: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert event stats: %w", err)
		}
		return nil
	})
}

func (r *PlayerStatRepository) ListMatchStats(ctx context.Context, matchID int64) ([]playerstat.MatchStat, error) {
	query, args, err := qb.Select("*").From("match_player_stats").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("map_order", "team", "player", "side").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list match stats query: %w", err)
	}

	var rows []matchStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list match stats match_id=%d: %w", matchID, err)
	}

	out := make([]playerstat.MatchStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToMatchStat(row))
	}
	return out, nil
}

func (r *PlayerStatRepository) ListEventStats(ctx context.Context, eventID int64) ([]playerstat.EventStat, error) {
	query, args, err := qb.Select("*").From("event_player_stats").
		Where(qb.Eq("event_id", eventID)).
		OrderBy("rating DESC", "player").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list event stats query: %w", err)
	}

	var rows []eventStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list event stats event_id=%d: %w", eventID, err)
	}

	out := make([]playerstat.EventStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToEventStat(row))
	}
	return out, nil
}
