package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/eprasetya/vlrscout/internal/domain/match"
	qb "github.com/eprasetya/vlrscout/internal/platform/querybuilder"
)

const matchUpsertSuffix = `ON CONFLICT (id) DO UPDATE SET
	event_id = EXCLUDED.event_id,
	path = EXCLUDED.path,
	stage = EXCLUDED.stage,
	week = EXCLUDED.week,
	date_text = EXCLUDED.date_text,
	time_text = EXCLUDED.time_text,
	team1 = EXCLUDED.team1,
	team2 = EXCLUDED.team2,
	score1 = EXCLUDED.score1,
	score2 = EXCLUDED.score2,
	status = EXCLUDED.status`

const mapResultUpsertSuffix = `ON CONFLICT (match_id, map_order) DO UPDATE SET
	map_name = EXCLUDED.map_name,
	team1 = EXCLUDED.team1,
	team2 = EXCLUDED.team2,
	score1 = EXCLUDED.score1,
	score2 = EXCLUDED.score2,
	duration = EXCLUDED.duration,
	picked_by = EXCLUDED.picked_by`

var matchColumns = []string{
	"id", "event_id", "path", "stage", "week", "date_text", "time_text",
	"team1", "team2", "score1", "score2", "status",
}

var mapResultColumns = []string{
	"match_id", "map_order", "map_name", "team1", "team2",
	"score1", "score2", "duration", "picked_by",
}

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) UpsertMatches(ctx context.Context, matches []match.Match) error {
	return chunked(len(matches), func(start, end int) error {
		builder := qb.InsertInto("matches").Columns(matchColumns...)
		for _, m := range matches[start:end] {
			row := matchToRow(m)
			builder = builder.Values(
				row.ID, row.EventID, row.Path, row.Stage, row.Week,
				row.DateText, row.TimeText, row.Team1, row.Team2,
				row.Score1, row.Score2, row.Status,
			)
		}
		query, args, err := builder.Suffix(matchUpsertSuffix).ToSQL()
		if err != nil {
			return fmt.Errorf("build upsert matches query: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert matches: %w", err)
		}
		return nil
	})
}

func (r *MatchRepository) UpsertMapResults(ctx context.Context, results []match.MapResult) error {
	return chunked(len(results), func(start, end int) error {
		builder := qb.InsertInto("map_results").Columns(mapResultColumns...)
		for _, m := range results[start:end] {
			row := mapResultToRow(m)
			builder = builder.Values(
				row.MatchID, row.MapOrder, row.MapName, row.Team1, row.Team2,
				row.Score1, row.Score2, row.Duration, row.PickedBy,
			)
		}
		query, args, err := builder.Suffix(mapResultUpsertSuffix).ToSQL()
		if err != nil {
			return fmt.Errorf("build upsert map results query: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert map results: %w", err)
		}
		return nil
	})
}

func (r *MatchRepository) ListByEvent(ctx context.Context, eventID int64) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("event_id", eventID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches event_id=%d: %w", eventID, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToMatch(row))
	}
	return out, nil
}

func (r *MatchRepository) ListMapResults(ctx context.Context, matchID int64) ([]match.MapResult, error) {
	query, args, err := qb.Select("*").From("map_results").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("map_order").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list map results query: %w", err)
	}

	var rows []mapResultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list map results match_id=%d: %w", matchID, err)
	}

	out := make([]match.MapResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToMapResult(row))
	}
	return out, nil
}
