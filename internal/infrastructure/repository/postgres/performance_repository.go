package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/eprasetya/vlrscout/internal/domain/performance"
	qb "github.com/eprasetya/vlrscout/internal/platform/querybuilder"
)

const performanceUpsertSuffix = `ON CONFLICT (match_id, map_order, player) DO UPDATE SET
	map_name = EXCLUDED.map_name,
	team = EXCLUDED.team,
	agent = EXCLUDED.agent,
	kills2 = EXCLUDED.kills2,
	kills3 = EXCLUDED.kills3,
	kills4 = EXCLUDED.kills4,
	kills5 = EXCLUDED.kills5,
	clutch1 = EXCLUDED.clutch1,
	clutch2 = EXCLUDED.clutch2,
	clutch3 = EXCLUDED.clutch3,
	clutch4 = EXCLUDED.clutch4,
	clutch5 = EXCLUDED.clutch5,
	econ = EXCLUDED.econ,
	plants = EXCLUDED.plants,
	defuses = EXCLUDED.defuses`

type performanceTableModel struct {
	MatchID  int64  `db:"match_id"`
	MapOrder int    `db:"map_order"`
	MapName  string `db:"map_name"`
	Player   string `db:"player"`
	Team     string `db:"team"`
	Agent    string `db:"agent"`
	Kills2   int    `db:"kills2"`
	Kills3   int    `db:"kills3"`
	Kills4   int    `db:"kills4"`
	Kills5   int    `db:"kills5"`
	Clutch1  int    `db:"clutch1"`
	Clutch2  int    `db:"clutch2"`
	Clutch3  int    `db:"clutch3"`
	Clutch4  int    `db:"clutch4"`
	Clutch5  int    `db:"clutch5"`
	Econ     int    `db:"econ"`
	Plants   int    `db:"plants"`
	Defuses  int    `db:"defuses"`
}

type PerformanceRepository struct {
	db *sqlx.DB
}

func NewPerformanceRepository(db *sqlx.DB) *PerformanceRepository {
	return &PerformanceRepository{db: db}
}

func (r *PerformanceRepository) Upsert(ctx context.Context, rows []performance.PlayerPerformance) error {
	return chunked(len(rows), func(start, end int) error {
		builder := qb.InsertInto("player_performance").Columns(
			"match_id", "map_order", "map_name", "player", "team", "agent",
			"kills2", "kills3", "kills4", "kills5",
			"clutch1", "clutch2", "clutch3", "clutch4", "clutch5",
			"econ", "plants", "defuses",
		)
		for _, p := range rows[start:end] {
			row := performanceTableModel(p)
			builder = builder.Values(
				row.MatchID, row.MapOrder, row.MapName, row.Player, row.Team, row.Agent,
				row.Kills2, row.Kills3, row.Kills4, row.Kills5,
				row.Clutch1, row.Clutch2, row.Clutch3, row.Clutch4, row.Clutch5,
				row.Econ, row.Plants, row.Defuses,
			)
		}
		query, args, err := builder.Suffix(performanceUpsertSuffix).ToSQL()
		if err != nil {
			return fmt.Errorf("build upsert player performance query: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert player performance: %w", err)
		}
		return nil
	})
}

func (r *PerformanceRepository) ListByMatch(ctx context.Context, matchID int64) ([]performance.PlayerPerformance, error) {
	query, args, err := qb.Select("*").From("player_performance").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("map_order", "team", "player").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list player performance query: %w", err)
	}

	var rows []performanceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list player performance match_id=%d: %w", matchID, err)
	}

	out := make([]performance.PlayerPerformance, 0, len(rows))
	for _, row := range rows {
		out = append(out, performance.PlayerPerformance(row))
	}
	return out, nil
}
