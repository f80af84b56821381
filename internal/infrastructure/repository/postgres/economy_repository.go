package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/eprasetya/vlrscout/internal/domain/economy"
	qb "github.com/eprasetya/vlrscout/internal/platform/querybuilder"
)

const economyUpsertSuffix = `ON CONFLICT (match_id, map_order, team) DO UPDATE SET
	map_name = EXCLUDED.map_name,
	pistols_won = EXCLUDED.pistols_won,
	eco_played = EXCLUDED.eco_played,
	eco_won = EXCLUDED.eco_won,
	semi_eco_played = EXCLUDED.semi_eco_played,
	semi_eco_won = EXCLUDED.semi_eco_won,
	semi_buy_played = EXCLUDED.semi_buy_played,
	semi_buy_won = EXCLUDED.semi_buy_won,
	full_buy_played = EXCLUDED.full_buy_played,
	full_buy_won = EXCLUDED.full_buy_won`

type economyTableModel struct {
	MatchID       int64  `db:"match_id"`
	MapOrder      int    `db:"map_order"`
	MapName       string `db:"map_name"`
	Team          string `db:"team"`
	PistolsWon    int    `db:"pistols_won"`
	EcoPlayed     int    `db:"eco_played"`
	EcoWon        int    `db:"eco_won"`
	SemiEcoPlayed int    `db:"semi_eco_played"`
	SemiEcoWon    int    `db:"semi_eco_won"`
	SemiBuyPlayed int    `db:"semi_buy_played"`
	SemiBuyWon    int    `db:"semi_buy_won"`
	FullBuyPlayed int    `db:"full_buy_played"`
	FullBuyWon    int    `db:"full_buy_won"`
}

func economyToRow(e economy.TeamEconomy) economyTableModel {
	return economyTableModel{
		MatchID:       e.MatchID,
		MapOrder:      e.MapOrder,
		MapName:       e.MapName,
		Team:          e.Team,
		PistolsWon:    e.PistolsWon,
		EcoPlayed:     e.Eco.Played,
		EcoWon:        e.Eco.Won,
		SemiEcoPlayed: e.SemiEco.Played,
		SemiEcoWon:    e.SemiEco.Won,
		SemiBuyPlayed: e.SemiBuy.Played,
		SemiBuyWon:    e.SemiBuy.Won,
		FullBuyPlayed: e.FullBuy.Played,
		FullBuyWon:    e.FullBuy.Won,
	}
}

func rowToEconomy(row economyTableModel) economy.TeamEconomy {
	return economy.TeamEconomy{
		MatchID:    row.MatchID,
		MapOrder:   row.MapOrder,
		MapName:    row.MapName,
		Team:       row.Team,
		PistolsWon: row.PistolsWon,
		Eco:        economy.Bucket{Played: row.EcoPlayed, Won: row.EcoWon},
		SemiEco:    economy.Bucket{Played: row.SemiEcoPlayed, Won: row.SemiEcoWon},
		SemiBuy:    economy.Bucket{Played: row.SemiBuyPlayed, Won: row.SemiBuyWon},
		FullBuy:    economy.Bucket{Played: row.FullBuyPlayed, Won: row.FullBuyWon},
	}
}

type EconomyRepository struct {
	db *sqlx.DB
}

func NewEconomyRepository(db *sqlx.DB) *EconomyRepository {
	return &EconomyRepository{db: db}
}

func (r *EconomyRepository) Upsert(ctx context.Context, rows []economy.TeamEconomy) error {
	return chunked(len(rows), func(start, end int) error {
		builder := qb.InsertInto("team_economy").Columns(
			"match_id", "map_order", "map_name", "team", "pistols_won",
			"eco_played", "eco_won", "semi_eco_played", "semi_eco_won",
			"semi_buy_played", "semi_buy_won", "full_buy_played", "full_buy_won",
		)
		for _, e := range rows[start:end] {
			row := economyToRow(e)
			builder = builder.Values(
				row.MatchID, row.MapOrder, row.MapName, row.Team, row.PistolsWon,
				row.EcoPlayed, row.EcoWon, row.SemiEcoPlayed, row.SemiEcoWon,
				row.SemiBuyPlayed, row.SemiBuyWon, row.FullBuyPlayed, row.FullBuyWon,
			)
		}
		query, args, err := builder.Suffix(economyUpsertSuffix).ToSQL()
		if err != nil {
			return fmt.Errorf("build upsert team economy query: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert team economy: %w", err)
		}
		return nil
	})
}

func (r *EconomyRepository) ListByMatch(ctx context.Context, matchID int64) ([]economy.TeamEconomy, error) {
	query, args, err := qb.Select("*").From("team_economy").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("map_order", "team").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list team economy query: %w", err)
	}

	var rows []economyTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list team economy match_id=%d: %w", matchID, err)
	}

	out := make([]economy.TeamEconomy, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToEconomy(row))
	}
	return out, nil
}
