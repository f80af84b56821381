package postgres

import (
	"github.com/lib/pq"

	"github.com/eprasetya/vlrscout/internal/domain/playerstat"
)

type matchStatTableModel struct {
	MatchID     int64          `db:"match_id"`
	MapOrder    int            `db:"map_order"`
	MapName     string         `db:"map_name"`
	Player      string         `db:"player"`
	Team        string         `db:"team"`
	Agents      pq.StringArray `db:"agents"`
	Side        string         `db:"side"`
	Rating      float64        `db:"rating"`
	ACS         int            `db:"acs"`
	Kills       int            `db:"kills"`
	Deaths      int            `db:"deaths"`
	Assists     int            `db:"assists"`
	KDDiff      int            `db:"kd_diff"`
	KAST        float64        `db:"kast"`
	ADR         int            `db:"adr"`
	HSPercent   float64        `db:"hs_percent"`
	FirstKills  int            `db:"first_kills"`
	FirstDeaths int            `db:"first_deaths"`
	FKDiff      int            `db:"fk_diff"`
}

func matchStatToRow(s playerstat.MatchStat) matchStatTableModel {
	return matchStatTableModel{
		MatchID:     s.MatchID,
		MapOrder:    s.MapOrder,
		MapName:     s.MapName,
		Player:      s.Player,
		Team:        s.Team,
		Agents:      pq.StringArray(s.Agents),
		Side:        string(s.Side),
		Rating:      s.Rating,
		ACS:         s.ACS,
		Kills:       s.Kills,
		Deaths:      s.Deaths,
		Assists:     s.Assists,
		KDDiff:      s.KDDiff,
		KAST:        s.KAST,
		ADR:         s.ADR,
		HSPercent:   s.HSPercent,
		FirstKills:  s.FirstKills,
		FirstDeaths: s.FirstDeaths,
		FKDiff:      s.FKDiff,
	}
}

func rowToMatchStat(row matchStatTableModel) playerstat.MatchStat {
	return playerstat.MatchStat{
		MatchID:     row.MatchID,
		MapOrder:    row.MapOrder,
		MapName:     row.MapName,
		Player:      row.Player,
		Team:        row.Team,
		Agents:      []string(row.Agents),
		Side:        playerstat.Side(row.Side),
		Rating:      row.Rating,
		ACS:         row.ACS,
		Kills:       row.Kills,
		Deaths:      row.Deaths,
		Assists:     row.Assists,
		KDDiff:      row.KDDiff,
		KAST:        row.KAST,
		ADR:         row.ADR,
		HSPercent:   row.HSPercent,
		FirstKills:  row.FirstKills,
		FirstDeaths: row.FirstDeaths,
		FKDiff:      row.FKDiff,
	}
}

type eventStatTableModel struct {
	EventID       int64          `db:"event_id"`
	Player        string         `db:"player"`
	Team          string         `db:"team"`
	Agents        pq.StringArray `db:"agents"`
	RoundsPlayed  int            `db:"rounds_played"`
	Rating        float64        `db:"rating"`
	ACS           float64        `db:"acs"`
	KD            float64        `db:"kd"`
	KAST          float64        `db:"kast"`
	ADR           float64        `db:"adr"`
	KPR           float64        `db:"kpr"`
	APR           float64        `db:"apr"`
	FKPR          float64        `db:"fkpr"`
	FDPR          float64        `db:"fdpr"`
	HSPercent     float64        `db:"hs_percent"`
	ClutchPercent float64        `db:"clutch_percent"`
	ClutchesWonOf string         `db:"clutches_won_of"`
	KMax          int            `db:"k_max"`
	Kills         int            `db:"kills"`
	Deaths        int            `db:"deaths"`
	Assists       int            `db:"assists"`
	FirstKills    int            `db:"first_kills"`
	FirstDeaths   int            `db:"first_deaths"`
}

func eventStatToRow(s playerstat.EventStat) eventStatTableModel {
	return eventStatTableModel{
		EventID:       s.EventID,
		Player:        s.Player,
		Team:          s.Team,
		Agents:        pq.StringArray(s.Agents),
		RoundsPlayed:  s.RoundsPlayed,
		Rating:        s.Rating,
		ACS:           s.ACS,
		KD:            s.KD,
		KAST:          s.KAST,
		ADR:           s.ADR,
		KPR:           s.KPR,
		APR:           s.APR,
		FKPR:          s.FKPR,
		FDPR:          s.FDPR,
		HSPercent:     s.HSPercent,
		ClutchPercent: s.ClutchPercent,
		ClutchesWonOf: s.ClutchesWonOf,
		KMax:          s.KMax,
		Kills:         s.Kills,
		Deaths:        s.Deaths,
		Assists:       s.Assists,
		FirstKills:    s.FirstKills,
		FirstDeaths:   s.FirstDeaths,
	}
}

func rowToEventStat(row eventStatTableModel) playerstat.EventStat {
	return playerstat.EventStat{
		EventID:       row.EventID,
		Player:        row.Player,
		Team:          row.Team,
		Agents:        []string(row.Agents),
		RoundsPlayed:  row.RoundsPlayed,
		Rating:        row.Rating,
		ACS:           row.ACS,
		KD:            row.KD,
		KAST:          row.KAST,
		ADR:           row.ADR,
		KPR:           row.KPR,
		APR:           row.APR,
		FKPR:          row.FKPR,
		FDPR:          row.FDPR,
		HSPercent:     row.HSPercent,
		ClutchPercent: row.ClutchPercent,
		ClutchesWonOf: row.ClutchesWonOf,
		KMax:          row.KMax,
		Kills:         row.Kills,
		Deaths:        row.Deaths,
		Assists:       row.Assists,
		FirstKills:    row.FirstKills,
		FirstDeaths:   row.FirstDeaths,
	}
}
