package postgres

import "github.com/eprasetya/vlrscout/internal/domain/match"

type matchTableModel struct {
	ID       int64  `db:"id"`
	EventID  int64  `db:"event_id"`
	Path     string `db:"path"`
	Stage    string `db:"stage"`
	Week     string `db:"week"`
	DateText string `db:"date_text"`
	TimeText string `db:"time_text"`
	Team1    string `db:"team1"`
	Team2    string `db:"team2"`
	Score1   int    `db:"score1"`
	Score2   int    `db:"score2"`
	Status   string `db:"status"`
}

func matchToRow(m match.Match) matchTableModel {
	return matchTableModel(m)
}

func rowToMatch(row matchTableModel) match.Match {
	return match.Match(row)
}

type mapResultTableModel struct {
	MatchID  int64  `db:"match_id"`
	MapOrder int    `db:"map_order"`
	MapName  string `db:"map_name"`
	Team1    string `db:"team1"`
	Team2    string `db:"team2"`
	Score1   int    `db:"score1"`
	Score2   int    `db:"score2"`
	Duration string `db:"duration"`
	PickedBy string `db:"picked_by"`
}

func mapResultToRow(m match.MapResult) mapResultTableModel {
	return mapResultTableModel(m)
}

func rowToMapResult(row mapResultTableModel) match.MapResult {
	return match.MapResult(row)
}
