package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/eprasetya/vlrscout/internal/domain/match"
	"github.com/eprasetya/vlrscout/internal/domain/playerstat"
	"github.com/eprasetya/vlrscout/internal/normalize"
	"github.com/eprasetya/vlrscout/internal/vlr"
)

// MatchDetail is everything the overview tab of a match page yields: the
// per-map scorelines and every scoreboard row, including the aggregate
// block covering the whole series.
type MatchDetail struct {
	Maps  []match.MapResult
	Stats []playerstat.MatchStat
}

// MatchDetailPage parses the overview tab of a completed match.
func MatchDetailPage(doc *goquery.Document, matchID int64, matchPath string) (MatchDetail, error) {
	games := doc.Find("div.vm-stats-game[data-game-id]")
	if games.Length() == 0 {
		return MatchDetail{}, vlr.NewLayoutError(matchPath, "missing per-map stat blocks")
	}

	team1 := collapsed(doc.Find("div.match-header-link-name.mod-1 div.wf-title-med").First())
	team2 := collapsed(doc.Find("div.match-header-link-name.mod-2 div.wf-title-med").First())

	var detail MatchDetail
	mapOrder := 0
	games.Each(func(_ int, game *goquery.Selection) {
		gameID := game.AttrOr("data-game-id", "")
		if gameID == "" || gameID == "disabled" {
			return
		}

		order := 0
		mapName := OverviewMapName
		if gameID != "all" {
			mapOrder++
			order = mapOrder
			mapName = gameMapName(game)
			if mapName == "" {
				return
			}

			scores := game.Find("div.score")
			result := match.MapResult{
				MatchID:  matchID,
				MapOrder: order,
				MapName:  mapName,
				Team1:    firstNonEmpty(collapsed(game.Find("div.team-name").Eq(0)), team1),
				Team2:    firstNonEmpty(collapsed(game.Find("div.team-name").Eq(1)), team2),
				Duration: text(game.Find("div.map-duration").First()),
			}
			if scores.Length() >= 2 {
				result.Score1 = normalize.Int(text(scores.Eq(0)))
				result.Score2 = normalize.Int(text(scores.Eq(1)))
			}
			if game.Find("span.picked.mod-1").Length() > 0 {
				result.PickedBy = result.Team1
			} else if game.Find("span.picked.mod-2").Length() > 0 {
				result.PickedBy = result.Team2
			}
			detail.Maps = append(detail.Maps, result)
		}

		tables := game.Find("table.wf-table-inset.mod-overview")
		tables.Each(func(tableIdx int, table *goquery.Selection) {
			teamName := team1
			if tableIdx == 1 {
				teamName = team2
			}
			table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
				detail.Stats = append(detail.Stats, scoreboardRows(row, matchID, order, mapName, teamName)...)
			})
		})
	})

	if len(detail.Stats) == 0 {
		return MatchDetail{}, vlr.NewLayoutError(matchPath, "match page has no scoreboard rows")
	}
	return detail, nil
}

// scoreboardRows expands one scoreboard <tr> into its combined, attack, and
// defense rows. Side rows are only emitted when the page carries the side
// split spans.
func scoreboardRows(row *goquery.Selection, matchID int64, mapOrder int, mapName, teamName string) []playerstat.MatchStat {
	playerCell := row.Find("td.mod-player").First()
	name := text(playerCell.Find("div.text-of").First())
	if name == "" {
		return nil
	}
	if tag := text(playerCell.Find("div.ge-text-light").First()); tag != "" {
		teamName = tag
	}

	agents := agentNames(row.Find("td.mod-agents").First())
	cells := row.Find("td.mod-stat")
	if cells.Length() < 12 {
		return nil
	}

	type sideCell struct{ both, attack, defense string }
	raw := make([]sideCell, cells.Length())
	cells.Each(func(i int, cell *goquery.Selection) {
		b, a, d := sideValues(cell)
		raw[i] = sideCell{both: b, attack: a, defense: d}
	})

	// Stat column order on the overview scoreboard: rating, ACS, K, D, A,
	// +/-, KAST, ADR, HS%, FK, FD, FK +/-. Deaths come wrapped in slashes.
	build := func(side playerstat.Side, pick func(sideCell) string) playerstat.MatchStat {
		deaths := strings.Trim(pick(raw[3]), "/")
		return playerstat.MatchStat{
			MatchID:     matchID,
			MapOrder:    mapOrder,
			MapName:     mapName,
			Player:      name,
			Team:        teamName,
			Agents:      agents,
			Side:        side,
			Rating:      normalize.Float(pick(raw[0])),
			ACS:         normalize.Int(pick(raw[1])),
			Kills:       normalize.Int(pick(raw[2])),
			Deaths:      normalize.Int(deaths),
			Assists:     normalize.Int(pick(raw[4])),
			KDDiff:      normalize.Int(pick(raw[5])),
			KAST:        normalize.Percent(pick(raw[6])),
			ADR:         normalize.Int(pick(raw[7])),
			HSPercent:   normalize.Percent(pick(raw[8])),
			FirstKills:  normalize.Int(pick(raw[9])),
			FirstDeaths: normalize.Int(pick(raw[10])),
			FKDiff:      normalize.Int(pick(raw[11])),
		}
	}

	out := []playerstat.MatchStat{
		build(playerstat.SideBoth, func(c sideCell) string { return c.both }),
	}

	hasSides := false
	for _, c := range raw {
		if c.attack != "" || c.defense != "" {
			hasSides = true
			break
		}
	}
	if hasSides {
		out = append(out,
			build(playerstat.SideAttack, func(c sideCell) string { return c.attack }),
			build(playerstat.SideDefense, func(c sideCell) string { return c.defense }),
		)
	}
	return out
}

func gameMapName(game *goquery.Selection) string {
	name := collapsed(game.Find("div.map div span").First())
	// The map header embeds a "PICK" marker next to the name.
	name = strings.TrimSpace(strings.TrimSuffix(name, "PICK"))
	return name
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
