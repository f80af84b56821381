package extract

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/eprasetya/vlrscout/internal/domain/playerstat"
	"github.com/eprasetya/vlrscout/internal/normalize"
	"github.com/eprasetya/vlrscout/internal/vlr"
)

// eventStatsColumns is the full width of the leaderboard table: player,
// agents, rounds, rating, ACS, K:D, KAST, ADR, KPR, APR, FKPR, FDPR, HS%,
// CL%, CL, KMax, K, D, A, FK, FD.
const eventStatsColumns = 21

// EventStats parses the event's player stats leaderboard. Rows that are
// narrower than the expected table are skipped rather than misread.
func EventStats(doc *goquery.Document, eventID int64) ([]playerstat.EventStat, error) {
	table := doc.Find("table.wf-table.mod-stats").First()
	if table.Length() == 0 {
		return nil, vlr.NewLayoutError(vlr.EventStatsPath(eventID), "missing stats table")
	}

	var out []playerstat.EventStat
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < eventStatsColumns {
			return
		}

		playerCell := cells.Eq(0)
		name := text(playerCell.Find("div.text-of").First())
		if name == "" {
			return
		}

		clutches := text(cells.Eq(14))

		out = append(out, playerstat.EventStat{
			EventID:       eventID,
			Player:        name,
			Team:          text(playerCell.Find("div.stats-player-country").First()),
			Agents:        agentNames(cells.Eq(1)),
			RoundsPlayed:  normalize.Int(text(cells.Eq(2))),
			Rating:        normalize.Float(text(cells.Eq(3))),
			ACS:           normalize.Float(text(cells.Eq(4))),
			KD:            normalize.Float(text(cells.Eq(5))),
			KAST:          normalize.Percent(text(cells.Eq(6))),
			ADR:           normalize.Float(text(cells.Eq(7))),
			KPR:           normalize.Float(text(cells.Eq(8))),
			APR:           normalize.Float(text(cells.Eq(9))),
			FKPR:          normalize.Float(text(cells.Eq(10))),
			FDPR:          normalize.Float(text(cells.Eq(11))),
			HSPercent:     normalize.Percent(text(cells.Eq(12))),
			ClutchPercent: normalize.Percent(text(cells.Eq(13))),
			ClutchesWonOf: clutches,
			KMax:          normalize.Int(text(cells.Eq(15))),
			Kills:         normalize.Int(text(cells.Eq(16))),
			Deaths:        normalize.Int(text(cells.Eq(17))),
			Assists:       normalize.Int(text(cells.Eq(18))),
			FirstKills:    normalize.Int(text(cells.Eq(19))),
			FirstDeaths:   normalize.Int(text(cells.Eq(20))),
		})
	})

	if len(out) == 0 {
		return nil, vlr.NewLayoutError(vlr.EventStatsPath(eventID), "stats table has no readable rows")
	}
	return out, nil
}
