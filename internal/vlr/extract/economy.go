package extract

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/eprasetya/vlrscout/internal/domain/economy"
	"github.com/eprasetya/vlrscout/internal/normalize"
	"github.com/eprasetya/vlrscout/internal/vlr"
)

var bucketRegex = regexp.MustCompile(`(\d+)\s*\((\d+)\)`)

// Economy parses the economy tab of a match page. Each per-map block holds
// one table with a row per team; buy-type cells read "played (won)".
func Economy(doc *goquery.Document, matchID int64, matchPath string) ([]economy.TeamEconomy, error) {
	games := doc.Find("div.vm-stats-game[data-game-id]")
	if games.Length() == 0 {
		return nil, vlr.NewLayoutError(matchPath, "economy tab has no per-map blocks")
	}

	var out []economy.TeamEconomy
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
			if name := gameMapName(game); name != "" {
				mapName = name
			}
		}

		table := game.Find("table.wf-table-inset.mod-econ").First()
		table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			if cells.Length() < 6 {
				return
			}
			team := text(cells.Eq(0).Find("div.team").First())
			if team == "" {
				team = text(cells.Eq(0))
			}
			if team == "" {
				return
			}

			out = append(out, economy.TeamEconomy{
				MatchID:    matchID,
				MapOrder:   order,
				MapName:    mapName,
				Team:       team,
				PistolsWon: normalize.Int(text(cells.Eq(1))),
				Eco:        parseBucket(text(cells.Eq(2))),
				SemiEco:    parseBucket(text(cells.Eq(3))),
				SemiBuy:    parseBucket(text(cells.Eq(4))),
				FullBuy:    parseBucket(text(cells.Eq(5))),
			})
		})
	})

	if len(out) == 0 {
		return nil, vlr.NewLayoutError(matchPath, "economy tab has no readable rows")
	}
	return out, nil
}

func parseBucket(raw string) economy.Bucket {
	m := bucketRegex.FindStringSubmatch(raw)
	if m == nil {
		return economy.Bucket{Played: normalize.Int(raw)}
	}
	return economy.Bucket{
		Played: normalize.Int(m[1]),
		Won:    normalize.Int(m[2]),
	}
}
