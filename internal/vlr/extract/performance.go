package extract

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/eprasetya/vlrscout/internal/domain/performance"
	"github.com/eprasetya/vlrscout/internal/normalize"
	"github.com/eprasetya/vlrscout/internal/vlr"
)

// Performance parses the performance tab of a match page: multikills,
// clutches, and objective plays per player per map. Count cells are empty
// on the site when the value is zero.
func Performance(doc *goquery.Document, matchID int64, matchPath string) ([]performance.PlayerPerformance, error) {
	games := doc.Find("div.vm-stats-game[data-game-id]")
	if games.Length() == 0 {
		return nil, vlr.NewLayoutError(matchPath, "performance tab has no per-map blocks")
	}

	var out []performance.PlayerPerformance
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

		table := game.Find("table.wf-table-inset.mod-adv-stats").First()
		table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			// Player, agent, 2K..5K, 1v1..1v5, ECON, PL, DE.
			if cells.Length() < 14 {
				return
			}

			playerCell := cells.Eq(0)
			name := text(playerCell.Find("div.team div").First())
			team := text(playerCell.Find("div.team-tag").First())
			if name == "" {
				name = text(playerCell)
			}
			if name == "" {
				return
			}

			agent := ""
			if names := agentNames(cells.Eq(1)); len(names) > 0 {
				agent = names[0]
			}

			count := func(i int) int {
				return normalize.Int(text(cells.Eq(i).Find("div.stats-sq").First()))
			}

			out = append(out, performance.PlayerPerformance{
				MatchID:  matchID,
				MapOrder: order,
				MapName:  mapName,
				Player:   name,
				Team:     team,
				Agent:    agent,
				Kills2:   count(2),
				Kills3:   count(3),
				Kills4:   count(4),
				Kills5:   count(5),
				Clutch1:  count(6),
				Clutch2:  count(7),
				Clutch3:  count(8),
				Clutch4:  count(9),
				Clutch5:  count(10),
				Econ:     count(11),
				Plants:   count(12),
				Defuses:  count(13),
			})
		})
	})

	if len(out) == 0 {
		return nil, vlr.NewLayoutError(matchPath, "performance tab has no readable rows")
	}
	return out, nil
}
