package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/eprasetya/vlrscout/internal/domain/agentusage"
	"github.com/eprasetya/vlrscout/internal/normalize"
	"github.com/eprasetya/vlrscout/internal/vlr"
)

// Fixed columns ahead of the per-agent cells: map, times played, attack
// win %, defense win %.
const agentGridFixedColumns = 4

var pickCellRegex = regexp.MustCompile(`(\d+(?:\.\d+)?)%(?:\s*\((\d+)\))?`)

// AgentUsage parses the event's agent pick-rate grid into per-map usage
// cells and per-map summary rows. The row without a map name aggregates the
// whole event and is stored under agentusage.TotalMap.
func AgentUsage(doc *goquery.Document, eventID int64) ([]agentusage.AgentUsage, []agentusage.MapStat, error) {
	table := doc.Find("table.wf-table.mod-pr-global").First()
	if table.Length() == 0 {
		return nil, nil, vlr.NewLayoutError(vlr.EventAgentsPath(eventID), "missing agent grid")
	}

	var agents []string
	table.Find("thead th img").Each(func(_ int, img *goquery.Selection) {
		name := strings.TrimSpace(img.AttrOr("title", ""))
		if name == "" {
			name = strings.TrimSpace(img.AttrOr("alt", ""))
		}
		agents = append(agents, name)
	})
	if len(agents) == 0 {
		return nil, nil, vlr.NewLayoutError(vlr.EventAgentsPath(eventID), "agent grid header has no agents")
	}

	var usage []agentusage.AgentUsage
	var maps []agentusage.MapStat

	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < agentGridFixedColumns+len(agents) {
			return
		}

		mapName := text(cells.Eq(0))
		if mapName == "" {
			mapName = agentusage.TotalMap
		}

		maps = append(maps, agentusage.MapStat{
			EventID:       eventID,
			MapName:       mapName,
			TimesPlayed:   normalize.Int(text(cells.Eq(1))),
			AttackWinPct:  normalize.Percent(text(cells.Eq(2))),
			DefenseWinPct: normalize.Percent(text(cells.Eq(3))),
		})

		for i, agent := range agents {
			if agent == "" {
				continue
			}
			pct, count := parsePickCell(text(cells.Eq(agentGridFixedColumns + i)))
			usage = append(usage, agentusage.AgentUsage{
				EventID:     eventID,
				MapName:     mapName,
				Agent:       agent,
				PickCount:   count,
				PickPercent: pct,
			})
		}
	})

	if len(maps) == 0 {
		return nil, nil, vlr.NewLayoutError(vlr.EventAgentsPath(eventID), "agent grid has no readable rows")
	}
	return usage, maps, nil
}

func parsePickCell(raw string) (float64, int) {
	m := pickCellRegex.FindStringSubmatch(raw)
	if m == nil {
		return 0, 0
	}
	return normalize.Percent(m[1]), normalize.Int(m[2])
}
