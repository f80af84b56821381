// Package extract turns fetched pages into typed rows. Extractors never
// touch the network: they take a parsed document and either return rows or
// a layout error when the markup is not what the site usually serves.
// Individual malformed cells degrade to zero values instead of failing the
// whole page.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/eprasetya/vlrscout/internal/normalize"
)

// OverviewMapName labels the aggregate block that spans a whole series.
const OverviewMapName = "Overall"

func text(sel *goquery.Selection) string {
	return normalize.Text(sel.Text())
}

func collapsed(sel *goquery.Selection) string {
	return normalize.CollapseSpace(sel.Text())
}

// agentNames reads agent icons out of a cell. The site puts the agent name
// in the img title, falling back to alt on older pages.
func agentNames(cell *goquery.Selection) []string {
	var agents []string
	cell.Find("img").Each(func(_ int, img *goquery.Selection) {
		name := strings.TrimSpace(img.AttrOr("title", ""))
		if name == "" {
			name = strings.TrimSpace(img.AttrOr("alt", ""))
		}
		if name != "" {
			agents = append(agents, name)
		}
	})
	return agents
}

// sideValues reads the both/attack/defense split spans of a scoreboard
// cell. When the page has no side spans the cell's own text is the
// combined value.
func sideValues(cell *goquery.Selection) (both, attack, defense string) {
	both = text(cell.Find("span.side.mod-both").First())
	attack = text(cell.Find("span.side.mod-t").First())
	defense = text(cell.Find("span.side.mod-ct").First())
	if both == "" && attack == "" && defense == "" {
		both = text(cell)
	}
	return both, attack, defense
}
