package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/eprasetya/vlrscout/internal/domain/match"
	"github.com/eprasetya/vlrscout/internal/normalize"
	"github.com/eprasetya/vlrscout/internal/vlr"
)

// MatchList parses one page of an event's match listing. A page with the
// listing template but no items returns an empty slice; the caller uses
// that to stop paginating. A page without any listing markup at all is a
// layout error, which on page one means the reference is dead or wrong.
// Items without a parseable match ID are skipped.
func MatchList(doc *goquery.Document, eventID int64) ([]match.Match, error) {
	// Date labels precede the cards holding each day's matches.
	nodes := doc.Find("div.wf-label.mod-large, a.wf-module-item.match-item")
	if nodes.Length() == 0 {
		return nil, vlr.NewLayoutError(vlr.EventMatchesPath(eventID, 1), "page has no match listing structure")
	}

	var out []match.Match
	currentDate := ""
	nodes.Each(func(_ int, sel *goquery.Selection) {
		if sel.Is("div.wf-label.mod-large") {
			currentDate = collapsed(sel)
			return
		}

		path, _ := sel.Attr("href")
		id, ok := vlr.MatchIDFromPath(path)
		if !ok {
			return
		}

		m := match.Match{
			ID:       id,
			EventID:  eventID,
			Path:     strings.TrimSpace(path),
			DateText: currentDate,
			TimeText: text(sel.Find("div.match-item-time").First()),
			Status:   status(sel),
		}

		teams := sel.Find("div.match-item-vs-team")
		if teams.Length() >= 2 {
			m.Team1 = text(teams.Eq(0).Find("div.text-of").First())
			m.Score1 = normalize.Int(text(teams.Eq(0).Find("div.match-item-vs-team-score").First()))
			m.Team2 = text(teams.Eq(1).Find("div.text-of").First())
			m.Score2 = normalize.Int(text(teams.Eq(1).Find("div.match-item-vs-team-score").First()))
		}

		eventCell := sel.Find("div.match-item-event").First()
		m.Week = collapsed(eventCell.Find("div.match-item-event-series").First())
		m.Stage = strings.TrimSpace(strings.TrimPrefix(collapsed(eventCell), m.Week))

		out = append(out, m)
	})

	return out, nil
}

func status(item *goquery.Selection) string {
	raw := strings.ToUpper(text(item.Find("div.ml-status").First()))
	switch raw {
	case "LIVE":
		return "live"
	case "TBD", "UPCOMING":
		return "upcoming"
	case "COMPLETED", "FINAL":
		return "completed"
	case "":
		return "upcoming"
	default:
		return strings.ToLower(raw)
	}
}
