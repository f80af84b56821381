package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/eprasetya/vlrscout/internal/domain/event"
	"github.com/eprasetya/vlrscout/internal/vlr"
)

// EventHeader parses the title block of an event page.
func EventHeader(doc *goquery.Document, eventID int64) (event.Event, error) {
	title := collapsed(doc.Find("h1.wf-title").First())
	if title == "" {
		return event.Event{}, vlr.NewLayoutError(vlr.EventPath(eventID), "missing event title")
	}

	ev := event.Event{
		ID:    eventID,
		Title: title,
	}

	doc.Find("div.event-desc-item").Each(func(_ int, item *goquery.Selection) {
		label := strings.ToLower(collapsed(item.Find("div.event-desc-item-label").First()))
		value := collapsed(item.Find("div.event-desc-item-value").First())
		switch {
		case strings.Contains(label, "dates"):
			ev.DatesLabel = value
		case strings.Contains(label, "prize"):
			ev.PrizePool = value
		case strings.Contains(label, "location"), strings.Contains(label, "region"):
			ev.Region = value
		}
	})

	return ev, nil
}
