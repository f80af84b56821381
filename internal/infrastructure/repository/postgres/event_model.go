package postgres

import (
	"time"

	"github.com/eprasetya/vlrscout/internal/domain/event"
)

type eventTableModel struct {
	ID         int64     `db:"id"`
	Title      string    `db:"title"`
	Slug       string    `db:"slug"`
	Region     string    `db:"region"`
	PrizePool  string    `db:"prize_pool"`
	DatesLabel string    `db:"dates_label"`
	Status     string    `db:"status"`
	MatchCount int       `db:"match_count"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func eventToRow(ev event.Event, now time.Time) eventTableModel {
	return eventTableModel{
		ID:         ev.ID,
		Title:      ev.Title,
		Slug:       ev.Slug,
		Region:     ev.Region,
		PrizePool:  ev.PrizePool,
		DatesLabel: ev.DatesLabel,
		Status:     ev.Status,
		MatchCount: ev.MatchCount,
		UpdatedAt:  now,
	}
}

func rowToEvent(row eventTableModel) event.Event {
	return event.Event{
		ID:         row.ID,
		Title:      row.Title,
		Slug:       row.Slug,
		Region:     row.Region,
		PrizePool:  row.PrizePool,
		DatesLabel: row.DatesLabel,
		Status:     row.Status,
		MatchCount: row.MatchCount,
		UpdatedAt:  row.UpdatedAt,
	}
}
