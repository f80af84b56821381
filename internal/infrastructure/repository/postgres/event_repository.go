package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/eprasetya/vlrscout/internal/domain/event"
	qb "github.com/eprasetya/vlrscout/internal/platform/querybuilder"
	"github.com/eprasetya/vlrscout/internal/usecase"
)

const eventUpsertSuffix = `ON CONFLICT (id) DO UPDATE SET
	title = EXCLUDED.title,
	slug = EXCLUDED.slug,
	region = EXCLUDED.region,
	prize_pool = EXCLUDED.prize_pool,
	dates_label = EXCLUDED.dates_label,
	status = EXCLUDED.status,
	match_count = EXCLUDED.match_count,
	updated_at = EXCLUDED.updated_at`

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Upsert(ctx context.Context, ev event.Event) error {
	query, args, err := qb.InsertModel("events", eventToRow(ev, time.Now().UTC()), eventUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert event query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert event %d: %w", ev.ID, err)
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (event.Event, error) {
	query, args, err := qb.Select("*").From("events").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return event.Event{}, fmt.Errorf("build get event query: %w", err)
	}

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.Event{}, usecase.ErrNotFound
		}
		return event.Event{}, fmt.Errorf("get event %d: %w", id, err)
	}
	return rowToEvent(row), nil
}

func (r *EventRepository) List(ctx context.Context, filter event.Filter) ([]event.Event, error) {
	builder := qb.Select("*").From("events").
		OrderBy("updated_at DESC", "id DESC")
	if filter.Region != "" {
		builder = builder.Where(qb.Eq("region", filter.Region))
	}
	if filter.Status != "" {
		builder = builder.Where(qb.Eq("status", filter.Status))
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list events query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToEvent(row))
	}
	return out, nil
}
