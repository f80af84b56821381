package event

import "context"

type Repository interface {
	Upsert(ctx context.Context, ev Event) error
	GetByID(ctx context.Context, id int64) (Event, error)
	List(ctx context.Context, filter Filter) ([]Event, error)
}
