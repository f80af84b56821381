package run

import "context"

type Repository interface {
	Save(ctx context.Context, r Run) error
	GetByID(ctx context.Context, id string) (Run, error)
	List(ctx context.Context, limit int) ([]Run, error)
}
