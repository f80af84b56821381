package economy

import "context"

type Repository interface {
	Upsert(ctx context.Context, rows []TeamEconomy) error
	ListByMatch(ctx context.Context, matchID int64) ([]TeamEconomy, error)
}
