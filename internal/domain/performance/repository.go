package performance

import "context"

type Repository interface {
	Upsert(ctx context.Context, rows []PlayerPerformance) error
	ListByMatch(ctx context.Context, matchID int64) ([]PlayerPerformance, error)
}
