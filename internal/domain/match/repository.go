package match

import "context"

type Repository interface {
	UpsertMatches(ctx context.Context, matches []Match) error
	UpsertMapResults(ctx context.Context, results []MapResult) error
	ListByEvent(ctx context.Context, eventID int64) ([]Match, error)
	ListMapResults(ctx context.Context, matchID int64) ([]MapResult, error)
}
