package playerstat

import "context"

type Repository interface {
	UpsertMatchStats(ctx context.Context, stats []MatchStat) error
	UpsertEventStats(ctx context.Context, stats []EventStat) error
	ListMatchStats(ctx context.Context, matchID int64) ([]MatchStat, error)
	ListEventStats(ctx context.Context, eventID int64) ([]EventStat, error)
}
