package agentusage

import "context"

type Repository interface {
	UpsertAgentUsage(ctx context.Context, usage []AgentUsage) error
	UpsertMapStats(ctx context.Context, stats []MapStat) error
	ListAgentUsage(ctx context.Context, eventID int64) ([]AgentUsage, error)
	ListMapStats(ctx context.Context, eventID int64) ([]MapStat, error)
}
