package collector

import (
	"time"

	"github.com/eprasetya/vlrscout/internal/domain/agentusage"
	"github.com/eprasetya/vlrscout/internal/domain/economy"
	"github.com/eprasetya/vlrscout/internal/domain/event"
	"github.com/eprasetya/vlrscout/internal/domain/match"
	"github.com/eprasetya/vlrscout/internal/domain/performance"
	"github.com/eprasetya/vlrscout/internal/domain/playerstat"
)

// ItemError is one work item that failed. The run keeps going; these are
// reported at the end instead of aborting.
type ItemError struct {
	Item string
	Err  error
}

// Result is everything one run over an event produced. Every planned work
// item lands in exactly one of Succeeded or Errors, so
// len(Succeeded)+len(Errors) always equals the planned total unless the
// run was cancelled early.
type Result struct {
	Event event.Event

	Matches      []match.Match
	MapResults   []match.MapResult
	MatchStats   []playerstat.MatchStat
	EventStats   []playerstat.EventStat
	AgentUsage   []agentusage.AgentUsage
	MapStats     []agentusage.MapStat
	Economies    []economy.TeamEconomy
	Performances []performance.PlayerPerformance

	Succeeded []string
	Errors    []ItemError
	Canceled  bool

	StartedAt  time.Time
	FinishedAt time.Time
}
