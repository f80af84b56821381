package agentusage

// TotalMap is the MapName used for the aggregate row that spans every map
// of the event.
const TotalMap = "Total"

// AgentUsage is one cell of the event's agent pick-rate grid: how often an
// agent was picked on a given map, or overall when MapName is TotalMap.
type AgentUsage struct {
	EventID     int64
	MapName     string
	Agent       string
	PickCount   int
	PickPercent float64
}

// MapStat is the per-map summary row of the same grid.
type MapStat struct {
	EventID       int64
	MapName       string
	TimesPlayed   int
	AttackWinPct  float64
	DefenseWinPct float64
}
