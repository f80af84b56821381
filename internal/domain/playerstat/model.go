package playerstat

// Side distinguishes the attack/defense splits of a scoreboard row from the
// combined line.
type Side string

const (
	SideBoth    Side = "both"
	SideAttack  Side = "attack"
	SideDefense Side = "defense"
)

// MatchStat is one scoreboard row of a match. MapOrder 0 holds the
// whole-series overview; 1..n are the individual maps.
type MatchStat struct {
	MatchID     int64
	MapOrder    int
	MapName     string
	Player      string
	Team        string
	Agents      []string
	Side        Side
	Rating      float64
	ACS         int
	Kills       int
	Deaths      int
	Assists     int
	KDDiff      int
	KAST        float64
	ADR         int
	HSPercent   float64
	FirstKills  int
	FirstDeaths int
	FKDiff      int
}

// EventStat is one row of an event's aggregated stats leaderboard.
type EventStat struct {
	EventID       int64
	Player        string
	Team          string
	Agents        []string
	RoundsPlayed  int
	Rating        float64
	ACS           float64
	KD            float64
	KAST          float64
	ADR           float64
	KPR           float64
	APR           float64
	FKPR          float64
	FDPR          float64
	HSPercent     float64
	ClutchPercent float64
	ClutchesWonOf string
	KMax          int
	Kills         int
	Deaths        int
	Assists       int
	FirstKills    int
	FirstDeaths   int
}
