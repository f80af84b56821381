package performance

// PlayerPerformance is one player's row of a map's performance table:
// multikill rounds, clutch rounds won, and objective plays. MapOrder 0
// aggregates the whole series.
type PlayerPerformance struct {
	MatchID  int64
	MapOrder int
	MapName  string
	Player   string
	Team     string
	Agent    string
	Kills2   int
	Kills3   int
	Kills4   int
	Kills5   int
	Clutch1  int
	Clutch2  int
	Clutch3  int
	Clutch4  int
	Clutch5  int
	Econ     int
	Plants   int
	Defuses  int
}
