package match

// Match is one series between two teams inside an event. ID is the site's
// numeric match ID taken from the match URL.
type Match struct {
	ID       int64
	EventID  int64
	Path     string
	Stage    string
	Week     string
	DateText string
	TimeText string
	Team1    string
	Team2    string
	Score1   int
	Score2   int
	Status   string
}

// MapResult is the per-map scoreline of a completed series. MapOrder is the
// 1-based position of the map within the series.
type MapResult struct {
	MatchID  int64
	MapOrder int
	MapName  string
	Team1    string
	Team2    string
	Score1   int
	Score2   int
	Duration string
	PickedBy string
}
