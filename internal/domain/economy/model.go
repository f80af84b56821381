package economy

// Bucket is one buy-type cell of the economy table, shown on the site as
// "12 (5)": rounds of that type played, and of those, rounds won.
type Bucket struct {
	Played int
	Won    int
}

// TeamEconomy is one team's row of a map's economy breakdown. MapOrder 0
// aggregates the whole series.
type TeamEconomy struct {
	MatchID    int64
	MapOrder   int
	MapName    string
	Team       string
	PistolsWon int
	Eco        Bucket
	SemiEco    Bucket
	SemiBuy    Bucket
	FullBuy    Bucket
}
