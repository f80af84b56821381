package export

import (
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/eprasetya/vlrscout/internal/domain/economy"
	"github.com/eprasetya/vlrscout/internal/domain/event"
	"github.com/eprasetya/vlrscout/internal/domain/performance"
	"github.com/eprasetya/vlrscout/internal/domain/playerstat"
)

// archiveTree is the single-document view of a bundle. Per-match records
// hang off their match; event-level aggregates sit beside the match list.
type archiveTree struct {
	Event      eventJSON        `json:"event"`
	Matches    []matchTree      `json:"matches"`
	EventStats []eventStatJSON  `json:"eventPlayerStats"`
	AgentUsage []agentUsageJSON `json:"agentUsage"`
	MapStats   []mapStatJSON    `json:"mapStats"`
}

type matchTree struct {
	Match        matchJSON         `json:"match"`
	MapResults   []mapResultJSON   `json:"mapResults"`
	PlayerStats  []matchStatJSON   `json:"playerStats"`
	Economies    []economyJSON     `json:"teamEconomy"`
	Performances []performanceJSON `json:"playerPerformance"`
}

type eventJSON struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug,omitempty"`
	Region     string    `json:"region,omitempty"`
	PrizePool  string    `json:"prizePool,omitempty"`
	Dates      string    `json:"dates,omitempty"`
	Status     string    `json:"status,omitempty"`
	MatchCount int       `json:"matchCount"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func eventToJSON(ev event.Event) eventJSON {
	return eventJSON{
		ID:         ev.ID,
		Title:      ev.Title,
		Slug:       ev.Slug,
		Region:     ev.Region,
		PrizePool:  ev.PrizePool,
		Dates:      ev.DatesLabel,
		Status:     ev.Status,
		MatchCount: ev.MatchCount,
		UpdatedAt:  ev.UpdatedAt,
	}
}

type matchJSON struct {
	ID     int64  `json:"id"`
	Stage  string `json:"stage,omitempty"`
	Week   string `json:"week,omitempty"`
	Date   string `json:"date,omitempty"`
	Time   string `json:"time,omitempty"`
	Team1  string `json:"team1"`
	Team2  string `json:"team2"`
	Score1 int    `json:"score1"`
	Score2 int    `json:"score2"`
	Status string `json:"status"`
}

type mapResultJSON struct {
	MapOrder int    `json:"mapOrder"`
	MapName  string `json:"mapName"`
	Team1    string `json:"team1"`
	Team2    string `json:"team2"`
	Score1   int    `json:"score1"`
	Score2   int    `json:"score2"`
	Duration string `json:"duration,omitempty"`
	PickedBy string `json:"pickedBy,omitempty"`
}

type matchStatJSON struct {
	MapOrder    int      `json:"mapOrder"`
	MapName     string   `json:"mapName"`
	Player      string   `json:"player"`
	Team        string   `json:"team"`
	Agents      []string `json:"agents,omitempty"`
	Side        string   `json:"side"`
	Rating      float64  `json:"rating"`
	ACS         int      `json:"acs"`
	Kills       int      `json:"kills"`
	Deaths      int      `json:"deaths"`
	Assists     int      `json:"assists"`
	KDDiff      int      `json:"kdDiff"`
	KAST        float64  `json:"kast"`
	ADR         int      `json:"adr"`
	HSPercent   float64  `json:"hsPercent"`
	FirstKills  int      `json:"firstKills"`
	FirstDeaths int      `json:"firstDeaths"`
	FKDiff      int      `json:"fkDiff"`
}

func matchStatToJSON(s playerstat.MatchStat) matchStatJSON {
	return matchStatJSON{
		MapOrder:    s.MapOrder,
		MapName:     s.MapName,
		Player:      s.Player,
		Team:        s.Team,
		Agents:      s.Agents,
		Side:        string(s.Side),
		Rating:      s.Rating,
		ACS:         s.ACS,
		Kills:       s.Kills,
		Deaths:      s.Deaths,
		Assists:     s.Assists,
		KDDiff:      s.KDDiff,
		KAST:        s.KAST,
		ADR:         s.ADR,
		HSPercent:   s.HSPercent,
		FirstKills:  s.FirstKills,
		FirstDeaths: s.FirstDeaths,
		FKDiff:      s.FKDiff,
	}
}

type eventStatJSON struct {
	Player        string   `json:"player"`
	Team          string   `json:"team"`
	Agents        []string `json:"agents,omitempty"`
	RoundsPlayed  int      `json:"roundsPlayed"`
	Rating        float64  `json:"rating"`
	ACS           float64  `json:"acs"`
	KD            float64  `json:"kd"`
	KAST          float64  `json:"kast"`
	ADR           float64  `json:"adr"`
	KPR           float64  `json:"kpr"`
	APR           float64  `json:"apr"`
	FKPR          float64  `json:"fkpr"`
	FDPR          float64  `json:"fdpr"`
	HSPercent     float64  `json:"hsPercent"`
	ClutchPercent float64  `json:"clutchPercent"`
	ClutchesWonOf string   `json:"clutchesWonOf,omitempty"`
	KMax          int      `json:"kMax"`
	Kills         int      `json:"kills"`
	Deaths        int      `json:"deaths"`
	Assists       int      `json:"assists"`
	FirstKills    int      `json:"firstKills"`
	FirstDeaths   int      `json:"firstDeaths"`
}

func eventStatToJSON(s playerstat.EventStat) eventStatJSON {
	return eventStatJSON{
		Player:        s.Player,
		Team:          s.Team,
		Agents:        s.Agents,
		RoundsPlayed:  s.RoundsPlayed,
		Rating:        s.Rating,
		ACS:           s.ACS,
		KD:            s.KD,
		KAST:          s.KAST,
		ADR:           s.ADR,
		KPR:           s.KPR,
		APR:           s.APR,
		FKPR:          s.FKPR,
		FDPR:          s.FDPR,
		HSPercent:     s.HSPercent,
		ClutchPercent: s.ClutchPercent,
		ClutchesWonOf: s.ClutchesWonOf,
		KMax:          s.KMax,
		Kills:         s.Kills,
		Deaths:        s.Deaths,
		Assists:       s.Assists,
		FirstKills:    s.FirstKills,
		FirstDeaths:   s.FirstDeaths,
	}
}

type agentUsageJSON struct {
	MapName     string  `json:"mapName"`
	Agent       string  `json:"agent"`
	PickCount   int     `json:"pickCount"`
	PickPercent float64 `json:"pickPercent"`
}

type mapStatJSON struct {
	MapName       string  `json:"mapName"`
	TimesPlayed   int     `json:"timesPlayed"`
	AttackWinPct  float64 `json:"attackWinPct"`
	DefenseWinPct float64 `json:"defenseWinPct"`
}

type economyJSON struct {
	MapOrder   int        `json:"mapOrder"`
	MapName    string     `json:"mapName,omitempty"`
	Team       string     `json:"team"`
	PistolsWon int        `json:"pistolsWon"`
	Eco        bucketJSON `json:"eco"`
	SemiEco    bucketJSON `json:"semiEco"`
	SemiBuy    bucketJSON `json:"semiBuy"`
	FullBuy    bucketJSON `json:"fullBuy"`
}

type bucketJSON struct {
	Played int `json:"played"`
	Won    int `json:"won"`
}

func economyToJSON(e economy.TeamEconomy) economyJSON {
	return economyJSON{
		MapOrder:   e.MapOrder,
		MapName:    e.MapName,
		Team:       e.Team,
		PistolsWon: e.PistolsWon,
		Eco:        bucketJSON(e.Eco),
		SemiEco:    bucketJSON(e.SemiEco),
		SemiBuy:    bucketJSON(e.SemiBuy),
		FullBuy:    bucketJSON(e.FullBuy),
	}
}

type performanceJSON struct {
	MapOrder int    `json:"mapOrder"`
	MapName  string `json:"mapName,omitempty"`
	Player   string `json:"player"`
	Team     string `json:"team"`
	Agent    string `json:"agent,omitempty"`
	Kills2   int    `json:"2k"`
	Kills3   int    `json:"3k"`
	Kills4   int    `json:"4k"`
	Kills5   int    `json:"5k"`
	Clutch1  int    `json:"1v1"`
	Clutch2  int    `json:"1v2"`
	Clutch3  int    `json:"1v3"`
	Clutch4  int    `json:"1v4"`
	Clutch5  int    `json:"1v5"`
	Econ     int    `json:"econ"`
	Plants   int    `json:"plants"`
	Defuses  int    `json:"defuses"`
}

func performanceToJSON(p performance.PlayerPerformance) performanceJSON {
	return performanceJSON{
		MapOrder: p.MapOrder,
		MapName:  p.MapName,
		Player:   p.Player,
		Team:     p.Team,
		Agent:    p.Agent,
		Kills2:   p.Kills2,
		Kills3:   p.Kills3,
		Kills4:   p.Kills4,
		Kills5:   p.Kills5,
		Clutch1:  p.Clutch1,
		Clutch2:  p.Clutch2,
		Clutch3:  p.Clutch3,
		Clutch4:  p.Clutch4,
		Clutch5:  p.Clutch5,
		Econ:     p.Econ,
		Plants:   p.Plants,
		Defuses:  p.Defuses,
	}
}

func buildArchiveTree(b Bundle) archiveTree {
	byMatch := make(map[int64]*matchTree, len(b.Matches))
	nodes := make([]matchTree, len(b.Matches))
	for i, m := range b.Matches {
		nodes[i] = matchTree{Match: matchJSON{
			ID:     m.ID,
			Stage:  m.Stage,
			Week:   m.Week,
			Date:   m.DateText,
			Time:   m.TimeText,
			Team1:  m.Team1,
			Team2:  m.Team2,
			Score1: m.Score1,
			Score2: m.Score2,
			Status: m.Status,
		}}
		byMatch[m.ID] = &nodes[i]
	}

	for _, r := range b.MapResults {
		if n, ok := byMatch[r.MatchID]; ok {
			n.MapResults = append(n.MapResults, mapResultJSON{
				MapOrder: r.MapOrder,
				MapName:  r.MapName,
				Team1:    r.Team1,
				Team2:    r.Team2,
				Score1:   r.Score1,
				Score2:   r.Score2,
				Duration: r.Duration,
				PickedBy: r.PickedBy,
			})
		}
	}
	for _, s := range b.MatchStats {
		if n, ok := byMatch[s.MatchID]; ok {
			n.PlayerStats = append(n.PlayerStats, matchStatToJSON(s))
		}
	}
	for _, e := range b.Economies {
		if n, ok := byMatch[e.MatchID]; ok {
			n.Economies = append(n.Economies, economyToJSON(e))
		}
	}
	for _, p := range b.Performances {
		if n, ok := byMatch[p.MatchID]; ok {
			n.Performances = append(n.Performances, performanceToJSON(p))
		}
	}

	tree := archiveTree{
		Event:   eventToJSON(b.Event),
		Matches: nodes,
	}
	for _, s := range b.EventStats {
		tree.EventStats = append(tree.EventStats, eventStatToJSON(s))
	}
	for _, u := range b.AgentUsage {
		tree.AgentUsage = append(tree.AgentUsage, agentUsageJSON{
			MapName:     u.MapName,
			Agent:       u.Agent,
			PickCount:   u.PickCount,
			PickPercent: u.PickPercent,
		})
	}
	for _, s := range b.MapStats {
		tree.MapStats = append(tree.MapStats, mapStatJSON{
			MapName:       s.MapName,
			TimesPlayed:   s.TimesPlayed,
			AttackWinPct:  s.AttackWinPct,
			DefenseWinPct: s.DefenseWinPct,
		})
	}
	return tree
}

func renderArchiveJSON(b Bundle, buf *bytebufferpool.ByteBuffer) error {
	return sonic.ConfigDefault.NewEncoder(buf).Encode(buildArchiveTree(b))
}
