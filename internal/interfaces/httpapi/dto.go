package httpapi

import (
	"time"

	"github.com/eprasetya/vlrscout/internal/domain/agentusage"
	"github.com/eprasetya/vlrscout/internal/domain/economy"
	"github.com/eprasetya/vlrscout/internal/domain/event"
	"github.com/eprasetya/vlrscout/internal/domain/match"
	"github.com/eprasetya/vlrscout/internal/domain/performance"
	"github.com/eprasetya/vlrscout/internal/domain/playerstat"
	"github.com/eprasetya/vlrscout/internal/domain/run"
	"github.com/eprasetya/vlrscout/internal/usecase"
)

type runDTO struct {
	ID          string        `json:"id"`
	EventID     int64         `json:"eventId"`
	Status      string        `json:"status"`
	Total       int           `json:"total"`
	Completed   int           `json:"completed"`
	Failed      int           `json:"failed"`
	CurrentItem string        `json:"currentItem,omitempty"`
	ETASeconds  float64       `json:"etaSeconds,omitempty"`
	Errors      []runErrorDTO `json:"errors,omitempty"`
	StartedAt   time.Time     `json:"startedAt"`
	FinishedAt  *time.Time    `json:"finishedAt,omitempty"`
}

type runErrorDTO struct {
	Item   string `json:"item"`
	Reason string `json:"reason"`
}

func runToDTO(r run.Run) runDTO {
	dto := runDTO{
		ID:          r.ID,
		EventID:     r.EventID,
		Status:      string(r.Status),
		Total:       r.Total,
		Completed:   r.Completed,
		Failed:      r.Failed,
		CurrentItem: r.CurrentItem,
		ETASeconds:  r.ETASeconds,
		StartedAt:   r.StartedAt,
	}
	if !r.FinishedAt.IsZero() {
		finished := r.FinishedAt
		dto.FinishedAt = &finished
	}
	for _, e := range r.Errors {
		dto.Errors = append(dto.Errors, runErrorDTO{Item: e.Item, Reason: e.Reason})
	}
	return dto
}

type eventDTO struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug,omitempty"`
	Region     string    `json:"region,omitempty"`
	PrizePool  string    `json:"prizePool,omitempty"`
	DatesLabel string    `json:"dates,omitempty"`
	Status     string    `json:"status,omitempty"`
	MatchCount int       `json:"matchCount"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func eventToDTO(ev event.Event) eventDTO {
	return eventDTO{
		ID:         ev.ID,
		Title:      ev.Title,
		Slug:       ev.Slug,
		Region:     ev.Region,
		PrizePool:  ev.PrizePool,
		DatesLabel: ev.DatesLabel,
		Status:     ev.Status,
		MatchCount: ev.MatchCount,
		UpdatedAt:  ev.UpdatedAt,
	}
}

type matchDTO struct {
	ID       int64  `json:"id"`
	EventID  int64  `json:"eventId"`
	Stage    string `json:"stage,omitempty"`
	Week     string `json:"week,omitempty"`
	DateText string `json:"date,omitempty"`
	TimeText string `json:"time,omitempty"`
	Team1    string `json:"team1"`
	Team2    string `json:"team2"`
	Score1   int    `json:"score1"`
	Score2   int    `json:"score2"`
	Status   string `json:"status"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:       m.ID,
		EventID:  m.EventID,
		Stage:    m.Stage,
		Week:     m.Week,
		DateText: m.DateText,
		TimeText: m.TimeText,
		Team1:    m.Team1,
		Team2:    m.Team2,
		Score1:   m.Score1,
		Score2:   m.Score2,
		Status:   m.Status,
	}
}

type mapResultDTO struct {
	MatchID  int64  `json:"matchId"`
	MapOrder int    `json:"mapOrder"`
	MapName  string `json:"mapName"`
	Team1    string `json:"team1"`
	Team2    string `json:"team2"`
	Score1   int    `json:"score1"`
	Score2   int    `json:"score2"`
	Duration string `json:"duration,omitempty"`
	PickedBy string `json:"pickedBy,omitempty"`
}

type matchStatDTO struct {
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

func matchStatToDTO(s playerstat.MatchStat) matchStatDTO {
	return matchStatDTO{
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

type eventStatDTO struct {
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

func eventStatToDTO(s playerstat.EventStat) eventStatDTO {
	return eventStatDTO{
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

type agentUsageDTO struct {
	MapName     string  `json:"mapName"`
	Agent       string  `json:"agent"`
	PickCount   int     `json:"pickCount"`
	PickPercent float64 `json:"pickPercent"`
}

type mapStatDTO struct {
	MapName       string  `json:"mapName"`
	TimesPlayed   int     `json:"timesPlayed"`
	AttackWinPct  float64 `json:"attackWinPct"`
	DefenseWinPct float64 `json:"defenseWinPct"`
}

type economyDTO struct {
	MapOrder   int       `json:"mapOrder"`
	MapName    string    `json:"mapName,omitempty"`
	Team       string    `json:"team"`
	PistolsWon int       `json:"pistolsWon"`
	Eco        bucketDTO `json:"eco"`
	SemiEco    bucketDTO `json:"semiEco"`
	SemiBuy    bucketDTO `json:"semiBuy"`
	FullBuy    bucketDTO `json:"fullBuy"`
}

type bucketDTO struct {
	Played int `json:"played"`
	Won    int `json:"won"`
}

func economyToDTO(e economy.TeamEconomy) economyDTO {
	return economyDTO{
		MapOrder:   e.MapOrder,
		MapName:    e.MapName,
		Team:       e.Team,
		PistolsWon: e.PistolsWon,
		Eco:        bucketDTO(e.Eco),
		SemiEco:    bucketDTO(e.SemiEco),
		SemiBuy:    bucketDTO(e.SemiBuy),
		FullBuy:    bucketDTO(e.FullBuy),
	}
}

type performanceDTO struct {
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

func performanceToDTO(p performance.PlayerPerformance) performanceDTO {
	return performanceDTO{
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

type eventArchiveDTO struct {
	Event      eventDTO        `json:"event"`
	Matches    []matchDTO      `json:"matches"`
	EventStats []eventStatDTO  `json:"eventStats"`
	AgentUsage []agentUsageDTO `json:"agentUsage"`
	MapStats   []mapStatDTO    `json:"mapStats"`
}

func eventArchiveToDTO(arch usecase.EventArchive) eventArchiveDTO {
	dto := eventArchiveDTO{
		Event:      eventToDTO(arch.Event),
		Matches:    make([]matchDTO, 0, len(arch.Matches)),
		EventStats: make([]eventStatDTO, 0, len(arch.EventStats)),
		AgentUsage: make([]agentUsageDTO, 0, len(arch.AgentUsage)),
		MapStats:   make([]mapStatDTO, 0, len(arch.MapStats)),
	}
	for _, m := range arch.Matches {
		dto.Matches = append(dto.Matches, matchToDTO(m))
	}
	for _, s := range arch.EventStats {
		dto.EventStats = append(dto.EventStats, eventStatToDTO(s))
	}
	for _, u := range arch.AgentUsage {
		dto.AgentUsage = append(dto.AgentUsage, agentUsageToDTO(u))
	}
	for _, s := range arch.MapStats {
		dto.MapStats = append(dto.MapStats, mapStatDTO{
			MapName:       s.MapName,
			TimesPlayed:   s.TimesPlayed,
			AttackWinPct:  s.AttackWinPct,
			DefenseWinPct: s.DefenseWinPct,
		})
	}
	return dto
}

func agentUsageToDTO(u agentusage.AgentUsage) agentUsageDTO {
	return agentUsageDTO{
		MapName:     u.MapName,
		Agent:       u.Agent,
		PickCount:   u.PickCount,
		PickPercent: u.PickPercent,
	}
}

type matchArchiveDTO struct {
	Match        matchDTO         `json:"match"`
	MapResults   []mapResultDTO   `json:"mapResults"`
	Stats        []matchStatDTO   `json:"stats"`
	Economy      []economyDTO     `json:"economy"`
	Performances []performanceDTO `json:"performances"`
}

func matchArchiveToDTO(arch usecase.MatchArchive) matchArchiveDTO {
	dto := matchArchiveDTO{
		Match:        matchToDTO(arch.Match),
		MapResults:   make([]mapResultDTO, 0, len(arch.MapResults)),
		Stats:        make([]matchStatDTO, 0, len(arch.Stats)),
		Economy:      make([]economyDTO, 0, len(arch.Economy)),
		Performances: make([]performanceDTO, 0, len(arch.Performances)),
	}
	for _, r := range arch.MapResults {
		dto.MapResults = append(dto.MapResults, mapResultDTO{
			MatchID:  r.MatchID,
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
	for _, s := range arch.Stats {
		dto.Stats = append(dto.Stats, matchStatToDTO(s))
	}
	for _, e := range arch.Economy {
		dto.Economy = append(dto.Economy, economyToDTO(e))
	}
	for _, p := range arch.Performances {
		dto.Performances = append(dto.Performances, performanceToDTO(p))
	}
	return dto
}
