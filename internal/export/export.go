// Package export renders an event archive as a zip of CSV files plus a
// JSON manifest, suitable for spreadsheets and downstream tooling.
package export

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	sonic "github.com/bytedance/sonic"
	"github.com/panjf2000/ants/v2"
	"github.com/valyala/bytebufferpool"

	"github.com/eprasetya/vlrscout/internal/domain/agentusage"
	"github.com/eprasetya/vlrscout/internal/domain/economy"
	"github.com/eprasetya/vlrscout/internal/domain/event"
	"github.com/eprasetya/vlrscout/internal/domain/match"
	"github.com/eprasetya/vlrscout/internal/domain/performance"
	"github.com/eprasetya/vlrscout/internal/domain/playerstat"
	"github.com/eprasetya/vlrscout/internal/platform/logging"
)

// Bundle is everything stored for one event, flattened for export.
type Bundle struct {
	Event        event.Event
	Matches      []match.Match
	MapResults   []match.MapResult
	MatchStats   []playerstat.MatchStat
	EventStats   []playerstat.EventStat
	AgentUsage   []agentusage.AgentUsage
	MapStats     []agentusage.MapStat
	Economies    []economy.TeamEconomy
	Performances []performance.PlayerPerformance
}

const defaultWorkers = 4

// Exporter writes zip archives. Sections render concurrently; the zip
// stream itself is written in a fixed order so output is deterministic.
type Exporter struct {
	workers int
	logger  *logging.Logger
}

func NewExporter(logger *logging.Logger) *Exporter {
	if logger == nil {
		logger = logging.Default()
	}
	return &Exporter{workers: defaultWorkers, logger: logger}
}

type section struct {
	name   string
	render func(b Bundle, buf *bytebufferpool.ByteBuffer) error
}

func sections() []section {
	return []section{
		{name: "event.json", render: renderEventJSON},
		{name: "archive.json", render: renderArchiveJSON},
		{name: "matches.csv", render: renderMatches},
		{name: "map_results.csv", render: renderMapResults},
		{name: "match_player_stats.csv", render: renderMatchStats},
		{name: "event_player_stats.csv", render: renderEventStats},
		{name: "agent_usage.csv", render: renderAgentUsage},
		{name: "map_stats.csv", render: renderMapStats},
		{name: "team_economy.csv", render: renderEconomies},
		{name: "player_performance.csv", render: renderPerformances},
	}
}

// WriteZip renders b into w. Rendering fans out over a worker pool; any
// section error aborts the whole export.
func (e *Exporter) WriteZip(ctx context.Context, b Bundle, w io.Writer) error {
	secs := sections()

	pool, err := ants.NewPool(e.workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	buffers := make([]*bytebufferpool.ByteBuffer, len(secs))
	errs := make([]error, len(secs))
	defer func() {
		for _, buf := range buffers {
			if buf != nil {
				bytebufferpool.Put(buf)
			}
		}
	}()

	var workers sync.WaitGroup
	for i, sec := range secs {
		i, sec := i, sec
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			buf := bytebufferpool.Get()
			buffers[i] = buf
			errs[i] = sec.render(b, buf)
		}); err != nil {
			workers.Done()
			return fmt.Errorf("submit export section: %w", err)
		}
	}
	workers.Wait()

	for i, sec := range secs {
		if errs[i] != nil {
			return fmt.Errorf("render %s: %w", sec.name, errs[i])
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	for i, sec := range secs {
		f, err := zw.Create(sec.name)
		if err != nil {
			return fmt.Errorf("create %s: %w", sec.name, err)
		}
		if _, err := f.Write(buffers[i].Bytes()); err != nil {
			return fmt.Errorf("write %s: %w", sec.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("close zip: %w", err)
	}

	e.logger.InfoContext(ctx, "event archive exported",
		"event_id", b.Event.ID,
		"files", len(secs))
	return nil
}

// FileName is the suggested download name for an event's export.
func FileName(eventID int64) string {
	return fmt.Sprintf("event_%d_export.zip", eventID)
}

func renderEventJSON(b Bundle, buf *bytebufferpool.ByteBuffer) error {
	manifest := struct {
		Event        eventJSON `json:"event"`
		Matches      int       `json:"matches"`
		MapResults   int       `json:"mapResults"`
		MatchStats   int       `json:"matchPlayerStats"`
		EventStats   int       `json:"eventPlayerStats"`
		AgentUsage   int       `json:"agentUsage"`
		MapStats     int       `json:"mapStats"`
		Economies    int       `json:"teamEconomy"`
		Performances int       `json:"playerPerformance"`
	}{
		Event:        eventToJSON(b.Event),
		Matches:      len(b.Matches),
		MapResults:   len(b.MapResults),
		MatchStats:   len(b.MatchStats),
		EventStats:   len(b.EventStats),
		AgentUsage:   len(b.AgentUsage),
		MapStats:     len(b.MapStats),
		Economies:    len(b.Economies),
		Performances: len(b.Performances),
	}
	return sonic.ConfigDefault.NewEncoder(buf).Encode(manifest)
}

func renderMatches(b Bundle, buf *bytebufferpool.ByteBuffer) error {
	rows := make([][]string, 0, len(b.Matches))
	for _, m := range b.Matches {
		rows = append(rows, []string{
			formatInt64(m.ID), formatInt64(m.EventID), m.Stage, m.Week,
			m.DateText, m.TimeText, m.Team1, m.Team2,
			strconv.Itoa(m.Score1), strconv.Itoa(m.Score2), m.Status,
		})
	}
	return writeCSV(buf, []string{
		"match_id", "event_id", "stage", "week",
		"date", "time", "team1", "team2",
		"score1", "score2", "status",
	}, rows)
}

func renderMapResults(b Bundle, buf *bytebufferpool.ByteBuffer) error {
	rows := make([][]string, 0, len(b.MapResults))
	for _, r := range b.MapResults {
		rows = append(rows, []string{
			formatInt64(r.MatchID), strconv.Itoa(r.MapOrder), r.MapName,
			r.Team1, r.Team2, strconv.Itoa(r.Score1), strconv.Itoa(r.Score2),
			r.Duration, r.PickedBy,
		})
	}
	return writeCSV(buf, []string{
		"match_id", "map_order", "map_name",
		"team1", "team2", "score1", "score2",
		"duration", "picked_by",
	}, rows)
}

func renderMatchStats(b Bundle, buf *bytebufferpool.ByteBuffer) error {
	rows := make([][]string, 0, len(b.MatchStats))
	for _, s := range b.MatchStats {
		rows = append(rows, []string{
			formatInt64(s.MatchID), strconv.Itoa(s.MapOrder), s.MapName,
			s.Player, s.Team, joinAgents(s.Agents), string(s.Side),
			formatFloat(s.Rating), strconv.Itoa(s.ACS),
			strconv.Itoa(s.Kills), strconv.Itoa(s.Deaths), strconv.Itoa(s.Assists),
			strconv.Itoa(s.KDDiff), formatFloat(s.KAST), strconv.Itoa(s.ADR),
			formatFloat(s.HSPercent),
			strconv.Itoa(s.FirstKills), strconv.Itoa(s.FirstDeaths), strconv.Itoa(s.FKDiff),
		})
	}
	return writeCSV(buf, []string{
		"match_id", "map_order", "map_name",
		"player", "team", "agents", "side",
		"rating", "acs",
		"kills", "deaths", "assists",
		"kd_diff", "kast", "adr",
		"hs_percent",
		"first_kills", "first_deaths", "fk_diff",
	}, rows)
}

func renderEventStats(b Bundle, buf *bytebufferpool.ByteBuffer) error {
	rows := make([][]string, 0, len(b.EventStats))
	for _, s := range b.EventStats {
		rows = append(rows, []string{
			formatInt64(s.EventID), s.Player, s.Team, joinAgents(s.Agents),
			strconv.Itoa(s.RoundsPlayed), formatFloat(s.Rating), formatFloat(s.ACS),
			formatFloat(s.KD), formatFloat(s.KAST), formatFloat(s.ADR),
			formatFloat(s.KPR), formatFloat(s.APR),
			formatFloat(s.FKPR), formatFloat(s.FDPR),
			formatFloat(s.HSPercent), formatFloat(s.ClutchPercent), s.ClutchesWonOf,
			strconv.Itoa(s.KMax),
			strconv.Itoa(s.Kills), strconv.Itoa(s.Deaths), strconv.Itoa(s.Assists),
			strconv.Itoa(s.FirstKills), strconv.Itoa(s.FirstDeaths),
		})
	}
	return writeCSV(buf, []string{
		"event_id", "player", "team", "agents",
		"rounds_played", "rating", "acs",
		"kd", "kast", "adr",
		"kpr", "apr",
		"fkpr", "fdpr",
		"hs_percent", "clutch_percent", "clutches_won_of",
		"k_max",
		"kills", "deaths", "assists",
		"first_kills", "first_deaths",
	}, rows)
}

func renderAgentUsage(b Bundle, buf *bytebufferpool.ByteBuffer) error {
	rows := make([][]string, 0, len(b.AgentUsage))
	for _, u := range b.AgentUsage {
		rows = append(rows, []string{
			formatInt64(u.EventID), u.MapName, u.Agent,
			strconv.Itoa(u.PickCount), formatFloat(u.PickPercent),
		})
	}
	return writeCSV(buf, []string{
		"event_id", "map_name", "agent", "pick_count", "pick_percent",
	}, rows)
}

func renderMapStats(b Bundle, buf *bytebufferpool.ByteBuffer) error {
	rows := make([][]string, 0, len(b.MapStats))
	for _, s := range b.MapStats {
		rows = append(rows, []string{
			formatInt64(s.EventID), s.MapName, strconv.Itoa(s.TimesPlayed),
			formatFloat(s.AttackWinPct), formatFloat(s.DefenseWinPct),
		})
	}
	return writeCSV(buf, []string{
		"event_id", "map_name", "times_played", "attack_win_pct", "defense_win_pct",
	}, rows)
}

func renderEconomies(b Bundle, buf *bytebufferpool.ByteBuffer) error {
	rows := make([][]string, 0, len(b.Economies))
	for _, e := range b.Economies {
		rows = append(rows, []string{
			formatInt64(e.MatchID), strconv.Itoa(e.MapOrder), e.MapName, e.Team,
			strconv.Itoa(e.PistolsWon),
			strconv.Itoa(e.Eco.Played), strconv.Itoa(e.Eco.Won),
			strconv.Itoa(e.SemiEco.Played), strconv.Itoa(e.SemiEco.Won),
			strconv.Itoa(e.SemiBuy.Played), strconv.Itoa(e.SemiBuy.Won),
			strconv.Itoa(e.FullBuy.Played), strconv.Itoa(e.FullBuy.Won),
		})
	}
	return writeCSV(buf, []string{
		"match_id", "map_order", "map_name", "team",
		"pistols_won",
		"eco_played", "eco_won",
		"semi_eco_played", "semi_eco_won",
		"semi_buy_played", "semi_buy_won",
		"full_buy_played", "full_buy_won",
	}, rows)
}

func renderPerformances(b Bundle, buf *bytebufferpool.ByteBuffer) error {
	rows := make([][]string, 0, len(b.Performances))
	for _, p := range b.Performances {
		rows = append(rows, []string{
			formatInt64(p.MatchID), strconv.Itoa(p.MapOrder), p.MapName,
			p.Player, p.Team, p.Agent,
			strconv.Itoa(p.Kills2), strconv.Itoa(p.Kills3),
			strconv.Itoa(p.Kills4), strconv.Itoa(p.Kills5),
			strconv.Itoa(p.Clutch1), strconv.Itoa(p.Clutch2), strconv.Itoa(p.Clutch3),
			strconv.Itoa(p.Clutch4), strconv.Itoa(p.Clutch5),
			strconv.Itoa(p.Econ), strconv.Itoa(p.Plants), strconv.Itoa(p.Defuses),
		})
	}
	return writeCSV(buf, []string{
		"match_id", "map_order", "map_name",
		"player", "team", "agent",
		"2k", "3k",
		"4k", "5k",
		"1v1", "1v2", "1v3",
		"1v4", "1v5",
		"econ", "plants", "defuses",
	}, rows)
}
