package export

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/eprasetya/vlrscout/internal/domain/agentusage"
	"github.com/eprasetya/vlrscout/internal/domain/economy"
	"github.com/eprasetya/vlrscout/internal/domain/event"
	"github.com/eprasetya/vlrscout/internal/domain/match"
	"github.com/eprasetya/vlrscout/internal/domain/performance"
	"github.com/eprasetya/vlrscout/internal/domain/playerstat"
	"github.com/eprasetya/vlrscout/internal/platform/logging"
)

func sampleBundle() Bundle {
	return Bundle{
		Event: event.Event{ID: 2097, Title: "Valorant Champions 2025"},
		Matches: []match.Match{
			{ID: 510219, EventID: 2097, Stage: "Playoffs", Team1: "Sentinels", Team2: "Fnatic", Score1: 2, Score2: 0, Status: "completed"},
		},
		MapResults: []match.MapResult{
			{MatchID: 510219, MapOrder: 1, MapName: "Ascent", Team1: "Sentinels", Team2: "Fnatic", Score1: 13, Score2: 9, Duration: "41:12", PickedBy: "Sentinels"},
		},
		MatchStats: []playerstat.MatchStat{
			{MatchID: 510219, MapOrder: 0, MapName: "Overall", Player: "TenZ", Team: "SEN", Agents: []string{"Jett", "Raze"}, Side: playerstat.SideBoth, Rating: 1.24, ACS: 255, Kills: 38, Deaths: 25, Assists: 7, KDDiff: 13, KAST: 74, ADR: 160, HSPercent: 28, FirstKills: 6, FirstDeaths: 3, FKDiff: 3},
		},
		EventStats: []playerstat.EventStat{
			{EventID: 2097, Player: "TenZ", Team: "SEN", RoundsPlayed: 180, Rating: 1.18, ACS: 240.5, KD: 1.3, ClutchesWonOf: "4/11"},
		},
		AgentUsage: []agentusage.AgentUsage{
			{EventID: 2097, MapName: "Ascent", Agent: "Jett", PickCount: 12, PickPercent: 75},
		},
		MapStats: []agentusage.MapStat{
			{EventID: 2097, MapName: "Ascent", TimesPlayed: 8, AttackWinPct: 47.5, DefenseWinPct: 52.5},
		},
		Economies: []economy.TeamEconomy{
			{MatchID: 510219, MapOrder: 1, MapName: "Ascent", Team: "SEN", PistolsWon: 2, FullBuy: economy.Bucket{Played: 14, Won: 9}},
		},
		Performances: []performance.PlayerPerformance{
			{MatchID: 510219, MapOrder: 1, MapName: "Ascent", Player: "TenZ", Team: "SEN", Agent: "Jett", Kills2: 4, Clutch1: 1, Plants: 3},
		},
	}
}

func readZip(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	files := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		body, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		files[f.Name] = string(body)
	}
	return files
}

func TestWriteZip(t *testing.T) {
	var out bytes.Buffer
	if err := NewExporter(logging.NewNop()).WriteZip(context.Background(), sampleBundle(), &out); err != nil {
		t.Fatalf("WriteZip() error = %v", err)
	}

	files := readZip(t, out.Bytes())
	want := []string{
		"event.json", "archive.json", "matches.csv", "map_results.csv",
		"match_player_stats.csv", "event_player_stats.csv",
		"agent_usage.csv", "map_stats.csv",
		"team_economy.csv", "player_performance.csv",
	}
	if len(files) != len(want) {
		t.Fatalf("zip has %d files, want %d", len(files), len(want))
	}
	for _, name := range want {
		if _, ok := files[name]; !ok {
			t.Fatalf("zip is missing %s", name)
		}
	}

	var manifest struct {
		Event   event.Event `json:"event"`
		Matches int         `json:"matches"`
	}
	if err := sonic.Unmarshal([]byte(files["event.json"]), &manifest); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	if manifest.Event.ID != 2097 || manifest.Matches != 1 {
		t.Fatalf("manifest = %+v", manifest)
	}

	rows, err := csv.NewReader(strings.NewReader(files["match_player_stats.csv"])).ReadAll()
	if err != nil {
		t.Fatalf("parse match stats csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("match stats rows = %d, want header plus one", len(rows))
	}
	if rows[0][0] != "match_id" {
		t.Fatalf("header = %v", rows[0])
	}
	got := rows[1]
	if got[3] != "TenZ" || got[5] != "Jett|Raze" || got[7] != "1.24" {
		t.Fatalf("stat row = %v", got)
	}

	econ, err := csv.NewReader(strings.NewReader(files["team_economy.csv"])).ReadAll()
	if err != nil {
		t.Fatalf("parse economy csv: %v", err)
	}
	if econ[1][11] != "14" || econ[1][12] != "9" {
		t.Fatalf("economy row = %v", econ[1])
	}

	perf, err := csv.NewReader(strings.NewReader(files["player_performance.csv"])).ReadAll()
	if err != nil {
		t.Fatalf("parse performance csv: %v", err)
	}
	if perf[0][5] != "agent" || perf[1][5] != "Jett" {
		t.Fatalf("performance row = %v", perf[1])
	}
}

func TestArchiveTreeGroupsByMatch(t *testing.T) {
	var out bytes.Buffer
	if err := NewExporter(logging.NewNop()).WriteZip(context.Background(), sampleBundle(), &out); err != nil {
		t.Fatalf("WriteZip() error = %v", err)
	}
	files := readZip(t, out.Bytes())

	var tree archiveTree
	if err := sonic.Unmarshal([]byte(files["archive.json"]), &tree); err != nil {
		t.Fatalf("decode archive: %v", err)
	}
	if tree.Event.ID != 2097 {
		t.Fatalf("tree event = %+v", tree.Event)
	}
	if len(tree.Matches) != 1 {
		t.Fatalf("tree matches = %d, want 1", len(tree.Matches))
	}
	node := tree.Matches[0]
	if node.Match.ID != 510219 {
		t.Fatalf("node match = %+v", node.Match)
	}
	if len(node.MapResults) != 1 || node.MapResults[0].MapName != "Ascent" {
		t.Fatalf("node map results = %+v", node.MapResults)
	}
	if len(node.PlayerStats) != 1 || node.PlayerStats[0].Player != "TenZ" {
		t.Fatalf("node player stats = %+v", node.PlayerStats)
	}
	if len(node.Economies) != 1 || len(node.Performances) != 1 {
		t.Fatalf("node economies = %d, performances = %d", len(node.Economies), len(node.Performances))
	}
	if len(tree.EventStats) != 1 || len(tree.AgentUsage) != 1 || len(tree.MapStats) != 1 {
		t.Fatalf("event-level sections = %d/%d/%d", len(tree.EventStats), len(tree.AgentUsage), len(tree.MapStats))
	}
}

func TestWriteZipEmptySections(t *testing.T) {
	var out bytes.Buffer
	b := Bundle{Event: event.Event{ID: 2097}}
	if err := NewExporter(logging.NewNop()).WriteZip(context.Background(), b, &out); err != nil {
		t.Fatalf("WriteZip() error = %v", err)
	}

	files := readZip(t, out.Bytes())
	// Empty sections still ship their header row.
	if !strings.HasPrefix(files["matches.csv"], "match_id,") {
		t.Fatalf("matches.csv = %q", files["matches.csv"])
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(2097); got != "event_2097_export.zip" {
		t.Fatalf("FileName() = %q", got)
	}
}
