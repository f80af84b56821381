package extract

import (
	"fmt"
	"testing"

	"github.com/eprasetya/vlrscout/internal/domain/playerstat"
	"github.com/eprasetya/vlrscout/internal/vlr"
)

func statCell(both, attack, defense string) string {
	return fmt.Sprintf(
		`<td class="mod-stat"><span class="side mod-both">%s</span><span class="side mod-t">%s</span><span class="side mod-ct">%s</span></td>`,
		both, attack, defense)
}

func scoreboardRow(player, team, agent string) string {
	return `<tr>
		<td class="mod-player"><div class="text-of">` + player + `</div><div class="ge-text-light">` + team + `</div></td>
		<td class="mod-agents"><img title="` + agent + `"></td>` +
		statCell("1.42", "1.50", "1.33") + // rating
		statCell("280", "301", "259") + // ACS
		statCell("22", "12", "10") + // kills
		statCell("14", "6", "8") + // deaths
		statCell("5", "3", "2") + // assists
		statCell("+8", "+6", "+2") + // k/d diff
		statCell("78%", "80%", "75%") + // KAST
		statCell("171", "182", "160") + // ADR
		statCell("31%", "33%", "29%") + // HS%
		statCell("4", "3", "1") + // first kills
		statCell("2", "1", "1") + // first deaths
		statCell("+2", "+2", "0") + // fk/fd diff
		`</tr>`
}

func matchDetailFixture() string {
	scoreboard := func(rows ...string) string {
		out := `<table class="wf-table-inset mod-overview"><tbody>`
		for _, r := range rows {
			out += r
		}
		return out + `</tbody></table>`
	}

	return `
<div class="match-header-vs">
	<div class="match-header-link-name mod-1"><div class="wf-title-med">Sentinels</div></div>
	<div class="match-header-link-name mod-2"><div class="wf-title-med">Fnatic</div></div>
</div>
<div class="vm-stats-game" data-game-id="all">` +
		scoreboard(scoreboardRow("TenZ", "SEN", "Jett")) +
		scoreboard(scoreboardRow("Boaster", "FNC", "Omen")) + `
</div>
<div class="vm-stats-game" data-game-id="141991">
	<div class="vm-stats-game-header">
		<div class="team"><div class="team-name">Sentinels</div><div class="score">13</div></div>
		<div class="map">
			<div><span>Ascent <span class="picked mod-1">PICK</span></span></div>
			<div class="map-duration">41:22</div>
		</div>
		<div class="team mod-right"><div class="team-name">Fnatic</div><div class="score">7</div></div>
	</div>` +
		scoreboard(scoreboardRow("TenZ", "SEN", "Jett")) +
		scoreboard(scoreboardRow("Boaster", "FNC", "Omen")) + `
</div>
<div class="vm-stats-game" data-game-id="disabled"></div>
`
}

func TestMatchDetailPage(t *testing.T) {
	detail, err := MatchDetailPage(doc(t, matchDetailFixture()), 510219, "/510219/sen-vs-fnc")
	if err != nil {
		t.Fatalf("MatchDetailPage() error = %v", err)
	}

	if len(detail.Maps) != 1 {
		t.Fatalf("got %d map results, want 1", len(detail.Maps))
	}
	mapResult := detail.Maps[0]
	if mapResult.MatchID != 510219 || mapResult.MapOrder != 1 || mapResult.MapName != "Ascent" {
		t.Errorf("map result = %+v", mapResult)
	}
	if mapResult.Score1 != 13 || mapResult.Score2 != 7 {
		t.Errorf("map scores = %d-%d, want 13-7", mapResult.Score1, mapResult.Score2)
	}
	if mapResult.Team1 != "Sentinels" || mapResult.Team2 != "Fnatic" {
		t.Errorf("map teams = %q vs %q", mapResult.Team1, mapResult.Team2)
	}
	if mapResult.Duration != "41:22" {
		t.Errorf("Duration = %q", mapResult.Duration)
	}
	if mapResult.PickedBy != "Sentinels" {
		t.Errorf("PickedBy = %q", mapResult.PickedBy)
	}

	// Two players, three side rows each, on the overview block plus one map.
	if len(detail.Stats) != 12 {
		t.Fatalf("got %d stat rows, want 12", len(detail.Stats))
	}

	overview := detail.Stats[0]
	if overview.MapOrder != 0 || overview.MapName != OverviewMapName {
		t.Errorf("first row should be series overview, got %+v", overview)
	}
	if overview.Player != "TenZ" || overview.Team != "SEN" || overview.Side != playerstat.SideBoth {
		t.Errorf("identity = %+v", overview)
	}
	if overview.Rating != 1.42 || overview.ACS != 280 || overview.Kills != 22 || overview.Deaths != 14 {
		t.Errorf("combined stats = %+v", overview)
	}
	if overview.KDDiff != 8 || overview.KAST != 78 || overview.ADR != 171 || overview.HSPercent != 31 {
		t.Errorf("combined stats = %+v", overview)
	}

	attack := detail.Stats[1]
	if attack.Side != playerstat.SideAttack || attack.Kills != 12 || attack.ACS != 301 {
		t.Errorf("attack split = %+v", attack)
	}
	defense := detail.Stats[2]
	if defense.Side != playerstat.SideDefense || defense.Kills != 10 || defense.Deaths != 8 {
		t.Errorf("defense split = %+v", defense)
	}

	mapRow := detail.Stats[6]
	if mapRow.MapOrder != 1 || mapRow.MapName != "Ascent" {
		t.Errorf("map row = %+v", mapRow)
	}
}

func TestMatchDetailPageNoBlocks(t *testing.T) {
	_, err := MatchDetailPage(doc(t, `<div class="match-header-vs"></div>`), 1, "/1/x")
	var layoutErr *vlr.LayoutError
	if !asLayoutError(err, &layoutErr) {
		t.Fatalf("error = %v, want layout error", err)
	}
}
