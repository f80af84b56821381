package extract

import (
	"testing"

	"github.com/eprasetya/vlrscout/internal/vlr"
)

func performanceRow(player, team string, counts [12]string) string {
	out := `<tr>
		<td><div class="team"><div>` + player + `</div><div class="team-tag">` + team + `</div></div></td>
		<td><img title="Jett"></td>`
	for _, c := range counts {
		out += `<td><div class="stats-sq">` + c + `</div></td>`
	}
	return out + `</tr>`
}

func performanceFixture() string {
	table := `<table class="wf-table-inset mod-adv-stats"><tbody>` +
		performanceRow("TenZ", "SEN", [12]string{"5", "2", "1", "", "3", "1", "", "", "", "842", "2", "1"}) +
		`</tbody></table>`
	return `
<div class="vm-stats-game" data-game-id="all">` + table + `</div>
<div class="vm-stats-game" data-game-id="141991">
	<div class="map"><div><span>Ascent</span></div></div>` + table + `
</div>
`
}

func TestPerformance(t *testing.T) {
	rows, err := Performance(doc(t, performanceFixture()), 510219, "/510219/sen-vs-fnc/?tab=performance")
	if err != nil {
		t.Fatalf("Performance() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	series := rows[0]
	if series.MatchID != 510219 || series.MapOrder != 0 || series.MapName != OverviewMapName {
		t.Errorf("series row = %+v", series)
	}
	if series.Player != "TenZ" || series.Team != "SEN" {
		t.Errorf("identity = %+v", series)
	}
	if series.Agent != "Jett" {
		t.Errorf("Agent = %q, want Jett", series.Agent)
	}
	if series.Kills2 != 5 || series.Kills3 != 2 || series.Kills4 != 1 || series.Kills5 != 0 {
		t.Errorf("multikills = %+v", series)
	}
	if series.Clutch1 != 3 || series.Clutch2 != 1 || series.Clutch3 != 0 {
		t.Errorf("clutches = %+v", series)
	}
	if series.Econ != 842 || series.Plants != 2 || series.Defuses != 1 {
		t.Errorf("objectives = %+v", series)
	}

	if rows[1].MapOrder != 1 || rows[1].MapName != "Ascent" {
		t.Errorf("map row = %+v", rows[1])
	}
}

func TestPerformanceMissingBlocks(t *testing.T) {
	_, err := Performance(doc(t, `<div></div>`), 1, "/1/x")
	var layoutErr *vlr.LayoutError
	if !asLayoutError(err, &layoutErr) {
		t.Fatalf("error = %v, want layout error", err)
	}
}
