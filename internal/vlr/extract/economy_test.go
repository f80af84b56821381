package extract

import (
	"testing"

	"github.com/eprasetya/vlrscout/internal/domain/economy"
	"github.com/eprasetya/vlrscout/internal/vlr"
)

func economyTable(team1, team2 string) string {
	row := func(team, pistols, eco, semiEco, semiBuy, fullBuy string) string {
		return `<tr>
			<td><div class="team">` + team + `</div></td>
			<td>` + pistols + `</td>
			<td>` + eco + `</td>
			<td>` + semiEco + `</td>
			<td>` + semiBuy + `</td>
			<td>` + fullBuy + `</td>
		</tr>`
	}
	return `<table class="wf-table-inset mod-econ"><tbody>` +
		row(team1, "2", "3 (1)", "4 (2)", "6 (3)", "10 (7)") +
		row(team2, "0", "5 (0)", "3 (1)", "7 (2)", "8 (4)") +
		`</tbody></table>`
}

func economyFixture() string {
	return `
<div class="vm-stats-game" data-game-id="all">` + economyTable("Sentinels", "Fnatic") + `</div>
<div class="vm-stats-game" data-game-id="141991">
	<div class="map"><div><span>Ascent</span></div></div>` + economyTable("Sentinels", "Fnatic") + `
</div>
`
}

func TestEconomy(t *testing.T) {
	rows, err := Economy(doc(t, economyFixture()), 510219, "/510219/sen-vs-fnc/?tab=economy")
	if err != nil {
		t.Fatalf("Economy() error = %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}

	first := rows[0]
	if first.MatchID != 510219 || first.MapOrder != 0 || first.MapName != OverviewMapName {
		t.Errorf("series row = %+v", first)
	}
	if first.Team != "Sentinels" || first.PistolsWon != 2 {
		t.Errorf("series row = %+v", first)
	}
	if first.Eco != (economy.Bucket{Played: 3, Won: 1}) {
		t.Errorf("Eco = %+v", first.Eco)
	}
	if first.FullBuy != (economy.Bucket{Played: 10, Won: 7}) {
		t.Errorf("FullBuy = %+v", first.FullBuy)
	}

	mapRow := rows[2]
	if mapRow.MapOrder != 1 || mapRow.MapName != "Ascent" {
		t.Errorf("map row = %+v", mapRow)
	}
	if rows[3].Team != "Fnatic" || rows[3].SemiBuy != (economy.Bucket{Played: 7, Won: 2}) {
		t.Errorf("map row 2 = %+v", rows[3])
	}
}

func TestEconomyMissingBlocks(t *testing.T) {
	_, err := Economy(doc(t, `<div></div>`), 1, "/1/x")
	var layoutErr *vlr.LayoutError
	if !asLayoutError(err, &layoutErr) {
		t.Fatalf("error = %v, want layout error", err)
	}
}

func TestParseBucket(t *testing.T) {
	cases := []struct {
		in   string
		want economy.Bucket
	}{
		{"12 (5)", economy.Bucket{Played: 12, Won: 5}},
		{"0 (0)", economy.Bucket{}},
		{"7", economy.Bucket{Played: 7}},
		{"", economy.Bucket{}},
	}
	for _, tc := range cases {
		if got := parseBucket(tc.in); got != tc.want {
			t.Errorf("parseBucket(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}
