package extract

import (
	"testing"

	"github.com/eprasetya/vlrscout/internal/domain/agentusage"
	"github.com/eprasetya/vlrscout/internal/vlr"
)

const agentGridFixture = `
<table class="wf-table mod-pr-global">
	<thead>
		<tr>
			<th>Map</th><th></th><th>ATK</th><th>DEF</th>
			<th><img title="Jett"></th>
			<th><img title="Omen"></th>
		</tr>
	</thead>
	<tbody>
		<tr>
			<td></td>
			<td>61</td>
			<td>48%</td>
			<td>52%</td>
			<td>74% (45)</td>
			<td>52% (32)</td>
		</tr>
		<tr>
			<td>Ascent</td>
			<td>12</td>
			<td>44%</td>
			<td>56%</td>
			<td>83% (10)</td>
			<td>91% (11)</td>
		</tr>
	</tbody>
</table>
`

func TestAgentUsage(t *testing.T) {
	usage, maps, err := AgentUsage(doc(t, agentGridFixture), 2097)
	if err != nil {
		t.Fatalf("AgentUsage() error = %v", err)
	}

	if len(maps) != 2 {
		t.Fatalf("got %d map rows, want 2", len(maps))
	}
	if maps[0].MapName != agentusage.TotalMap {
		t.Errorf("aggregate row MapName = %q, want %q", maps[0].MapName, agentusage.TotalMap)
	}
	if maps[0].TimesPlayed != 61 || maps[0].AttackWinPct != 48 || maps[0].DefenseWinPct != 52 {
		t.Errorf("aggregate row = %+v", maps[0])
	}
	if maps[1].MapName != "Ascent" || maps[1].TimesPlayed != 12 {
		t.Errorf("map row = %+v", maps[1])
	}

	if len(usage) != 4 {
		t.Fatalf("got %d usage cells, want 4", len(usage))
	}
	first := usage[0]
	if first.MapName != agentusage.TotalMap || first.Agent != "Jett" {
		t.Errorf("first cell = %+v", first)
	}
	if first.PickPercent != 74 || first.PickCount != 45 {
		t.Errorf("first cell values = %+v", first)
	}
	last := usage[3]
	if last.MapName != "Ascent" || last.Agent != "Omen" || last.PickCount != 11 {
		t.Errorf("last cell = %+v", last)
	}
}

func TestAgentUsageMissingGrid(t *testing.T) {
	_, _, err := AgentUsage(doc(t, `<div></div>`), 2097)
	var layoutErr *vlr.LayoutError
	if !asLayoutError(err, &layoutErr) {
		t.Fatalf("error = %v, want layout error", err)
	}
}

func TestParsePickCell(t *testing.T) {
	cases := []struct {
		in        string
		wantPct   float64
		wantCount int
	}{
		{"74% (45)", 74, 45},
		{"8%", 8, 0},
		{"", 0, 0},
		{"-", 0, 0},
	}
	for _, tc := range cases {
		pct, count := parsePickCell(tc.in)
		if pct != tc.wantPct || count != tc.wantCount {
			t.Errorf("parsePickCell(%q) = %v, %d, want %v, %d", tc.in, pct, count, tc.wantPct, tc.wantCount)
		}
	}
}
