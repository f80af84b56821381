package vlr

import "testing"

func TestMatchIDFromPath(t *testing.T) {
	cases := []struct {
		in     string
		wantID int64
		wantOK bool
	}{
		{"/510219/sentinels-vs-fnatic-champions", 510219, true},
		{"/510219", 510219, true},
		{" /510219/x ", 510219, true},
		{"/event/2097/champions", 0, false},
		{"/abc/def", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		id, ok := MatchIDFromPath(tc.in)
		if id != tc.wantID || ok != tc.wantOK {
			t.Errorf("MatchIDFromPath(%q) = %d, %v, want %d, %v", tc.in, id, ok, tc.wantID, tc.wantOK)
		}
	}
}

func TestEventPaths(t *testing.T) {
	if got := EventMatchesPath(2097, 1); got != "/event/matches/2097/?series_id=all" {
		t.Errorf("EventMatchesPath page 1 = %q", got)
	}
	if got := EventMatchesPath(2097, 3); got != "/event/matches/2097/?series_id=all&page=3" {
		t.Errorf("EventMatchesPath page 3 = %q", got)
	}
	if got := EventStatsPath(2097); got != "/event/stats/2097" {
		t.Errorf("EventStatsPath = %q", got)
	}
	if got := EventAgentsPath(2097); got != "/event/agents/2097" {
		t.Errorf("EventAgentsPath = %q", got)
	}
}

func TestMatchTab(t *testing.T) {
	if got := MatchTab("/510219/sen-vs-fnc", "economy"); got != "/510219/sen-vs-fnc/?tab=economy" {
		t.Errorf("MatchTab = %q", got)
	}
	if got := MatchTab("/510219/sen-vs-fnc/?group=all", "performance"); got != "/510219/sen-vs-fnc/?group=all&tab=performance" {
		t.Errorf("MatchTab with query = %q", got)
	}
}
