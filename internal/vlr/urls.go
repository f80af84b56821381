package vlr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const DefaultBaseURL = "https://www.vlr.gg"

var matchPathRegex = regexp.MustCompile(`^/(\d+)(?:/|$)`)

func EventPath(eventID int64) string {
	return fmt.Sprintf("/event/%d", eventID)
}

func EventMatchesPath(eventID int64, page int) string {
	path := fmt.Sprintf("/event/matches/%d/?series_id=all", eventID)
	if page > 1 {
		path += "&page=" + strconv.Itoa(page)
	}
	return path
}

func EventStatsPath(eventID int64) string {
	return fmt.Sprintf("/event/stats/%d", eventID)
}

func EventAgentsPath(eventID int64) string {
	return fmt.Sprintf("/event/agents/%d", eventID)
}

// MatchTab appends the query for the economy or performance view of a match
// page. tab is "economy" or "performance".
func MatchTab(matchPath, tab string) string {
	if strings.Contains(matchPath, "?") {
		return matchPath + "&tab=" + tab
	}
	return matchPath + "/?tab=" + tab
}

// MatchIDFromPath pulls the numeric match ID out of a relative match link
// like "/510219/team-a-vs-team-b-event-name".
func MatchIDFromPath(path string) (int64, bool) {
	m := matchPathRegex.FindStringSubmatch(strings.TrimSpace(path))
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
