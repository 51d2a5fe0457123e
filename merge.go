package formazioni

import "strings"

// NormalizeTeam lowercases and trims a team name for comparison.
func NormalizeTeam(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SameTeam reports whether two team names refer to the same club.
// Containment in either direction handles naming variations between sources
// ("Verona" vs "Hellas Verona", "Inter" vs "Internazionale").
func SameTeam(a, b string) bool {
	na, nb := NormalizeTeam(a), NormalizeTeam(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}

// MergeMatches pairs fixtures across sources into match reports. Matches from
// the primary source define the fixture names; a secondary match attaches to
// a report when both its home and away teams match the primary's. Secondary
// fixtures with no primary counterpart get their own report, so a source
// outage never hides a match entirely.
func MergeMatches(primary []*Match, secondary []*Match) []*MatchReport {
	var reports []*MatchReport
	used := make(map[int]bool)

	for _, pm := range primary {
		report := &MatchReport{
			Name:    pm.Name,
			Sources: []*Match{pm},
		}
		for i, sm := range secondary {
			if used[i] {
				continue
			}
			if SameTeam(pm.Home.Team, sm.Home.Team) && SameTeam(pm.Away.Team, sm.Away.Team) {
				report.Sources = append(report.Sources, sm)
				used[i] = true
				break
			}
		}
		reports = append(reports, report)
	}

	for i, sm := range secondary {
		if used[i] {
			continue
		}
		reports = append(reports, &MatchReport{
			Name:    sm.Name,
			Sources: []*Match{sm},
		})
	}

	return reports
}
