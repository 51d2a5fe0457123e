package formazioni

import (
	"fmt"
	"strings"
)

// FormatReport renders one match report as a structured text block for
// embedding. Each source's view is kept in its own section so the model can
// compare predictions across sources.
func FormatReport(r *MatchReport) string {
	var b strings.Builder

	rule := strings.Repeat("=", 60)
	b.WriteString(rule + "\n")
	b.WriteString("MATCH: " + r.Name + "\n")
	b.WriteString(rule + "\n")

	for i, m := range r.Sources {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "SOURCE: %s\n", m.Source)
		writeTeamSheet(&b, "HOME TEAM", m.Home)
		b.WriteString("\n")
		writeTeamSheet(&b, "AWAY TEAM", m.Away)
	}

	b.WriteString(strings.Repeat("-", 60) + "\n")
	return b.String()
}

func writeTeamSheet(b *strings.Builder, label string, sheet TeamSheet) {
	fmt.Fprintf(b, "   %s: %s", label, sheet.Team)
	if sheet.Formation != "" {
		fmt.Fprintf(b, " (Formation: %s)", sheet.Formation)
	}
	b.WriteString("\n")

	if len(sheet.Starters) == 0 {
		b.WriteString("   - Starting XI: no players found\n")
	} else {
		parts := make([]string, 0, len(sheet.Starters))
		for _, p := range sheet.Starters {
			s := p.Name
			if p.Role.Valid() {
				s += " (" + string(p.Role) + ")"
			}
			if p.Note != "" {
				s += " [" + p.Note + "]"
			}
			parts = append(parts, s)
		}
		b.WriteString("   - Starting XI: " + strings.Join(parts, ", ") + "\n")
	}

	if len(sheet.Unavailables) > 0 {
		b.WriteString("   - Unavailable: " + strings.Join(sheet.Unavailables, ", ") + "\n")
	}
	if len(sheet.Substitutes) > 0 {
		b.WriteString("   - Substitutes: " + strings.Join(sheet.Substitutes, ", ") + "\n")
	}
}

// FormatEntries renders the entries of one match as a text block for
// embedding. Used when building the knowledge base from the flat JSON file,
// where team sheets are no longer available. Players are grouped by team and
// listed goalkeeper first, forwards last.
func FormatEntries(match string, entries []LineupEntry) string {
	var b strings.Builder
	b.WriteString("MATCH: " + match + "\n")

	var teams []string
	byTeam := make(map[string][]LineupEntry)
	for _, e := range entries {
		if _, ok := byTeam[e.Team]; !ok {
			teams = append(teams, e.Team)
		}
		byTeam[e.Team] = append(byTeam[e.Team], e)
	}

	for _, team := range teams {
		b.WriteString("TEAM: " + team + "\n")
		for _, role := range Roles() {
			for _, e := range byTeam[team] {
				if e.Role != role {
					continue
				}
				line := "  - " + e.Player + " (" + string(e.Role) + ")"
				if e.Note != "" {
					line += " [" + e.Note + "]"
				}
				b.WriteString(line + "\n")
			}
		}
	}

	return b.String()
}
