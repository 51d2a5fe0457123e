package formazioni_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/formazioni"
	"github.com/stretchr/testify/assert"
)

func TestFormatReport(t *testing.T) {
	t.Parallel()

	t.Run("renders formations, lineups, bench and unavailable players", func(t *testing.T) {
		t.Parallel()

		report := &formazioni.MatchReport{
			Name: "Inter - Milan",
			Sources: []*formazioni.Match{{
				Name:   "Inter - Milan",
				Source: "Sky Sport",
				Home: formazioni.TeamSheet{
					Team:      "Inter",
					Formation: "3-5-2",
					Starters: []formazioni.Player{
						{Name: "Yann Sommer", Role: formazioni.RoleGoalkeeper},
						{Name: "Nicolò Barella", Role: formazioni.RoleMidfielder},
					},
					Substitutes:  []string{"Davide Frattesi"},
					Unavailables: []string{"Benjamin Pavard"},
				},
				Away: formazioni.TeamSheet{
					Team:      "Milan",
					Formation: "4-3-3",
					Starters:  []formazioni.Player{{Name: "Mike Maignan", Role: formazioni.RoleGoalkeeper}},
				},
			}},
		}

		text := formazioni.FormatReport(report)

		assert.Contains(t, text, "MATCH: Inter - Milan")
		assert.Contains(t, text, "SOURCE: Sky Sport")
		assert.Contains(t, text, "HOME TEAM: Inter (Formation: 3-5-2)")
		assert.Contains(t, text, "Yann Sommer (Goalkeeper)")
		assert.Contains(t, text, "- Unavailable: Benjamin Pavard")
		assert.Contains(t, text, "- Substitutes: Davide Frattesi")
		assert.Contains(t, text, "AWAY TEAM: Milan (Formation: 4-3-3)")
	})

	t.Run("notes empty lineups instead of omitting the team", func(t *testing.T) {
		t.Parallel()

		report := &formazioni.MatchReport{
			Name: "Roma - Lazio",
			Sources: []*formazioni.Match{{
				Name:   "Roma - Lazio",
				Source: "Fantacalcio",
				Home:   formazioni.TeamSheet{Team: "Roma"},
				Away:   formazioni.TeamSheet{Team: "Lazio"},
			}},
		}

		text := formazioni.FormatReport(report)

		assert.Contains(t, text, "HOME TEAM: Roma")
		assert.Contains(t, text, "- Starting XI: no players found")
	})

	t.Run("separates multiple sources", func(t *testing.T) {
		t.Parallel()

		report := &formazioni.MatchReport{
			Name: "Inter - Milan",
			Sources: []*formazioni.Match{
				{Name: "Inter - Milan", Source: "Sky Sport",
					Home: formazioni.TeamSheet{Team: "Inter"}, Away: formazioni.TeamSheet{Team: "Milan"}},
				{Name: "Inter - Milan", Source: "Fantacalcio",
					Home: formazioni.TeamSheet{Team: "Inter"}, Away: formazioni.TeamSheet{Team: "Milan"}},
			},
		}

		text := formazioni.FormatReport(report)

		assert.Contains(t, text, "SOURCE: Sky Sport")
		assert.Contains(t, text, "SOURCE: Fantacalcio")
	})
}

func TestFormatEntries(t *testing.T) {
	t.Parallel()

	t.Run("groups by team and orders roles goalkeeper first", func(t *testing.T) {
		t.Parallel()

		entries := []formazioni.LineupEntry{
			{Match: "Inter - Milan", Team: "Inter", Player: "Lautaro Martínez", Role: formazioni.RoleForward, Note: formazioni.NoteStarter},
			{Match: "Inter - Milan", Team: "Inter", Player: "Sommer", Role: formazioni.RoleGoalkeeper, Note: formazioni.NoteStarter},
			{Match: "Inter - Milan", Team: "Milan", Player: "Maignan", Role: formazioni.RoleGoalkeeper, Note: formazioni.NoteStarter},
		}

		text := formazioni.FormatEntries("Inter - Milan", entries)

		assert.Contains(t, text, "MATCH: Inter - Milan")
		sommer := "- Sommer (Goalkeeper)"
		lautaro := "- Lautaro Martínez (Forward)"
		assert.Contains(t, text, sommer)
		assert.Contains(t, text, lautaro)
		assert.Less(t, strings.Index(text, sommer), strings.Index(text, lautaro), "goalkeeper should be listed before forward")
		assert.Less(t, strings.Index(text, "TEAM: Inter"), strings.Index(text, "TEAM: Milan"))
	})

	t.Run("includes notes", func(t *testing.T) {
		t.Parallel()

		entries := []formazioni.LineupEntry{
			{Match: "Inter - Milan", Team: "Inter", Player: "Thuram", Role: formazioni.RoleForward, Note: formazioni.NoteDoubt},
		}

		text := formazioni.FormatEntries("Inter - Milan", entries)

		assert.Contains(t, text, "Thuram (Forward) [ballottaggio]")
	})
}
