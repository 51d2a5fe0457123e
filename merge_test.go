package formazioni_test

import (
	"testing"

	"github.com/fwojciec/formazioni"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameTeam(t *testing.T) {
	t.Parallel()

	t.Run("exact match ignoring case", func(t *testing.T) {
		t.Parallel()
		assert.True(t, formazioni.SameTeam("Inter", "inter"))
	})

	t.Run("containment handles naming variations", func(t *testing.T) {
		t.Parallel()
		assert.True(t, formazioni.SameTeam("Verona", "Hellas Verona"))
		assert.True(t, formazioni.SameTeam("Hellas Verona", "verona"))
	})

	t.Run("different clubs do not match", func(t *testing.T) {
		t.Parallel()
		assert.False(t, formazioni.SameTeam("Inter", "Milan"))
	})

	t.Run("empty names never match", func(t *testing.T) {
		t.Parallel()
		assert.False(t, formazioni.SameTeam("", "Inter"))
	})
}

func TestMergeMatches(t *testing.T) {
	t.Parallel()

	sky := []*formazioni.Match{
		{Name: "Inter - Milan", Source: "Sky Sport",
			Home: formazioni.TeamSheet{Team: "Inter"}, Away: formazioni.TeamSheet{Team: "Milan"}},
		{Name: "Hellas Verona - Juventus", Source: "Sky Sport",
			Home: formazioni.TeamSheet{Team: "Hellas Verona"}, Away: formazioni.TeamSheet{Team: "Juventus"}},
	}
	fanta := []*formazioni.Match{
		{Name: "Verona - Juventus", Source: "Fantacalcio",
			Home: formazioni.TeamSheet{Team: "Verona"}, Away: formazioni.TeamSheet{Team: "Juventus"}},
		{Name: "Roma - Lazio", Source: "Fantacalcio",
			Home: formazioni.TeamSheet{Team: "Roma"}, Away: formazioni.TeamSheet{Team: "Lazio"}},
	}

	reports := formazioni.MergeMatches(sky, fanta)

	require.Len(t, reports, 3)

	t.Run("unpaired primary match keeps one source", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Inter - Milan", reports[0].Name)
		require.Len(t, reports[0].Sources, 1)
	})

	t.Run("pairs fixtures despite naming variations", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Hellas Verona - Juventus", reports[1].Name)
		require.Len(t, reports[1].Sources, 2)
		assert.Equal(t, "Sky Sport", reports[1].Sources[0].Source)
		assert.Equal(t, "Fantacalcio", reports[1].Sources[1].Source)
	})

	t.Run("secondary-only fixtures get their own report", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Roma - Lazio", reports[2].Name)
		require.Len(t, reports[2].Sources, 1)
	})
}
