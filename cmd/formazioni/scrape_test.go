package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/formazioni"
	main "github.com/fwojciec/formazioni/cmd/formazioni"
	"github.com/fwojciec/formazioni/mock"
	"github.com/fwojciec/formazioni/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScraper(store formazioni.LineupStore, parseErr error) *scrape.Scraper {
	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			return "<html></html>", nil
		},
	}
	source := &mock.MatchSource{
		NameFn: func() string { return "Sky Sport" },
		ParseFn: func(html string) ([]*formazioni.Match, error) {
			if parseErr != nil {
				return nil, parseErr
			}
			return []*formazioni.Match{
				{
					Name:   "Inter - Milan",
					Source: "Sky Sport",
					Home: formazioni.TeamSheet{
						Team:     "Inter",
						Starters: []formazioni.Player{{Name: "Sommer", Role: formazioni.RoleGoalkeeper}},
					},
					Away: formazioni.TeamSheet{
						Team:     "Milan",
						Starters: []formazioni.Player{{Name: "Maignan", Role: formazioni.RoleGoalkeeper}},
					},
				},
			}, nil
		},
	}
	return scrape.NewScraper(fetcher, store,
		scrape.Target{Source: source, URL: "https://sky.example"},
		nil,
		scrape.WithRetryDelays(nil),
	)
}

func TestScrapeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the scrape summary", func(t *testing.T) {
		t.Parallel()

		store := &mock.LineupStore{
			SaveEntriesFn: func(entries []formazioni.LineupEntry) error { return nil },
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: testScraper(store, nil),
		}

		cmd := &main.ScrapeCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Scraped 1 matches (2 entries).")
	})

	t.Run("reports failure when scraping yields nothing", func(t *testing.T) {
		t.Parallel()

		store := &mock.LineupStore{
			SaveEntriesFn: func(entries []formazioni.LineupEntry) error { return nil },
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Scraper: testScraper(store, errors.New("page changed")),
		}

		cmd := &main.ScrapeCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, formazioni.EUNAVAILABLE, formazioni.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}
