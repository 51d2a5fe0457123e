// Package scrape orchestrates fetching, parsing, merging and persisting
// predicted lineups from the configured sources.
package scrape

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/formazioni"
	"golang.org/x/sync/errgroup"
)

// Target binds a lineup source to the URL it is scraped from.
type Target struct {
	Source formazioni.MatchSource
	URL    string
}

// Result summarizes one scrape run.
type Result struct {
	// Reports are the merged per-fixture views across sources.
	Reports []*formazioni.MatchReport

	// Entries is the flattened entry set written to the knowledge base.
	Entries []formazioni.LineupEntry

	// SourceErrors holds fetch or parse failures keyed by source name.
	// A run succeeds as long as at least one source yields matches.
	SourceErrors map[string]error

	// Run is the archived run record, nil when no archive is configured.
	Run *formazioni.ScrapeRun
}

// Scraper runs the scrape pipeline: fetch each source, parse its matches,
// merge fixtures across sources, flatten to entries, and persist.
type Scraper struct {
	fetcher     formazioni.Fetcher
	primary     Target
	secondaries []Target
	store       formazioni.LineupStore
	archive     formazioni.ArchiveService
	logf        LogFunc
	retryDelays []time.Duration
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithArchive records each run in the given archive.
func WithArchive(archive formazioni.ArchiveService) Option {
	return func(s *Scraper) { s.archive = archive }
}

// WithLogger sets a progress logging function.
func WithLogger(logf LogFunc) Option {
	return func(s *Scraper) { s.logf = logf }
}

// WithRetryDelays overrides the fetch retry backoff delays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(s *Scraper) { s.retryDelays = delays }
}

// NewScraper creates a Scraper. The primary target names the fixtures;
// secondary targets enrich them.
func NewScraper(fetcher formazioni.Fetcher, store formazioni.LineupStore, primary Target, secondaries []Target, opts ...Option) *Scraper {
	s := &Scraper{
		fetcher:     fetcher,
		primary:     primary,
		secondaries: secondaries,
		store:       store,
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the scrape pipeline and replaces the knowledge-base file.
// Source failures are tolerated as long as one source yields matches;
// per-source errors are reported in the result. Returns EUNAVAILABLE when
// every source fails.
func (s *Scraper) Run(ctx context.Context) (*Result, error) {
	targets := append([]Target{s.primary}, s.secondaries...)
	parsed := make([][]*formazioni.Match, len(targets))
	sourceErrs := make(map[string]error)

	var mu sync.Mutex
	var g errgroup.Group
	for i, target := range targets {
		g.Go(func() error {
			matches, err := s.scrapeTarget(ctx, target)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				sourceErrs[target.Source.Name()] = err
				return nil
			}
			parsed[i] = matches
			return nil
		})
	}
	g.Wait()

	var secondary []*formazioni.Match
	for _, matches := range parsed[1:] {
		secondary = append(secondary, matches...)
	}
	if len(parsed[0]) == 0 && len(secondary) == 0 {
		return nil, formazioni.Errorf(formazioni.EUNAVAILABLE, "no source yielded matches")
	}

	reports := formazioni.MergeMatches(parsed[0], secondary)
	entries := formazioni.Flatten(reports)
	s.log("merged %d fixtures into %d entries", len(reports), len(entries))

	if err := s.store.SaveEntries(entries); err != nil {
		return nil, err
	}

	result := &Result{
		Reports:      reports,
		Entries:      entries,
		SourceErrors: sourceErrs,
	}

	if s.archive != nil {
		run := &formazioni.ScrapeRun{Matches: len(reports)}
		if err := s.archive.RecordRun(ctx, run, entries); err != nil {
			return nil, err
		}
		result.Run = run
	}

	return result, nil
}

func (s *Scraper) scrapeTarget(ctx context.Context, target Target) ([]*formazioni.Match, error) {
	name := target.Source.Name()
	s.log("fetching %s (%s)", name, target.URL)

	html, err := FetchWithRetryDelays(ctx, target.URL, s.fetcher.Fetch, s.logf, s.retryDelays)
	if err != nil {
		return nil, err
	}

	matches, err := target.Source.Parse(html)
	if err != nil {
		return nil, err
	}
	s.log("parsed %d matches from %s", len(matches), name)
	return matches, nil
}

func (s *Scraper) log(format string, args ...any) {
	if s.logf != nil {
		s.logf(format, args...)
	}
}
