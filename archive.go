package formazioni

import (
	"context"
	"time"
)

// ScrapeRun records one execution of the scraper.
type ScrapeRun struct {
	ID      string    `json:"id"`
	RanAt   time.Time `json:"ranAt"`
	Matches int       `json:"matches"`
	Entries int       `json:"entries"`

	// ContentHash fingerprints the flattened entries, so identical
	// consecutive scrapes are easy to spot.
	ContentHash string `json:"contentHash"`
}

// RunFilter filters FindRuns results.
type RunFilter struct {
	ID *string `json:"id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// EntryFilter filters FindEntries results.
type EntryFilter struct {
	RunID *string `json:"runId"`
	Match *string `json:"match"`
	Team  *string `json:"team"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ArchiveService keeps a history of scrape runs and their entries, so past
// matchdays remain inspectable after the knowledge-base file is replaced.
type ArchiveService interface {
	// RecordRun stores a scrape run together with its flattened entries.
	RecordRun(ctx context.Context, run *ScrapeRun, entries []LineupEntry) error

	// FindRuns retrieves runs matching the filter, most recent first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*ScrapeRun, error)

	// FindEntries retrieves archived entries matching the filter.
	FindEntries(ctx context.Context, filter EntryFilter) ([]LineupEntry, error)
}
