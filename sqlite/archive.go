package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/formazioni"
	"github.com/google/uuid"
)

// Ensure ArchiveService implements the interface.
var _ formazioni.ArchiveService = (*ArchiveService)(nil)

// ArchiveService stores scrape runs and their entries in SQLite.
type ArchiveService struct {
	db *DB
}

// NewArchiveService creates a new ArchiveService backed by db.
func NewArchiveService(db *DB) *ArchiveService {
	return &ArchiveService{db: db}
}

// RecordRun stores a scrape run together with its flattened entries. Missing
// run fields (ID, RanAt, counts, content hash) are filled in before writing.
func (s *ArchiveService) RecordRun(ctx context.Context, run *formazioni.ScrapeRun, entries []formazioni.LineupEntry) error {
	if run == nil {
		return formazioni.Errorf(formazioni.EINVALID, "run required")
	}
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err
		}
	}

	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.RanAt.IsZero() {
		run.RanAt = time.Now().UTC()
	}
	run.Entries = len(entries)
	if run.Matches == 0 {
		run.Matches = countMatches(entries)
	}
	run.ContentHash = HashEntries(entries)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return formazioni.Errorf(formazioni.EINTERNAL, "begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, ran_at, matches, entries, content_hash)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.RanAt.Format(time.RFC3339), run.Matches, run.Entries, run.ContentHash)
	if err != nil {
		return formazioni.Errorf(formazioni.EINTERNAL, "insert run: %v", err)
	}

	for i, entry := range entries {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO entries (id, run_id, match_name, team, player, role, note, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), run.ID, entry.Match, entry.Team, entry.Player, string(entry.Role), entry.Note, i)
		if err != nil {
			return formazioni.Errorf(formazioni.EINTERNAL, "insert entry: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return formazioni.Errorf(formazioni.EINTERNAL, "commit transaction: %v", err)
	}
	return nil
}

// FindRuns retrieves runs matching the filter, most recent first.
func (s *ArchiveService) FindRuns(ctx context.Context, filter formazioni.RunFilter) ([]*formazioni.ScrapeRun, error) {
	where, args := []string{"1 = 1"}, []any{}
	if filter.ID != nil {
		where, args = append(where, "id = ?"), append(args, *filter.ID)
	}

	query := `
		SELECT id, ran_at, matches, entries, content_hash
		FROM runs
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY ran_at DESC, id
	` + appendPagination(filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, formazioni.Errorf(formazioni.EINTERNAL, "query runs: %v", err)
	}
	defer rows.Close()

	var runs []*formazioni.ScrapeRun
	for rows.Next() {
		var run formazioni.ScrapeRun
		var ranAt string
		if err := rows.Scan(&run.ID, &ranAt, &run.Matches, &run.Entries, &run.ContentHash); err != nil {
			return nil, formazioni.Errorf(formazioni.EINTERNAL, "scan run: %v", err)
		}
		run.RanAt, err = time.Parse(time.RFC3339, ranAt)
		if err != nil {
			return nil, formazioni.Errorf(formazioni.EINTERNAL, "parse run time: %v", err)
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, formazioni.Errorf(formazioni.EINTERNAL, "iterate runs: %v", err)
	}
	return runs, nil
}

// FindEntries retrieves archived entries matching the filter, in the order
// they were recorded.
func (s *ArchiveService) FindEntries(ctx context.Context, filter formazioni.EntryFilter) ([]formazioni.LineupEntry, error) {
	where, args := []string{"1 = 1"}, []any{}
	if filter.RunID != nil {
		where, args = append(where, "run_id = ?"), append(args, *filter.RunID)
	}
	if filter.Match != nil {
		where, args = append(where, "match_name = ?"), append(args, *filter.Match)
	}
	if filter.Team != nil {
		where, args = append(where, "team = ?"), append(args, *filter.Team)
	}

	query := `
		SELECT match_name, team, player, role, note
		FROM entries
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY run_id, position
	` + appendPagination(filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, formazioni.Errorf(formazioni.EINTERNAL, "query entries: %v", err)
	}
	defer rows.Close()

	var entries []formazioni.LineupEntry
	for rows.Next() {
		var entry formazioni.LineupEntry
		var role string
		if err := rows.Scan(&entry.Match, &entry.Team, &entry.Player, &role, &entry.Note); err != nil {
			return nil, formazioni.Errorf(formazioni.EINTERNAL, "scan entry: %v", err)
		}
		entry.Role = formazioni.Role(role)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, formazioni.Errorf(formazioni.EINTERNAL, "iterate entries: %v", err)
	}
	return entries, nil
}

// HashEntries returns a stable fingerprint of the entries.
func HashEntries(entries []formazioni.LineupEntry) string {
	h := xxhash.New()
	for _, entry := range entries {
		fmt.Fprintf(h, "%s|%s|%s|%s|%s\n", entry.Match, entry.Team, entry.Player, entry.Role, entry.Note)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

func countMatches(entries []formazioni.LineupEntry) int {
	seen := make(map[string]struct{})
	for _, entry := range entries {
		seen[entry.Match] = struct{}{}
	}
	return len(seen)
}

// appendPagination builds a LIMIT/OFFSET clause. A zero limit means no limit.
func appendPagination(limit, offset int) string {
	if limit > 0 && offset > 0 {
		return fmt.Sprintf(`LIMIT %d OFFSET %d`, limit, offset)
	} else if limit > 0 {
		return fmt.Sprintf(`LIMIT %d`, limit)
	} else if offset > 0 {
		return fmt.Sprintf(`LIMIT -1 OFFSET %d`, offset)
	}
	return ""
}
