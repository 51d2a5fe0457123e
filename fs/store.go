// Package fs provides file-based storage for the lineup knowledge base.
package fs

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/formazioni"
)

// Ensure Store implements formazioni.LineupStore at compile time.
var _ formazioni.LineupStore = (*Store)(nil)

// Store persists lineup entries as a JSON array in a single file.
// Writes are atomic: the file is written to a temporary path and renamed
// into place, so readers never observe a partially written knowledge base.
type Store struct {
	path string
}

// NewStore creates a new Store writing to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the knowledge-base file path.
func (s *Store) Path() string {
	return s.path
}

// SaveEntries writes the full entry set, replacing any previous set.
func (s *Store) SaveEntries(entries []formazioni.LineupEntry) error {
	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return err
		}
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}

// LoadEntries reads the current entry set.
func (s *Store) LoadEntries() ([]formazioni.LineupEntry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, formazioni.Errorf(formazioni.ENOTFOUND, "knowledge base %q not found", s.path)
	}
	if err != nil {
		return nil, err
	}

	var entries []formazioni.LineupEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, formazioni.Errorf(formazioni.EINVALID, "knowledge base %q is corrupted: %v", s.path, err)
	}

	return entries, nil
}
