// Package mock provides function-field mocks of the domain interfaces for
// testing.
package mock

import (
	"context"

	"github.com/fwojciec/formazioni"
)

var _ formazioni.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of formazioni.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (m *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return m.FetchFn(ctx, url)
}

func (m *Fetcher) Close() error {
	if m.CloseFn == nil {
		return nil
	}
	return m.CloseFn()
}

var _ formazioni.MatchSource = (*MatchSource)(nil)

// MatchSource is a mock implementation of formazioni.MatchSource.
type MatchSource struct {
	NameFn  func() string
	ParseFn func(html string) ([]*formazioni.Match, error)
}

func (m *MatchSource) Name() string {
	return m.NameFn()
}

func (m *MatchSource) Parse(html string) ([]*formazioni.Match, error) {
	return m.ParseFn(html)
}

var _ formazioni.LineupStore = (*LineupStore)(nil)

// LineupStore is a mock implementation of formazioni.LineupStore.
type LineupStore struct {
	SaveEntriesFn func(entries []formazioni.LineupEntry) error
	LoadEntriesFn func() ([]formazioni.LineupEntry, error)
}

func (m *LineupStore) SaveEntries(entries []formazioni.LineupEntry) error {
	return m.SaveEntriesFn(entries)
}

func (m *LineupStore) LoadEntries() ([]formazioni.LineupEntry, error) {
	return m.LoadEntriesFn()
}

var _ formazioni.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of formazioni.Embedder.
type Embedder struct {
	EmbedDocumentsFn func(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQueryFn     func(ctx context.Context, text string) ([]float32, error)
}

func (m *Embedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	return m.EmbedDocumentsFn(ctx, texts)
}

func (m *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return m.EmbedQueryFn(ctx, text)
}

var _ formazioni.VectorIndex = (*VectorIndex)(nil)

// VectorIndex is a mock implementation of formazioni.VectorIndex.
type VectorIndex struct {
	ResetFn  func(ctx context.Context, dimensions int) error
	UpsertFn func(ctx context.Context, chunks []*formazioni.Chunk) error
	SearchFn func(ctx context.Context, embedding []float32, limit int) ([]formazioni.SearchResult, error)
	CloseFn  func() error
}

func (m *VectorIndex) Reset(ctx context.Context, dimensions int) error {
	return m.ResetFn(ctx, dimensions)
}

func (m *VectorIndex) Upsert(ctx context.Context, chunks []*formazioni.Chunk) error {
	return m.UpsertFn(ctx, chunks)
}

func (m *VectorIndex) Search(ctx context.Context, embedding []float32, limit int) ([]formazioni.SearchResult, error) {
	return m.SearchFn(ctx, embedding, limit)
}

func (m *VectorIndex) Close() error {
	if m.CloseFn == nil {
		return nil
	}
	return m.CloseFn()
}

var _ formazioni.Generator = (*Generator)(nil)

// Generator is a mock implementation of formazioni.Generator.
type Generator struct {
	AnswerFn func(ctx context.Context, question string, chunks []*formazioni.Chunk) (string, error)
}

func (m *Generator) Answer(ctx context.Context, question string, chunks []*formazioni.Chunk) (string, error) {
	return m.AnswerFn(ctx, question, chunks)
}

var _ formazioni.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of formazioni.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (m *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return m.CountTokensFn(ctx, text)
}

var _ formazioni.ArchiveService = (*ArchiveService)(nil)

// ArchiveService is a mock implementation of formazioni.ArchiveService.
type ArchiveService struct {
	RecordRunFn   func(ctx context.Context, run *formazioni.ScrapeRun, entries []formazioni.LineupEntry) error
	FindRunsFn    func(ctx context.Context, filter formazioni.RunFilter) ([]*formazioni.ScrapeRun, error)
	FindEntriesFn func(ctx context.Context, filter formazioni.EntryFilter) ([]formazioni.LineupEntry, error)
}

func (m *ArchiveService) RecordRun(ctx context.Context, run *formazioni.ScrapeRun, entries []formazioni.LineupEntry) error {
	return m.RecordRunFn(ctx, run, entries)
}

func (m *ArchiveService) FindRuns(ctx context.Context, filter formazioni.RunFilter) ([]*formazioni.ScrapeRun, error) {
	return m.FindRunsFn(ctx, filter)
}

func (m *ArchiveService) FindEntries(ctx context.Context, filter formazioni.EntryFilter) ([]formazioni.LineupEntry, error) {
	return m.FindEntriesFn(ctx, filter)
}
