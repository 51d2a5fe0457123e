// Package rag builds the vector knowledge base and answers questions over it.
package rag

import (
	"context"
	"strings"

	"github.com/fwojciec/formazioni"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// embedBatchSize caps how many chunk texts go into one embedding call.
// The rate limiter is consulted once per batch.
const embedBatchSize = 100

// chunkNamespace seeds deterministic chunk IDs, so rebuilding the knowledge
// base for the same fixtures overwrites the previous vectors instead of
// accumulating duplicates.
var chunkNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// ChunkID returns the deterministic ID for a fixture's chunk.
func ChunkID(match string) string {
	return uuid.NewSHA1(chunkNamespace, []byte("formazioni:"+match)).String()
}

// ChunksFromEntries groups flat entries by fixture and renders one chunk per
// match, preserving the order fixtures first appear in.
func ChunksFromEntries(entries []formazioni.LineupEntry) []*formazioni.Chunk {
	var matches []string
	byMatch := make(map[string][]formazioni.LineupEntry)
	for _, e := range entries {
		if _, ok := byMatch[e.Match]; !ok {
			matches = append(matches, e.Match)
		}
		byMatch[e.Match] = append(byMatch[e.Match], e)
	}

	chunks := make([]*formazioni.Chunk, 0, len(matches))
	for _, match := range matches {
		home, away := splitFixture(match)
		chunks = append(chunks, &formazioni.Chunk{
			ID:      ChunkID(match),
			Content: formazioni.FormatEntries(match, byMatch[match]),
			Metadata: formazioni.ChunkMetadata{
				Match:    match,
				HomeTeam: home,
				AwayTeam: away,
			},
		})
	}
	return chunks
}

// ChunksFromReports renders one chunk per match report. Reports carry the
// full team sheets, so the chunk text includes formations, bench and
// unavailable players alongside the starting XI.
func ChunksFromReports(reports []*formazioni.MatchReport) []*formazioni.Chunk {
	chunks := make([]*formazioni.Chunk, 0, len(reports))
	for _, r := range reports {
		meta := formazioni.ChunkMetadata{Match: r.Name}
		var sources []string
		for _, m := range r.Sources {
			sources = append(sources, m.Source)
		}
		meta.Sources = strings.Join(sources, ", ")
		if len(r.Sources) > 0 {
			meta.HomeTeam = r.Sources[0].Home.Team
			meta.AwayTeam = r.Sources[0].Away.Team
		}

		chunks = append(chunks, &formazioni.Chunk{
			ID:       ChunkID(r.Name),
			Content:  formazioni.FormatReport(r),
			Metadata: meta,
		})
	}
	return chunks
}

// splitFixture derives team names from a fixture name like "Inter - Milan".
func splitFixture(match string) (home, away string) {
	for _, sep := range []string{" - ", "-"} {
		if i := strings.Index(match, sep); i >= 0 {
			return strings.TrimSpace(match[:i]), strings.TrimSpace(match[i+len(sep):])
		}
	}
	return "", ""
}

// BuildResult summarizes a knowledge-base build.
type BuildResult struct {
	Chunks     int
	Tokens     int
	Dimensions int
}

// Builder embeds lineup chunks and loads them into the vector index.
type Builder struct {
	store    formazioni.LineupStore
	embedder formazioni.Embedder
	index    formazioni.VectorIndex
	counter  formazioni.TokenCounter
	limiter  *rate.Limiter
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithTokenCounter reports the token footprint of each build.
func WithTokenCounter(counter formazioni.TokenCounter) BuilderOption {
	return func(b *Builder) { b.counter = counter }
}

// WithRateLimiter throttles embedding batches.
func WithRateLimiter(limiter *rate.Limiter) BuilderOption {
	return func(b *Builder) { b.limiter = limiter }
}

// NewBuilder creates a Builder.
func NewBuilder(store formazioni.LineupStore, embedder formazioni.Embedder, index formazioni.VectorIndex, opts ...BuilderOption) *Builder {
	b := &Builder{store: store, embedder: embedder, index: index}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build loads the knowledge-base file and indexes one chunk per fixture.
// Returns ENOTFOUND when no knowledge base has been scraped yet.
func (b *Builder) Build(ctx context.Context) (*BuildResult, error) {
	entries, err := b.store.LoadEntries()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, formazioni.Errorf(formazioni.EINVALID, "knowledge base is empty")
	}
	return b.BuildChunks(ctx, ChunksFromEntries(entries))
}

// BuildChunks embeds the chunks and replaces the index contents with them.
func (b *Builder) BuildChunks(ctx context.Context, chunks []*formazioni.Chunk) (*BuildResult, error) {
	if len(chunks) == 0 {
		return nil, formazioni.Errorf(formazioni.EINVALID, "no chunks to index")
	}
	for _, chunk := range chunks {
		if err := chunk.Validate(); err != nil {
			return nil, err
		}
	}

	result := &BuildResult{Chunks: len(chunks)}

	for start := 0; start < len(chunks); start += embedBatchSize {
		end := min(start+embedBatchSize, len(chunks))
		batch := chunks[start:end]

		if b.limiter != nil {
			if err := b.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		texts := make([]string, len(batch))
		for i, chunk := range batch {
			texts[i] = chunk.Content
		}
		vectors, err := b.embedder.EmbedDocuments(ctx, texts)
		if err != nil {
			return nil, err
		}
		if len(vectors) != len(batch) {
			return nil, formazioni.Errorf(formazioni.EINTERNAL, "embedder returned %d vectors for %d chunks", len(vectors), len(batch))
		}
		for i, chunk := range batch {
			chunk.Embedding = vectors[i]
		}
	}

	result.Dimensions = len(chunks[0].Embedding)

	if b.counter != nil {
		for _, chunk := range chunks {
			n, err := b.counter.CountTokens(ctx, chunk.Content)
			if err != nil {
				return nil, err
			}
			result.Tokens += n
		}
	}

	if err := b.index.Reset(ctx, result.Dimensions); err != nil {
		return nil, err
	}
	if err := b.index.Upsert(ctx, chunks); err != nil {
		return nil, err
	}

	return result, nil
}
