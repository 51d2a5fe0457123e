// Package memory provides an in-memory implementation of
// formazioni.VectorIndex. It is the default index: the knowledge base is
// small (one chunk per fixture) and is rebuilt on every refresh, so nothing
// needs to survive the process.
package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/fwojciec/formazioni"
)

// Ensure Index implements formazioni.VectorIndex at compile time.
var _ formazioni.VectorIndex = (*Index)(nil)

// Index stores embedded chunks in memory and ranks them by cosine
// similarity. Index is safe for concurrent use by multiple goroutines.
type Index struct {
	mu         sync.RWMutex
	dimensions int
	chunks     map[string]*formazioni.Chunk
}

// NewIndex creates a new empty Index.
func NewIndex() *Index {
	return &Index{chunks: make(map[string]*formazioni.Chunk)}
}

// Reset prepares an empty collection for vectors of the given dimension.
func (x *Index) Reset(ctx context.Context, dimensions int) error {
	if dimensions <= 0 {
		return formazioni.Errorf(formazioni.EINVALID, "dimensions must be positive")
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	x.dimensions = dimensions
	x.chunks = make(map[string]*formazioni.Chunk)
	return nil
}

// Upsert inserts or replaces chunks.
func (x *Index) Upsert(ctx context.Context, chunks []*formazioni.Chunk) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	for _, c := range chunks {
		if err := c.Validate(); err != nil {
			return err
		}
		if x.dimensions > 0 && len(c.Embedding) != x.dimensions {
			return formazioni.Errorf(formazioni.EINVALID,
				"chunk %q embedding has %d dimensions, index expects %d", c.ID, len(c.Embedding), x.dimensions)
		}
		x.chunks[c.ID] = c
	}
	return nil
}

// Search returns up to limit chunks ranked by cosine similarity, best first.
func (x *Index) Search(ctx context.Context, embedding []float32, limit int) ([]formazioni.SearchResult, error) {
	if limit <= 0 {
		return nil, formazioni.Errorf(formazioni.EINVALID, "limit must be positive")
	}

	x.mu.RLock()
	defer x.mu.RUnlock()

	results := make([]formazioni.SearchResult, 0, len(x.chunks))
	for _, c := range x.chunks {
		results = append(results, formazioni.SearchResult{
			Chunk: c,
			Score: cosineSimilarity(embedding, c.Embedding),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		// Stable order for equal scores.
		return results[i].Chunk.ID < results[j].Chunk.ID
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Len returns the number of indexed chunks.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.chunks)
}

// Close releases index resources. For the in-memory index this is a no-op.
func (x *Index) Close() error {
	return nil
}

func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
