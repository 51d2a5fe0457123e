package formazioni

import "context"

// Chunk is the text rendering of one match's predicted lineups together with
// its embedding vector. Chunks are created once per knowledge-base build and
// never mutated; a rebuild replaces the whole set.
type Chunk struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	Embedding []float32     `json:"embedding,omitempty"`
	Metadata  ChunkMetadata `json:"metadata"`
}

// ChunkMetadata carries the fixture context of a chunk for citation and
// filtering.
type ChunkMetadata struct {
	Match    string `json:"match,omitempty"`
	HomeTeam string `json:"homeTeam,omitempty"`
	AwayTeam string `json:"awayTeam,omitempty"`
	Sources  string `json:"sources,omitempty"`
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.ID == "" {
		return Errorf(EINVALID, "chunk ID required")
	}
	if c.Content == "" {
		return Errorf(EINVALID, "chunk content required")
	}
	return nil
}

// SearchResult is a vector search match.
type SearchResult struct {
	Chunk *Chunk  `json:"chunk"`
	Score float32 `json:"score"`
}

// VectorIndex stores embedded chunks and answers nearest-neighbor queries.
// Similarity ranking is entirely the index's concern; callers do no
// re-ranking.
type VectorIndex interface {
	// Reset prepares an empty collection for vectors of the given dimension,
	// dropping any previously indexed chunks.
	Reset(ctx context.Context, dimensions int) error

	// Upsert inserts or replaces chunks. Chunks must carry embeddings.
	Upsert(ctx context.Context, chunks []*Chunk) error

	// Search returns up to limit chunks ranked by similarity to the
	// embedding, best first.
	Search(ctx context.Context, embedding []float32, limit int) ([]SearchResult, error)

	// Close releases index resources.
	Close() error
}
