package rag

import (
	"context"

	"github.com/fwojciec/formazioni"
)

// DefaultTopK is how many chunks retrieval returns. A Serie A matchday has
// ten fixtures, so fifteen chunks comfortably cover a full round.
const DefaultTopK = 15

// Retriever embeds a question and finds the most similar lineup chunks.
type Retriever struct {
	embedder formazioni.Embedder
	index    formazioni.VectorIndex
	topK     int
}

// RetrieverOption configures a Retriever.
type RetrieverOption func(*Retriever)

// WithTopK overrides how many chunks retrieval returns.
func WithTopK(k int) RetrieverOption {
	return func(r *Retriever) { r.topK = k }
}

// NewRetriever creates a Retriever.
func NewRetriever(embedder formazioni.Embedder, index formazioni.VectorIndex, opts ...RetrieverOption) *Retriever {
	r := &Retriever{embedder: embedder, index: index, topK: DefaultTopK}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Retrieve returns the chunks most similar to the question, best first.
// An empty result is not an error; the generator handles missing context.
func (r *Retriever) Retrieve(ctx context.Context, question string) ([]*formazioni.Chunk, error) {
	if question == "" {
		return nil, formazioni.Errorf(formazioni.EINVALID, "question required")
	}

	embedding, err := r.embedder.EmbedQuery(ctx, question)
	if err != nil {
		return nil, err
	}

	results, err := r.index.Search(ctx, embedding, r.topK)
	if err != nil {
		return nil, err
	}

	chunks := make([]*formazioni.Chunk, 0, len(results))
	for _, result := range results {
		chunks = append(chunks, result.Chunk)
	}
	return chunks, nil
}
