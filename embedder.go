package formazioni

import "context"

// Embedder produces vector embeddings for text.
//
// The two methods exist because the embedding API distinguishes task types:
// stored chunks are embedded as retrieval documents, user questions as
// retrieval queries. Keeping the distinction behind this interface isolates
// the SDK's argument shape to a single call site per task type.
type Embedder interface {
	// EmbedDocuments embeds knowledge-base chunks for indexing.
	// Returns one vector per input text, in order.
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedQuery embeds a user question for similarity search.
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}
