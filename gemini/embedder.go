// Package gemini provides Google Gemini implementations of the embedding,
// generation and token counting interfaces.
package gemini

import (
	"context"

	"github.com/fwojciec/formazioni"
	"google.golang.org/genai"
)

// DefaultEmbeddingModel produces 768-dimensional vectors.
const DefaultEmbeddingModel = "text-embedding-004"

// EmbeddingDimensions is the vector size of DefaultEmbeddingModel. Vector
// index collections must be created with a matching dimension.
const EmbeddingDimensions = 768

// embedBatchSize caps the number of texts per EmbedContent request.
// The API rejects requests with more than 100 items; 50 leaves headroom.
const embedBatchSize = 50

// Task types per the embedding API contract: documents are embedded for
// storage, queries for search. Mixing them up degrades retrieval quality.
const (
	taskRetrievalDocument = "RETRIEVAL_DOCUMENT"
	taskRetrievalQuery    = "RETRIEVAL_QUERY"
)

// Ensure Embedder implements formazioni.Embedder at compile time.
var _ formazioni.Embedder = (*Embedder)(nil)

// Embedder generates embeddings using the Gemini embedding API.
//
// It is the single call site that adapts between plain text and the SDK's
// content-list argument shape, so a future SDK contract change stays
// contained here.
type Embedder struct {
	client *genai.Client
	model  string
}

// NewEmbedder creates a new Embedder. An empty model falls back to
// DefaultEmbeddingModel.
func NewEmbedder(client *genai.Client, model string) *Embedder {
	if model == "" {
		model = DefaultEmbeddingModel
	}
	return &Embedder{client: client, model: model}
}

// EmbedDocuments embeds knowledge-base chunks for indexing.
func (e *Embedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, 0, len(texts))

	for _, batch := range splitBatches(texts, embedBatchSize) {
		contents := make([]*genai.Content, len(batch))
		for i, text := range batch {
			contents[i] = genai.NewContentFromText(text, "user")
		}

		result, err := e.client.Models.EmbedContent(ctx, e.model, contents, &genai.EmbedContentConfig{
			TaskType: taskRetrievalDocument,
		})
		if err != nil {
			return nil, err
		}
		if result == nil || len(result.Embeddings) != len(batch) {
			return nil, formazioni.Errorf(formazioni.EINTERNAL,
				"embedding service returned %d vectors for %d texts", embeddingCount(result), len(batch))
		}

		for _, emb := range result.Embeddings {
			vectors = append(vectors, emb.Values)
		}
	}

	return vectors, nil
}

// EmbedQuery embeds a user question for similarity search.
func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, formazioni.Errorf(formazioni.EINVALID, "query text required")
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model,
		[]*genai.Content{genai.NewContentFromText(text, "user")},
		&genai.EmbedContentConfig{TaskType: taskRetrievalQuery},
	)
	if err != nil {
		return nil, err
	}
	if result == nil || len(result.Embeddings) == 0 {
		return nil, formazioni.Errorf(formazioni.EINTERNAL, "embedding service returned no vector")
	}

	return result.Embeddings[0].Values, nil
}

func embeddingCount(result *genai.EmbedContentResponse) int {
	if result == nil {
		return 0
	}
	return len(result.Embeddings)
}

// splitBatches splits texts into consecutive batches of at most size items.
func splitBatches(texts []string, size int) [][]string {
	if size <= 0 {
		size = 1
	}
	var batches [][]string
	for len(texts) > 0 {
		n := min(size, len(texts))
		batches = append(batches, texts[:n])
		texts = texts[n:]
	}
	return batches
}
