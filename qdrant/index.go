// Package qdrant provides a Qdrant-backed implementation of
// formazioni.VectorIndex for setups where the knowledge base should outlive
// the process.
package qdrant

import (
	"context"

	"github.com/fwojciec/formazioni"
	"github.com/qdrant/go-client/qdrant"
)

// DefaultCollection is the collection name used when none is configured.
const DefaultCollection = "serie_a_matches"

// Ensure Index implements formazioni.VectorIndex at compile time.
var _ formazioni.VectorIndex = (*Index)(nil)

// Index stores embedded chunks in a Qdrant collection using cosine distance.
type Index struct {
	client     *qdrant.Client
	collection string
}

// NewIndex creates a new Index on the given client and collection name.
// An empty collection name falls back to DefaultCollection.
func NewIndex(client *qdrant.Client, collection string) *Index {
	if collection == "" {
		collection = DefaultCollection
	}
	return &Index{client: client, collection: collection}
}

// Connect dials a Qdrant server over gRPC.
func Connect(host string, port int) (*qdrant.Client, error) {
	return qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
}

// Reset recreates the collection for vectors of the given dimension,
// dropping any previously indexed chunks.
func (x *Index) Reset(ctx context.Context, dimensions int) error {
	if dimensions <= 0 {
		return formazioni.Errorf(formazioni.EINVALID, "dimensions must be positive")
	}

	exists, err := x.client.CollectionExists(ctx, x.collection)
	if err != nil {
		return err
	}
	if exists {
		if err := x.client.DeleteCollection(ctx, x.collection); err != nil {
			return err
		}
	}

	return x.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: x.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(dimensions),
			Distance: qdrant.Distance_Cosine,
		}),
	})
}

// Upsert inserts or replaces chunks. Chunk IDs must be UUIDs since Qdrant
// only accepts UUID or integer point IDs.
func (x *Index) Upsert(ctx context.Context, chunks []*formazioni.Chunk) error {
	points := make([]*qdrant.PointStruct, 0, len(chunks))
	for _, c := range chunks {
		if err := c.Validate(); err != nil {
			return err
		}
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(c.ID),
			Vectors: qdrant.NewVectors(c.Embedding...),
			Payload: qdrant.NewValueMap(chunkPayload(c)),
		})
	}

	_, err := x.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: x.collection,
		Points:         points,
		Wait:           qdrant.PtrOf(true),
	})
	return err
}

// Search returns up to limit chunks ranked by cosine similarity, best first.
func (x *Index) Search(ctx context.Context, embedding []float32, limit int) ([]formazioni.SearchResult, error) {
	if limit <= 0 {
		return nil, formazioni.Errorf(formazioni.EINVALID, "limit must be positive")
	}

	points, err := x.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: x.collection,
		Query:          qdrant.NewQuery(embedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, err
	}

	results := make([]formazioni.SearchResult, 0, len(points))
	for _, p := range points {
		results = append(results, formazioni.SearchResult{
			Chunk: chunkFromPoint(p),
			Score: p.GetScore(),
		})
	}
	return results, nil
}

// Close closes the underlying client connection.
func (x *Index) Close() error {
	return x.client.Close()
}

func chunkPayload(c *formazioni.Chunk) map[string]any {
	return map[string]any{
		"content":  c.Content,
		"match":    c.Metadata.Match,
		"homeTeam": c.Metadata.HomeTeam,
		"awayTeam": c.Metadata.AwayTeam,
		"sources":  c.Metadata.Sources,
	}
}

func chunkFromPoint(p *qdrant.ScoredPoint) *formazioni.Chunk {
	payload := p.GetPayload()
	get := func(key string) string {
		if v, ok := payload[key]; ok {
			return v.GetStringValue()
		}
		return ""
	}

	return &formazioni.Chunk{
		ID:      p.GetId().GetUuid(),
		Content: get("content"),
		Metadata: formazioni.ChunkMetadata{
			Match:    get("match"),
			HomeTeam: get("homeTeam"),
			AwayTeam: get("awayTeam"),
			Sources:  get("sources"),
		},
	}
}
