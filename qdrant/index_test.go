package qdrant

import (
	"testing"

	"github.com/fwojciec/formazioni"
	"github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkPayloadRoundTrip(t *testing.T) {
	t.Parallel()

	chunk := &formazioni.Chunk{
		ID:      "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		Content: "MATCH: Inter - Milan",
		Metadata: formazioni.ChunkMetadata{
			Match:    "Inter - Milan",
			HomeTeam: "Inter",
			AwayTeam: "Milan",
			Sources:  "Sky Sport, Fantacalcio",
		},
	}

	point := &qdrant.ScoredPoint{
		Id:      qdrant.NewID(chunk.ID),
		Payload: qdrant.NewValueMap(chunkPayload(chunk)),
	}

	got := chunkFromPoint(point)

	assert.Equal(t, chunk.ID, got.ID)
	assert.Equal(t, chunk.Content, got.Content)
	assert.Equal(t, chunk.Metadata, got.Metadata)
}

func TestChunkFromPoint_MissingPayloadFields(t *testing.T) {
	t.Parallel()

	point := &qdrant.ScoredPoint{
		Id:      qdrant.NewID("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		Payload: qdrant.NewValueMap(map[string]any{"content": "MATCH: Roma - Lazio"}),
	}

	got := chunkFromPoint(point)

	require.NotNil(t, got)
	assert.Equal(t, "MATCH: Roma - Lazio", got.Content)
	assert.Empty(t, got.Metadata.Match)
}

func TestNewIndex_DefaultCollection(t *testing.T) {
	t.Parallel()

	idx := NewIndex(nil, "")
	assert.Equal(t, DefaultCollection, idx.collection)
}
