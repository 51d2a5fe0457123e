package memory_test

import (
	"context"
	"testing"

	"github.com/fwojciec/formazioni"
	"github.com/fwojciec/formazioni/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	t.Run("exact vector is the top match", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		idx := memory.NewIndex()
		require.NoError(t, idx.Reset(ctx, 3))

		chunks := []*formazioni.Chunk{
			{ID: "inter-milan", Content: "MATCH: Inter - Milan", Embedding: []float32{1, 0, 0}},
			{ID: "roma-lazio", Content: "MATCH: Roma - Lazio", Embedding: []float32{0, 1, 0}},
			{ID: "napoli-torino", Content: "MATCH: Napoli - Torino", Embedding: []float32{0, 0, 1}},
		}
		require.NoError(t, idx.Upsert(ctx, chunks))

		results, err := idx.Search(ctx, []float32{0, 1, 0}, 2)

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "roma-lazio", results[0].Chunk.ID)
		assert.InDelta(t, 1.0, results[0].Score, 1e-6)
		assert.Greater(t, results[0].Score, results[1].Score)
	})

	t.Run("ranks by cosine similarity, not magnitude", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		idx := memory.NewIndex()
		require.NoError(t, idx.Reset(ctx, 2))

		require.NoError(t, idx.Upsert(ctx, []*formazioni.Chunk{
			{ID: "long", Content: "a", Embedding: []float32{10, 0}},
			{ID: "close", Content: "b", Embedding: []float32{0.9, 0.1}},
		}))

		results, err := idx.Search(ctx, []float32{1, 0}, 2)

		require.NoError(t, err)
		assert.Equal(t, "long", results[0].Chunk.ID)
	})

	t.Run("limit caps results", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		idx := memory.NewIndex()
		require.NoError(t, idx.Reset(ctx, 2))

		require.NoError(t, idx.Upsert(ctx, []*formazioni.Chunk{
			{ID: "a", Content: "a", Embedding: []float32{1, 0}},
			{ID: "b", Content: "b", Embedding: []float32{0, 1}},
		}))

		results, err := idx.Search(ctx, []float32{1, 1}, 1)

		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("empty index returns no results", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		idx := memory.NewIndex()
		require.NoError(t, idx.Reset(ctx, 2))

		results, err := idx.Search(ctx, []float32{1, 0}, 5)

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("invalid limit is rejected", func(t *testing.T) {
		t.Parallel()

		idx := memory.NewIndex()
		_, err := idx.Search(context.Background(), []float32{1, 0}, 0)

		assert.Equal(t, formazioni.EINVALID, formazioni.ErrorCode(err))
	})
}

func TestIndex_Upsert(t *testing.T) {
	t.Parallel()

	t.Run("replaces chunks with the same ID", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		idx := memory.NewIndex()
		require.NoError(t, idx.Reset(ctx, 2))

		require.NoError(t, idx.Upsert(ctx, []*formazioni.Chunk{
			{ID: "a", Content: "old", Embedding: []float32{1, 0}},
		}))
		require.NoError(t, idx.Upsert(ctx, []*formazioni.Chunk{
			{ID: "a", Content: "new", Embedding: []float32{0, 1}},
		}))

		assert.Equal(t, 1, idx.Len())

		results, err := idx.Search(ctx, []float32{0, 1}, 1)
		require.NoError(t, err)
		assert.Equal(t, "new", results[0].Chunk.Content)
	})

	t.Run("rejects wrong dimensions", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		idx := memory.NewIndex()
		require.NoError(t, idx.Reset(ctx, 3))

		err := idx.Upsert(ctx, []*formazioni.Chunk{
			{ID: "a", Content: "a", Embedding: []float32{1, 0}},
		})

		assert.Equal(t, formazioni.EINVALID, formazioni.ErrorCode(err))
	})

	t.Run("rejects invalid chunks", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		idx := memory.NewIndex()
		require.NoError(t, idx.Reset(ctx, 2))

		err := idx.Upsert(ctx, []*formazioni.Chunk{{ID: "a", Embedding: []float32{1, 0}}})

		assert.Equal(t, formazioni.EINVALID, formazioni.ErrorCode(err))
	})
}

func TestIndex_Reset(t *testing.T) {
	t.Parallel()

	t.Run("drops previously indexed chunks", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		idx := memory.NewIndex()
		require.NoError(t, idx.Reset(ctx, 2))
		require.NoError(t, idx.Upsert(ctx, []*formazioni.Chunk{
			{ID: "a", Content: "a", Embedding: []float32{1, 0}},
		}))

		require.NoError(t, idx.Reset(ctx, 2))

		assert.Equal(t, 0, idx.Len())
	})

	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		t.Parallel()

		idx := memory.NewIndex()
		err := idx.Reset(context.Background(), 0)

		assert.Equal(t, formazioni.EINVALID, formazioni.ErrorCode(err))
	})
}
