package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/formazioni"
	main "github.com/fwojciec/formazioni/cmd/formazioni"
	"github.com/fwojciec/formazioni/mock"
	"github.com/fwojciec/formazioni/rag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssistant(answer string) *rag.Assistant {
	embedder := &mock.Embedder{
		EmbedQueryFn: func(_ context.Context, text string) ([]float32, error) {
			return []float32{1, 0}, nil
		},
	}
	index := &mock.VectorIndex{
		SearchFn: func(_ context.Context, embedding []float32, limit int) ([]formazioni.SearchResult, error) {
			return []formazioni.SearchResult{
				{Chunk: &formazioni.Chunk{ID: "c1", Content: "Sommer (Goalkeeper)"}, Score: 0.9},
			}, nil
		},
	}
	generator := &mock.Generator{
		AnswerFn: func(_ context.Context, question string, chunks []*formazioni.Chunk) (string, error) {
			return answer, nil
		},
	}
	return rag.NewAssistant(rag.NewRetriever(embedder, index), generator)
}

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("asks question and prints answer", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Assistant: newTestAssistant("Il portiere titolare dell'Inter è Sommer."),
		}

		cmd := &main.AskCmd{Question: "Chi è il portiere titolare dell'Inter?"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Sommer")
	})

	t.Run("rebuilds the in-memory index first when configured", func(t *testing.T) {
		t.Parallel()

		built := false
		store := &mock.LineupStore{
			LoadEntriesFn: func() ([]formazioni.LineupEntry, error) {
				built = true
				return []formazioni.LineupEntry{
					{Match: "Inter - Milan", Team: "Inter", Player: "Sommer", Role: formazioni.RoleGoalkeeper, Note: "titolare"},
				}, nil
			},
		}
		embedder := &mock.Embedder{
			EmbedDocumentsFn: func(_ context.Context, texts []string) ([][]float32, error) {
				return [][]float32{{1, 0}}, nil
			},
			EmbedQueryFn: func(_ context.Context, text string) ([]float32, error) {
				return []float32{1, 0}, nil
			},
		}
		index := &mock.VectorIndex{
			ResetFn:  func(_ context.Context, dimensions int) error { return nil },
			UpsertFn: func(_ context.Context, chunks []*formazioni.Chunk) error { return nil },
			SearchFn: func(_ context.Context, embedding []float32, limit int) ([]formazioni.SearchResult, error) {
				return nil, nil
			},
		}
		generator := &mock.Generator{
			AnswerFn: func(_ context.Context, question string, chunks []*formazioni.Chunk) (string, error) {
				return "ok", nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Builder:   rag.NewBuilder(store, embedder, index),
			Assistant: rag.NewAssistant(rag.NewRetriever(embedder, index), generator),
		}

		cmd := &main.AskCmd{Question: "Chi gioca?"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.True(t, built)
	})

	t.Run("hints at scraping when the knowledge base is missing", func(t *testing.T) {
		t.Parallel()

		store := &mock.LineupStore{
			LoadEntriesFn: func() ([]formazioni.LineupEntry, error) {
				return nil, formazioni.Errorf(formazioni.ENOTFOUND, "knowledge base not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Builder: rag.NewBuilder(store, &mock.Embedder{}, &mock.VectorIndex{}),
		}

		cmd := &main.AskCmd{Question: "Chi gioca?"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "formazioni scrape")
	})
}
