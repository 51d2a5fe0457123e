package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/formazioni"
)

// Ensure LoggingEmbedder implements formazioni.Embedder.
var _ formazioni.Embedder = (*LoggingEmbedder)(nil)

// LoggingEmbedder wraps an Embedder with logging.
type LoggingEmbedder struct {
	next   formazioni.Embedder
	logger *slog.Logger
}

// NewLoggingEmbedder creates a new LoggingEmbedder.
func NewLoggingEmbedder(next formazioni.Embedder, logger *slog.Logger) *LoggingEmbedder {
	return &LoggingEmbedder{next: next, logger: logger}
}

// EmbedDocuments delegates to the wrapped embedder and logs the operation.
func (e *LoggingEmbedder) EmbedDocuments(ctx context.Context, texts []string) (vectors [][]float32, err error) {
	defer func(begin time.Time) {
		e.logger.Info("embed documents",
			"texts", len(texts),
			"vectors", len(vectors),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.EmbedDocuments(ctx, texts)
}

// EmbedQuery delegates to the wrapped embedder and logs the operation.
func (e *LoggingEmbedder) EmbedQuery(ctx context.Context, text string) (vector []float32, err error) {
	defer func(begin time.Time) {
		e.logger.Info("embed query",
			"chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.EmbedQuery(ctx, text)
}
