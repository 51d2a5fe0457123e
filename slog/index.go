package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/formazioni"
)

// Ensure LoggingIndex implements formazioni.VectorIndex.
var _ formazioni.VectorIndex = (*LoggingIndex)(nil)

// LoggingIndex wraps a VectorIndex with logging.
type LoggingIndex struct {
	next   formazioni.VectorIndex
	logger *slog.Logger
}

// NewLoggingIndex creates a new LoggingIndex.
func NewLoggingIndex(next formazioni.VectorIndex, logger *slog.Logger) *LoggingIndex {
	return &LoggingIndex{next: next, logger: logger}
}

// Reset delegates to the wrapped index and logs the operation.
func (i *LoggingIndex) Reset(ctx context.Context, dimensions int) (err error) {
	defer func(begin time.Time) {
		i.logger.Info("index reset",
			"dimensions", dimensions,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Reset(ctx, dimensions)
}

// Upsert delegates to the wrapped index and logs the operation.
func (i *LoggingIndex) Upsert(ctx context.Context, chunks []*formazioni.Chunk) (err error) {
	defer func(begin time.Time) {
		i.logger.Info("index upsert",
			"chunks", len(chunks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Upsert(ctx, chunks)
}

// Search delegates to the wrapped index and logs the operation.
func (i *LoggingIndex) Search(ctx context.Context, embedding []float32, limit int) (results []formazioni.SearchResult, err error) {
	defer func(begin time.Time) {
		i.logger.Info("index search",
			"limit", limit,
			"results", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Search(ctx, embedding, limit)
}

// Close delegates to the wrapped index.
func (i *LoggingIndex) Close() error {
	return i.next.Close()
}
