package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cdpdoc"
)

// Ensure LoggingEmbedder implements cdpdoc.Embedder.
var _ cdpdoc.Embedder = (*LoggingEmbedder)(nil)

// LoggingEmbedder wraps an Embedder with debug logging. Embeddings run once
// per candidate line, so successful calls log at debug level only.
type LoggingEmbedder struct {
	next   cdpdoc.Embedder
	logger *slog.Logger
}

// NewLoggingEmbedder creates a new LoggingEmbedder.
func NewLoggingEmbedder(next cdpdoc.Embedder, logger *slog.Logger) *LoggingEmbedder {
	return &LoggingEmbedder{next: next, logger: logger}
}

// Embed delegates to the wrapped embedder and logs the operation.
func (e *LoggingEmbedder) Embed(ctx context.Context, text string) (vec []float32, err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelError
		}
		e.logger.Log(ctx, level, "embed",
			"chars", len([]rune(text)),
			"dims", len(vec),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Embed(ctx, text)
}
