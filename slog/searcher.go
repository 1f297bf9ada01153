// Package slog provides log/slog decorators for cdpdoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cdpdoc"
)

// Ensure LoggingSearcher implements cdpdoc.Searcher.
var _ cdpdoc.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with logging.
type LoggingSearcher struct {
	next   cdpdoc.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next cdpdoc.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the outcome.
func (s *LoggingSearcher) Search(ctx context.Context, cdp cdpdoc.CDP, question string) (res *cdpdoc.Result, err error) {
	defer func(begin time.Time) {
		attrs := []any{"cdp", cdp}
		if res != nil {
			attrs = append(attrs, "outcome", res.Outcome, "results", len(res.Lines))
			if res.Stage != "" {
				attrs = append(attrs, "stage", res.Stage)
			}
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		s.logger.Info("search", attrs...)
	}(time.Now())
	return s.next.Search(ctx, cdp, question)
}
