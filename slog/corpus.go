package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cdpdoc"
)

// Ensure LoggingCorpusService implements cdpdoc.CorpusService.
var _ cdpdoc.CorpusService = (*LoggingCorpusService)(nil)

// LoggingCorpusService wraps a CorpusService with logging.
type LoggingCorpusService struct {
	next   cdpdoc.CorpusService
	logger *slog.Logger
}

// NewLoggingCorpusService creates a new LoggingCorpusService.
func NewLoggingCorpusService(next cdpdoc.CorpusService, logger *slog.Logger) *LoggingCorpusService {
	return &LoggingCorpusService{next: next, logger: logger}
}

// Lines delegates to the wrapped service and logs the line count.
func (s *LoggingCorpusService) Lines(ctx context.Context, cdp cdpdoc.CDP) (lines []string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("corpus load",
			"cdp", cdp,
			"lines", len(lines),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Lines(ctx, cdp)
}

// ReplaceLines delegates to the wrapped service and logs the operation.
func (s *LoggingCorpusService) ReplaceLines(ctx context.Context, cdp cdpdoc.CDP, lines []string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("corpus replace",
			"cdp", cdp,
			"lines", len(lines),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReplaceLines(ctx, cdp, lines)
}
