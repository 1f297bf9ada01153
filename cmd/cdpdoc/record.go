package main

import (
	"context"
	"log/slog"

	"github.com/fwojciec/cdpdoc"
)

// Ensure RecordingSearcher implements cdpdoc.Searcher at compile time.
var _ cdpdoc.Searcher = (*RecordingSearcher)(nil)

// RecordingSearcher writes a history entry for every answered question.
type RecordingSearcher struct {
	Searcher cdpdoc.Searcher
	History  cdpdoc.HistoryService
	Logger   *slog.Logger
}

// Search delegates to the wrapped searcher and records the outcome.
func (s *RecordingSearcher) Search(ctx context.Context, cdp cdpdoc.CDP, question string) (*cdpdoc.Result, error) {
	res, err := s.Searcher.Search(ctx, cdp, question)
	if err != nil {
		return nil, err
	}
	recordHistory(ctx, s.History, s.Logger, question, res)
	return res, nil
}

// recordHistory saves res for question. The answer is still useful when
// history cannot be written, so failures are only logged.
func recordHistory(ctx context.Context, history cdpdoc.HistoryService, logger *slog.Logger, question string, res *cdpdoc.Result) {
	if history == nil {
		return
	}
	entry := &cdpdoc.HistoryEntry{
		Question:    question,
		CDP:         res.CDP,
		Outcome:     res.Outcome,
		ResultCount: len(res.Lines),
	}
	if err := history.CreateEntry(ctx, entry); err != nil {
		logger.Warn("record history", "err", err)
	}
}
