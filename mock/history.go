package mock

import (
	"context"

	"github.com/fwojciec/cdpdoc"
)

var _ cdpdoc.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of cdpdoc.HistoryService.
type HistoryService struct {
	CreateEntryFn func(ctx context.Context, entry *cdpdoc.HistoryEntry) error
	FindEntriesFn func(ctx context.Context, filter cdpdoc.HistoryFilter) ([]*cdpdoc.HistoryEntry, error)
}

func (s *HistoryService) CreateEntry(ctx context.Context, entry *cdpdoc.HistoryEntry) error {
	return s.CreateEntryFn(ctx, entry)
}

func (s *HistoryService) FindEntries(ctx context.Context, filter cdpdoc.HistoryFilter) ([]*cdpdoc.HistoryEntry, error) {
	return s.FindEntriesFn(ctx, filter)
}
