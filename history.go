package cdpdoc

import (
	"context"
	"time"
)

// HistoryEntry records one answered question.
type HistoryEntry struct {
	ID          string    `json:"id"`
	Question    string    `json:"question"`
	CDP         CDP       `json:"cdp"`
	Outcome     Outcome   `json:"outcome"`
	ResultCount int       `json:"resultCount"`
	AskedAt     time.Time `json:"askedAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *HistoryEntry) Validate() error {
	if e.CDP == "" {
		return Errorf(EINVALID, "history entry CDP required")
	}
	if e.Outcome == "" {
		return Errorf(EINVALID, "history entry outcome required")
	}
	return nil
}

// HistoryService represents a service for recording asked questions.
type HistoryService interface {
	// CreateEntry records a new entry, assigning its ID and AskedAt.
	CreateEntry(ctx context.Context, entry *HistoryEntry) error

	// FindEntries retrieves entries matching the filter, newest first.
	FindEntries(ctx context.Context, filter HistoryFilter) ([]*HistoryEntry, error)
}

// HistoryFilter represents a filter for FindEntries.
type HistoryFilter struct {
	CDP     *CDP     `json:"cdp"`
	Outcome *Outcome `json:"outcome"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
