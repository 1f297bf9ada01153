package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/cdpdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ cdpdoc.HistoryService = (*HistoryService)(nil)

// HistoryService implements cdpdoc.HistoryService using SQLite.
type HistoryService struct {
	db *DB

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db, Now: time.Now}
}

// CreateEntry records a new entry.
func (s *HistoryService) CreateEntry(ctx context.Context, entry *cdpdoc.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	entry.AskedAt = s.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO history (id, question, cdp, outcome, result_count, asked_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Question, string(entry.CDP), string(entry.Outcome), entry.ResultCount,
		entry.AskedAt.Format(time.RFC3339))

	return err
}

// FindEntries retrieves entries matching the filter, newest first.
func (s *HistoryService) FindEntries(ctx context.Context, filter cdpdoc.HistoryFilter) ([]*cdpdoc.HistoryEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, question, cdp, outcome, result_count, asked_at FROM history WHERE 1=1")

	if filter.CDP != nil {
		query.WriteString(" AND cdp = ?")
		args = append(args, string(*filter.CDP))
	}
	if filter.Outcome != nil {
		query.WriteString(" AND outcome = ?")
		args = append(args, string(*filter.Outcome))
	}

	query.WriteString(" ORDER BY asked_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*cdpdoc.HistoryEntry
	for rows.Next() {
		var entry cdpdoc.HistoryEntry
		var cdp, outcome, askedAt string

		if err := rows.Scan(&entry.ID, &entry.Question, &cdp, &outcome,
			&entry.ResultCount, &askedAt); err != nil {
			return nil, err
		}
		entry.CDP = cdpdoc.CDP(cdp)
		entry.Outcome = cdpdoc.Outcome(outcome)

		if entry.AskedAt, err = parseRFC3339(askedAt, "asked_at"); err != nil {
			return nil, err
		}

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}
