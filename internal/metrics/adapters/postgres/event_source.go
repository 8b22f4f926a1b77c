package postgres

import (
	"context"
	"time"

	"engagement-metrics-service/internal/metrics/core/domain"
	"engagement-metrics-service/internal/metrics/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// EventSource loads raw activity events for a date window. Aggregation
// happens in the core, not in SQL; this adapter only filters by date.
type EventSource struct {
	db DB
}

func NewEventSource(db DB) *EventSource {
	return &EventSource{db: db}
}

var _ ports.EventSourcePort = (*EventSource)(nil)

const loadEventsSQL = `
SELECT account_id, user_id, occurred_on
FROM events
WHERE occurred_on BETWEEN $1 AND $2
ORDER BY occurred_on, account_id`

func (s *EventSource) LoadEvents(ctx context.Context, from, to time.Time) ([]domain.ActivityEvent, error) {
	rows, err := s.db.QueryContext(ctx, loadEventsSQL, dateOnly(from), dateOnly(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.ActivityEvent
	for rows.Next() {
		var accountID, userID string
		var occurredOn time.Time

		if err := rows.Scan(&accountID, &userID, &occurredOn); err != nil {
			return nil, err
		}

		events = append(events, domain.ActivityEvent{
			AccountID:  accountID,
			UserID:     userID,
			OccurredOn: dateOnly(occurredOn),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// dateOnly drops any time-of-day component; the occurred_on column is DATE.
func dateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
