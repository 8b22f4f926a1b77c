package postgres

import (
	"context"
	"encoding/json"

	"engagement-metrics-service/internal/events/core/domain"
	"engagement-metrics-service/internal/events/core/ports"

	"github.com/lib/pq"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

// SQL template
const insertEventSQL = `
INSERT INTO events (
    id,
    account_id,
    user_id,
    event_name,
    occurred_on,
    tags,
    metadata,
    dedupe_key
) VALUES (
    $1, $2, $3, $4,
    $5, $6, $7, $8
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

func (r *EventRepository) InsertEvent(ctx context.Context, e *domain.Event) (bool, error) {

	metadataJSON, err := json.Marshal(e.Metadata)
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, insertEventSQL,
		e.ID,
		e.AccountID,
		e.UserID,
		e.EventName,
		e.OccurredOn,
		pq.Array(e.Tags),
		metadataJSON,
		e.DedupeKey,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1  -> new record
	// rows == 0  -> duplicate (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}
