package ports

import (
	"context"
	"time"

	"engagement-metrics-service/internal/metrics/core/domain"
)

// EventSourcePort loads the activity events that occurred inside the
// inclusive [from, to] date window. Implementations own the loading
// mechanics (Postgres, CSV export, fixture); the aggregation core only ever
// sees the returned slice.
type EventSourcePort interface {
	LoadEvents(ctx context.Context, from, to time.Time) ([]domain.ActivityEvent, error)
}
