package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is one recorded interaction: a user of an account did something on a
// calendar day. OccurredOn carries no time of day; it is stored as a DATE and
// compared at day granularity.
type Event struct {
	ID         uuid.UUID
	AccountID  string
	UserID     string
	EventName  string
	OccurredOn time.Time
	Tags       []string
	Metadata   map[string]any
	DedupeKey  string
}
