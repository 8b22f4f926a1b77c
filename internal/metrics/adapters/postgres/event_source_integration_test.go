package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"engagement-metrics-service/internal/metrics/core/domain"
	"engagement-metrics-service/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventSource_LoadEvents_Integration(t *testing.T) {
	t.Parallel()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	seed := []struct {
		accountID string
		userID    string
		day       string
	}{
		{"acc_1", "u1", "2021-01-01"}, // before the window
		{"acc_1", "u1", "2021-01-02"}, // window start, inclusive
		{"acc_1", "u2", "2021-01-03"},
		{"acc_2", "u9", "2021-01-04"}, // window end, inclusive
		{"acc_2", "u9", "2021-01-05"}, // after the window
	}
	for _, s := range seed {
		_, err := testDB.DB.ExecContext(ctx,
			`INSERT INTO events (id, account_id, user_id, event_name, occurred_on, dedupe_key)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New(), s.accountID, s.userID, "session_start", s.day,
			fmt.Sprintf("%s|%s|session_start|%s", s.accountID, s.userID, s.day),
		)
		require.NoError(t, err)
	}

	source := NewEventSource(NewSQLDB(testDB.DB))

	from := time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC)

	events, err := source.LoadEvents(ctx, from, to)
	require.NoError(t, err)

	// Both window bounds are inclusive; the day before and after stay out.
	want := []domain.ActivityEvent{
		{AccountID: "acc_1", UserID: "u1", OccurredOn: time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC)},
		{AccountID: "acc_1", UserID: "u2", OccurredOn: time.Date(2021, 1, 3, 0, 0, 0, 0, time.UTC)},
		{AccountID: "acc_2", UserID: "u9", OccurredOn: time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC)},
	}
	assert.Equal(t, want, events)
}

func TestEventSource_LoadEvents_TimeOfDayIgnored_Integration(t *testing.T) {
	t.Parallel()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	_, err := testDB.DB.ExecContext(ctx,
		`INSERT INTO events (id, account_id, user_id, event_name, occurred_on, dedupe_key)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), "acc_1", "u1", "session_start", "2021-01-02",
		"acc_1|u1|session_start|2021-01-02",
	)
	require.NoError(t, err)

	source := NewEventSource(NewSQLDB(testDB.DB))

	// A window given with time-of-day still matches the whole day.
	from := time.Date(2021, 1, 2, 23, 59, 0, 0, time.UTC)
	to := time.Date(2021, 1, 2, 23, 59, 0, 0, time.UTC)

	events, err := source.LoadEvents(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "acc_1", events[0].AccountID)
	assert.Equal(t, time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC), events[0].OccurredOn)
}
