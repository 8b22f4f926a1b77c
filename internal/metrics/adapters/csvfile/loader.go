package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"engagement-metrics-service/internal/metrics/core/domain"
	"engagement-metrics-service/internal/metrics/core/ports"
)

var ErrMissingColumns = errors.New("csv is missing required columns")

// Loader reads activity events from a CSV export. The header row must name
// account_id, user_id and occurred_on; column order does not matter and
// extra columns are ignored. Dates are YYYY-MM-DD.
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

var _ ports.EventSourcePort = (*Loader)(nil)

func (l *Loader) LoadEvents(ctx context.Context, from, to time.Time) ([]domain.ActivityEvent, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parseEvents(f, from, to)
}

func parseEvents(r io.Reader, from, to time.Time) ([]domain.ActivityEvent, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	accountCol, userCol, dateCol := -1, -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "account_id":
			accountCol = i
		case "user_id":
			userCol = i
		case "occurred_on":
			dateCol = i
		}
	}
	if accountCol < 0 || userCol < 0 || dateCol < 0 {
		return nil, ErrMissingColumns
	}

	fromDay := dateOnly(from)
	toDay := dateOnly(to)

	var events []domain.ActivityEvent
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		occurredOn, err := time.Parse(time.DateOnly, strings.TrimSpace(record[dateCol]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad occurred_on: %w", line, err)
		}
		if occurredOn.Before(fromDay) || occurredOn.After(toDay) {
			continue
		}

		events = append(events, domain.ActivityEvent{
			AccountID:  strings.TrimSpace(record[accountCol]),
			UserID:     strings.TrimSpace(record[userCol]),
			OccurredOn: occurredOn,
		})
	}

	return events, nil
}

func dateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
