package domain

import (
	"sort"
	"time"
)

// ActivityEvent is one interaction fact: a user acted for an account on a
// calendar day. Every event source (Postgres, CSV export, in-memory fixture)
// hands this projection to the aggregation core.
type ActivityEvent struct {
	AccountID  string
	UserID     string
	OccurredOn time.Time // calendar date, UTC midnight
}

// DailyCount is the distinct-user count of one account on one day.
type DailyCount struct {
	AccountID     string
	Day           time.Time
	DistinctUsers int
}

// MetricRow is the shared output shape of the ratio metrics: one value per
// account.
type MetricRow struct {
	AccountID string
	Value     float64
}

// CountRow is the output shape of the count metrics.
type CountRow struct {
	AccountID string
	Count     int
}

// SortedRows flattens an account-to-value mapping into rows ordered by
// account id, for deterministic serialization.
func SortedRows(values map[string]float64) []MetricRow {
	rows := make([]MetricRow, 0, len(values))
	for acc, v := range values {
		rows = append(rows, MetricRow{AccountID: acc, Value: v})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].AccountID < rows[j].AccountID })
	return rows
}

// SortedCounts flattens an account-to-count mapping into rows ordered by
// account id.
func SortedCounts(counts map[string]int) []CountRow {
	rows := make([]CountRow, 0, len(counts))
	for acc, n := range counts {
		rows = append(rows, CountRow{AccountID: acc, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].AccountID < rows[j].AccountID })
	return rows
}
