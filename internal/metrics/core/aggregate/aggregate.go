// Package aggregate computes account-level engagement metrics from a finite
// collection of activity events. Everything here is pure: events are
// filtered, grouped by explicit map keys, and counted in memory. No store is
// touched, no state is kept between calls.
package aggregate

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"engagement-metrics-service/internal/metrics/core/domain"
)

var (
	ErrInvalidRange   = errors.New("start date after end date")
	ErrInvalidDivisor = errors.New("divisor must be positive")
	ErrZeroPriorCount = errors.New("prior period has zero distinct users")
)

// AverageDailyActiveUsers computes, per account, the sum of daily
// distinct-user counts inside the inclusive [start, end] window, divided by
// divisor. The divisor is caller-supplied on purpose and never derived from
// the window length. Accounts without qualifying events are absent from the
// result.
func AverageDailyActiveUsers(events []domain.ActivityEvent, start, end time.Time, divisor float64) (map[string]float64, error) {
	if err := checkWindow(start, end); err != nil {
		return nil, err
	}
	if divisor <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidDivisor, divisor)
	}

	daily, err := DailyDistinctUsers(events, start, end)
	if err != nil {
		return nil, err
	}

	sums := make(map[string]int)
	for _, dc := range daily {
		sums[dc.AccountID] += dc.DistinctUsers
	}

	averages := make(map[string]float64, len(sums))
	for acc, sum := range sums {
		averages[acc] = float64(sum) / divisor
	}
	return averages, nil
}

// MonthlyActiveUsers counts distinct users per account inside the inclusive
// [start, end] window. Duplicate events for the same user count once. No
// zero-fill: accounts without events in the window are absent.
func MonthlyActiveUsers(events []domain.ActivityEvent, start, end time.Time) (map[string]int, error) {
	if err := checkWindow(start, end); err != nil {
		return nil, err
	}
	return distinctUsers(events, start, end), nil
}

// UserGrowthRate computes current-window distinct users divided by
// prior-window distinct users, per account. The two windows are independent
// and may overlap or sit apart. Accounts present in only one window are
// dropped (inner join).
func UserGrowthRate(events []domain.ActivityEvent, priorStart, priorEnd, currentStart, currentEnd time.Time) (map[string]float64, error) {
	if err := checkWindow(priorStart, priorEnd); err != nil {
		return nil, err
	}
	if err := checkWindow(currentStart, currentEnd); err != nil {
		return nil, err
	}

	prior := distinctUsers(events, priorStart, priorEnd)
	current := distinctUsers(events, currentStart, currentEnd)
	return GrowthFromCounts(prior, current)
}

// GrowthFromCounts joins two per-account count tables on account id and
// divides current by prior. Count tables computed from events never hold a
// zero, but prepared rollups handed in by callers can; a joined prior count
// of zero is reported as ErrZeroPriorCount naming the account, never as Inf
// and never as a silent skip.
func GrowthFromCounts(prior, current map[string]int) (map[string]float64, error) {
	rates := make(map[string]float64)
	for acc, cur := range current {
		prev, ok := prior[acc]
		if !ok {
			continue
		}
		if prev == 0 {
			return nil, fmt.Errorf("%w: account %s", ErrZeroPriorCount, acc)
		}
		rates[acc] = float64(cur) / float64(prev)
	}
	return rates, nil
}

// DailyDistinctUsers computes the per-day distinct-user count of every
// account with at least one event inside the inclusive [start, end] window.
// Rows come back ordered by account id, then day.
func DailyDistinctUsers(events []domain.ActivityEvent, start, end time.Time) ([]domain.DailyCount, error) {
	if err := checkWindow(start, end); err != nil {
		return nil, err
	}

	type accountDay struct {
		accountID string
		day       time.Time
	}

	groups := make(map[accountDay]map[string]struct{})
	for _, e := range events {
		d := day(e.OccurredOn)
		if !inWindow(d, start, end) {
			continue
		}
		key := accountDay{accountID: e.AccountID, day: d}
		users := groups[key]
		if users == nil {
			users = make(map[string]struct{})
			groups[key] = users
		}
		users[e.UserID] = struct{}{}
	}

	counts := make([]domain.DailyCount, 0, len(groups))
	for key, users := range groups {
		counts = append(counts, domain.DailyCount{
			AccountID:     key.accountID,
			Day:           key.day,
			DistinctUsers: len(users),
		})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].AccountID != counts[j].AccountID {
			return counts[i].AccountID < counts[j].AccountID
		}
		return counts[i].Day.Before(counts[j].Day)
	})
	return counts, nil
}

// distinctUsers is the primitive every metric composes: distinct user ids
// per account among the events inside the inclusive [start, end] window.
func distinctUsers(events []domain.ActivityEvent, start, end time.Time) map[string]int {
	seen := make(map[string]map[string]struct{})
	for _, e := range events {
		if !inWindow(day(e.OccurredOn), start, end) {
			continue
		}
		users := seen[e.AccountID]
		if users == nil {
			users = make(map[string]struct{})
			seen[e.AccountID] = users
		}
		users[e.UserID] = struct{}{}
	}

	counts := make(map[string]int, len(seen))
	for acc, users := range seen {
		counts[acc] = len(users)
	}
	return counts
}

// day truncates a timestamp to its UTC calendar date.
func day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// inWindow reports whether d falls inside [start, end], both ends inclusive,
// compared at day granularity.
func inWindow(d, start, end time.Time) bool {
	return !d.Before(day(start)) && !d.After(day(end))
}

func checkWindow(start, end time.Time) error {
	if day(start).After(day(end)) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidRange,
			start.Format(time.DateOnly), end.Format(time.DateOnly))
	}
	return nil
}
