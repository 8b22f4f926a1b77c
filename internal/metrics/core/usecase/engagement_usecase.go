package usecase

import (
	"context"
	"errors"
	"time"

	"engagement-metrics-service/internal/metrics/core/aggregate"
	"engagement-metrics-service/internal/metrics/core/ports"
)

var ErrInvalidQuery = errors.New("invalid engagement query")

type EngagementUseCase struct {
	source ports.EventSourcePort
}

func NewEngagementUseCase(source ports.EventSourcePort) *EngagementUseCase {
	return &EngagementUseCase{source: source}
}

type AverageDAUInput struct {
	From    time.Time
	To      time.Time
	Divisor float64 // day count the sum is divided by, caller-supplied
}

type MAUInput struct {
	From time.Time
	To   time.Time
}

type GrowthInput struct {
	PriorFrom   time.Time
	PriorTo     time.Time
	CurrentFrom time.Time
	CurrentTo   time.Time
}

// AverageDailyActiveUsers validates the window and divisor, loads the events
// of the window, and aggregates in memory. Invalid input never reaches the
// event source.
func (uc *EngagementUseCase) AverageDailyActiveUsers(ctx context.Context, in AverageDAUInput) (map[string]float64, error) {
	if in.From.IsZero() || in.To.IsZero() {
		return nil, ErrInvalidQuery
	}
	if in.From.After(in.To) {
		return nil, aggregate.ErrInvalidRange
	}
	if in.Divisor <= 0 {
		return nil, aggregate.ErrInvalidDivisor
	}

	events, err := uc.source.LoadEvents(ctx, in.From, in.To)
	if err != nil {
		return nil, err
	}

	return aggregate.AverageDailyActiveUsers(events, in.From, in.To, in.Divisor)
}

// MonthlyActiveUsers counts distinct users per account inside the window.
func (uc *EngagementUseCase) MonthlyActiveUsers(ctx context.Context, in MAUInput) (map[string]int, error) {
	if in.From.IsZero() || in.To.IsZero() {
		return nil, ErrInvalidQuery
	}
	if in.From.After(in.To) {
		return nil, aggregate.ErrInvalidRange
	}

	events, err := uc.source.LoadEvents(ctx, in.From, in.To)
	if err != nil {
		return nil, err
	}

	return aggregate.MonthlyActiveUsers(events, in.From, in.To)
}

// UserGrowthRate loads the span covering both windows once and lets the
// aggregator re-filter per window; the windows may overlap or sit apart.
func (uc *EngagementUseCase) UserGrowthRate(ctx context.Context, in GrowthInput) (map[string]float64, error) {
	if in.PriorFrom.IsZero() || in.PriorTo.IsZero() || in.CurrentFrom.IsZero() || in.CurrentTo.IsZero() {
		return nil, ErrInvalidQuery
	}
	if in.PriorFrom.After(in.PriorTo) || in.CurrentFrom.After(in.CurrentTo) {
		return nil, aggregate.ErrInvalidRange
	}

	from := in.PriorFrom
	if in.CurrentFrom.Before(from) {
		from = in.CurrentFrom
	}
	to := in.PriorTo
	if in.CurrentTo.After(to) {
		to = in.CurrentTo
	}

	events, err := uc.source.LoadEvents(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return aggregate.UserGrowthRate(events, in.PriorFrom, in.PriorTo, in.CurrentFrom, in.CurrentTo)
}
