package usecase_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"engagement-metrics-service/internal/metrics/core/aggregate"
	"engagement-metrics-service/internal/metrics/core/domain"
	"engagement-metrics-service/internal/metrics/core/usecase"
)

// fakeEventSource implements EventSourcePort for tests.
type fakeEventSource struct {
	LoadFn   func(ctx context.Context, from, to time.Time) ([]domain.ActivityEvent, error)
	lastFrom time.Time
	lastTo   time.Time
	called   bool
}

func (f *fakeEventSource) LoadEvents(ctx context.Context, from, to time.Time) ([]domain.ActivityEvent, error) {
	f.called = true
	f.lastFrom = from
	f.lastTo = to
	if f.LoadFn != nil {
		return f.LoadFn(ctx, from, to)
	}
	return nil, nil
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return parsed
}

// ------------------------------------------------------------
// AVERAGE DAU
// ------------------------------------------------------------

func TestAverageDailyActiveUsers_Success(t *testing.T) {
	source := &fakeEventSource{
		LoadFn: func(ctx context.Context, from, to time.Time) ([]domain.ActivityEvent, error) {
			return []domain.ActivityEvent{
				{AccountID: "acc1", UserID: "userA", OccurredOn: date(t, "2021-01-05")},
				{AccountID: "acc1", UserID: "userB", OccurredOn: date(t, "2021-01-05")},
				{AccountID: "acc1", UserID: "userA", OccurredOn: date(t, "2021-01-06")},
			}, nil
		},
	}

	uc := usecase.NewEngagementUseCase(source)

	out, err := uc.AverageDailyActiveUsers(context.Background(), usecase.AverageDAUInput{
		From:    date(t, "2021-01-01"),
		To:      date(t, "2021-01-30"),
		Divisor: 31.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !source.called {
		t.Fatalf("expected LoadEvents to be called")
	}
	if !source.lastFrom.Equal(date(t, "2021-01-01")) || !source.lastTo.Equal(date(t, "2021-01-30")) {
		t.Fatalf("unexpected load window: %v .. %v", source.lastFrom, source.lastTo)
	}
	if math.Abs(out["acc1"]-3.0/31.0) > 1e-9 {
		t.Fatalf("expected 3/31, got %v", out["acc1"])
	}
}

func TestAverageDailyActiveUsers_InvalidDivisor(t *testing.T) {
	source := &fakeEventSource{}
	uc := usecase.NewEngagementUseCase(source)

	_, err := uc.AverageDailyActiveUsers(context.Background(), usecase.AverageDAUInput{
		From:    date(t, "2021-01-01"),
		To:      date(t, "2021-01-30"),
		Divisor: 0,
	})
	if !errors.Is(err, aggregate.ErrInvalidDivisor) {
		t.Fatalf("expected ErrInvalidDivisor, got %v", err)
	}
	if source.called {
		t.Fatalf("event source should not be called on invalid divisor")
	}
}

func TestAverageDailyActiveUsers_MissingDates(t *testing.T) {
	source := &fakeEventSource{}
	uc := usecase.NewEngagementUseCase(source)

	_, err := uc.AverageDailyActiveUsers(context.Background(), usecase.AverageDAUInput{Divisor: 31})
	if !errors.Is(err, usecase.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
	if source.called {
		t.Fatalf("event source should not be called on missing dates")
	}
}

func TestAverageDailyActiveUsers_ReversedRange(t *testing.T) {
	source := &fakeEventSource{}
	uc := usecase.NewEngagementUseCase(source)

	_, err := uc.AverageDailyActiveUsers(context.Background(), usecase.AverageDAUInput{
		From:    date(t, "2021-01-30"),
		To:      date(t, "2021-01-01"),
		Divisor: 31,
	})
	if !errors.Is(err, aggregate.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if source.called {
		t.Fatalf("event source should not be called on reversed range")
	}
}

// ------------------------------------------------------------
// MAU
// ------------------------------------------------------------

func TestMonthlyActiveUsers_Success(t *testing.T) {
	source := &fakeEventSource{
		LoadFn: func(ctx context.Context, from, to time.Time) ([]domain.ActivityEvent, error) {
			return []domain.ActivityEvent{
				{AccountID: "acc1", UserID: "userA", OccurredOn: date(t, "2021-01-05")},
				{AccountID: "acc1", UserID: "userB", OccurredOn: date(t, "2021-01-05")},
				{AccountID: "acc1", UserID: "userA", OccurredOn: date(t, "2021-01-06")},
			}, nil
		},
	}

	uc := usecase.NewEngagementUseCase(source)

	out, err := uc.MonthlyActiveUsers(context.Background(), usecase.MAUInput{
		From: date(t, "2021-01-01"),
		To:   date(t, "2021-01-30"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["acc1"] != 2 {
		t.Fatalf("expected 2 distinct users, got %d", out["acc1"])
	}
}

func TestMonthlyActiveUsers_SourceError(t *testing.T) {
	source := &fakeEventSource{
		LoadFn: func(ctx context.Context, from, to time.Time) ([]domain.ActivityEvent, error) {
			return nil, errors.New("db failure")
		},
	}

	uc := usecase.NewEngagementUseCase(source)

	out, err := uc.MonthlyActiveUsers(context.Background(), usecase.MAUInput{
		From: date(t, "2021-01-01"),
		To:   date(t, "2021-01-30"),
	})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if err.Error() != "db failure" {
		t.Fatalf("expected db failure, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil result on error")
	}
}

func TestMonthlyActiveUsers_MissingDates(t *testing.T) {
	source := &fakeEventSource{}
	uc := usecase.NewEngagementUseCase(source)

	_, err := uc.MonthlyActiveUsers(context.Background(), usecase.MAUInput{})
	if !errors.Is(err, usecase.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
	if source.called {
		t.Fatalf("event source should not be called on invalid input")
	}
}

// ------------------------------------------------------------
// GROWTH RATE
// ------------------------------------------------------------

func TestUserGrowthRate_LoadsCoveringSpanOnce(t *testing.T) {
	loadCount := 0
	source := &fakeEventSource{
		LoadFn: func(ctx context.Context, from, to time.Time) ([]domain.ActivityEvent, error) {
			loadCount++
			return []domain.ActivityEvent{
				{AccountID: "acc1", UserID: "userA", OccurredOn: date(t, "2020-12-10")},
				{AccountID: "acc1", UserID: "userB", OccurredOn: date(t, "2020-12-11")},
				{AccountID: "acc1", UserID: "userA", OccurredOn: date(t, "2021-01-10")},
				{AccountID: "acc1", UserID: "userB", OccurredOn: date(t, "2021-01-11")},
				{AccountID: "acc1", UserID: "userC", OccurredOn: date(t, "2021-01-12")},
			}, nil
		},
	}

	uc := usecase.NewEngagementUseCase(source)

	out, err := uc.UserGrowthRate(context.Background(), usecase.GrowthInput{
		PriorFrom:   date(t, "2020-12-01"),
		PriorTo:     date(t, "2020-12-31"),
		CurrentFrom: date(t, "2021-01-01"),
		CurrentTo:   date(t, "2021-01-31"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loadCount != 1 {
		t.Fatalf("expected a single load covering both windows, got %d", loadCount)
	}
	if !source.lastFrom.Equal(date(t, "2020-12-01")) || !source.lastTo.Equal(date(t, "2021-01-31")) {
		t.Fatalf("expected covering span Dec 1 .. Jan 31, got %v .. %v", source.lastFrom, source.lastTo)
	}
	if math.Abs(out["acc1"]-1.5) > 1e-9 {
		t.Fatalf("expected growth 1.5, got %v", out["acc1"])
	}
}

func TestUserGrowthRate_MissingDates(t *testing.T) {
	source := &fakeEventSource{}
	uc := usecase.NewEngagementUseCase(source)

	_, err := uc.UserGrowthRate(context.Background(), usecase.GrowthInput{
		PriorFrom: date(t, "2020-12-01"),
		PriorTo:   date(t, "2020-12-31"),
	})
	if !errors.Is(err, usecase.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
	if source.called {
		t.Fatalf("event source should not be called on missing dates")
	}
}

func TestUserGrowthRate_ReversedWindow(t *testing.T) {
	source := &fakeEventSource{}
	uc := usecase.NewEngagementUseCase(source)

	_, err := uc.UserGrowthRate(context.Background(), usecase.GrowthInput{
		PriorFrom:   date(t, "2020-12-31"),
		PriorTo:     date(t, "2020-12-01"),
		CurrentFrom: date(t, "2021-01-01"),
		CurrentTo:   date(t, "2021-01-31"),
	})
	if !errors.Is(err, aggregate.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if source.called {
		t.Fatalf("event source should not be called on reversed window")
	}
}
