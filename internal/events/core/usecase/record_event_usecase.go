package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"engagement-metrics-service/internal/events/core/domain"
	"engagement-metrics-service/internal/events/core/ports"

	"github.com/google/uuid"
)

var (
	ErrInvalidEvent = errors.New("invalid event")
	ErrFutureDate   = errors.New("occurred_on cannot be in the future")
)

type RecordEventUseCase struct {
	repo ports.EventRepositoryPort
}

func NewRecordEventUseCase(repo ports.EventRepositoryPort) *RecordEventUseCase {
	return &RecordEventUseCase{repo: repo}
}

type RecordEventInput struct {
	AccountID  string
	UserID     string
	EventName  string
	OccurredOn string // YYYY-MM-DD
	Tags       []string
	Metadata   map[string]any
}

func (uc *RecordEventUseCase) Execute(ctx context.Context, in RecordEventInput) (bool, error) {

	occurredOn, err := uc.validateInput(in)
	if err != nil {
		return false, err
	}

	if in.Tags == nil {
		in.Tags = []string{}
	}
	if in.Metadata == nil {
		in.Metadata = map[string]any{}
	}

	e := &domain.Event{
		ID:         uuid.New(),
		AccountID:  in.AccountID,
		UserID:     in.UserID,
		EventName:  in.EventName,
		OccurredOn: occurredOn,
		Tags:       in.Tags,
		Metadata:   in.Metadata,
		DedupeKey:  buildDedupeKey(in, occurredOn),
	}

	created, err := uc.repo.InsertEvent(ctx, e)
	if err != nil {
		return false, err
	}

	return created, nil
}

func buildDedupeKey(in RecordEventInput, occurredOn time.Time) string {
	// account_id + user_id + event_name + occurred_on
	return fmt.Sprintf("%s|%s|%s|%s",
		in.AccountID,
		in.UserID,
		in.EventName,
		occurredOn.Format(time.DateOnly),
	)
}

type BulkRecordEventsInput struct {
	Events []RecordEventInput
}

type BulkRecordEventsResult struct {
	Created    int
	Duplicates int
}

func (uc *RecordEventUseCase) BulkRecordEvents(ctx context.Context, in BulkRecordEventsInput) (BulkRecordEventsResult, error) {
	var res BulkRecordEventsResult

	for _, ev := range in.Events {
		if _, err := uc.validateInput(ev); err != nil {
			return res, err
		}
	}

	for _, ev := range in.Events {
		ok, err := uc.Execute(ctx, ev)
		if err != nil {
			return res, err
		}

		if ok {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	return res, nil
}

func (uc *RecordEventUseCase) validateInput(in RecordEventInput) (time.Time, error) {

	if in.AccountID == "" || in.UserID == "" || in.EventName == "" {
		return time.Time{}, ErrInvalidEvent
	}

	occurredOn, err := time.Parse(time.DateOnly, in.OccurredOn)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: occurred_on must be a YYYY-MM-DD date", ErrInvalidEvent)
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if occurredOn.After(today) {
		return time.Time{}, ErrFutureDate
	}

	return occurredOn, nil
}
