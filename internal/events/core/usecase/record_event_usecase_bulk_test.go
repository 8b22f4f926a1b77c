package usecase

import (
	"context"
	"errors"
	"testing"

	"engagement-metrics-service/internal/events/core/domain"
)

// Fake repo
type fakeBulkRepo struct {
	InsertCalls []*domain.Event
	Results     []bool
	Err         error
}

func (f *fakeBulkRepo) InsertEvent(ctx context.Context, e *domain.Event) (bool, error) {
	if f.Err != nil {
		return false, f.Err
	}
	f.InsertCalls = append(f.InsertCalls, e)

	if len(f.Results) == 0 {
		// default: created
		return true, nil
	}

	res := f.Results[0]
	f.Results = f.Results[1:]
	return res, nil
}

func TestBulkRecordEvents_AllCreated(t *testing.T) {
	ctx := context.Background()

	repo := &fakeBulkRepo{
		Results: []bool{true, true, true},
	}

	uc := NewRecordEventUseCase(repo)

	input := BulkRecordEventsInput{
		Events: []RecordEventInput{
			{
				AccountID:  "acc_1",
				UserID:     "user_1",
				EventName:  "product_view",
				OccurredOn: "2021-01-05",
				Tags:       []string{"electronics"},
				Metadata:   map[string]any{"product_id": "p1"},
			},
			{
				AccountID:  "acc_1",
				UserID:     "user_2",
				EventName:  "product_view",
				OccurredOn: "2021-01-05",
				Tags:       []string{"electronics"},
				Metadata:   map[string]any{"product_id": "p2"},
			},
			{
				AccountID:  "acc_2",
				UserID:     "user_3",
				EventName:  "add_to_cart",
				OccurredOn: "2021-01-06",
				Tags:       []string{"cart"},
				Metadata:   map[string]any{"product_id": "p3"},
			},
		},
	}

	res, err := uc.BulkRecordEvents(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Created != 3 {
		t.Errorf("expected Created=3, got %d", res.Created)
	}
	if res.Duplicates != 0 {
		t.Errorf("expected Duplicates=0, got %d", res.Duplicates)
	}

	if len(repo.InsertCalls) != 3 {
		t.Errorf("expected 3 InsertEvent calls, got %d", len(repo.InsertCalls))
	}
}

func TestBulkRecordEvents_MixedCreatedAndDuplicate(t *testing.T) {
	ctx := context.Background()

	// created, duplicate, created
	repo := &fakeBulkRepo{
		Results: []bool{true, false, true},
	}

	uc := NewRecordEventUseCase(repo)

	input := BulkRecordEventsInput{
		Events: []RecordEventInput{
			{
				AccountID:  "acc_1",
				UserID:     "user_1",
				EventName:  "product_view",
				OccurredOn: "2021-01-05",
			},
			{
				AccountID:  "acc_1",
				UserID:     "user_1",
				EventName:  "product_view",
				OccurredOn: "2021-01-05",
			},
			{
				AccountID:  "acc_1",
				UserID:     "user_2",
				EventName:  "add_to_cart",
				OccurredOn: "2021-01-05",
			},
		},
	}

	res, err := uc.BulkRecordEvents(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Created != 2 {
		t.Errorf("expected Created=2, got %d", res.Created)
	}
	if res.Duplicates != 1 {
		t.Errorf("expected Duplicates=1, got %d", res.Duplicates)
	}

	if len(repo.InsertCalls) != 3 {
		t.Errorf("expected 3 InsertEvent calls, got %d", len(repo.InsertCalls))
	}
}

func TestBulkRecordEvents_ValidationErrorInOneEvent(t *testing.T) {
	ctx := context.Background()

	repo := &fakeBulkRepo{}
	uc := NewRecordEventUseCase(repo)

	input := BulkRecordEventsInput{
		Events: []RecordEventInput{
			{
				AccountID:  "acc_1",
				UserID:     "user_1",
				EventName:  "product_view",
				OccurredOn: "2021-01-05",
			},
			{
				// Error: empty AccountID
				AccountID:  "",
				UserID:     "user_2",
				EventName:  "product_view",
				OccurredOn: "2021-01-05",
			},
			{
				AccountID:  "acc_1",
				UserID:     "user_3",
				EventName:  "add_to_cart",
				OccurredOn: "2021-01-05",
			},
		},
	}

	_, err := uc.BulkRecordEvents(ctx, input)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if !errors.Is(err, ErrInvalidEvent) {
		t.Errorf("expected ErrInvalidEvent, got %v", err)
	}

	if len(repo.InsertCalls) != 0 {
		t.Errorf("expected 0 InsertEvent calls, got %d", len(repo.InsertCalls))
	}
}
