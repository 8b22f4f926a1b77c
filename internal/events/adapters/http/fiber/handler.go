package fiber

import (
	"context"
	"errors"
	"net/http"

	"engagement-metrics-service/internal/events/core/usecase"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type RecordEventUseCase interface {
	Execute(ctx context.Context, in usecase.RecordEventInput) (bool, error)
	BulkRecordEvents(ctx context.Context, in usecase.BulkRecordEventsInput) (usecase.BulkRecordEventsResult, error)
}

type EventHandler struct {
	recordUC RecordEventUseCase
}

func NewEventHandler(recordUC RecordEventUseCase) *EventHandler {
	return &EventHandler{recordUC: recordUC}
}

// CreateEvent godoc
// @Summary Record a new interaction event
// @Description Stores a single event with idempotency handling
// @Tags Events
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "Event payload"
// @Success 201 {object} CreateEventResponse
// @Success 200 {object} CreateEventResponse "Duplicate event"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req CreateEventRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	input := usecase.RecordEventInput{
		AccountID:  req.AccountID,
		UserID:     req.UserID,
		EventName:  req.EventName,
		OccurredOn: req.OccurredOn,
		Tags:       req.Tags,
		Metadata:   req.Metadata,
	}

	created, err := h.recordUC.Execute(c.UserContext(), input)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidEvent),
			errors.Is(err, usecase.ErrFutureDate):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_event",
				Message: err.Error(),
			})
		default:
			log.WithError(err).Error("event insert failed")
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	if !created {
		resp := CreateEventResponse{
			Status: "duplicate",
		}
		return c.Status(http.StatusOK).JSON(resp)
	}

	resp := CreateEventResponse{
		Status: "created",
	}
	return c.Status(http.StatusCreated).JSON(resp)
}

// BulkCreateEvents godoc
// @Summary Bulk record interaction events
// @Description Accepts a list of events and stores them individually
// @Tags Events
// @Accept json
// @Produce json
// @Param request body BulkCreateEventsRequest true "Bulk event payload"
// @Success 201 {object} BulkCreateEventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/bulk [post]
func (h *EventHandler) BulkCreateEvents(c *fiber.Ctx) error {
	var req BulkCreateEventsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	if len(req.Events) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "events_list_required",
		})
	}

	inputs := make([]usecase.RecordEventInput, len(req.Events))
	for i, e := range req.Events {
		inputs[i] = usecase.RecordEventInput{
			AccountID:  e.AccountID,
			UserID:     e.UserID,
			EventName:  e.EventName,
			OccurredOn: e.OccurredOn,
			Tags:       e.Tags,
			Metadata:   e.Metadata,
		}
	}

	result, err := h.recordUC.BulkRecordEvents(
		c.UserContext(),
		usecase.BulkRecordEventsInput{Events: inputs},
	)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidEvent),
			errors.Is(err, usecase.ErrFutureDate):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_event",
				Message: err.Error(),
			})
		default:
			log.WithError(err).Error("bulk event insert failed")
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(BulkCreateEventsResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}
