package fiber

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"engagement-metrics-service/internal/metrics/core/aggregate"
	"engagement-metrics-service/internal/metrics/core/domain"
	"engagement-metrics-service/internal/metrics/core/usecase"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type EngagementUseCase interface {
	AverageDailyActiveUsers(ctx context.Context, in usecase.AverageDAUInput) (map[string]float64, error)
	MonthlyActiveUsers(ctx context.Context, in usecase.MAUInput) (map[string]int, error)
	UserGrowthRate(ctx context.Context, in usecase.GrowthInput) (map[string]float64, error)
}

type EngagementHandler struct {
	uc EngagementUseCase
}

func NewEngagementHandler(uc EngagementUseCase) *EngagementHandler {
	return &EngagementHandler{uc: uc}
}

// GetAverageDailyActiveUsers godoc
// @Summary Average daily active users per account
// @Description Sums each account's per-day distinct user counts inside the window and divides by the supplied day count
// @Tags Engagement
// @Produce json
// @Param from query string true "Window start, YYYY-MM-DD, inclusive"
// @Param to query string true "Window end, YYYY-MM-DD, inclusive"
// @Param days query number true "Day count the sum is divided by"
// @Success 200 {object} AverageDAUResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/engagement/dau [get]
func (h *EngagementHandler) GetAverageDailyActiveUsers(c *fiber.Ctx) error {
	from, err := queryDate(c, "from")
	if err != nil {
		return badRequest(c, err)
	}
	to, err := queryDate(c, "to")
	if err != nil {
		return badRequest(c, err)
	}

	daysStr := c.Query("days", "")
	if daysStr == "" {
		return badRequest(c, errors.New("days is required"))
	}
	days, err := strconv.ParseFloat(daysStr, 64)
	if err != nil {
		return badRequest(c, errors.New("invalid 'days' parameter"))
	}

	values, err := h.uc.AverageDailyActiveUsers(c.UserContext(), usecase.AverageDAUInput{
		From:    from,
		To:      to,
		Divisor: days,
	})
	if err != nil {
		return h.renderError(c, err)
	}

	resp := AverageDAUResponse{
		From: from.Format(time.DateOnly),
		To:   to.Format(time.DateOnly),
		Days: days,
		Rows: toMetricRows(values),
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetMonthlyActiveUsers godoc
// @Summary Monthly active users per account
// @Description Counts distinct users per account inside the window
// @Tags Engagement
// @Produce json
// @Param from query string true "Window start, YYYY-MM-DD, inclusive"
// @Param to query string true "Window end, YYYY-MM-DD, inclusive"
// @Success 200 {object} MAUResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/engagement/mau [get]
func (h *EngagementHandler) GetMonthlyActiveUsers(c *fiber.Ctx) error {
	from, err := queryDate(c, "from")
	if err != nil {
		return badRequest(c, err)
	}
	to, err := queryDate(c, "to")
	if err != nil {
		return badRequest(c, err)
	}

	counts, err := h.uc.MonthlyActiveUsers(c.UserContext(), usecase.MAUInput{From: from, To: to})
	if err != nil {
		return h.renderError(c, err)
	}

	rows := make([]CountRowResponse, 0, len(counts))
	for _, r := range domain.SortedCounts(counts) {
		rows = append(rows, CountRowResponse{AccountID: r.AccountID, Count: r.Count})
	}

	resp := MAUResponse{
		From: from.Format(time.DateOnly),
		To:   to.Format(time.DateOnly),
		Rows: rows,
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetUserGrowthRate godoc
// @Summary User growth rate per account
// @Description Divides current-window distinct users by prior-window distinct users; accounts active in only one window are dropped
// @Tags Engagement
// @Produce json
// @Param prior_from query string true "Prior window start, YYYY-MM-DD"
// @Param prior_to query string true "Prior window end, YYYY-MM-DD"
// @Param current_from query string true "Current window start, YYYY-MM-DD"
// @Param current_to query string true "Current window end, YYYY-MM-DD"
// @Success 200 {object} GrowthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Prior-window count is zero"
// @Failure 500 {object} ErrorResponse
// @Router /metrics/engagement/growth [get]
func (h *EngagementHandler) GetUserGrowthRate(c *fiber.Ctx) error {
	priorFrom, err := queryDate(c, "prior_from")
	if err != nil {
		return badRequest(c, err)
	}
	priorTo, err := queryDate(c, "prior_to")
	if err != nil {
		return badRequest(c, err)
	}
	currentFrom, err := queryDate(c, "current_from")
	if err != nil {
		return badRequest(c, err)
	}
	currentTo, err := queryDate(c, "current_to")
	if err != nil {
		return badRequest(c, err)
	}

	rates, err := h.uc.UserGrowthRate(c.UserContext(), usecase.GrowthInput{
		PriorFrom:   priorFrom,
		PriorTo:     priorTo,
		CurrentFrom: currentFrom,
		CurrentTo:   currentTo,
	})
	if err != nil {
		return h.renderError(c, err)
	}

	resp := GrowthResponse{
		PriorFrom:   priorFrom.Format(time.DateOnly),
		PriorTo:     priorTo.Format(time.DateOnly),
		CurrentFrom: currentFrom.Format(time.DateOnly),
		CurrentTo:   currentTo.Format(time.DateOnly),
		Rows:        toMetricRows(rates),
	}
	return c.Status(http.StatusOK).JSON(resp)
}

func (h *EngagementHandler) renderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuery),
		errors.Is(err, aggregate.ErrInvalidRange),
		errors.Is(err, aggregate.ErrInvalidDivisor):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	case errors.Is(err, aggregate.ErrZeroPriorCount):
		return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{
			Error:   "division_by_zero",
			Message: err.Error(),
		})
	default:
		log.WithError(err).Error("engagement query failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func queryDate(c *fiber.Ctx, name string) (time.Time, error) {
	raw := c.Query(name, "")
	if raw == "" {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}
	parsed, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid '%s' parameter, want YYYY-MM-DD", name)
	}
	return parsed, nil
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_query",
		Message: err.Error(),
	})
}

func toMetricRows(values map[string]float64) []MetricRowResponse {
	rows := make([]MetricRowResponse, 0, len(values))
	for _, r := range domain.SortedRows(values) {
		rows = append(rows, MetricRowResponse{AccountID: r.AccountID, Value: r.Value})
	}
	return rows
}
