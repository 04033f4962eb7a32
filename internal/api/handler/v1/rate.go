package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shwenadi/goldshop-api/internal/api/handler/v1/request"
	"github.com/shwenadi/goldshop-api/internal/api/handler/v1/response"
	"github.com/shwenadi/goldshop-api/internal/domain"
	"github.com/shwenadi/goldshop-api/internal/service"
)

const defaultRateHistoryDays = 30

type RateService interface {
	AppendRate(ctx context.Context, rateType domain.RateType, value float64, timeLabel string) (domain.MarketRate, error)
	ListRates(ctx context.Context, limit int) ([]domain.MarketRate, error)
}

type RateHandler struct {
	svc RateService
}

func NewRateHandler(svc RateService) *RateHandler {
	return &RateHandler{
		svc: svc,
	}
}

// HandleAppendRate godoc
// @Summary      Record a market rate sample
// @Description  Appends an hourly sample to today's row for the rate type, creating the row on first sample of the day.
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        input  body      request.AppendRateRequest  true  "Rate sample"
// @Success      200    {object}  domain.MarketRate
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /rates [post]
// @Security BearerAuth
func (h *RateHandler) HandleAppendRate(ctx *gin.Context) {
	var input request.AppendRateRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	rate, err := h.svc.AppendRate(ctx.Request.Context(), domain.RateType(input.Type), input.Value, input.Time)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRateType) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleAppendRate -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, rate)
}

// HandleListRates godoc
// @Summary      List recent market rates
// @Description  Returns daily rate rows with their hourly samples, most recent day first.
// @Tags         rates
// @Produce      json
// @Param        days  query     int  false  "Number of daily rows to return, default 30"
// @Success      200   {array}   domain.MarketRate
// @Failure      400   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /rates [get]
// @Security BearerAuth
func (h *RateHandler) HandleListRates(ctx *gin.Context) {
	limit := defaultRateHistoryDays
	if raw := ctx.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid days: %q", raw)))
			return
		}
		limit = parsed
	}

	rates, err := h.svc.ListRates(ctx.Request.Context(), limit)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleListRates -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, rates)
}
