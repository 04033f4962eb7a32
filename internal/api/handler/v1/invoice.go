package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shwenadi/goldshop-api/internal/api/handler/v1/request"
	"github.com/shwenadi/goldshop-api/internal/api/handler/v1/response"
	"github.com/shwenadi/goldshop-api/internal/domain"
	"github.com/shwenadi/goldshop-api/internal/service"
)

type InvoiceService interface {
	CreateInvoice(ctx context.Context, invoice domain.Invoice) (domain.Invoice, error)
	GetInvoices(ctx context.Context) ([]domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, id string) (domain.Invoice, error)
	GetInvoiceByNumber(ctx context.Context, number string) (domain.Invoice, error)
	GetMonthlySales(ctx context.Context, year int) ([]domain.MonthlySales, error)
}

type InvoiceHandler struct {
	svc InvoiceService
}

func NewInvoiceHandler(svc InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		svc: svc,
	}
}

// HandleCreateInvoice godoc
// @Summary      Create an invoice
// @Description  Creates a sales, pawn, or buy invoice with line items and adjusts catalog stock by type
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateInvoiceRequest  true  "Invoice details"
// @Success      201    {object}  response.CreateInvoiceResponse
// @Failure      400    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /invoices [post]
// @Security BearerAuth
func (h *InvoiceHandler) HandleCreateInvoice(ctx *gin.Context) {
	var input request.CreateInvoiceRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	invoice := domain.Invoice{
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerAddress: input.CustomerAddress,
		Total:           input.Total,
		Type:            domain.InvoiceType(input.Type),
		Status:          input.Status,
		Notes:           input.Notes,
	}

	if input.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", input.DueDate)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid due date format: %v", err)))
			return
		}
		invoice.DueDate = &parsed
	}

	invoice.Items = make([]domain.InvoiceItem, len(input.Items))
	for i, li := range input.Items {
		invoice.Items[i] = domain.InvoiceItem{
			ItemID:     li.ItemID,
			Name:       li.Name,
			Category:   li.Category,
			Quantity:   li.Quantity,
			Price:      li.Price,
			Discount:   li.Discount,
			ReturnType: li.ReturnType,
			Weight:     li.Weight,
		}
	}

	created, err := h.svc.CreateInvoice(ctx.Request.Context(), invoice)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPawnDueDateRequired),
			errors.Is(err, service.ErrInvalidInvoiceType),
			errors.Is(err, service.ErrInvalidInvoiceStatus),
			errors.Is(err, service.ErrInvoiceWithoutItems),
			errors.Is(err, service.ErrInvalidQuantity),
			errors.Is(err, service.ErrNegativeDiscount):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrItemNotFound):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrItemNotFound))
		case errors.Is(err, service.ErrInvoiceNumberExhausted),
			errors.Is(err, service.ErrDuplicateInvoiceNumber):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.HandleCreateInvoice -> h.svc.CreateInvoice -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.CreateInvoiceResponse{
		ID:            created.ID,
		InvoiceNumber: created.InvoiceNumber,
	})
}

// HandleGetInvoices godoc
// @Summary      List invoices
// @Description  Returns all invoices with nested line items, newest first
// @Tags         invoices
// @Produce      json
// @Success      200  {array}   domain.Invoice
// @Failure      500  {object}  response.Err
// @Router       /invoices [get]
// @Security BearerAuth
func (h *InvoiceHandler) HandleGetInvoices(ctx *gin.Context) {
	invoices, err := h.svc.GetInvoices(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetInvoices -> h.svc.GetInvoices -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, invoices)
}

// HandleGetInvoiceByID godoc
// @Summary      Get an invoice by id
// @Tags         invoices
// @Produce      json
// @Param        invoiceID  path      string  true  "Invoice ID"
// @Success      200        {object}  domain.Invoice
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /invoices/{invoiceID} [get]
// @Security BearerAuth
func (h *InvoiceHandler) HandleGetInvoiceByID(ctx *gin.Context) {
	id := ctx.Param("invoiceID")

	invoice, err := h.svc.GetInvoiceByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("invoice", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetInvoiceByID -> h.svc.GetInvoiceByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, invoice)
}

// HandleGetInvoiceByNumber godoc
// @Summary      Get an invoice by its human-facing number
// @Tags         invoices
// @Produce      json
// @Param        invoiceNumber  path      string  true  "Invoice number, e.g. INV-2025-123456"
// @Success      200            {object}  domain.Invoice
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /invoices/number/{invoiceNumber} [get]
// @Security BearerAuth
func (h *InvoiceHandler) HandleGetInvoiceByNumber(ctx *gin.Context) {
	number := ctx.Param("invoiceNumber")

	invoice, err := h.svc.GetInvoiceByNumber(ctx.Request.Context(), number)
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("invoice", "number", number))
			return
		}

		err = fmt.Errorf("v1.HandleGetInvoiceByNumber -> h.svc.GetInvoiceByNumber -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, invoice)
}

// HandleGetMonthlySales godoc
// @Summary      Monthly sales totals for the dashboard chart
// @Tags         dashboard
// @Produce      json
// @Param        year  query     int  false  "Year, defaults to the current year"
// @Success      200   {array}   domain.MonthlySales
// @Failure      400   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /dashboard/monthly-sales [get]
// @Security BearerAuth
func (h *InvoiceHandler) HandleGetMonthlySales(ctx *gin.Context) {
	year := time.Now().Year()
	if raw := ctx.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid year: %v", err)))
			return
		}
		year = parsed
	}

	months, err := h.svc.GetMonthlySales(ctx.Request.Context(), year)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMonthlySales -> h.svc.GetMonthlySales -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, months)
}
