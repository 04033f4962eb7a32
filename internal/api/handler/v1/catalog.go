package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shwenadi/goldshop-api/internal/api/handler/v1/request"
	"github.com/shwenadi/goldshop-api/internal/api/handler/v1/response"
	"github.com/shwenadi/goldshop-api/internal/domain"
	"github.com/shwenadi/goldshop-api/internal/service"
)

const maxImageSize = 10 * 1024 * 1024 // 10 MB

type CatalogService interface {
	CreateItem(ctx context.Context, item domain.Item, upload *service.ImageUpload) (domain.Item, error)
	UpdateItem(ctx context.Context, id string, upd domain.ItemUpdate, upload *service.ImageUpload) (domain.Item, error)
	DeleteItem(ctx context.Context, id string) error
	GetItemByID(ctx context.Context, id string) (domain.Item, error)
	ListItems(ctx context.Context, filter domain.ItemFilter) (domain.ItemPage, error)
	SetStock(ctx context.Context, id string, stock int) (domain.Item, error)
	SearchItems(ctx context.Context, term string, filter domain.ItemFilter) ([]domain.Item, error)
}

type CatalogHandler struct {
	svc CatalogService
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		svc: svc,
	}
}

// HandleCreateItem godoc
// @Summary      Create a catalog item
// @Tags         items
// @Accept       multipart/form-data
// @Produce      json
// @Param        name      formData  string  true   "Item name"
// @Param        category  formData  string  true   "rings|necklaces|bracelets|earrings|watches"
// @Param        material  formData  string  true   "Material"
// @Param        stock     formData  int     false  "Initial stock"
// @Param        image     formData  file    false  "Item photo"
// @Success      201       {object}  domain.Item
// @Failure      400       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /items [post]
// @Security BearerAuth
func (h *CatalogHandler) HandleCreateItem(ctx *gin.Context) {
	var input request.CreateItemRequest
	if err := ctx.ShouldBind(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	upload, respErr := readImageUpload(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	item := domain.Item{
		Name:        input.Name,
		Category:    domain.ItemCategory(input.Category),
		Description: input.Description,
		Material:    input.Material,
		Stock:       input.Stock,
	}

	created, err := h.svc.CreateItem(ctx.Request.Context(), item, upload)
	if err != nil {
		renderCatalogErr(ctx, "v1.HandleCreateItem", err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateItem godoc
// @Summary      Update a catalog item
// @Description  Partial update; only supplied fields change. An image file replaces the current photo.
// @Tags         items
// @Accept       multipart/form-data
// @Produce      json
// @Param        itemID  path      string  true  "Item ID"
// @Success      200     {object}  domain.Item
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /items/{itemID} [put]
// @Security BearerAuth
func (h *CatalogHandler) HandleUpdateItem(ctx *gin.Context) {
	id := ctx.Param("itemID")

	var input request.UpdateItemRequest
	if err := ctx.ShouldBind(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	upload, respErr := readImageUpload(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	upd := domain.ItemUpdate{
		Name:        input.Name,
		Description: input.Description,
		Material:    input.Material,
		Stock:       input.Stock,
	}
	if input.Category != nil {
		category := domain.ItemCategory(*input.Category)
		upd.Category = &category
	}

	updated, err := h.svc.UpdateItem(ctx.Request.Context(), id, upd, upload)
	if err != nil {
		renderCatalogErr(ctx, "v1.HandleUpdateItem", err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteItem godoc
// @Summary      Delete a catalog item
// @Tags         items
// @Produce      json
// @Param        itemID  path  string  true  "Item ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /items/{itemID} [delete]
// @Security BearerAuth
func (h *CatalogHandler) HandleDeleteItem(ctx *gin.Context) {
	id := ctx.Param("itemID")

	if err := h.svc.DeleteItem(ctx.Request.Context(), id); err != nil {
		renderCatalogErr(ctx, "v1.HandleDeleteItem", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetItem godoc
// @Summary      Get a catalog item
// @Tags         items
// @Produce      json
// @Param        itemID  path      string  true  "Item ID"
// @Success      200     {object}  domain.Item
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /items/{itemID} [get]
// @Security BearerAuth
func (h *CatalogHandler) HandleGetItem(ctx *gin.Context) {
	id := ctx.Param("itemID")

	item, err := h.svc.GetItemByID(ctx.Request.Context(), id)
	if err != nil {
		renderCatalogErr(ctx, "v1.HandleGetItem", err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleListItems godoc
// @Summary      List catalog items
// @Description  Filters by category, material substrings (repeatable, OR-combined), and stock bucket; paginated.
// @Tags         items
// @Produce      json
// @Param        category      query     string  false  "Category"
// @Param        material      query     string  false  "Material substring, repeatable"
// @Param        stock_status  query     string  false  "all|low-stock|out-of-stock"
// @Param        page          query     int     false  "Page, 1-based"
// @Param        page_size     query     int     false  "Page size"
// @Success      200           {object}  domain.ItemPage
// @Failure      400           {object}  response.Err
// @Failure      500           {object}  response.Err
// @Router       /items [get]
// @Security BearerAuth
func (h *CatalogHandler) HandleListItems(ctx *gin.Context) {
	filter, respErr := parseItemFilter(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	page, err := h.svc.ListItems(ctx.Request.Context(), filter)
	if err != nil {
		renderCatalogErr(ctx, "v1.HandleListItems", err)
		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleSetStock godoc
// @Summary      Set an item's stock to an absolute value
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        itemID  path      string                   true  "Item ID"
// @Param        input   body      request.SetStockRequest  true  "New stock"
// @Success      200     {object}  domain.Item
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /items/{itemID}/stock [put]
// @Security BearerAuth
func (h *CatalogHandler) HandleSetStock(ctx *gin.Context) {
	id := ctx.Param("itemID")

	var input request.SetStockRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.SetStock(ctx.Request.Context(), id, *input.Stock)
	if err != nil {
		renderCatalogErr(ctx, "v1.HandleSetStock", err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleSearchItems godoc
// @Summary      Search catalog items
// @Description  Case-insensitive substring match on name or id, capped at 50 results.
// @Tags         items
// @Produce      json
// @Param        q  query     string  true  "Search term"
// @Success      200  {array}   domain.Item
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /items/search [get]
// @Security BearerAuth
func (h *CatalogHandler) HandleSearchItems(ctx *gin.Context) {
	filter, respErr := parseItemFilter(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	items, err := h.svc.SearchItems(ctx.Request.Context(), ctx.Query("q"), filter)
	if err != nil {
		renderCatalogErr(ctx, "v1.HandleSearchItems", err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

func parseItemFilter(ctx *gin.Context) (domain.ItemFilter, *response.Err) {
	filter := domain.ItemFilter{
		Category:    domain.ItemCategory(ctx.Query("category")),
		Materials:   ctx.QueryArray("material"),
		StockStatus: domain.StockStatus(ctx.Query("stock_status")),
	}

	if raw := ctx.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return domain.ItemFilter{}, response.ErrBadRequest(fmt.Errorf("invalid page: %v", err))
		}
		filter.Page = page
	}

	if raw := ctx.Query("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return domain.ItemFilter{}, response.ErrBadRequest(fmt.Errorf("invalid page size: %v", err))
		}
		filter.PageSize = size
	}

	return filter, nil
}

// readImageUpload pulls the optional "image" file out of the multipart form.
// A missing file is fine; a present one must fit maxImageSize.
func readImageUpload(ctx *gin.Context) (*service.ImageUpload, *response.Err) {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, response.ErrBadRequest(err)
	}

	if fileHeader.Size > maxImageSize {
		return nil, response.ErrBadRequest(fmt.Errorf("image exceeds %d bytes", maxImageSize))
	}

	data, respErr := readAll(fileHeader)
	if respErr != nil {
		return nil, respErr
	}

	return &service.ImageUpload{
		Filename: fileHeader.Filename,
		MIME:     strings.TrimSpace(fileHeader.Header.Get("Content-Type")),
		Data:     data,
	}, nil
}

func readAll(fileHeader *multipart.FileHeader) ([]byte, *response.Err) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, response.ErrBadRequest(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, response.ErrInternalServerError(fmt.Errorf("v1.readAll -> io.ReadAll -> %w", err))
	}

	return data, nil
}

func renderCatalogErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		response.RenderErr(ctx, response.ErrNotFound("item", "id", ctx.Param("itemID")))
	case errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidImageType),
		errors.Is(err, service.ErrNegativeStock):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	}
}
