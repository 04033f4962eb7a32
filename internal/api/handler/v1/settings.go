package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shwenadi/goldshop-api/internal/api/handler/v1/request"
	"github.com/shwenadi/goldshop-api/internal/api/handler/v1/response"
	"github.com/shwenadi/goldshop-api/internal/domain"
	"github.com/shwenadi/goldshop-api/internal/service"
)

type SettingsService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, name string) (domain.Category, error)
	UpdateCategory(ctx context.Context, id, name string) (domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListMaterials(ctx context.Context) ([]domain.Material, error)
	CreateMaterial(ctx context.Context, name string) (domain.Material, error)
	UpdateMaterial(ctx context.Context, id, name string) (domain.Material, error)
	DeleteMaterial(ctx context.Context, id string) error
}

type SettingsHandler struct {
	svc SettingsService
}

func NewSettingsHandler(svc SettingsService) *SettingsHandler {
	return &SettingsHandler{
		svc: svc,
	}
}

// HandleListCategories godoc
// @Summary      List item categories
// @Tags         settings
// @Produce      json
// @Success      200  {array}   domain.Category
// @Failure      500  {object}  response.Err
// @Router       /settings/categories [get]
// @Security BearerAuth
func (h *SettingsHandler) HandleListCategories(ctx *gin.Context) {
	categories, err := h.svc.ListCategories(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleListCategories -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// HandleCreateCategory godoc
// @Summary      Create an item category
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        input  body      request.SettingNameRequest  true  "Category name"
// @Success      201    {object}  domain.Category
// @Failure      400    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /settings/categories [post]
// @Security BearerAuth
func (h *SettingsHandler) HandleCreateCategory(ctx *gin.Context) {
	input, ok := bindSettingName(ctx)
	if !ok {
		return
	}

	category, err := h.svc.CreateCategory(ctx.Request.Context(), input.Name)
	if err != nil {
		renderSettingsErr(ctx, "v1.HandleCreateCategory", "category", err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

// HandleUpdateCategory godoc
// @Summary      Rename an item category
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        categoryID  path      string                      true  "Category ID"
// @Param        input       body      request.SettingNameRequest  true  "New name"
// @Success      200         {object}  domain.Category
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      409         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /settings/categories/{categoryID} [put]
// @Security BearerAuth
func (h *SettingsHandler) HandleUpdateCategory(ctx *gin.Context) {
	input, ok := bindSettingName(ctx)
	if !ok {
		return
	}

	category, err := h.svc.UpdateCategory(ctx.Request.Context(), ctx.Param("categoryID"), input.Name)
	if err != nil {
		renderSettingsErr(ctx, "v1.HandleUpdateCategory", "category", err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}

// HandleDeleteCategory godoc
// @Summary      Delete an item category
// @Tags         settings
// @Produce      json
// @Param        categoryID  path  string  true  "Category ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /settings/categories/{categoryID} [delete]
// @Security BearerAuth
func (h *SettingsHandler) HandleDeleteCategory(ctx *gin.Context) {
	if err := h.svc.DeleteCategory(ctx.Request.Context(), ctx.Param("categoryID")); err != nil {
		renderSettingsErr(ctx, "v1.HandleDeleteCategory", "category", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListMaterials godoc
// @Summary      List item materials
// @Tags         settings
// @Produce      json
// @Success      200  {array}   domain.Material
// @Failure      500  {object}  response.Err
// @Router       /settings/materials [get]
// @Security BearerAuth
func (h *SettingsHandler) HandleListMaterials(ctx *gin.Context) {
	materials, err := h.svc.ListMaterials(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleListMaterials -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, materials)
}

// HandleCreateMaterial godoc
// @Summary      Create an item material
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        input  body      request.SettingNameRequest  true  "Material name"
// @Success      201    {object}  domain.Material
// @Failure      400    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /settings/materials [post]
// @Security BearerAuth
func (h *SettingsHandler) HandleCreateMaterial(ctx *gin.Context) {
	input, ok := bindSettingName(ctx)
	if !ok {
		return
	}

	material, err := h.svc.CreateMaterial(ctx.Request.Context(), input.Name)
	if err != nil {
		renderSettingsErr(ctx, "v1.HandleCreateMaterial", "material", err)
		return
	}

	ctx.JSON(http.StatusCreated, material)
}

// HandleUpdateMaterial godoc
// @Summary      Rename an item material
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        materialID  path      string                      true  "Material ID"
// @Param        input       body      request.SettingNameRequest  true  "New name"
// @Success      200         {object}  domain.Material
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      409         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /settings/materials/{materialID} [put]
// @Security BearerAuth
func (h *SettingsHandler) HandleUpdateMaterial(ctx *gin.Context) {
	input, ok := bindSettingName(ctx)
	if !ok {
		return
	}

	material, err := h.svc.UpdateMaterial(ctx.Request.Context(), ctx.Param("materialID"), input.Name)
	if err != nil {
		renderSettingsErr(ctx, "v1.HandleUpdateMaterial", "material", err)
		return
	}

	ctx.JSON(http.StatusOK, material)
}

// HandleDeleteMaterial godoc
// @Summary      Delete an item material
// @Tags         settings
// @Produce      json
// @Param        materialID  path  string  true  "Material ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /settings/materials/{materialID} [delete]
// @Security BearerAuth
func (h *SettingsHandler) HandleDeleteMaterial(ctx *gin.Context) {
	if err := h.svc.DeleteMaterial(ctx.Request.Context(), ctx.Param("materialID")); err != nil {
		renderSettingsErr(ctx, "v1.HandleDeleteMaterial", "material", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func bindSettingName(ctx *gin.Context) (request.SettingNameRequest, bool) {
	var input request.SettingNameRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return input, false
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return input, false
	}

	return input, true
}

func renderSettingsErr(ctx *gin.Context, op, resource string, err error) {
	switch {
	case errors.Is(err, service.ErrCategoryNotFound), errors.Is(err, service.ErrMaterialNotFound):
		response.RenderErr(ctx, response.ErrNotFound(resource, "id", settingParam(ctx, resource)))
	case errors.Is(err, service.ErrDuplicateCategory), errors.Is(err, service.ErrDuplicateMaterial):
		response.RenderErr(ctx, response.ErrConflict(err))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	}
}

func settingParam(ctx *gin.Context, resource string) string {
	if resource == "material" {
		return ctx.Param("materialID")
	}
	return ctx.Param("categoryID")
}
