package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shwenadi/goldshop-api/internal/api/handler/v1/response"
	"github.com/shwenadi/goldshop-api/internal/imagestore"
)

type ImageHandler struct {
	store imagestore.Store
}

func NewImageHandler(store imagestore.Store) *ImageHandler {
	return &ImageHandler{
		store: store,
	}
}

// HandleGetImage godoc
// @Summary      Serve an item photo
// @Tags         images
// @Produce      image/jpeg
// @Param        key  path  string  true  "Storage key"
// @Success      200
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /images/{key} [get]
func (h *ImageHandler) HandleGetImage(ctx *gin.Context) {
	key := strings.TrimPrefix(ctx.Param("key"), "/")

	data, contentType, err := h.store.Get(ctx.Request.Context(), key)
	if err != nil {
		if errors.Is(err, imagestore.ErrImageNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("image", "key", key))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleGetImage -> %w", err)))
		return
	}

	// Stored images are immutable; a replaced photo gets a new key.
	ctx.Header("Cache-Control", "public, max-age=31536000, immutable")
	ctx.Data(http.StatusOK, contentType, data)
}
