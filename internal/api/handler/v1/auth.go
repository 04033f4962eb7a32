package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shwenadi/goldshop-api/internal/api/handler/v1/request"
	"github.com/shwenadi/goldshop-api/internal/api/handler/v1/response"
	"github.com/shwenadi/goldshop-api/internal/api/middleware"
	"github.com/shwenadi/goldshop-api/internal/domain"
	"github.com/shwenadi/goldshop-api/internal/pkg/jwthelper"
	"github.com/shwenadi/goldshop-api/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, user domain.AdminUser) (domain.AdminUser, error)
	Login(ctx context.Context, email, password string) (domain.AdminUser, error)
	GetUser(ctx context.Context, id uint) (domain.AdminUser, error)
}

type AuthHandler struct {
	jwtSigningKey []byte
	svc           AuthService
}

func NewAuthHandler(jwtSigningKey string, svc AuthService) *AuthHandler {
	return &AuthHandler{
		jwtSigningKey: []byte(jwtSigningKey),
		svc:           svc,
	}
}

// HandleSignup godoc
// @Summary      Register an admin account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      request.SignupRequest  true  "Signup info"
// @Success      201    {object}  domain.AdminUser
// @Failure      400    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /auth/signup [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var input request.SignupRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Signup(ctx.Request.Context(), domain.AdminUser{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrUserEmailExists))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleSignup -> %w", err)))
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// HandleLogin godoc
// @Summary      Log in as an admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      request.LoginRequest  true  "Credentials"
// @Success      200    {object}  response.LoginResponse
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var input request.LoginRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(errors.New("wrong email or password")))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleLogin -> %w", err)))
		return
	}

	token, err := jwthelper.GenerateToken(h.jwtSigningKey, user.ID, ctx.Request.UserAgent())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		User:  user,
	})
}

// HandleGetMe godoc
// @Summary      Get the authenticated admin
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.AdminUser
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /auth/me [get]
// @Security BearerAuth
func (h *AuthHandler) HandleGetMe(ctx *gin.Context) {
	userID := ctx.GetUint(middleware.ContextKeyUserID)
	if userID == 0 {
		response.RenderErr(ctx, response.ErrUnauthorized(errors.New("missing authenticated user")))
		return
	}

	user, err := h.svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleGetMe -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, user)
}
