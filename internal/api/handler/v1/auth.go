package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guestlistapp/guestlist-api/internal/api/handler/v1/request"
	"github.com/guestlistapp/guestlist-api/internal/api/handler/v1/response"
	"github.com/guestlistapp/guestlist-api/internal/api/middleware"
	"github.com/guestlistapp/guestlist-api/internal/config"
	"github.com/guestlistapp/guestlist-api/internal/domain"
	"github.com/guestlistapp/guestlist-api/internal/pkg/jwthelper"
	"github.com/guestlistapp/guestlist-api/internal/service"
)

type AuthService interface {
	Register(ctx context.Context, email, password, name string, phone *string) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	PhoneAuth(ctx context.Context, phone, name string) (domain.User, error)
}

type AuthUserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

type AuthHandler struct {
	conf    *config.APIConfig
	svc     AuthService
	userSvc AuthUserService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService, userSvc AuthUserService) *AuthHandler {
	return &AuthHandler{
		conf:    conf,
		svc:     svc,
		userSvc: userSvc,
	}
}

// HandleRegister godoc
// @Summary      Register a new user with email and password
// @Tags         auth
// @Produce      json
// @Param        request   body      request.RegisterRequest true "request body"
// @Success      201      {object}   response.AuthResponse
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/register [post]
func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var phone *string
	if req.Phone != "" {
		phone = &req.Phone
	}

	user, err := h.svc.Register(ctx.Request.Context(), req.Email, req.Password, req.Name, phone)
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrUserEmailExists))

			return
		}

		err = fmt.Errorf("v1.HandleRegister -> h.svc.Register -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	h.renderAuth(ctx, http.StatusCreated, user)
}

// HandleLogin godoc
// @Summary      Login a user with email and password
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.AuthResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		// An unknown email and a wrong password render identically.
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials())

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	h.renderAuth(ctx, http.StatusOK, user)
}

// HandlePhoneAuth godoc
// @Summary      Find or create a user by a provider-verified phone number
// @Tags         auth
// @Produce      json
// @Param        request   body      request.PhoneAuthRequest true "request body"
// @Success      200      {object}   response.AuthResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/phone-auth [post]
func (h *AuthHandler) HandlePhoneAuth(ctx *gin.Context) {
	var req request.PhoneAuthRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.PhoneAuth(ctx.Request.Context(), req.Phone, req.Name)
	if err != nil {
		err = fmt.Errorf("v1.HandlePhoneAuth -> h.svc.PhoneAuth -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	h.renderAuth(ctx, http.StatusOK, user)
}

// HandleGetMe godoc
// @Summary      Get the authenticated user
// @Security     BearerAuth
// @Tags         auth
// @Produce      json
// @Success      200      {object}   domain.User
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/me [get]
func (h *AuthHandler) HandleGetMe(ctx *gin.Context) {
	userID := ctx.GetUint(middleware.CtxKeyUserID)

	user, err := h.userSvc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user"))

			return
		}

		err = fmt.Errorf("v1.HandleGetMe -> h.userSvc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *AuthHandler) renderAuth(ctx *gin.Context, status int, user domain.User) {
	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.ID, user.IsAdmin)
	if err != nil {
		err = fmt.Errorf("v1.renderAuth -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(status, response.AuthResponse{
		User:  user,
		Token: token,
	})
}
