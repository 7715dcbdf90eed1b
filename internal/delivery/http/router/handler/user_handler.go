// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"hub/internal/delivery/http/middleware"
	"hub/internal/delivery/http/response"
	domainerrors "hub/internal/domain/errors"
	"hub/internal/domain/service"
	"hub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account and session handlers.
type UserHandler struct {
	uc       usecase.UserUsecase
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, tokenSvc service.TokenService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// Signup handles the account registration request.
func (h *UserHandler) Signup(c echo.Context) error {
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	output, err := h.uc.Signup(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "User registered successfully")
}

// Login handles the login request and establishes the session cookie.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    output.Token,
		Path:     "/",
		MaxAge:   int(h.tokenSvc.SessionTTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, output.User, "Login successful")
}

// Logout clears the session cookie. Tokens are stateless, so expiring the
// cookie is the whole operation; an absent cookie is not an error.
func (h *UserHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// GetMe handles the request to get the current user's profile.
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
