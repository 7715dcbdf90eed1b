package handler

import (
	"log/slog"
	"net/http"

	"hub/internal/delivery/http/middleware"
	"hub/internal/delivery/http/response"
	domainerrors "hub/internal/domain/errors"
	"hub/internal/domain/repository"
	"hub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResourceHandler holds dependencies for resource catalog handlers.
type ResourceHandler struct {
	uc     usecase.ResourceUsecase
	logger *slog.Logger
}

// NewResourceHandler is the constructor for ResourceHandler, injected by Fx.
func NewResourceHandler(uc usecase.ResourceUsecase, logger *slog.Logger) *ResourceHandler {
	return &ResourceHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the request to share a new resource.
func (h *ResourceHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
	}

	var input usecase.CreateResourceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resource input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message())
	}

	resource, err := h.uc.Create(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, usecase.NewPublicResource(resource), "Resource created successfully")
}

// List handles the catalog listing request with optional filters.
func (h *ResourceHandler) List(c echo.Context) error {
	filter := repository.ResourceFilter{
		Category: c.QueryParam("category"),
		FileType: c.QueryParam("file_type"),
		Search:   c.QueryParam("search"),
	}

	resources, err := h.uc.List(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, usecase.NewPublicResources(resources), "Resources retrieved successfully")
}

// Get handles the request for a single resource.
func (h *ResourceHandler) Get(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidID.ErrorCode(), domainerrors.ErrInvalidID.Message())
	}

	resource, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, usecase.NewPublicResource(resource), "Resource retrieved successfully")
}
