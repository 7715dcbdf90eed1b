package handler

import (
	"log/slog"
	"net/http"

	"hub/internal/delivery/http/middleware"
	"hub/internal/delivery/http/response"
	domainerrors "hub/internal/domain/errors"
	"hub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookmarkHandler holds dependencies for bookmark handlers.
type BookmarkHandler struct {
	uc     usecase.BookmarkUsecase
	logger *slog.Logger
}

// NewBookmarkHandler is the constructor for BookmarkHandler, injected by Fx.
func NewBookmarkHandler(uc usecase.BookmarkUsecase, logger *slog.Logger) *BookmarkHandler {
	return &BookmarkHandler{
		uc:     uc,
		logger: logger,
	}
}

// Toggle flips the bookmark state between the session user and a resource.
func (h *BookmarkHandler) Toggle(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
	}

	resourceID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidID.ErrorCode(), domainerrors.ErrInvalidID.Message())
	}

	bookmarked, err := h.uc.Toggle(c.Request().Context(), userID, resourceID)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Bookmark removed"
	if bookmarked {
		message = "Bookmark added"
	}

	return response.Success(c, http.StatusOK, map[string]bool{"bookmarked": bookmarked}, message)
}

// List returns the resources the session user currently bookmarks.
func (h *BookmarkHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
	}

	resources, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, usecase.NewPublicResources(resources), "Bookmarks retrieved successfully")
}
