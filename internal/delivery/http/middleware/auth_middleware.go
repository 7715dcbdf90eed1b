package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	deliverycontext "hub/internal/delivery/context"
	"hub/internal/delivery/http/response"
	domainerrors "hub/internal/domain/errors"
	"hub/internal/domain/repository"
	"hub/internal/domain/service"
	"hub/internal/errors"
)

// SessionCookieName is the cookie the session token travels in.
// It is set HTTP-only and same-site on login and cleared on logout.
const SessionCookieName = "token"

// AuthMiddleware is the session guard in front of protected operations:
// it extracts the token cookie, validates it, resolves the embedded user id
// against the store, and short-circuits with the precise failure otherwise.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate is the core middleware function that validates the session cookie.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return response.Unauthorized(c, domainerrors.ErrMissingToken.ErrorCode(), domainerrors.ErrMissingToken.Message())
		}

		userID, err := m.tokenSvc.Validate(cookie.Value)
		if err != nil {
			// Expired and malformed both gate the request; the business code
			// still tells the client which it was.
			var appErr domainerrors.AppError
			if errors.As(err, &appErr) {
				return response.Unauthorized(c, appErr.ErrorCode(), appErr.Message())
			}

			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
		}

		// The token may outlive the account; a deleted user is not a session.
		if _, err := m.userRepo.FindByID(c.Request().Context(), userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return response.NotFound(c, domainerrors.ErrUserNotFound.ErrorCode(), domainerrors.ErrUserNotFound.Message())
			}

			return response.InternalServerError(c, domainerrors.ErrDatabaseExecute.ErrorCode(), http.StatusText(http.StatusInternalServerError))
		}

		// Set user identity on the context for handlers to use
		c.Set(string(deliverycontext.KeyUserID), userID)

		return next(c)
	}
}

// UserID extracts the authenticated user id the guard stored on the context.
func UserID(c echo.Context) (primitive.ObjectID, bool) {
	userID, ok := c.Get(string(deliverycontext.KeyUserID)).(primitive.ObjectID)

	return userID, ok
}
