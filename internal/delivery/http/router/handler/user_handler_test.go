package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "hub/internal/delivery/context"
	hubmiddleware "hub/internal/delivery/http/middleware"
	hubvalidator "hub/internal/delivery/http/validator"
	domainerrors "hub/internal/domain/errors"
	mockSvc "hub/internal/mocks/service"
	mockUC "hub/internal/mocks/usecase"
	"hub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho returns an echo instance with the application's error handler
// and validator, so handler errors turn into the real response envelope.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = hubmiddleware.NewErrorMiddleware(discardLogger()).HandleHTTPError
	e.Validator = hubvalidator.New()

	return e
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := rec.Result()
	defer res.Body.Close()

	for _, cookie := range res.Cookies() {
		if cookie.Name == hubmiddleware.SessionCookieName {
			return cookie
		}
	}

	return nil
}

func TestUserHandler_Signup_Success(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	h := NewUserHandler(uc, tokenSvc, discardLogger())

	input := usecase.SignupInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}
	uc.On("Signup", mock.Anything, input).Return(&usecase.SignupOutput{
		User: &usecase.PublicUser{
			ID:    primitive.NewObjectID().Hex(),
			Name:  input.Name,
			Email: input.Email,
		},
	}, nil).Once()

	e := newTestEcho()
	e.POST("/auth/signup", h.Signup)

	body := `{"name":"Test User","email":"test@example.com","password":"Password123!"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "test@example.com")
	// The password and its hash never appear in the response.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_Signup_EmailTaken(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	h := NewUserHandler(uc, tokenSvc, discardLogger())

	uc.On("Signup", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrEmailTaken.WrapMessage("signup pre-check found existing user")).Once()

	e := newTestEcho()
	e.POST("/auth/signup", h.Signup)

	body := `{"name":"Test User","email":"taken@example.com","password":"Password123!"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_TAKEN")
}

func TestUserHandler_Login_SetsSessionCookie(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	h := NewUserHandler(uc, tokenSvc, discardLogger())

	userID := primitive.NewObjectID()
	uc.On("Login", mock.Anything, mock.Anything).Return(&usecase.LoginOutput{
		Token: "signed.session.token",
		User:  &usecase.PublicUser{ID: userID.Hex(), Email: "test@example.com"},
	}, nil).Once()
	tokenSvc.On("SessionTTL").Return(7 * 24 * time.Hour).Once()

	e := newTestEcho()
	e.POST("/auth/login", h.Login)

	body := `{"email":"test@example.com","password":"Password123!"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// The token travels only in the cookie, never the body.
	assert.NotContains(t, rec.Body.String(), "signed.session.token")

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed.session.token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	h := NewUserHandler(uc, tokenSvc, discardLogger())

	uc.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")).Once()

	e := newTestEcho()
	e.POST("/auth/login", h.Login)

	body := `{"email":"test@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	assert.Nil(t, sessionCookie(t, rec))
}

func TestUserHandler_Logout_ClearsCookie(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	h := NewUserHandler(uc, tokenSvc, discardLogger())

	e := newTestEcho()
	e.POST("/auth/logout", h.Logout)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

// Logging out without a session is still a success; the cookie just gets cleared.
func TestUserHandler_Logout_WithoutSession(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	h := NewUserHandler(uc, tokenSvc, discardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_GetMe(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	h := NewUserHandler(uc, tokenSvc, discardLogger())

	userID := primitive.NewObjectID()
	uc.On("GetProfile", mock.Anything, userID).Return(&usecase.PublicUser{
		ID:    userID.Hex(),
		Name:  "Test User",
		Email: "test@example.com",
	}, nil).Once()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(string(deliverycontext.KeyUserID), userID)

	require.NoError(t, h.GetMe(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.Hex())
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
