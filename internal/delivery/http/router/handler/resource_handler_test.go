package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "hub/internal/delivery/context"
	"hub/internal/domain/entity"
	domainerrors "hub/internal/domain/errors"
	"hub/internal/domain/repository"
	mockUC "hub/internal/mocks/usecase"
	"hub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestResourceHandler_Create_Success(t *testing.T) {
	uc := mockUC.NewMockResourceUsecase(t)
	h := NewResourceHandler(uc, discardLogger())

	uploaderID := primitive.NewObjectID()
	input := usecase.CreateResourceInput{
		Title:      "Linear Algebra Notes",
		Categories: []string{"math"},
		FileType:   "pdf",
		FileURL:    "https://files.example.com/linalg.pdf",
	}
	created := &entity.Resource{
		ID:         primitive.NewObjectID(),
		Title:      input.Title,
		Categories: input.Categories,
		FileType:   input.FileType,
		FileURL:    input.FileURL,
		UploaderID: uploaderID,
	}
	uc.On("Create", mock.Anything, uploaderID, input).Return(created, nil).Once()

	e := newTestEcho()
	body := `{"title":"Linear Algebra Notes","categories":["math"],"file_type":"pdf","file_url":"https://files.example.com/linalg.pdf"}`
	req := httptest.NewRequest(http.MethodPost, "/resources", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(string(deliverycontext.KeyUserID), uploaderID)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID.Hex())
	assert.Contains(t, rec.Body.String(), uploaderID.Hex())
}

// Tag-level validation rejects the request before the usecase is reached.
func TestResourceHandler_Create_TooManyCategories(t *testing.T) {
	uc := mockUC.NewMockResourceUsecase(t)
	h := NewResourceHandler(uc, discardLogger())

	uploaderID := primitive.NewObjectID()

	e := newTestEcho()
	e.POST("/resources", func(c echo.Context) error {
		c.Set(string(deliverycontext.KeyUserID), uploaderID)

		return h.Create(c)
	})

	body := `{"title":"Notes","categories":["a","b","c","d"],"file_type":"pdf","file_url":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/resources", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestResourceHandler_Create_UnknownFileType(t *testing.T) {
	uc := mockUC.NewMockResourceUsecase(t)
	h := NewResourceHandler(uc, discardLogger())

	uploaderID := primitive.NewObjectID()
	uc.On("Create", mock.Anything, uploaderID, mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WrapMessage("unknown file type")).Once()

	e := newTestEcho()
	e.POST("/resources", func(c echo.Context) error {
		c.Set(string(deliverycontext.KeyUserID), uploaderID)

		return h.Create(c)
	})

	body := `{"title":"Notes","categories":["math"],"file_type":"exe","file_url":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/resources", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestResourceHandler_List_PassesFilter(t *testing.T) {
	uc := mockUC.NewMockResourceUsecase(t)
	h := NewResourceHandler(uc, discardLogger())

	filter := repository.ResourceFilter{
		Category: "math",
		FileType: "pdf",
		Search:   "algebra",
	}
	uc.On("List", mock.Anything, filter).Return([]*entity.Resource{}, nil).Once()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/resources?category=math&file_type=pdf&search=algebra", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResourceHandler_Get_Success(t *testing.T) {
	uc := mockUC.NewMockResourceUsecase(t)
	h := NewResourceHandler(uc, discardLogger())

	id := primitive.NewObjectID()
	resource := &entity.Resource{
		ID:           id,
		Title:        "Operating systems slides",
		UploaderID:   primitive.NewObjectID(),
		BookmarkedBy: []primitive.ObjectID{primitive.NewObjectID()},
	}
	uc.On("Get", mock.Anything, id).Return(resource, nil).Once()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/resources/"+id.Hex(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.Hex())

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Operating systems slides")
	assert.Contains(t, rec.Body.String(), `"bookmark_count":1`)
}

func TestResourceHandler_Get_InvalidID(t *testing.T) {
	uc := mockUC.NewMockResourceUsecase(t)
	h := NewResourceHandler(uc, discardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/resources/zzz", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("zzz")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestResourceHandler_Get_NotFound(t *testing.T) {
	uc := mockUC.NewMockResourceUsecase(t)
	h := NewResourceHandler(uc, discardLogger())

	id := primitive.NewObjectID()
	uc.On("Get", mock.Anything, id).
		Return(nil, domainerrors.ErrResourceNotFound.WrapMessage("resource lookup failed")).Once()

	e := newTestEcho()
	e.GET("/resources/:id", h.Get)

	req := httptest.NewRequest(http.MethodGet, "/resources/"+id.Hex(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "RESOURCE_NOT_FOUND")
}
