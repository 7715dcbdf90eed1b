package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"hub/internal/domain/entity"
	domainerrors "hub/internal/domain/errors"
	"hub/internal/domain/repository"
	mockRepo "hub/internal/mocks/repository"
	"hub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// bookmarkServiceFixtures holds all test dependencies for bookmark service tests.
type bookmarkServiceFixtures struct {
	service      usecase.BookmarkUsecase
	userRepo     *mockRepo.MockUserRepository
	resourceRepo *mockRepo.MockResourceRepository
}

func createTestBookmarkService(t *testing.T) bookmarkServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	resourceRepo := mockRepo.NewMockResourceRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewBookmarkService(BookmarkServiceParams{
		UserRepo:     userRepo,
		ResourceRepo: resourceRepo,
		Logger:       logger,
	})

	return bookmarkServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		resourceRepo: resourceRepo,
	}
}

func TestBookmarkService_Toggle_AddsWhenAbsent(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	userID := primitive.NewObjectID()
	resourceID := primitive.NewObjectID()

	user := &entity.User{ID: userID, Bookmarks: []primitive.ObjectID{}}
	resource := &entity.Resource{ID: resourceID, Title: "Lecture notes"}

	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil).Once()
	fx.resourceRepo.On("FindByID", ctx, resourceID).Return(resource, nil).Once()
	fx.userRepo.On("AddBookmark", ctx, userID, resourceID).Return(nil).Once()
	fx.resourceRepo.On("AddBookmarkedBy", ctx, resourceID, userID).Return(nil).Once()

	bookmarked, err := fx.service.Toggle(ctx, userID, resourceID)
	require.NoError(t, err)
	assert.True(t, bookmarked)
}

func TestBookmarkService_Toggle_RemovesWhenPresent(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	userID := primitive.NewObjectID()
	resourceID := primitive.NewObjectID()

	user := &entity.User{ID: userID, Bookmarks: []primitive.ObjectID{resourceID}}
	resource := &entity.Resource{ID: resourceID, BookmarkedBy: []primitive.ObjectID{userID}}

	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil).Once()
	fx.resourceRepo.On("FindByID", ctx, resourceID).Return(resource, nil).Once()
	fx.userRepo.On("RemoveBookmark", ctx, userID, resourceID).Return(nil).Once()
	fx.resourceRepo.On("RemoveBookmarkedBy", ctx, resourceID, userID).Return(nil).Once()

	bookmarked, err := fx.service.Toggle(ctx, userID, resourceID)
	require.NoError(t, err)
	assert.False(t, bookmarked)
}

// A toggle against a missing resource must fail before any write happens.
func TestBookmarkService_Toggle_MissingResource(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	userID := primitive.NewObjectID()
	resourceID := primitive.NewObjectID()

	user := &entity.User{ID: userID}
	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil).Once()
	fx.resourceRepo.On("FindByID", ctx, resourceID).
		Return(nil, repository.ErrResourceNotFound).Once()

	bookmarked, err := fx.service.Toggle(ctx, userID, resourceID)
	assert.False(t, bookmarked)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReference)

	// No AddBookmark/RemoveBookmark expectations were set: any write would
	// fail the mock assertions on cleanup.
	fx.userRepo.AssertNotCalled(t, "AddBookmark", ctx, userID, resourceID)
	fx.userRepo.AssertNotCalled(t, "RemoveBookmark", ctx, userID, resourceID)
}

func TestBookmarkService_Toggle_MissingUser(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	userID := primitive.NewObjectID()
	resourceID := primitive.NewObjectID()

	fx.userRepo.On("FindByID", ctx, userID).
		Return(nil, repository.ErrUserNotFound).Once()

	bookmarked, err := fx.service.Toggle(ctx, userID, resourceID)
	assert.False(t, bookmarked)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReference)
}

// Two toggles in a row land back in the original state.
func TestBookmarkService_Toggle_RoundTrip(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	userID := primitive.NewObjectID()
	resourceID := primitive.NewObjectID()
	resource := &entity.Resource{ID: resourceID}

	// First toggle sees an empty bookmark set and adds.
	fx.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID}, nil).Once()
	fx.resourceRepo.On("FindByID", ctx, resourceID).Return(resource, nil).Once()
	fx.userRepo.On("AddBookmark", ctx, userID, resourceID).Return(nil).Once()
	fx.resourceRepo.On("AddBookmarkedBy", ctx, resourceID, userID).Return(nil).Once()

	bookmarked, err := fx.service.Toggle(ctx, userID, resourceID)
	require.NoError(t, err)
	require.True(t, bookmarked)

	// Second toggle sees the stored bookmark and removes.
	fx.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Bookmarks: []primitive.ObjectID{resourceID}}, nil).Once()
	fx.resourceRepo.On("FindByID", ctx, resourceID).Return(resource, nil).Once()
	fx.userRepo.On("RemoveBookmark", ctx, userID, resourceID).Return(nil).Once()
	fx.resourceRepo.On("RemoveBookmarkedBy", ctx, resourceID, userID).Return(nil).Once()

	bookmarked, err = fx.service.Toggle(ctx, userID, resourceID)
	require.NoError(t, err)
	assert.False(t, bookmarked)
}

func TestBookmarkService_List_Success(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	userID := primitive.NewObjectID()
	ids := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}
	user := &entity.User{ID: userID, Bookmarks: ids}
	resources := []*entity.Resource{
		{ID: ids[0], Title: "Calculus cheat sheet"},
		{ID: ids[1], Title: "Operating systems slides"},
	}

	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil).Once()
	fx.resourceRepo.On("FindByIDs", ctx, ids).Return(resources, nil).Once()

	got, err := fx.service.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Calculus cheat sheet", got[0].Title)
}

func TestBookmarkService_List_UnknownUser(t *testing.T) {
	fx := createTestBookmarkService(t)

	ctx := context.Background()
	userID := primitive.NewObjectID()

	fx.userRepo.On("FindByID", ctx, userID).
		Return(nil, repository.ErrUserNotFound).Once()

	got, err := fx.service.List(ctx, userID)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
