package impl

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"

	deliverycontext "hub/internal/delivery/context"
	"hub/internal/domain/entity"
	domainerrors "hub/internal/domain/errors"
	"hub/internal/domain/repository"
	"hub/internal/errors"
	"hub/internal/usecase"
)

// bookmarkService implements the BookmarkUsecase interface.
// The user-side set and the resource-side back-reference are updated by two
// independent store calls, not a transaction: a crash between them leaves the
// mirror inconsistent until the toggle is retried. Both sides use set
// semantics, so a retry repairs rather than duplicates.
type bookmarkService struct {
	userRepo     repository.UserRepository
	resourceRepo repository.ResourceRepository
	logger       *slog.Logger
}

// BookmarkServiceParams holds dependencies for bookmarkService, injected by Fx.
type BookmarkServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	ResourceRepo repository.ResourceRepository
	Logger       *slog.Logger
}

// NewBookmarkService is the constructor for bookmarkService.
func NewBookmarkService(params BookmarkServiceParams) usecase.BookmarkUsecase {
	return &bookmarkService{
		userRepo:     params.UserRepo,
		resourceRepo: params.ResourceRepo,
		logger:       params.Logger,
	}
}

func (srv *bookmarkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Toggle flips the bookmark relationship between a user and a resource.
// Both references are resolved before any write, so a failed toggle mutates nothing.
func (srv *bookmarkService) Toggle(ctx context.Context, userID, resourceID primitive.ObjectID) (bool, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, domainerrors.ErrInvalidReference.WrapMessage("toggle user missing")
		}

		return false, errors.Wrap(err, "failed to load user for toggle")
	}

	if _, err := srv.resourceRepo.FindByID(ctx, resourceID); err != nil {
		if errors.Is(err, repository.ErrResourceNotFound) {
			return false, domainerrors.ErrInvalidReference.WrapMessage("toggle resource missing")
		}

		return false, errors.Wrap(err, "failed to load resource for toggle")
	}

	if user.HasBookmarked(resourceID) {
		// Remove from both sides. User side first; the ops are idempotent,
		// so a crash between them is repaired by retrying the toggle.
		if err := srv.userRepo.RemoveBookmark(ctx, userID, resourceID); err != nil {
			return false, errors.Wrap(err, "failed to remove user-side bookmark")
		}
		if err := srv.resourceRepo.RemoveBookmarkedBy(ctx, resourceID, userID); err != nil {
			return false, errors.Wrap(err, "failed to remove resource-side back-reference")
		}

		srv.log(ctx).Debug("Bookmark removed",
			slog.String("userID", userID.Hex()), slog.String("resourceID", resourceID.Hex()))

		return false, nil
	}

	if err := srv.userRepo.AddBookmark(ctx, userID, resourceID); err != nil {
		return false, errors.Wrap(err, "failed to add user-side bookmark")
	}
	if err := srv.resourceRepo.AddBookmarkedBy(ctx, resourceID, userID); err != nil {
		return false, errors.Wrap(err, "failed to add resource-side back-reference")
	}

	srv.log(ctx).Debug("Bookmark added",
		slog.String("userID", userID.Hex()), slog.String("resourceID", resourceID.Hex()))

	return true, nil
}

// List returns the resources the user currently bookmarks.
func (srv *bookmarkService) List(ctx context.Context, userID primitive.ObjectID) ([]*entity.Resource, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("bookmark listing failed")
		}

		return nil, errors.Wrap(err, "failed to load user for bookmark listing")
	}

	resources, err := srv.resourceRepo.FindByIDs(ctx, user.Bookmarks)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load bookmarked resources")
	}

	return resources, nil
}
