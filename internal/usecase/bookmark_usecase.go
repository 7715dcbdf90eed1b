package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"hub/internal/domain/entity"
)

// BookmarkUsecase defines the interface for bookmark-related business operations.
type BookmarkUsecase interface {
	// Toggle flips the bookmark relationship between a user and a resource,
	// updating both sides of the mirror. It returns true when the resource
	// is bookmarked after the call, false when it was just removed.
	Toggle(ctx context.Context, userID, resourceID primitive.ObjectID) (bool, error)

	// List returns the resources the user currently bookmarks.
	List(ctx context.Context, userID primitive.ObjectID) ([]*entity.Resource, error)
}
