// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"hub/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)

	// FindByEmail retrieves a single user by their exact email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity and assigns its ID.
	Create(ctx context.Context, user *entity.User) error

	// AddBookmark adds a resource id to the user's bookmark set.
	// Adding an already-present id is a no-op (set semantics).
	AddBookmark(ctx context.Context, userID, resourceID primitive.ObjectID) error

	// RemoveBookmark removes a resource id from the user's bookmark set.
	// Removing an absent id is a no-op (set semantics).
	RemoveBookmark(ctx context.Context, userID, resourceID primitive.ObjectID) error
}
