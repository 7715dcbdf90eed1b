// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"hub/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrResourceNotFound is a domain-specific error returned when a resource is not found.
var ErrResourceNotFound = errors.New("resource not found")

// ResourceFilter narrows a resource listing. Zero-value fields are ignored.
type ResourceFilter struct {
	Category string // Matches resources containing this category.
	FileType string // Matches the resource's file type exactly.
	Search   string // Case-insensitive substring match on the title.
}

// ResourceRepository defines the standard operations for resource persistence.
type ResourceRepository interface {
	// FindByID retrieves a single resource by its unique ID.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Resource, error)

	// FindByIDs retrieves all resources whose ids are in the given set.
	// Missing ids are silently skipped.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Resource, error)

	// Find retrieves resources matching the filter, newest first.
	Find(ctx context.Context, filter ResourceFilter) ([]*entity.Resource, error)

	// Create persists a new resource entity and assigns its ID.
	Create(ctx context.Context, resource *entity.Resource) error

	// AddBookmarkedBy adds a user id to the resource's back-reference set.
	AddBookmarkedBy(ctx context.Context, resourceID, userID primitive.ObjectID) error

	// RemoveBookmarkedBy removes a user id from the resource's back-reference set.
	RemoveBookmarkedBy(ctx context.Context, resourceID, userID primitive.ObjectID) error
}
