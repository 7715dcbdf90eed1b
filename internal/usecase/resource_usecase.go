package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"hub/internal/domain/entity"
	"hub/internal/domain/repository"
)

// CreateResourceInput defines the data required to share a new resource.
type CreateResourceInput struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Categories   []string `json:"categories" validate:"required,min=1,max=3"`
	FileType     string   `json:"file_type" validate:"required"`
	FileURL      string   `json:"file_url"`
	ExternalLink string   `json:"external_link"`
}

// PublicResource carries the resource fields exposed outward.
type PublicResource struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Categories    []string  `json:"categories"`
	FileType      string    `json:"file_type"`
	FileURL       string    `json:"file_url,omitempty"`
	ExternalLink  string    `json:"external_link,omitempty"`
	UploaderID    string    `json:"uploader_id"`
	BookmarkCount int       `json:"bookmark_count"`
	Rating        float64   `json:"rating"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewPublicResource maps a resource entity to its public projection.
func NewPublicResource(resource *entity.Resource) *PublicResource {
	return &PublicResource{
		ID:            resource.ID.Hex(),
		Title:         resource.Title,
		Description:   resource.Description,
		Categories:    resource.Categories,
		FileType:      resource.FileType,
		FileURL:       resource.FileURL,
		ExternalLink:  resource.ExternalLink,
		UploaderID:    resource.UploaderID.Hex(),
		BookmarkCount: len(resource.BookmarkedBy),
		Rating:        resource.Rating,
		CreatedAt:     resource.CreatedAt,
	}
}

// NewPublicResources maps a slice of resource entities, never returning nil.
func NewPublicResources(resources []*entity.Resource) []*PublicResource {
	out := make([]*PublicResource, 0, len(resources))
	for _, resource := range resources {
		out = append(out, NewPublicResource(resource))
	}

	return out
}

// ResourceUsecase defines the interface for resource catalog operations.
type ResourceUsecase interface {
	// Create persists a new resource shared by the given uploader.
	Create(ctx context.Context, uploaderID primitive.ObjectID, input CreateResourceInput) (*entity.Resource, error)

	// List returns resources matching the filter, newest first.
	List(ctx context.Context, filter repository.ResourceFilter) ([]*entity.Resource, error)

	// Get returns a single resource by id.
	Get(ctx context.Context, id primitive.ObjectID) (*entity.Resource, error)
}
