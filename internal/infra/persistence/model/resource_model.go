package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"hub/internal/domain/entity"
)

// ResourceModel is the MongoDB document shape for a resource.
type ResourceModel struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Title        string               `bson:"title"`
	Description  string               `bson:"description"`
	Categories   []string             `bson:"categories"`
	FileType     string               `bson:"file_type"`
	FileURL      string               `bson:"file_url,omitempty"`
	ExternalLink string               `bson:"external_link,omitempty"`
	UploaderID   primitive.ObjectID   `bson:"uploader_id"`
	BookmarkedBy []primitive.ObjectID `bson:"bookmarked_by"`
	Rating       float64              `bson:"rating"`
	CreatedAt    time.Time            `bson:"created_at"`
}

// FromResourceDomain maps a domain entity to its persistence model.
func FromResourceDomain(resource *entity.Resource) *ResourceModel {
	return &ResourceModel{
		ID:           resource.ID,
		Title:        resource.Title,
		Description:  resource.Description,
		Categories:   resource.Categories,
		FileType:     resource.FileType,
		FileURL:      resource.FileURL,
		ExternalLink: resource.ExternalLink,
		UploaderID:   resource.UploaderID,
		BookmarkedBy: resource.BookmarkedBy,
		Rating:       resource.Rating,
		CreatedAt:    resource.CreatedAt,
	}
}

// ToResourceDomain maps a persistence model back to a pure domain entity.
func ToResourceDomain(m *ResourceModel) *entity.Resource {
	bookmarkedBy := m.BookmarkedBy
	if bookmarkedBy == nil {
		bookmarkedBy = []primitive.ObjectID{}
	}

	return &entity.Resource{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Categories:   m.Categories,
		FileType:     m.FileType,
		FileURL:      m.FileURL,
		ExternalLink: m.ExternalLink,
		UploaderID:   m.UploaderID,
		BookmarkedBy: bookmarkedBy,
		Rating:       m.Rating,
		CreatedAt:    m.CreatedAt,
	}
}
