package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resource represents a shared learning resource. Its content source is
// either an uploaded file reference, an external link, or both — never neither.
type Resource struct {
	ID           primitive.ObjectID   // Store-assigned identifier.
	Title        string               // Display title.
	Description  string               // Free-form description.
	Categories   []string             // 1 to 3 selected categories, order preserved.
	FileType     string               // One of the allowed file types.
	FileURL      string               // Opaque pointer to an uploaded file, empty when link-only.
	ExternalLink string               // External URL, empty when file-only.
	UploaderID   primitive.ObjectID   // The user who shared this resource. A reference, not ownership.
	BookmarkedBy []primitive.ObjectID // Mirror of User.Bookmarks for reverse lookup.
	Rating       float64              // Aggregate rating, defaults to 0.
	CreatedAt    time.Time            // Timestamp of creation.
}

// HasSource reports whether the resource carries at least one content source.
func (r *Resource) HasSource() bool {
	return r.FileURL != "" || r.ExternalLink != ""
}
