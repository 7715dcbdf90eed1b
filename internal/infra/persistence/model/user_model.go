// Package model contains the bson-tagged persistence models.
// They are mapped to and from the pure domain entities at the repository boundary.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"hub/internal/domain/entity"
)

// UserModel is the MongoDB document shape for a user.
type UserModel struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Name         string               `bson:"name"`
	Email        string               `bson:"email"`
	PasswordHash string               `bson:"password"`
	Bookmarks    []primitive.ObjectID `bson:"bookmarks"`
	CreatedAt    time.Time            `bson:"created_at"`
}

// FromUserDomain maps a domain entity to its persistence model.
func FromUserDomain(user *entity.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Bookmarks:    user.Bookmarks,
		CreatedAt:    user.CreatedAt,
	}
}

// ToUserDomain maps a persistence model back to a pure domain entity.
func ToUserDomain(m *UserModel) *entity.User {
	bookmarks := m.Bookmarks
	if bookmarks == nil {
		bookmarks = []primitive.ObjectID{}
	}

	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Bookmarks:    bookmarks,
		CreatedAt:    m.CreatedAt,
	}
}
