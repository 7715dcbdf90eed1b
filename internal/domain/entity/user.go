// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the core entity in the system, representing a single student account.
// PasswordHash is internal state and must never be serialized outward.
type User struct {
	ID           primitive.ObjectID   // Store-assigned identifier, immutable after creation.
	Name         string               // The user's display name.
	Email        string               // Login identifier, unique across all users, matched exactly as stored.
	PasswordHash string               // bcrypt digest of the user's password.
	Bookmarks    []primitive.ObjectID // Set of bookmarked resource ids, no duplicates, unordered.
	CreatedAt    time.Time            // Timestamp of account creation, set once.
}

// HasBookmarked reports whether the user currently bookmarks the given resource.
func (u *User) HasBookmarked(resourceID primitive.ObjectID) bool {
	for _, id := range u.Bookmarks {
		if id == resourceID {
			return true
		}
	}

	return false
}
