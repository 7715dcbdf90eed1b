// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"hub/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new user.
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- Output DTOs ---

// PublicUser carries the user fields safe to expose outward.
// The password hash never leaves the application layer.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPublicUser maps a user entity to its public projection.
func NewPublicUser(user *entity.User) *PublicUser {
	return &PublicUser{
		ID:        user.ID.Hex(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// SignupOutput returns the newly created user's basic information.
type SignupOutput struct {
	User *PublicUser
}

// LoginOutput returns the issued session token after a successful login.
type LoginOutput struct {
	Token string
	User  *PublicUser
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Signup(ctx context.Context, input SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*PublicUser, error)
}
