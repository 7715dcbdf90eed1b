// Package repository provides hand-written testify mocks for the
// persistence interfaces.
package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hub/internal/domain/entity"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock whose expectations are asserted on test cleanup.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) AddBookmark(ctx context.Context, userID, resourceID primitive.ObjectID) error {
	args := m.Called(ctx, userID, resourceID)

	return args.Error(0)
}

func (m *MockUserRepository) RemoveBookmark(ctx context.Context, userID, resourceID primitive.ObjectID) error {
	args := m.Called(ctx, userID, resourceID)

	return args.Error(0)
}
