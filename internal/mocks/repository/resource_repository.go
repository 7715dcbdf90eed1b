package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hub/internal/domain/entity"
	"hub/internal/domain/repository"
)

// MockResourceRepository is a mock implementation of repository.ResourceRepository.
type MockResourceRepository struct {
	mock.Mock
}

// NewMockResourceRepository creates a mock whose expectations are asserted on test cleanup.
func NewMockResourceRepository(t *testing.T) *MockResourceRepository {
	m := &MockResourceRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockResourceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Resource, error) {
	args := m.Called(ctx, id)
	resource, _ := args.Get(0).(*entity.Resource)

	return resource, args.Error(1)
}

func (m *MockResourceRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Resource, error) {
	args := m.Called(ctx, ids)
	resources, _ := args.Get(0).([]*entity.Resource)

	return resources, args.Error(1)
}

func (m *MockResourceRepository) Find(ctx context.Context, filter repository.ResourceFilter) ([]*entity.Resource, error) {
	args := m.Called(ctx, filter)
	resources, _ := args.Get(0).([]*entity.Resource)

	return resources, args.Error(1)
}

func (m *MockResourceRepository) Create(ctx context.Context, resource *entity.Resource) error {
	args := m.Called(ctx, resource)

	return args.Error(0)
}

func (m *MockResourceRepository) AddBookmarkedBy(ctx context.Context, resourceID, userID primitive.ObjectID) error {
	args := m.Called(ctx, resourceID, userID)

	return args.Error(0)
}

func (m *MockResourceRepository) RemoveBookmarkedBy(ctx context.Context, resourceID, userID primitive.ObjectID) error {
	args := m.Called(ctx, resourceID, userID)

	return args.Error(0)
}
