// Package usecase provides hand-written testify mocks for the application
// usecase interfaces, used by the delivery-layer tests.
package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hub/internal/domain/entity"
	"hub/internal/domain/repository"
	"hub/internal/usecase"
)

// MockUserUsecase is a mock implementation of usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

// NewMockUserUsecase creates a mock whose expectations are asserted on test cleanup.
func NewMockUserUsecase(t *testing.T) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserUsecase) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*usecase.SignupOutput)

	return output, args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*usecase.LoginOutput)

	return output, args.Error(1)
}

func (m *MockUserUsecase) GetProfile(ctx context.Context, userID primitive.ObjectID) (*usecase.PublicUser, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*usecase.PublicUser)

	return user, args.Error(1)
}

// MockBookmarkUsecase is a mock implementation of usecase.BookmarkUsecase.
type MockBookmarkUsecase struct {
	mock.Mock
}

// NewMockBookmarkUsecase creates a mock whose expectations are asserted on test cleanup.
func NewMockBookmarkUsecase(t *testing.T) *MockBookmarkUsecase {
	m := &MockBookmarkUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBookmarkUsecase) Toggle(ctx context.Context, userID, resourceID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, userID, resourceID)

	return args.Bool(0), args.Error(1)
}

func (m *MockBookmarkUsecase) List(ctx context.Context, userID primitive.ObjectID) ([]*entity.Resource, error) {
	args := m.Called(ctx, userID)
	resources, _ := args.Get(0).([]*entity.Resource)

	return resources, args.Error(1)
}

// MockResourceUsecase is a mock implementation of usecase.ResourceUsecase.
type MockResourceUsecase struct {
	mock.Mock
}

// NewMockResourceUsecase creates a mock whose expectations are asserted on test cleanup.
func NewMockResourceUsecase(t *testing.T) *MockResourceUsecase {
	m := &MockResourceUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockResourceUsecase) Create(ctx context.Context, uploaderID primitive.ObjectID, input usecase.CreateResourceInput) (*entity.Resource, error) {
	args := m.Called(ctx, uploaderID, input)
	resource, _ := args.Get(0).(*entity.Resource)

	return resource, args.Error(1)
}

func (m *MockResourceUsecase) List(ctx context.Context, filter repository.ResourceFilter) ([]*entity.Resource, error) {
	args := m.Called(ctx, filter)
	resources, _ := args.Get(0).([]*entity.Resource)

	return resources, args.Error(1)
}

func (m *MockResourceUsecase) Get(ctx context.Context, id primitive.ObjectID) (*entity.Resource, error) {
	args := m.Called(ctx, id)
	resource, _ := args.Get(0).(*entity.Resource)

	return resource, args.Error(1)
}
