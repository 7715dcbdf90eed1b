// Package service provides hand-written testify mocks for the domain
// service interfaces.
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock whose expectations are asserted on test cleanup.
func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock whose expectations are asserted on test cleanup.
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Issue(userID primitive.ObjectID) (string, error) {
	args := m.Called(userID)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(token string) (primitive.ObjectID, error) {
	args := m.Called(token)
	id, _ := args.Get(0).(primitive.ObjectID)

	return id, args.Error(1)
}

func (m *MockTokenService) SessionTTL() time.Duration {
	args := m.Called()
	ttl, _ := args.Get(0).(time.Duration)

	return ttl
}
