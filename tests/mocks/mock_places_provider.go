package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/zatekoja/nearbycare/internal/domain/entities"
	"github.com/zatekoja/nearbycare/internal/domain/providers"
)

// MockPlacesProvider is a testify mock of providers.PlacesProvider
type MockPlacesProvider struct {
	mock.Mock
}

// NewMockPlacesProvider creates a mock that asserts its expectations on cleanup
func NewMockPlacesProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPlacesProvider {
	m := &MockPlacesProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPlacesProvider) NearbySearch(ctx context.Context, req providers.NearbySearchRequest) ([]entities.RawPlace, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.RawPlace), args.Error(1)
}

func (m *MockPlacesProvider) PlaceDetails(ctx context.Context, req providers.PlaceDetailsRequest) (*entities.PlaceDetail, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PlaceDetail), args.Error(1)
}

// MockRateLimiter is a testify mock of providers.RateLimiter
type MockRateLimiter struct {
	mock.Mock
}

// NewMockRateLimiter creates a mock that asserts its expectations on cleanup
func NewMockRateLimiter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRateLimiter {
	m := &MockRateLimiter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRateLimiter) Allow(ctx context.Context, key string) (*providers.RateLimitResult, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*providers.RateLimitResult), args.Error(1)
}
