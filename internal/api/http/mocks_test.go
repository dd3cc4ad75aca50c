package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stayhub-backend/internal/domain"
	"stayhub-backend/internal/service"
)

// MockListingService
type MockListingService struct {
	mock.Mock
}

func (m *MockListingService) CreateListing(ctx context.Context, accessToken string, listing *domain.Listing) (string, error) {
	args := m.Called(ctx, accessToken, listing)
	return args.String(0), args.Error(1)
}
func (m *MockListingService) GetListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}
func (m *MockListingService) ListListings(ctx context.Context, params domain.ListListingsParams) (*domain.ListingPage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ListingPage), args.Error(1)
}
func (m *MockListingService) SearchListings(ctx context.Context, params domain.SearchListingsParams) (*domain.ListingPage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ListingPage), args.Error(1)
}
func (m *MockListingService) DeleteListing(ctx context.Context, accessToken, listingID string) error {
	args := m.Called(ctx, accessToken, listingID)
	return args.Error(0)
}

// MockOrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) GetOrder(ctx context.Context, accessToken, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, accessToken, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) ListOrders(ctx context.Context, accessToken, userID, listingID string) ([]domain.Order, error) {
	args := m.Called(ctx, accessToken, userID, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *MockOrderService) UpdateOrder(ctx context.Context, accessToken, orderID string, fields map[string]any) error {
	args := m.Called(ctx, accessToken, orderID, fields)
	return args.Error(0)
}

// MockUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, email, password string, userType domain.UserType) (*service.CreatedUser, error) {
	args := m.Called(ctx, email, password, userType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CreatedUser), args.Error(1)
}
func (m *MockUserService) HandleSignUp(ctx context.Context, trigger *domain.SignUpTrigger) (*domain.SignUpTrigger, error) {
	args := m.Called(ctx, trigger)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SignUpTrigger), args.Error(1)
}
func (m *MockUserService) GetUser(ctx context.Context, accessToken, userID string) (*domain.User, bool, error) {
	args := m.Called(ctx, accessToken, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Bool(1), args.Error(2)
}
func (m *MockUserService) UpdateUser(ctx context.Context, accessToken, userID string, patch domain.FinancePatch) (*domain.User, error) {
	args := m.Called(ctx, accessToken, userID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) DeactivateUser(ctx context.Context, accessToken, userID string) error {
	args := m.Called(ctx, accessToken, userID)
	return args.Error(0)
}
func (m *MockUserService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}
