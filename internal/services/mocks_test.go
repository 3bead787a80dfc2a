package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dores/internal/models"
	"dores/internal/repositories"
)

// MockAuthRepository is a mock implementation of repositories.AuthRepository.
type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) Login(ctx context.Context, data models.LoginData) (*models.TokenPair, error) {
	args := m.Called(ctx, data)
	if tokens := args.Get(0); tokens != nil {
		return tokens.(*models.TokenPair), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthRepository) Register(ctx context.Context, data models.RegisterData) (*models.TokenPair, error) {
	args := m.Called(ctx, data)
	if tokens := args.Get(0); tokens != nil {
		return tokens.(*models.TokenPair), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthRepository) ValidateEmail(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func (m *MockAuthRepository) RefreshToken(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if tokens := args.Get(0); tokens != nil {
		return tokens.(*models.TokenPair), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthRepository) RequestPasswordReset(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockAuthRepository) VerifyResetCode(ctx context.Context, data models.ResetPasswordData) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetCurrentUser(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, data models.UpdateData) (*models.User, error) {
	args := m.Called(ctx, data)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetAvatars(ctx context.Context) ([]models.Avatar, error) {
	args := m.Called(ctx)
	if avatars := args.Get(0); avatars != nil {
		return avatars.([]models.Avatar), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, avatarID int) error {
	args := m.Called(ctx, avatarID)
	return args.Error(0)
}

func (m *MockUserRepository) SavePushToken(ctx context.Context, token, previousToken string) error {
	args := m.Called(ctx, token, previousToken)
	return args.Error(0)
}

// MockAddressRepository is a mock implementation of
// repositories.AddressRepository.
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) GetAllAddresses(ctx context.Context) ([]models.Address, error) {
	args := m.Called(ctx)
	if addresses := args.Get(0); addresses != nil {
		return addresses.([]models.Address), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAddressRepository) CreateOrUpdateAddress(ctx context.Context, data models.AddressData) (*models.Address, error) {
	args := m.Called(ctx, data)
	if address := args.Get(0); address != nil {
		return address.(*models.Address), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAddressRepository) DeleteAddress(ctx context.Context, addressID int) error {
	args := m.Called(ctx, addressID)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of repositories.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, body models.CreateOrderBody) (*models.Order, error) {
	args := m.Called(ctx, body)
	if order := args.Get(0); order != nil {
		return order.(*models.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) UpdateOrder(ctx context.Context, body models.CreateOrderBody) (*models.Order, error) {
	args := m.Called(ctx, body)
	if order := args.Get(0); order != nil {
		return order.(*models.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAllOrders(ctx context.Context, filters repositories.OrderFilters) (*models.OrderPage, error) {
	args := m.Called(ctx, filters)
	if page := args.Get(0); page != nil {
		return page.(*models.OrderPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetOrderByID(ctx context.Context, orderID int) (*models.Order, error) {
	args := m.Called(ctx, orderID)
	if order := args.Get(0); order != nil {
		return order.(*models.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) CreateOrderPayment(ctx context.Context, orderID int, cashPayment bool) (*models.PaymentOrder, error) {
	args := m.Called(ctx, orderID, cashPayment)
	if payment := args.Get(0); payment != nil {
		return payment.(*models.PaymentOrder), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) CancelOrder(ctx context.Context, orderID int) (*models.CancelOrderResponse, error) {
	args := m.Called(ctx, orderID)
	if response := args.Get(0); response != nil {
		return response.(*models.CancelOrderResponse), args.Error(1)
	}
	return nil, args.Error(1)
}
