package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/seedswap/seed_exchange_app/internal/core/domain"
)

// MockExchangeRepository is a mock type for the ExchangeRepository interface
type MockExchangeRepository struct {
	mock.Mock
}

func (m *MockExchangeRepository) FindExchangeByID(ctx context.Context, exchangeID string) (*domain.Exchange, error) {
	args := m.Called(ctx, exchangeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exchange), args.Error(1)
}

func (m *MockExchangeRepository) ListExchangesByOwner(ctx context.Context, ownerID string, statuses []domain.ExchangeStatus, limit int) ([]domain.Exchange, error) {
	args := m.Called(ctx, ownerID, statuses, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Exchange), args.Error(1)
}

func (m *MockExchangeRepository) ListExchangesByRequester(ctx context.Context, requesterID string, statuses []domain.ExchangeStatus, limit int) ([]domain.Exchange, error) {
	args := m.Called(ctx, requesterID, statuses, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Exchange), args.Error(1)
}

func (m *MockExchangeRepository) HasActiveExchange(ctx context.Context, requesterID, seedRequestedID, seedOfferedID string) (bool, error) {
	args := m.Called(ctx, requesterID, seedRequestedID, seedOfferedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockExchangeRepository) ListActiveExchangesForSeed(ctx context.Context, seedID string) ([]domain.Exchange, error) {
	args := m.Called(ctx, seedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Exchange), args.Error(1)
}

func (m *MockExchangeRepository) SaveExchange(ctx context.Context, exchange domain.Exchange) error {
	args := m.Called(ctx, exchange)
	return args.Error(0)
}

func (m *MockExchangeRepository) UpdateExchangeStatus(ctx context.Context, exchange domain.Exchange) error {
	args := m.Called(ctx, exchange)
	return args.Error(0)
}

func (m *MockExchangeRepository) DeleteExchange(ctx context.Context, exchangeID string) error {
	args := m.Called(ctx, exchangeID)
	return args.Error(0)
}

// MockSeedRepository is a mock type for the SeedRepository interface
type MockSeedRepository struct {
	mock.Mock
}

func (m *MockSeedRepository) FindSeedByID(ctx context.Context, seedID string) (*domain.Seed, error) {
	args := m.Called(ctx, seedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seed), args.Error(1)
}

func (m *MockSeedRepository) FindSeedsByIDs(ctx context.Context, seedIDs []string) (map[string]domain.Seed, error) {
	args := m.Called(ctx, seedIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Seed), args.Error(1)
}

func (m *MockSeedRepository) ListSeedsByOwner(ctx context.Context, ownerID string, limit, offset int) ([]domain.Seed, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seed), args.Error(1)
}

func (m *MockSeedRepository) CountActiveSeedsByOwner(ctx context.Context, ownerID string) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

func (m *MockSeedRepository) SaveSeed(ctx context.Context, seed domain.Seed) error {
	args := m.Called(ctx, seed)
	return args.Error(0)
}

func (m *MockSeedRepository) UpdateSeed(ctx context.Context, seed domain.Seed) error {
	args := m.Called(ctx, seed)
	return args.Error(0)
}

func (m *MockSeedRepository) DeactivateSeed(ctx context.Context, seedID string, now time.Time) error {
	args := m.Called(ctx, seedID, now)
	return args.Error(0)
}

// MockUserRepository is a mock type for the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockNotificationRepository is a mock type for the NotificationRepository interface
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) ListNotificationsByUser(ctx context.Context, userID string, limit int, unreadOnly bool) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnreadByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID, userID string) error {
	args := m.Called(ctx, notificationID, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteNotification(ctx context.Context, notificationID, userID string) error {
	args := m.Called(ctx, notificationID, userID)
	return args.Error(0)
}

// MockDispatcher is a mock type for the NotificationDispatcherSvc interface
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, recipientID string, notifType domain.NotificationType, relatedExchangeID string, data map[string]string) error {
	args := m.Called(ctx, recipientID, notifType, relatedExchangeID, data)
	return args.Error(0)
}

// MockStats is a mock type for the StatsSvcFacade interface
type MockStats struct {
	mock.Mock
}

func (m *MockStats) CalculateUserStats(ctx context.Context, userID string, forceRefresh bool) (*domain.UserStats, bool, error) {
	args := m.Called(ctx, userID, forceRefresh)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.UserStats), args.Bool(1), args.Error(2)
}

func (m *MockStats) InvalidateUserStatsCache(userID string) {
	m.Called(userID)
}
