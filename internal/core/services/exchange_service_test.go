package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/seedswap/seed_exchange_app/internal/apperrors"
	"github.com/seedswap/seed_exchange_app/internal/core/domain"
	portssvc "github.com/seedswap/seed_exchange_app/internal/core/ports/services"
	"github.com/seedswap/seed_exchange_app/internal/core/services"
	"github.com/seedswap/seed_exchange_app/internal/dto"
)

type ExchangeServiceTestSuite struct {
	suite.Suite
	mockExchangeRepo *MockExchangeRepository
	mockSeedRepo     *MockSeedRepository
	mockUserRepo     *MockUserRepository
	mockDispatcher   *MockDispatcher
	mockStats        *MockStats
	service          portssvc.ExchangeSvcFacade

	requester domain.User
	owner     domain.User
	seedReq   domain.Seed
	seedOff   domain.Seed
}

func (suite *ExchangeServiceTestSuite) SetupTest() {
	suite.mockExchangeRepo = new(MockExchangeRepository)
	suite.mockSeedRepo = new(MockSeedRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockDispatcher = new(MockDispatcher)
	suite.mockStats = new(MockStats)

	entities := services.NewEntityCache(suite.mockSeedRepo, suite.mockUserRepo, time.Minute, nil)
	suite.service = services.NewExchangeService(
		suite.mockExchangeRepo,
		entities,
		services.WithNotificationDispatcher(suite.mockDispatcher),
		services.WithStatsInvalidator(suite.mockStats),
	)

	suite.requester = domain.User{
		UserID:         uuid.NewString(),
		Name:           "Ana",
		Email:          "ana@example.com",
		WhatsAppNumber: "+5511999990000",
		Settings:       domain.DefaultUserSettings(),
	}
	suite.owner = domain.User{
		UserID:         uuid.NewString(),
		Name:           "Bruno",
		Email:          "bruno@example.com",
		WhatsAppNumber: "+5511888880000",
		Settings:       domain.DefaultUserSettings(),
	}
	suite.seedReq = domain.Seed{
		SeedID:                 uuid.NewString(),
		OwnerID:                suite.owner.UserID,
		Name:                   "Tomato Cherry",
		IsActive:               true,
		IsAvailableForExchange: true,
	}
	suite.seedOff = domain.Seed{
		SeedID:                 uuid.NewString(),
		OwnerID:                suite.requester.UserID,
		Name:                   "Basil Genovese",
		IsActive:               true,
		IsAvailableForExchange: true,
	}
}

func (suite *ExchangeServiceTestSuite) seedMap() map[string]domain.Seed {
	return map[string]domain.Seed{
		suite.seedReq.SeedID: suite.seedReq,
		suite.seedOff.SeedID: suite.seedOff,
	}
}

func (suite *ExchangeServiceTestSuite) createReq() dto.CreateExchangeRequest {
	return dto.CreateExchangeRequest{
		SeedRequestedID: suite.seedReq.SeedID,
		SeedOfferedID:   suite.seedOff.SeedID,
		Message:         "Would love to trade!",
	}
}

func (suite *ExchangeServiceTestSuite) TestCreateExchange_Success() {
	ctx := context.Background()

	suite.mockSeedRepo.On("FindSeedsByIDs", ctx, mock.Anything).Return(suite.seedMap(), nil)
	suite.mockUserRepo.On("FindUserByID", ctx, suite.owner.UserID).Return(&suite.owner, nil)
	suite.mockUserRepo.On("FindUserByID", ctx, suite.requester.UserID).Return(&suite.requester, nil)
	suite.mockExchangeRepo.On("HasActiveExchange", ctx, suite.requester.UserID, suite.seedReq.SeedID, suite.seedOff.SeedID).Return(false, nil).Once()
	suite.mockExchangeRepo.On("SaveExchange", ctx, mock.MatchedBy(func(e domain.Exchange) bool {
		return e.Status == domain.StatusPending &&
			e.Version == 1 &&
			e.RequesterID == suite.requester.UserID &&
			e.OwnerID == suite.owner.UserID
	})).Return(nil).Once()
	suite.mockDispatcher.On("Dispatch", ctx, suite.owner.UserID, domain.NotificationExchangeRequest, mock.AnythingOfType("string"), mock.Anything).Return(nil).Once()
	suite.mockStats.On("InvalidateUserStatsCache", suite.requester.UserID).Return().Once()
	suite.mockStats.On("InvalidateUserStatsCache", suite.owner.UserID).Return().Once()

	created, err := suite.service.CreateExchangeRequest(ctx, suite.requester.UserID, suite.createReq())

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(domain.StatusPending, created.Status)
	suite.Equal(int64(1), created.Version)
	suite.Equal(suite.owner.UserID, created.OwnerID)
	suite.Require().NotNil(created.SeedRequested)
	suite.Equal("Tomato Cherry", created.SeedRequested.Name)
	suite.Require().NotNil(created.Owner)
	// Contact details stay hidden while pending.
	suite.Empty(created.Owner.WhatsApp)
	suite.Empty(created.Requester.WhatsApp)

	suite.mockExchangeRepo.AssertExpectations(suite.T())
	suite.mockDispatcher.AssertExpectations(suite.T())
	suite.mockStats.AssertExpectations(suite.T())
}

func (suite *ExchangeServiceTestSuite) TestCreateExchange_DuplicateActive() {
	ctx := context.Background()

	suite.mockSeedRepo.On("FindSeedsByIDs", ctx, mock.Anything).Return(suite.seedMap(), nil)
	suite.mockExchangeRepo.On("HasActiveExchange", ctx, suite.requester.UserID, suite.seedReq.SeedID, suite.seedOff.SeedID).Return(true, nil).Once()

	created, err := suite.service.CreateExchangeRequest(ctx, suite.requester.UserID, suite.createReq())

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(created)
	suite.mockExchangeRepo.AssertNotCalled(suite.T(), "SaveExchange", mock.Anything, mock.Anything)
	// The duplicate guard runs before any account is resolved.
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *ExchangeServiceTestSuite) TestCreateExchange_DuplicateWinsOverOwnerOptOut() {
	ctx := context.Background()

	suite.owner.Settings.Privacy.AllowExchangeRequests = false
	suite.mockSeedRepo.On("FindSeedsByIDs", ctx, mock.Anything).Return(suite.seedMap(), nil)
	suite.mockExchangeRepo.On("HasActiveExchange", ctx, suite.requester.UserID, suite.seedReq.SeedID, suite.seedOff.SeedID).Return(true, nil).Once()

	created, err := suite.service.CreateExchangeRequest(ctx, suite.requester.UserID, suite.createReq())

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(created)
}

func (suite *ExchangeServiceTestSuite) TestCreateExchange_OwnSeedRequested() {
	ctx := context.Background()

	// Requester requests their own seed.
	suite.seedReq.OwnerID = suite.requester.UserID
	suite.mockSeedRepo.On("FindSeedsByIDs", ctx, mock.Anything).Return(suite.seedMap(), nil)

	created, err := suite.service.CreateExchangeRequest(ctx, suite.requester.UserID, suite.createReq())

	suite.Require().ErrorIs(err, apperrors.ErrPermissionDenied)
	suite.Nil(created)
	suite.mockExchangeRepo.AssertNotCalled(suite.T(), "SaveExchange", mock.Anything, mock.Anything)
}

func (suite *ExchangeServiceTestSuite) TestCreateExchange_OwnerOptedOut() {
	ctx := context.Background()

	suite.owner.Settings.Privacy.AllowExchangeRequests = false
	suite.mockSeedRepo.On("FindSeedsByIDs", ctx, mock.Anything).Return(suite.seedMap(), nil)
	suite.mockExchangeRepo.On("HasActiveExchange", ctx, suite.requester.UserID, suite.seedReq.SeedID, suite.seedOff.SeedID).Return(false, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.requester.UserID).Return(&suite.requester, nil)
	suite.mockUserRepo.On("FindUserByID", ctx, suite.owner.UserID).Return(&suite.owner, nil)

	created, err := suite.service.CreateExchangeRequest(ctx, suite.requester.UserID, suite.createReq())

	suite.Require().ErrorIs(err, apperrors.ErrPermissionDenied)
	suite.Nil(created)
	suite.mockExchangeRepo.AssertNotCalled(suite.T(), "SaveExchange", mock.Anything, mock.Anything)
}

func (suite *ExchangeServiceTestSuite) TestCreateExchange_MissingRequesterAccount() {
	ctx := context.Background()

	suite.mockSeedRepo.On("FindSeedsByIDs", ctx, mock.Anything).Return(suite.seedMap(), nil)
	suite.mockExchangeRepo.On("HasActiveExchange", ctx, suite.requester.UserID, suite.seedReq.SeedID, suite.seedOff.SeedID).Return(false, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.requester.UserID).Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateExchangeRequest(ctx, suite.requester.UserID, suite.createReq())

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(created)
	suite.mockExchangeRepo.AssertNotCalled(suite.T(), "SaveExchange", mock.Anything, mock.Anything)
}

func (suite *ExchangeServiceTestSuite) TestCreateExchange_RequestedSeedUnavailable() {
	ctx := context.Background()

	suite.seedReq.IsAvailableForExchange = false
	suite.mockSeedRepo.On("FindSeedsByIDs", ctx, mock.Anything).Return(suite.seedMap(), nil)

	created, err := suite.service.CreateExchangeRequest(ctx, suite.requester.UserID, suite.createReq())

	suite.Require().ErrorIs(err, apperrors.ErrUnavailable)
	suite.Nil(created)
}

func (suite *ExchangeServiceTestSuite) TestCreateExchange_OfferedSeedNotOwned() {
	ctx := context.Background()

	suite.seedOff.OwnerID = uuid.NewString()
	suite.mockSeedRepo.On("FindSeedsByIDs", ctx, mock.Anything).Return(suite.seedMap(), nil)

	created, err := suite.service.CreateExchangeRequest(ctx, suite.requester.UserID, suite.createReq())

	suite.Require().ErrorIs(err, apperrors.ErrPermissionDenied)
	suite.Nil(created)
}

func (suite *ExchangeServiceTestSuite) TestCreateExchange_MissingSeed() {
	ctx := context.Background()

	suite.mockSeedRepo.On("FindSeedsByIDs", ctx, mock.Anything).Return(map[string]domain.Seed{
		suite.seedOff.SeedID: suite.seedOff,
	}, nil)

	created, err := suite.service.CreateExchangeRequest(ctx, suite.requester.UserID, suite.createReq())

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(created)
}

func (suite *ExchangeServiceTestSuite) TestCreateExchange_NotificationFailureIsNotFatal() {
	ctx := context.Background()

	suite.mockSeedRepo.On("FindSeedsByIDs", ctx, mock.Anything).Return(suite.seedMap(), nil)
	suite.mockUserRepo.On("FindUserByID", ctx, mock.AnythingOfType("string")).Return(&suite.owner, nil)
	suite.mockExchangeRepo.On("HasActiveExchange", ctx, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	suite.mockExchangeRepo.On("SaveExchange", ctx, mock.Anything).Return(nil).Once()
	suite.mockDispatcher.On("Dispatch", ctx, suite.owner.UserID, domain.NotificationExchangeRequest, mock.Anything, mock.Anything).Return(context.DeadlineExceeded).Once()
	suite.mockStats.On("InvalidateUserStatsCache", mock.Anything).Return()

	created, err := suite.service.CreateExchangeRequest(ctx, suite.requester.UserID, suite.createReq())

	suite.Require().NoError(err)
	suite.NotNil(created)
}

func (suite *ExchangeServiceTestSuite) existingExchange(status domain.ExchangeStatus) *domain.Exchange {
	now := time.Now().Add(-time.Hour)
	return &domain.Exchange{
		ExchangeID:      uuid.NewString(),
		RequesterID:     suite.requester.UserID,
		OwnerID:         suite.owner.UserID,
		SeedRequestedID: suite.seedReq.SeedID,
		SeedOfferedID:   suite.seedOff.SeedID,
		Status:          status,
		Version:         1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
}

func (suite *ExchangeServiceTestSuite) TestUpdateStatus_AcceptByOwner() {
	ctx := context.Background()
	exchange := suite.existingExchange(domain.StatusPending)

	suite.mockExchangeRepo.On("FindExchangeByID", ctx, exchange.ExchangeID).Return(exchange, nil).Once()
	suite.mockExchangeRepo.On("UpdateExchangeStatus", ctx, mock.MatchedBy(func(e domain.Exchange) bool {
		return e.Status == domain.StatusAccepted &&
			e.Version == 2 &&
			e.AcceptedBy == suite.owner.UserID &&
			e.AcceptedAt != nil
	})).Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.owner.UserID).Return(&suite.owner, nil)
	suite.mockSeedRepo.On("FindSeedByID", ctx, suite.seedReq.SeedID).Return(&suite.seedReq, nil)
	suite.mockDispatcher.On("Dispatch", ctx, suite.requester.UserID, domain.NotificationExchangeAccepted, exchange.ExchangeID, mock.Anything).Return(nil).Once()
	suite.mockStats.On("InvalidateUserStatsCache", suite.requester.UserID).Return().Once()
	suite.mockStats.On("InvalidateUserStatsCache", suite.owner.UserID).Return().Once()

	summary, err := suite.service.UpdateExchangeStatus(ctx, exchange.ExchangeID, domain.StatusAccepted, suite.owner.UserID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, summary.PreviousStatus)
	suite.Equal(domain.StatusAccepted, summary.NewStatus)
	suite.Equal(suite.owner.UserID, summary.UpdatedBy)
	suite.Equal(int64(2), summary.Version)

	suite.mockExchangeRepo.AssertExpectations(suite.T())
	suite.mockDispatcher.AssertExpectations(suite.T())
}

func (suite *ExchangeServiceTestSuite) TestUpdateStatus_AcceptByRequesterDenied() {
	ctx := context.Background()
	exchange := suite.existingExchange(domain.StatusPending)

	suite.mockExchangeRepo.On("FindExchangeByID", ctx, exchange.ExchangeID).Return(exchange, nil).Once()

	summary, err := suite.service.UpdateExchangeStatus(ctx, exchange.ExchangeID, domain.StatusAccepted, suite.requester.UserID)

	suite.Require().ErrorIs(err, apperrors.ErrPermissionDenied)
	suite.Nil(summary)
	suite.mockExchangeRepo.AssertNotCalled(suite.T(), "UpdateExchangeStatus", mock.Anything, mock.Anything)
}

func (suite *ExchangeServiceTestSuite) TestUpdateStatus_CompleteFromPendingRejected() {
	ctx := context.Background()
	exchange := suite.existingExchange(domain.StatusPending)

	suite.mockExchangeRepo.On("FindExchangeByID", ctx, exchange.ExchangeID).Return(exchange, nil).Once()

	summary, err := suite.service.UpdateExchangeStatus(ctx, exchange.ExchangeID, domain.StatusCompleted, suite.owner.UserID)

	suite.Require().ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.Nil(summary)
}

func (suite *ExchangeServiceTestSuite) TestUpdateStatus_CompleteByRequesterFromAccepted() {
	ctx := context.Background()
	exchange := suite.existingExchange(domain.StatusAccepted)

	suite.mockExchangeRepo.On("FindExchangeByID", ctx, exchange.ExchangeID).Return(exchange, nil).Once()
	suite.mockExchangeRepo.On("UpdateExchangeStatus", ctx, mock.MatchedBy(func(e domain.Exchange) bool {
		return e.Status == domain.StatusCompleted && e.CompletedBy == suite.requester.UserID
	})).Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.requester.UserID).Return(&suite.requester, nil)
	suite.mockSeedRepo.On("FindSeedByID", ctx, suite.seedReq.SeedID).Return(&suite.seedReq, nil)
	suite.mockDispatcher.On("Dispatch", ctx, suite.owner.UserID, domain.NotificationExchangeCompleted, exchange.ExchangeID, mock.Anything).Return(nil).Once()
	suite.mockStats.On("InvalidateUserStatsCache", mock.Anything).Return()

	summary, err := suite.service.UpdateExchangeStatus(ctx, exchange.ExchangeID, domain.StatusCompleted, suite.requester.UserID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCompleted, summary.NewStatus)
	suite.mockDispatcher.AssertExpectations(suite.T())
}

func (suite *ExchangeServiceTestSuite) TestUpdateStatus_TerminalStatusFrozen() {
	ctx := context.Background()
	exchange := suite.existingExchange(domain.StatusRejected)

	suite.mockExchangeRepo.On("FindExchangeByID", ctx, exchange.ExchangeID).Return(exchange, nil).Once()

	summary, err := suite.service.UpdateExchangeStatus(ctx, exchange.ExchangeID, domain.StatusAccepted, suite.owner.UserID)

	suite.Require().ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.Nil(summary)
}

func (suite *ExchangeServiceTestSuite) TestUpdateStatus_NotFound() {
	ctx := context.Background()
	exchangeID := uuid.NewString()

	suite.mockExchangeRepo.On("FindExchangeByID", ctx, exchangeID).Return(nil, apperrors.ErrNotFound).Once()

	summary, err := suite.service.UpdateExchangeStatus(ctx, exchangeID, domain.StatusAccepted, suite.owner.UserID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(summary)
}

func (suite *ExchangeServiceTestSuite) TestGetExchangeByID_SharesContactWhenAccepted() {
	ctx := context.Background()
	exchange := suite.existingExchange(domain.StatusAccepted)

	suite.mockExchangeRepo.On("FindExchangeByID", ctx, exchange.ExchangeID).Return(exchange, nil).Once()
	suite.mockSeedRepo.On("FindSeedsByIDs", ctx, mock.Anything).Return(suite.seedMap(), nil)
	suite.mockUserRepo.On("FindUserByID", ctx, suite.requester.UserID).Return(&suite.requester, nil)
	suite.mockUserRepo.On("FindUserByID", ctx, suite.owner.UserID).Return(&suite.owner, nil)

	enriched, err := suite.service.GetExchangeByID(ctx, exchange.ExchangeID)

	suite.Require().NoError(err)
	suite.Require().NotNil(enriched.Owner)
	suite.Equal(suite.owner.WhatsAppNumber, enriched.Owner.WhatsApp)
	suite.Equal(suite.requester.WhatsAppNumber, enriched.Requester.WhatsApp)
}

func (suite *ExchangeServiceTestSuite) TestGetExchangeByID_HidesContactWhenOptedOut() {
	ctx := context.Background()
	exchange := suite.existingExchange(domain.StatusAccepted)
	suite.owner.Settings.Privacy.ShowWhatsApp = false

	suite.mockExchangeRepo.On("FindExchangeByID", ctx, exchange.ExchangeID).Return(exchange, nil).Once()
	suite.mockSeedRepo.On("FindSeedsByIDs", ctx, mock.Anything).Return(suite.seedMap(), nil)
	suite.mockUserRepo.On("FindUserByID", ctx, suite.requester.UserID).Return(&suite.requester, nil)
	suite.mockUserRepo.On("FindUserByID", ctx, suite.owner.UserID).Return(&suite.owner, nil)

	enriched, err := suite.service.GetExchangeByID(ctx, exchange.ExchangeID)

	suite.Require().NoError(err)
	suite.Require().NotNil(enriched.Owner)
	suite.Empty(enriched.Owner.WhatsApp)
	suite.Equal(suite.requester.WhatsAppNumber, enriched.Requester.WhatsApp)
}

func (suite *ExchangeServiceTestSuite) TestGetExchangeHistory() {
	ctx := context.Background()
	userID := suite.owner.UserID

	completed := *suite.existingExchange(domain.StatusCompleted)
	completed.LastUpdatedAt = time.Now().Add(-time.Minute)

	rejected := *suite.existingExchange(domain.StatusRejected)
	rejected.RequesterID = userID
	rejected.OwnerID = suite.requester.UserID
	rejected.LastUpdatedAt = time.Now()

	terminal := []domain.ExchangeStatus{domain.StatusCompleted, domain.StatusRejected}
	suite.mockExchangeRepo.On("ListExchangesByOwner", ctx, userID, terminal, mock.AnythingOfType("int")).Return([]domain.Exchange{completed}, nil).Once()
	suite.mockExchangeRepo.On("ListExchangesByRequester", ctx, userID, terminal, mock.AnythingOfType("int")).Return([]domain.Exchange{rejected}, nil).Once()
	suite.mockSeedRepo.On("FindSeedsByIDs", ctx, mock.Anything).Return(suite.seedMap(), nil)
	suite.mockUserRepo.On("FindUserByID", ctx, mock.AnythingOfType("string")).Return(&suite.owner, nil)

	historyResp, err := suite.service.GetExchangeHistory(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(2, historyResp.Summary.Total)
	suite.Equal(1, historyResp.Summary.Completed)
	suite.Equal(1, historyResp.Summary.Rejected)
	suite.Equal(1, historyResp.Summary.AsOwner)
	suite.Equal(1, historyResp.Summary.AsRequester)

	suite.Require().Len(historyResp.Exchanges, 2)
	// Newest update first.
	suite.Equal(rejected.ExchangeID, historyResp.Exchanges[0].ExchangeID)
	suite.Equal(domain.RoleRequester, historyResp.Exchanges[0].UserRole)
	suite.Equal(domain.RoleOwner, historyResp.Exchanges[1].UserRole)
}

func (suite *ExchangeServiceTestSuite) TestCheckSeedActiveExchanges() {
	ctx := context.Background()
	seedID := suite.seedReq.SeedID

	pending := *suite.existingExchange(domain.StatusPending)
	accepted := *suite.existingExchange(domain.StatusAccepted)
	accepted.SeedRequestedID = uuid.NewString()
	accepted.SeedOfferedID = seedID

	suite.mockExchangeRepo.On("ListActiveExchangesForSeed", ctx, seedID).Return([]domain.Exchange{pending, accepted}, nil).Once()

	resp, err := suite.service.CheckSeedActiveExchanges(ctx, seedID)

	suite.Require().NoError(err)
	suite.True(resp.HasActiveExchanges)
	suite.Equal(2, resp.Counts.Total)
	suite.Equal(1, resp.Counts.Pending)
	suite.Equal(1, resp.Counts.Accepted)
	suite.Equal("requested", resp.Exchanges[0].Side)
	suite.Equal("offered", resp.Exchanges[1].Side)
}

func (suite *ExchangeServiceTestSuite) TestCheckSeedActiveExchanges_None() {
	ctx := context.Background()
	seedID := uuid.NewString()

	suite.mockExchangeRepo.On("ListActiveExchangesForSeed", ctx, seedID).Return([]domain.Exchange{}, nil).Once()

	resp, err := suite.service.CheckSeedActiveExchanges(ctx, seedID)

	suite.Require().NoError(err)
	suite.False(resp.HasActiveExchanges)
	suite.Equal(0, resp.Counts.Total)
}

func (suite *ExchangeServiceTestSuite) TestDeleteExchange_InvalidatesStats() {
	ctx := context.Background()
	exchange := suite.existingExchange(domain.StatusPending)

	suite.mockExchangeRepo.On("FindExchangeByID", ctx, exchange.ExchangeID).Return(exchange, nil).Once()
	suite.mockExchangeRepo.On("DeleteExchange", ctx, exchange.ExchangeID).Return(nil).Once()
	suite.mockStats.On("InvalidateUserStatsCache", suite.requester.UserID).Return().Once()
	suite.mockStats.On("InvalidateUserStatsCache", suite.owner.UserID).Return().Once()

	err := suite.service.DeleteExchange(ctx, exchange.ExchangeID)

	suite.Require().NoError(err)
	suite.mockStats.AssertExpectations(suite.T())
}

func TestExchangeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeServiceTestSuite))
}
