package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/seedswap/seed_exchange_app/internal/apperrors"
	"github.com/seedswap/seed_exchange_app/internal/core/domain"
	"github.com/seedswap/seed_exchange_app/internal/core/services"
)

func TestEntityCache_GetSeedServedFromCache(t *testing.T) {
	ctx := context.Background()
	mockSeedRepo := new(MockSeedRepository)
	mockUserRepo := new(MockUserRepository)
	entities := services.NewEntityCache(mockSeedRepo, mockUserRepo, time.Minute, nil)

	seed := &domain.Seed{SeedID: uuid.NewString(), Name: "Sunflower"}
	mockSeedRepo.On("FindSeedByID", ctx, seed.SeedID).Return(seed, nil).Once()

	first, err := entities.GetSeed(ctx, seed.SeedID)
	require.NoError(t, err)
	second, err := entities.GetSeed(ctx, seed.SeedID)
	require.NoError(t, err)

	assert.Equal(t, first.Name, second.Name)
	mockSeedRepo.AssertExpectations(t)
}

func TestEntityCache_MissesAreNotCached(t *testing.T) {
	ctx := context.Background()
	mockSeedRepo := new(MockSeedRepository)
	mockUserRepo := new(MockUserRepository)
	entities := services.NewEntityCache(mockSeedRepo, mockUserRepo, time.Minute, nil)

	seedID := uuid.NewString()
	mockSeedRepo.On("FindSeedByID", ctx, seedID).Return(nil, apperrors.ErrNotFound).Twice()

	_, err := entities.GetSeed(ctx, seedID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	// The failed lookup must not be remembered.
	_, err = entities.GetSeed(ctx, seedID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	mockSeedRepo.AssertExpectations(t)
}

func TestEntityCache_GetSeedsFetchesOnlyMissing(t *testing.T) {
	ctx := context.Background()
	mockSeedRepo := new(MockSeedRepository)
	mockUserRepo := new(MockUserRepository)
	entities := services.NewEntityCache(mockSeedRepo, mockUserRepo, time.Minute, nil)

	cached := &domain.Seed{SeedID: uuid.NewString(), Name: "Pea"}
	fresh := domain.Seed{SeedID: uuid.NewString(), Name: "Carrot"}
	missingID := uuid.NewString()

	mockSeedRepo.On("FindSeedByID", ctx, cached.SeedID).Return(cached, nil).Once()
	_, err := entities.GetSeed(ctx, cached.SeedID)
	require.NoError(t, err)

	mockSeedRepo.On("FindSeedsByIDs", ctx, mock.MatchedBy(func(ids []string) bool {
		// Only the two uncached IDs should reach the repository.
		return len(ids) == 2
	})).Return(map[string]domain.Seed{fresh.SeedID: fresh}, nil).Once()

	result, err := entities.GetSeeds(ctx, []string{cached.SeedID, fresh.SeedID, missingID})
	require.NoError(t, err)

	assert.Len(t, result, 2)
	assert.Equal(t, "Pea", result[cached.SeedID].Name)
	assert.Equal(t, "Carrot", result[fresh.SeedID].Name)
	_, found := result[missingID]
	assert.False(t, found)
	mockSeedRepo.AssertExpectations(t)
}

func TestEntityCache_EntriesExpire(t *testing.T) {
	ctx := context.Background()
	mockSeedRepo := new(MockSeedRepository)
	mockUserRepo := new(MockUserRepository)
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	entities := services.NewEntityCache(mockSeedRepo, mockUserRepo, 5*time.Minute, clock)

	user := &domain.User{UserID: uuid.NewString(), Name: "Clara"}
	mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Twice()

	_, err := entities.GetUser(ctx, user.UserID)
	require.NoError(t, err)

	clock.Advance(6 * time.Minute)

	_, err = entities.GetUser(ctx, user.UserID)
	require.NoError(t, err)
	mockUserRepo.AssertExpectations(t)
}

func TestEntityCache_InvalidateForcesRefetch(t *testing.T) {
	ctx := context.Background()
	mockSeedRepo := new(MockSeedRepository)
	mockUserRepo := new(MockUserRepository)
	entities := services.NewEntityCache(mockSeedRepo, mockUserRepo, time.Minute, nil)

	seed := &domain.Seed{SeedID: uuid.NewString(), Name: "Lettuce"}
	mockSeedRepo.On("FindSeedByID", ctx, seed.SeedID).Return(seed, nil).Twice()

	_, err := entities.GetSeed(ctx, seed.SeedID)
	require.NoError(t, err)

	entities.InvalidateSeed(seed.SeedID)

	_, err = entities.GetSeed(ctx, seed.SeedID)
	require.NoError(t, err)
	mockSeedRepo.AssertExpectations(t)
}
