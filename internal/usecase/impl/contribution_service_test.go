package impl

import (
	"context"
	"testing"

	"cumple/internal/domain/entity"
	domainerrors "cumple/internal/domain/errors"
	"cumple/internal/domain/repository"
	mockRepo "cumple/internal/mocks/repository"
	mockSvc "cumple/internal/mocks/service"
	"cumple/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestContributionService(t *testing.T) (
	usecase.ContributionUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockRegistryRepository,
	*mockRepo.MockProfileRepository,
	*mockRepo.MockRepositoryFactory,
	*mockSvc.MockEventPublisher,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	registryRepo := mockRepo.NewMockRegistryRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewContributionService(ContributionServiceParams{
		TxManager:    txManager,
		RegistryRepo: registryRepo,
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	})

	return svc, txManager, registryRepo, profileRepo, factory, publisher
}

func TestContributionService_Contribute_Success(t *testing.T) {
	svc, txManager, registryRepo, profileRepo, factory, publisher := createTestContributionService(t)

	ctx := context.Background()
	giftID := uuid.New()
	eventID := uuid.New()
	contributor := &entity.Profile{ID: uuid.New(), Email: "ana@example.com", Name: "Ana", Role: entity.RoleGuest}

	gift := &entity.GiftRegistryItem{
		ID:            giftID,
		EventID:       eventID,
		Title:         "Bicicleta",
		TargetAmount:  200,
		CurrentAmount: 150,
	}
	reloaded := &entity.GiftRegistryItem{
		ID:            giftID,
		EventID:       eventID,
		Title:         "Bicicleta",
		TargetAmount:  200,
		CurrentAmount: 200,
		IsFulfilled:   true,
	}

	passthroughTx(txManager, factory)
	factory.EXPECT().ProfileRepo().Return(profileRepo)
	factory.EXPECT().RegistryRepo().Return(registryRepo)

	registryRepo.EXPECT().FindItemByID(ctx, giftID).Return(gift, nil).Once()
	profileRepo.EXPECT().Resolve(ctx, "ana@example.com", "Ana", entity.RoleGuest).Return(contributor, nil)
	registryRepo.EXPECT().CreateContribution(ctx, mock.Anything).Return(nil)
	registryRepo.EXPECT().ApplyContribution(ctx, giftID, 50.0).Return(nil)
	registryRepo.EXPECT().FindItemByID(ctx, giftID).Return(reloaded, nil).Once()

	publisher.EXPECT().PublishActivity(ctx, mock.Anything).Return(nil)

	output, err := svc.Contribute(ctx, usecase.ContributeInput{
		GiftID: giftID,
		Email:  "ana@example.com",
		Name:   "Ana",
		Amount: 50,
	})

	require.NoError(t, err)
	assert.Equal(t, contributor.ID, output.Contribution.ContributorID)
	assert.Equal(t, 50.0, output.Contribution.Amount)
	assert.True(t, output.Gift.IsFulfilled)
	assert.Equal(t, 200.0, output.Gift.CurrentAmount)
}

func TestContributionService_Contribute_RejectsNonPositiveAmount(t *testing.T) {
	svc, _, _, _, _, _ := createTestContributionService(t)

	ctx := context.Background()

	for _, amount := range []float64{0, -10} {
		_, err := svc.Contribute(ctx, usecase.ContributeInput{
			GiftID: uuid.New(),
			Email:  "ana@example.com",
			Name:   "Ana",
			Amount: amount,
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
	}
}

func TestContributionService_Contribute_GiftNotFound(t *testing.T) {
	svc, txManager, registryRepo, _, factory, _ := createTestContributionService(t)

	ctx := context.Background()
	giftID := uuid.New()

	passthroughTx(txManager, factory)
	factory.EXPECT().ProfileRepo().Return(mockRepo.NewMockProfileRepository(t))
	factory.EXPECT().RegistryRepo().Return(registryRepo)

	registryRepo.EXPECT().FindItemByID(ctx, giftID).Return(nil, repository.ErrGiftNotFound)

	_, err := svc.Contribute(ctx, usecase.ContributeInput{
		GiftID: giftID,
		Email:  "ana@example.com",
		Name:   "Ana",
		Amount: 25,
	})

	assert.ErrorIs(t, err, domainerrors.ErrGiftNotFound)
}

func TestContributionService_ListContributions_Success(t *testing.T) {
	svc, _, registryRepo, _, _, _ := createTestContributionService(t)

	ctx := context.Background()
	giftID := uuid.New()
	gift := &entity.GiftRegistryItem{ID: giftID, TargetAmount: 100}
	ledger := []*entity.Contribution{
		{ID: uuid.New(), GiftID: giftID, Amount: 40},
		{ID: uuid.New(), GiftID: giftID, Amount: 20},
	}

	registryRepo.EXPECT().FindItemByID(ctx, giftID).Return(gift, nil)
	registryRepo.EXPECT().ListContributions(ctx, giftID).Return(ledger, nil)

	contributions, err := svc.ListContributions(ctx, giftID)

	require.NoError(t, err)
	assert.Len(t, contributions, 2)
}

func TestContributionService_ListContributions_GiftNotFound(t *testing.T) {
	svc, _, registryRepo, _, _, _ := createTestContributionService(t)

	ctx := context.Background()
	giftID := uuid.New()

	registryRepo.EXPECT().FindItemByID(ctx, giftID).Return(nil, repository.ErrGiftNotFound)

	_, err := svc.ListContributions(ctx, giftID)

	assert.ErrorIs(t, err, domainerrors.ErrGiftNotFound)
}
