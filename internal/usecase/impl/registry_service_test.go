package impl

import (
	"context"
	"strings"
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

func createTestRegistryService(t *testing.T) (
	usecase.RegistryUsecase,
	*mockRepo.MockRegistryRepository,
	*mockRepo.MockEventRepository,
	*mockSvc.MockImageStore,
) {
	registryRepo := mockRepo.NewMockRegistryRepository(t)
	eventRepo := mockRepo.NewMockEventRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)

	svc := NewRegistryService(RegistryServiceParams{
		RegistryRepo: registryRepo,
		EventRepo:    eventRepo,
		ImageStore:   imageStore,
		Logger:       newDiscardLogger(),
	})

	return svc, registryRepo, eventRepo, imageStore
}

func TestRegistryService_CreateGift_Success(t *testing.T) {
	svc, registryRepo, eventRepo, _ := createTestRegistryService(t)

	ctx := context.Background()
	event := newTestEvent()

	eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)
	registryRepo.EXPECT().CreateItem(ctx, mock.Anything).Return(nil)

	gift, err := svc.CreateGift(ctx, usecase.CreateGiftInput{
		EventID:      event.ID,
		Title:        "Bicicleta",
		TargetAmount: 200,
	})

	require.NoError(t, err)
	assert.Equal(t, event.ID, gift.EventID)
	assert.Equal(t, "Bicicleta", gift.Title)
	assert.Equal(t, 200.0, gift.TargetAmount)
	assert.False(t, gift.IsFulfilled)
}

func TestRegistryService_CreateGift_RejectsNonPositiveTarget(t *testing.T) {
	svc, _, _, _ := createTestRegistryService(t)

	_, err := svc.CreateGift(context.Background(), usecase.CreateGiftInput{
		EventID:      uuid.New(),
		Title:        "Bicicleta",
		TargetAmount: 0,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
}

func TestRegistryService_CreateGift_EventNotFound(t *testing.T) {
	svc, _, eventRepo, _ := createTestRegistryService(t)

	ctx := context.Background()
	eventID := uuid.New()

	eventRepo.EXPECT().FindByID(ctx, eventID).Return(nil, repository.ErrEventNotFound)

	_, err := svc.CreateGift(ctx, usecase.CreateGiftInput{
		EventID:      eventID,
		Title:        "Bicicleta",
		TargetAmount: 200,
	})

	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestRegistryService_GetPublicGift_IncludesEventAndLedger(t *testing.T) {
	svc, registryRepo, eventRepo, _ := createTestRegistryService(t)

	ctx := context.Background()
	event := newTestEvent()
	giftID := uuid.New()
	gift := &entity.GiftRegistryItem{ID: giftID, EventID: event.ID, Title: "Bicicleta", TargetAmount: 200}
	ledger := []*entity.Contribution{{ID: uuid.New(), GiftID: giftID, Amount: 40}}

	eventRepo.EXPECT().FindActiveByID(ctx, event.ID).Return(event, nil)
	registryRepo.EXPECT().FindItemByID(ctx, giftID).Return(gift, nil)
	registryRepo.EXPECT().ListContributions(ctx, giftID).Return(ledger, nil)

	detail, err := svc.GetPublicGift(ctx, event.ID, giftID)

	require.NoError(t, err)
	assert.Equal(t, event, detail.Event)
	assert.Equal(t, gift, detail.Gift)
	assert.Len(t, detail.Contributions, 1)
}

func TestRegistryService_GetPublicGift_InactiveEventHidesGift(t *testing.T) {
	svc, _, eventRepo, _ := createTestRegistryService(t)

	ctx := context.Background()
	eventID := uuid.New()

	eventRepo.EXPECT().FindActiveByID(ctx, eventID).Return(nil, repository.ErrEventNotFound)

	_, err := svc.GetPublicGift(ctx, eventID, uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestRegistryService_GetPublicGift_RejectsGiftFromOtherEvent(t *testing.T) {
	svc, registryRepo, eventRepo, _ := createTestRegistryService(t)

	ctx := context.Background()
	event := newTestEvent()
	giftID := uuid.New()
	gift := &entity.GiftRegistryItem{ID: giftID, EventID: uuid.New(), Title: "Bicicleta", TargetAmount: 200}

	eventRepo.EXPECT().FindActiveByID(ctx, event.ID).Return(event, nil)
	registryRepo.EXPECT().FindItemByID(ctx, giftID).Return(gift, nil)

	_, err := svc.GetPublicGift(ctx, event.ID, giftID)

	assert.ErrorIs(t, err, domainerrors.ErrGiftNotFound)
}

func TestRegistryService_UploadGiftImage_KeyUsesExtension(t *testing.T) {
	svc, registryRepo, _, imageStore := createTestRegistryService(t)

	ctx := context.Background()
	giftID := uuid.New()
	gift := &entity.GiftRegistryItem{ID: giftID, Title: "Bicicleta", TargetAmount: 200}
	url := "https://cumple.example.com/media/gifts/" + giftID.String() + ".png"

	registryRepo.EXPECT().FindItemByID(ctx, giftID).Return(gift, nil).Once()
	imageStore.EXPECT().
		Save(ctx, "gifts/"+giftID.String()+".png", "image/png", mock.Anything).
		Return(url, nil)
	registryRepo.EXPECT().UpdateImageURL(ctx, giftID, url).Return(nil)

	updated := &entity.GiftRegistryItem{ID: giftID, Title: "Bicicleta", TargetAmount: 200, ImageURL: url}
	registryRepo.EXPECT().FindItemByID(ctx, giftID).Return(updated, nil).Once()

	gift, err := svc.UploadGiftImage(ctx, usecase.UploadGiftImageInput{
		GiftID:      giftID,
		Filename:    "Foto.PNG",
		ContentType: "image/png",
		Data:        strings.NewReader("fake image bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, url, gift.ImageURL)
}

func TestRegistryService_UploadGiftImage_DefaultsToJpg(t *testing.T) {
	svc, registryRepo, _, imageStore := createTestRegistryService(t)

	ctx := context.Background()
	giftID := uuid.New()
	gift := &entity.GiftRegistryItem{ID: giftID, Title: "Bicicleta", TargetAmount: 200}

	registryRepo.EXPECT().FindItemByID(ctx, giftID).Return(gift, nil).Twice()
	imageStore.EXPECT().
		Save(ctx, "gifts/"+giftID.String()+".jpg", "image/jpeg", mock.Anything).
		Return("url", nil)
	registryRepo.EXPECT().UpdateImageURL(ctx, giftID, "url").Return(nil)

	_, err := svc.UploadGiftImage(ctx, usecase.UploadGiftImageInput{
		GiftID:      giftID,
		Filename:    "photo",
		ContentType: "image/jpeg",
		Data:        strings.NewReader("fake image bytes"),
	})

	require.NoError(t, err)
}
