package impl

import (
	"context"
	"testing"
	"time"

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

type eventServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	eventRepo    *mockRepo.MockEventRepository
	guestRepo    *mockRepo.MockGuestRepository
	registryRepo *mockRepo.MockRegistryRepository
	expenseRepo  *mockRepo.MockExpenseRepository
	factory      *mockRepo.MockRepositoryFactory
	qrService    *mockSvc.MockQRCodeService
	publisher    *mockSvc.MockEventPublisher
}

func createTestEventService(t *testing.T) (usecase.EventUsecase, *eventServiceMocks) {
	m := &eventServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		eventRepo:    mockRepo.NewMockEventRepository(t),
		guestRepo:    mockRepo.NewMockGuestRepository(t),
		registryRepo: mockRepo.NewMockRegistryRepository(t),
		expenseRepo:  mockRepo.NewMockExpenseRepository(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		qrService:    mockSvc.NewMockQRCodeService(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	svc := NewEventService(EventServiceParams{
		TxManager:    m.txManager,
		EventRepo:    m.eventRepo,
		GuestRepo:    m.guestRepo,
		RegistryRepo: m.registryRepo,
		QRService:    m.qrService,
		Publisher:    m.publisher,
		Config:       newTestConfig("https://cumple.example.com"),
		Logger:       newDiscardLogger(),
	})

	return svc, m
}

func TestEventService_CreateEvent_Success(t *testing.T) {
	svc, m := createTestEventService(t)

	ctx := context.Background()

	m.eventRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	event, err := svc.CreateEvent(ctx, usecase.CreateEventInput{
		OrganizerID:     uuid.New(),
		Title:           "Cumple de Jaime",
		Celebrant:       entity.CelebrantJaime,
		EventDate:       time.Date(2026, time.September, 5, 18, 0, 0, 0, time.UTC),
		VenueName:       "Sala Principal",
		AddressOfficial: "Calle Mayor 1, Madrid",
	})

	require.NoError(t, err)
	assert.True(t, event.IsActive)
	assert.Equal(t, entity.CelebrantJaime, event.Celebrant)
}

func TestEventService_CreateEvent_UnknownCelebrant(t *testing.T) {
	svc, _ := createTestEventService(t)

	_, err := svc.CreateEvent(context.Background(), usecase.CreateEventInput{
		Title:     "Fiesta",
		Celebrant: entity.Celebrant("Nadie"),
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestEventService_ListEvents_CountsConfirmedGuests(t *testing.T) {
	svc, m := createTestEventService(t)

	ctx := context.Background()
	event := newTestEvent()

	m.eventRepo.EXPECT().List(ctx).Return([]*entity.Event{event}, nil)
	m.guestRepo.EXPECT().List(ctx, &event.ID).Return([]*entity.EventGuest{
		{ID: uuid.New(), EventID: event.ID, Status: entity.RSVPConfirmed},
		{ID: uuid.New(), EventID: event.ID, Status: entity.RSVPPending},
		{ID: uuid.New(), EventID: event.ID, Status: entity.RSVPConfirmed},
	}, nil)

	events, err := svc.ListEvents(ctx)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 3, events[0].GuestCount)
	assert.Equal(t, 2, events[0].ConfirmedCount)
}

func TestEventService_GetEventDetail_TalliesGuestsAndGifts(t *testing.T) {
	svc, m := createTestEventService(t)

	ctx := context.Background()
	event := newTestEvent()

	m.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)
	m.guestRepo.EXPECT().List(ctx, &event.ID).Return([]*entity.EventGuest{
		{ID: uuid.New(), EventID: event.ID, Status: entity.RSVPConfirmed, PlusOnes: 2},
		{ID: uuid.New(), EventID: event.ID, Status: entity.RSVPConfirmed, PlusOnes: 1},
		{ID: uuid.New(), EventID: event.ID, Status: entity.RSVPPending},
		{ID: uuid.New(), EventID: event.ID, Status: entity.RSVPDeclined},
	}, nil)
	m.registryRepo.EXPECT().ListItems(ctx, &event.ID, false).Return([]*entity.GiftRegistryItem{
		{ID: uuid.New(), EventID: event.ID, IsFulfilled: true},
		{ID: uuid.New(), EventID: event.ID},
	}, nil)

	detail, err := svc.GetEventDetail(ctx, event.ID)

	require.NoError(t, err)
	assert.Equal(t, 4, detail.GuestCount)
	assert.Equal(t, 2, detail.ConfirmedCount)
	assert.Equal(t, 1, detail.PendingCount)
	assert.Equal(t, 3, detail.PlusOnesTotal)
	assert.Equal(t, 2, detail.GiftCount)
	assert.Equal(t, 1, detail.FulfilledGifts)
	assert.Equal(t, "https://cumple.example.com/event/"+event.ID.String(), detail.GuestLink)
}

func TestEventService_DeleteEvent_RemovesDependentsInOneTransaction(t *testing.T) {
	svc, m := createTestEventService(t)

	ctx := context.Background()
	event := newTestEvent()

	passthroughTx(m.txManager, m.factory)
	m.factory.EXPECT().EventRepo().Return(m.eventRepo)
	m.factory.EXPECT().GuestRepo().Return(m.guestRepo)
	m.factory.EXPECT().RegistryRepo().Return(m.registryRepo)
	m.factory.EXPECT().ExpenseRepo().Return(m.expenseRepo)

	m.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)
	m.guestRepo.EXPECT().DeleteByEvent(ctx, event.ID).Return(12, nil)
	m.registryRepo.EXPECT().DeleteByEvent(ctx, event.ID).Return(3, nil)
	m.expenseRepo.EXPECT().DeleteByEvent(ctx, event.ID).Return(5, nil)
	m.eventRepo.EXPECT().Delete(ctx, event.ID).Return(nil)

	m.publisher.EXPECT().PublishActivity(ctx, mock.Anything).Return(nil)

	output, err := svc.DeleteEvent(ctx, event.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(12), output.GuestsRemoved)
	assert.Equal(t, int64(3), output.GiftsRemoved)
	assert.Equal(t, int64(5), output.ExpensesRemoved)
}

func TestEventService_DeleteEvent_NotFound(t *testing.T) {
	svc, m := createTestEventService(t)

	ctx := context.Background()
	eventID := uuid.New()

	passthroughTx(m.txManager, m.factory)
	m.factory.EXPECT().EventRepo().Return(m.eventRepo)
	m.factory.EXPECT().GuestRepo().Return(m.guestRepo)
	m.factory.EXPECT().RegistryRepo().Return(m.registryRepo)
	m.factory.EXPECT().ExpenseRepo().Return(m.expenseRepo)

	m.eventRepo.EXPECT().FindByID(ctx, eventID).Return(nil, repository.ErrEventNotFound)

	_, err := svc.DeleteEvent(ctx, eventID)

	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestEventService_GuestPageQR_EncodesGuestPageURL(t *testing.T) {
	svc, m := createTestEventService(t)

	ctx := context.Background()
	event := newTestEvent()
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	m.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)
	m.qrService.EXPECT().
		GenerateURLQR("https://cumple.example.com/event/" + event.ID.String()).
		Return(png, nil)

	got, err := svc.GuestPageQR(ctx, event.ID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestEventService_GetPublicEvent_OnlyActiveVisible(t *testing.T) {
	svc, m := createTestEventService(t)

	ctx := context.Background()
	eventID := uuid.New()

	m.eventRepo.EXPECT().FindActiveByID(ctx, eventID).Return(nil, repository.ErrEventNotFound)

	_, err := svc.GetPublicEvent(ctx, eventID)

	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestEventService_GetPublicEvent_ReturnsUnfulfilledGifts(t *testing.T) {
	svc, m := createTestEventService(t)

	ctx := context.Background()
	event := newTestEvent()
	gifts := []*entity.GiftRegistryItem{
		{ID: uuid.New(), EventID: event.ID, Title: "Bicicleta", TargetAmount: 200},
	}

	m.eventRepo.EXPECT().FindActiveByID(ctx, event.ID).Return(event, nil)
	m.registryRepo.EXPECT().ListItems(ctx, &event.ID, true).Return(gifts, nil)

	view, err := svc.GetPublicEvent(ctx, event.ID)

	require.NoError(t, err)
	assert.Equal(t, event, view.Event)
	assert.Len(t, view.Gifts, 1)
}
