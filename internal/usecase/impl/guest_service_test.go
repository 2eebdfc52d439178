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

type guestServiceMocks struct {
	txManager   *mockRepo.MockTransactionManager
	guestRepo   *mockRepo.MockGuestRepository
	eventRepo   *mockRepo.MockEventRepository
	profileRepo *mockRepo.MockProfileRepository
	factory     *mockRepo.MockRepositoryFactory
	publisher   *mockSvc.MockEventPublisher
}

func createTestGuestService(t *testing.T) (usecase.GuestUsecase, *guestServiceMocks) {
	m := &guestServiceMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		guestRepo:   mockRepo.NewMockGuestRepository(t),
		eventRepo:   mockRepo.NewMockEventRepository(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	svc := NewGuestService(GuestServiceParams{
		TxManager: m.txManager,
		GuestRepo: m.guestRepo,
		EventRepo: m.eventRepo,
		Publisher: m.publisher,
		Logger:    newDiscardLogger(),
	})

	return svc, m
}

func TestGuestService_AddGuest_Success(t *testing.T) {
	svc, m := createTestGuestService(t)

	ctx := context.Background()
	event := newTestEvent()
	profile := &entity.Profile{ID: uuid.New(), Email: "ana@example.com", Name: "Ana", Role: entity.RoleGuest}

	passthroughTx(m.txManager, m.factory)
	m.factory.EXPECT().EventRepo().Return(m.eventRepo)
	m.factory.EXPECT().ProfileRepo().Return(m.profileRepo)
	m.factory.EXPECT().GuestRepo().Return(m.guestRepo)

	m.eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)
	m.profileRepo.EXPECT().Resolve(ctx, "ana@example.com", "Ana", entity.RoleGuest).Return(profile, nil)
	m.guestRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	guest, err := svc.AddGuest(ctx, usecase.AddGuestInput{
		EventID: event.ID,
		Email:   "ana@example.com",
		Name:    "Ana",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RSVPPending, guest.Status)
	assert.Equal(t, entity.LanguageES, guest.Language)
	assert.Equal(t, profile.ID, guest.ProfileID)
}

func TestGuestService_AddGuest_EventNotFound(t *testing.T) {
	svc, m := createTestGuestService(t)

	ctx := context.Background()
	eventID := uuid.New()

	passthroughTx(m.txManager, m.factory)
	m.factory.EXPECT().EventRepo().Return(m.eventRepo)
	m.factory.EXPECT().ProfileRepo().Return(m.profileRepo)
	m.factory.EXPECT().GuestRepo().Return(m.guestRepo)

	m.eventRepo.EXPECT().FindByID(ctx, eventID).Return(nil, repository.ErrEventNotFound)

	_, err := svc.AddGuest(ctx, usecase.AddGuestInput{
		EventID: eventID,
		Email:   "ana@example.com",
		Name:    "Ana",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestGuestService_UpdateRSVP_RejectsUnknownStatus(t *testing.T) {
	svc, _ := createTestGuestService(t)

	_, err := svc.UpdateRSVP(context.Background(), usecase.UpdateRSVPInput{
		GuestID: uuid.New(),
		Status:  entity.RSVPStatus("maybe"),
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestGuestService_UpdateRSVP_Success(t *testing.T) {
	svc, m := createTestGuestService(t)

	ctx := context.Background()
	guestID := uuid.New()
	updated := &entity.EventGuest{ID: guestID, Status: entity.RSVPConfirmed, PlusOnes: 2}

	m.guestRepo.EXPECT().
		UpdateRSVP(ctx, guestID, entity.RSVPConfirmed, 2, "vegetarian", mock.Anything).
		Return(nil)
	m.guestRepo.EXPECT().FindByID(ctx, guestID).Return(updated, nil)

	guest, err := svc.UpdateRSVP(ctx, usecase.UpdateRSVPInput{
		GuestID:      guestID,
		Status:       entity.RSVPConfirmed,
		PlusOnes:     2,
		DietaryNotes: "vegetarian",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RSVPConfirmed, guest.Status)
}

func TestGuestService_RespondRSVP_RejectsPending(t *testing.T) {
	svc, _ := createTestGuestService(t)

	_, err := svc.RespondRSVP(context.Background(), usecase.RespondRSVPInput{
		EventID: uuid.New(),
		Email:   "ana@example.com",
		Status:  entity.RSVPPending,
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestGuestService_RespondRSVP_Success(t *testing.T) {
	svc, m := createTestGuestService(t)

	ctx := context.Background()
	event := newTestEvent()
	profile := &entity.Profile{ID: uuid.New(), Email: "ana@example.com", Name: "Ana", Role: entity.RoleGuest}
	record := &entity.EventGuest{ID: uuid.New(), EventID: event.ID, ProfileID: profile.ID, Status: entity.RSVPPending}
	updated := &entity.EventGuest{ID: record.ID, EventID: event.ID, ProfileID: profile.ID, Status: entity.RSVPDeclined}

	m.eventRepo.EXPECT().FindActiveByID(ctx, event.ID).Return(event, nil)

	passthroughTx(m.txManager, m.factory)
	m.factory.EXPECT().ProfileRepo().Return(m.profileRepo)
	m.profileRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(profile, nil)

	m.guestRepo.EXPECT().FindByEventAndProfile(ctx, event.ID, profile.ID).Return(record, nil)
	m.guestRepo.EXPECT().
		UpdateRSVP(ctx, record.ID, entity.RSVPDeclined, 0, "", mock.Anything).
		Return(nil)
	m.guestRepo.EXPECT().FindByID(ctx, record.ID).Return(updated, nil)

	m.publisher.EXPECT().PublishActivity(ctx, mock.Anything).Return(nil)

	guest, err := svc.RespondRSVP(ctx, usecase.RespondRSVPInput{
		EventID: event.ID,
		Email:   "ana@example.com",
		Status:  entity.RSVPDeclined,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RSVPDeclined, guest.Status)
}

func TestGuestService_RespondRSVP_UnknownEmail(t *testing.T) {
	svc, m := createTestGuestService(t)

	ctx := context.Background()
	event := newTestEvent()

	m.eventRepo.EXPECT().FindActiveByID(ctx, event.ID).Return(event, nil)

	passthroughTx(m.txManager, m.factory)
	m.factory.EXPECT().ProfileRepo().Return(m.profileRepo)
	m.profileRepo.EXPECT().FindByEmail(ctx, "nadie@example.com").Return(nil, repository.ErrProfileNotFound)

	_, err := svc.RespondRSVP(ctx, usecase.RespondRSVPInput{
		EventID: event.ID,
		Email:   "nadie@example.com",
		Status:  entity.RSVPConfirmed,
	})

	assert.ErrorIs(t, err, domainerrors.ErrGuestNotFound)
}
