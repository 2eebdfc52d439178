package impl

import (
	"context"
	"testing"
	"time"

	"cumple/internal/domain/entity"
	domainerrors "cumple/internal/domain/errors"
	"cumple/internal/domain/repository"
	"cumple/internal/domain/service"
	mockRepo "cumple/internal/mocks/repository"
	mockSvc "cumple/internal/mocks/service"
	"cumple/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestInvitationService(t *testing.T) (
	usecase.InvitationUsecase,
	*mockRepo.MockEventRepository,
	*mockSvc.MockActionLinkService,
	*mockSvc.MockMailer,
	*mockSvc.MockEventPublisher,
) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	linkService := mockSvc.NewMockActionLinkService(t)
	mailer := mockSvc.NewMockMailer(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewInvitationService(InvitationServiceParams{
		EventRepo:   eventRepo,
		LinkService: linkService,
		Mailer:      mailer,
		Publisher:   publisher,
		Config:      newTestConfig("https://cumple.example.com"),
		Logger:      newDiscardLogger(),
	})

	return svc, eventRepo, linkService, mailer, publisher
}

func newTestEvent() *entity.Event {
	return &entity.Event{
		ID:              uuid.New(),
		Title:           "Cumple de Cova",
		Celebrant:       entity.CelebrantCova,
		EventDate:       time.Date(2026, time.June, 14, 17, 0, 0, 0, time.UTC),
		VenueName:       "Sala Principal",
		AddressOfficial: "Calle Mayor 1, Madrid",
		IsActive:        true,
	}
}

func TestInvitationService_SendInvitation_Success(t *testing.T) {
	svc, eventRepo, linkService, mailer, publisher := createTestInvitationService(t)

	ctx := context.Background()
	event := newTestEvent()
	link := "https://identity.example.com/verify?token=abc"

	eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)

	linkService.EXPECT().
		GenerateInviteLink(ctx, &service.ActionLinkRequest{
			Email:      "ana@example.com",
			RedirectTo: "https://cumple.example.com/event/" + event.ID.String(),
			Name:       "Ana",
		}).
		Return(link, nil)

	var sent *service.MailMessage
	mailer.EXPECT().
		Send(ctx, mock.Anything).
		Run(func(_ context.Context, msg *service.MailMessage) {
			sent = msg
		}).
		Return(nil)

	publisher.EXPECT().PublishActivity(ctx, mock.Anything).Return(nil)

	output, err := svc.SendInvitation(ctx, usecase.SendInvitationInput{
		Email:   "ana@example.com",
		Name:    "Ana",
		EventID: event.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Invitation sent to ana@example.com", output.Message)

	require.NotNil(t, sent)
	assert.Equal(t, "ana@example.com", sent.To)
	assert.Equal(t, "Invitación: Cumple de Cova", sent.Subject)
	assert.Contains(t, sent.Body, "Hola Ana,")
	assert.Contains(t, sent.Body, "14 de junio de 2026")
	assert.Contains(t, sent.Body, "Sala Principal\nCalle Mayor 1, Madrid")
	assert.Contains(t, sent.Body, link)
	assert.NotContains(t, sent.Body, "{guest_name}")
}

func TestInvitationService_SendInvitation_EnglishTemplate(t *testing.T) {
	svc, eventRepo, linkService, mailer, publisher := createTestInvitationService(t)

	ctx := context.Background()
	event := newTestEvent()

	eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)
	linkService.EXPECT().GenerateInviteLink(ctx, mock.Anything).Return("https://example.com/link", nil)

	var sent *service.MailMessage
	mailer.EXPECT().
		Send(ctx, mock.Anything).
		Run(func(_ context.Context, msg *service.MailMessage) {
			sent = msg
		}).
		Return(nil)
	publisher.EXPECT().PublishActivity(ctx, mock.Anything).Return(nil)

	_, err := svc.SendInvitation(ctx, usecase.SendInvitationInput{
		Email:    "john@example.com",
		Name:     "John",
		EventID:  event.ID,
		Language: entity.LanguageEN,
	})

	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, "Invitation: Cumple de Cova", sent.Subject)
	assert.Contains(t, sent.Body, "Hi John,")
	assert.Contains(t, sent.Body, "June 14, 2026")
}

func TestInvitationService_SendInvitation_EventOverrideWins(t *testing.T) {
	svc, eventRepo, linkService, mailer, publisher := createTestInvitationService(t)

	ctx := context.Background()
	event := newTestEvent()
	event.EmailSubjectES = "Fiesta: {event_title}"
	event.EmailBodyES = "Ven {guest_name}: {link}"

	eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)
	linkService.EXPECT().GenerateInviteLink(ctx, mock.Anything).Return("https://example.com/link", nil)

	var sent *service.MailMessage
	mailer.EXPECT().
		Send(ctx, mock.Anything).
		Run(func(_ context.Context, msg *service.MailMessage) {
			sent = msg
		}).
		Return(nil)
	publisher.EXPECT().PublishActivity(ctx, mock.Anything).Return(nil)

	_, err := svc.SendInvitation(ctx, usecase.SendInvitationInput{
		Email:   "ana@example.com",
		Name:    "Ana",
		EventID: event.ID,
	})

	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, "Fiesta: Cumple de Cova", sent.Subject)
	assert.Equal(t, "Ven Ana: https://example.com/link", sent.Body)
}

func TestInvitationService_SendInvitation_EventNotFound(t *testing.T) {
	svc, eventRepo, _, _, _ := createTestInvitationService(t)

	ctx := context.Background()
	eventID := uuid.New()

	eventRepo.EXPECT().FindByID(ctx, eventID).Return(nil, repository.ErrEventNotFound)

	_, err := svc.SendInvitation(ctx, usecase.SendInvitationInput{
		Email:   "ana@example.com",
		Name:    "Ana",
		EventID: eventID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestInvitationService_SendInvitation_LinkFailureSendsNoEmail(t *testing.T) {
	svc, eventRepo, linkService, _, _ := createTestInvitationService(t)

	ctx := context.Background()
	event := newTestEvent()

	eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)
	linkService.EXPECT().GenerateInviteLink(ctx, mock.Anything).Return("", errors.New("provider down"))

	_, err := svc.SendInvitation(ctx, usecase.SendInvitationInput{
		Email:   "ana@example.com",
		Name:    "Ana",
		EventID: event.ID,
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInviteLinkFailed.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, "provider down", appErr.Details())
}

func TestInvitationService_SendInvitation_EmailFailureCarriesLink(t *testing.T) {
	svc, eventRepo, linkService, mailer, _ := createTestInvitationService(t)

	ctx := context.Background()
	event := newTestEvent()
	link := "https://identity.example.com/verify?token=abc"

	eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)
	linkService.EXPECT().GenerateInviteLink(ctx, mock.Anything).Return(link, nil)
	mailer.EXPECT().Send(ctx, mock.Anything).Return(errors.New("smtp timeout"))

	_, err := svc.SendInvitation(ctx, usecase.SendInvitationInput{
		Email:   "ana@example.com",
		Name:    "Ana",
		EventID: event.ID,
	})

	require.Error(t, err)

	var deliveryErr *domainerrors.EmailDeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	assert.Equal(t, link, deliveryErr.Link)
}
