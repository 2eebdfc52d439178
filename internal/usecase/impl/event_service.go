package impl

import (
	"context"
	"fmt"
	"log/slog"

	"cumple/config"
	deliverycontext "cumple/internal/delivery/context"
	"cumple/internal/domain/entity"
	domainerrors "cumple/internal/domain/errors"
	"cumple/internal/domain/repository"
	"cumple/internal/domain/service"
	"cumple/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// eventService implements the EventUsecase interface.
type eventService struct {
	txManager    repository.TransactionManager
	eventRepo    repository.EventRepository
	guestRepo    repository.GuestRepository
	registryRepo repository.RegistryRepository
	qrService    service.QRCodeService
	publisher    service.EventPublisher
	baseURL      string
	logger       *slog.Logger
}

// EventServiceParams defines the dependencies for the event service.
type EventServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	EventRepo    repository.EventRepository
	GuestRepo    repository.GuestRepository
	RegistryRepo repository.RegistryRepository
	QRService    service.QRCodeService
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		txManager:    params.TxManager,
		eventRepo:    params.EventRepo,
		guestRepo:    params.GuestRepo,
		registryRepo: params.RegistryRepo,
		qrService:    params.QRService,
		publisher:    params.Publisher,
		baseURL:      params.Config.App.BaseURL,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateEvent persists a new event. New events start active.
func (srv *eventService) CreateEvent(ctx context.Context, input usecase.CreateEventInput) (*entity.Event, error) {
	if !input.Celebrant.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown celebrant")
	}

	event := &entity.Event{
		OrganizerID:       input.OrganizerID,
		Title:             input.Title,
		Celebrant:         input.Celebrant,
		EventDate:         input.EventDate,
		VenueName:         input.VenueName,
		AddressOfficial:   input.AddressOfficial,
		AddressGoogleMaps: input.AddressGoogleMaps,
		AddressAppleMaps:  input.AddressAppleMaps,
		Description:       input.Description,
		IsActive:          true,
		EmailSubjectES:    input.EmailSubjectES,
		EmailBodyES:       input.EmailBodyES,
		EmailSubjectEN:    input.EmailSubjectEN,
		EmailBodyEN:       input.EmailBodyEN,
	}

	if err := srv.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Event created",
		slog.String("event_id", event.ID.String()),
		slog.String("title", event.Title),
	)

	return event, nil
}

// ListEvents returns all events with their guest-list tallies.
func (srv *eventService) ListEvents(ctx context.Context) ([]*usecase.EventWithCounts, error) {
	events, err := srv.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*usecase.EventWithCounts, 0, len(events))
	for _, event := range events {
		guests, err := srv.guestRepo.List(ctx, &event.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load guests for event list")
		}

		confirmed := 0
		for _, guest := range guests {
			if guest.Status == entity.RSVPConfirmed {
				confirmed++
			}
		}

		result = append(result, &usecase.EventWithCounts{
			Event:          event,
			GuestCount:     len(guests),
			ConfirmedCount: confirmed,
		})
	}

	return result, nil
}

// GetEvent returns a single event by ID.
func (srv *eventService) GetEvent(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	event, err := srv.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, err
	}

	return event, nil
}

// GetEventDetail returns the event together with its guest-list tallies,
// registry progress and the shareable guest link.
func (srv *eventService) GetEventDetail(ctx context.Context, id uuid.UUID) (*usecase.EventDetail, error) {
	event, err := srv.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	guests, err := srv.guestRepo.List(ctx, &event.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load guests for event detail")
	}

	detail := &usecase.EventDetail{
		Event:      event,
		GuestCount: len(guests),
		GuestLink:  fmt.Sprintf("%s/event/%s", srv.baseURL, event.ID),
	}
	for _, guest := range guests {
		switch guest.Status {
		case entity.RSVPConfirmed:
			detail.ConfirmedCount++
			detail.PlusOnesTotal += guest.PlusOnes
		case entity.RSVPPending:
			detail.PendingCount++
		}
	}

	gifts, err := srv.registryRepo.ListItems(ctx, &event.ID, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load registry for event detail")
	}

	detail.GiftCount = len(gifts)
	for _, gift := range gifts {
		if gift.IsFulfilled {
			detail.FulfilledGifts++
		}
	}

	return detail, nil
}

// UpdateEvent writes the full desired state of an event.
func (srv *eventService) UpdateEvent(ctx context.Context, input usecase.UpdateEventInput) (*entity.Event, error) {
	if !input.Celebrant.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown celebrant")
	}

	event := &entity.Event{
		ID:                input.ID,
		Title:             input.Title,
		Celebrant:         input.Celebrant,
		EventDate:         input.EventDate,
		VenueName:         input.VenueName,
		AddressOfficial:   input.AddressOfficial,
		AddressGoogleMaps: input.AddressGoogleMaps,
		AddressAppleMaps:  input.AddressAppleMaps,
		Description:       input.Description,
		IsActive:          input.IsActive,
		EmailSubjectES:    input.EmailSubjectES,
		EmailBodyES:       input.EmailBodyES,
		EmailSubjectEN:    input.EmailSubjectEN,
		EmailBodyEN:       input.EmailBodyEN,
	}

	if err := srv.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, err
	}

	return srv.GetEvent(ctx, input.ID)
}

// DeleteEvent removes the event and its dependent rows inside one
// transaction. The contribution ledger is deliberately left untouched.
func (srv *eventService) DeleteEvent(ctx context.Context, id uuid.UUID) (*usecase.DeleteEventOutput, error) {
	output := &usecase.DeleteEventOutput{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		eventRepo := repoFactory.EventRepo()
		guestRepo := repoFactory.GuestRepo()
		registryRepo := repoFactory.RegistryRepo()
		expenseRepo := repoFactory.ExpenseRepo()

		if _, err := eventRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return domainerrors.ErrEventNotFound
			}

			return err
		}

		var err error
		if output.GuestsRemoved, err = guestRepo.DeleteByEvent(ctx, id); err != nil {
			return err
		}
		if output.GiftsRemoved, err = registryRepo.DeleteByEvent(ctx, id); err != nil {
			return err
		}
		if output.ExpensesRemoved, err = expenseRepo.DeleteByEvent(ctx, id); err != nil {
			return err
		}

		return eventRepo.Delete(ctx, id)
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		srv.log(ctx).Error("Event deletion failed",
			slog.String("event_id", id.String()),
			slog.String("error", err.Error()),
		)

		return nil, domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Event deleted",
		slog.String("event_id", id.String()),
		slog.Int64("guests_removed", output.GuestsRemoved),
		slog.Int64("gifts_removed", output.GiftsRemoved),
		slog.Int64("expenses_removed", output.ExpensesRemoved),
	)

	srv.publishActivity(ctx, &service.ActivityEvent{
		Kind:    service.ActivityEventDeleted,
		EventID: id.String(),
	})

	return output, nil
}

// GuestPageQR renders the guest page URL for an event as a PNG QR code.
func (srv *eventService) GuestPageQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.GetEvent(ctx, id); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/event/%s", srv.baseURL, id)

	png, err := srv.qrService.GenerateURLQR(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render guest page QR code")
	}

	return png, nil
}

// GetPublicEvent returns the guest-facing view of an active event: the
// event itself plus its still-unfulfilled registry items.
func (srv *eventService) GetPublicEvent(ctx context.Context, id uuid.UUID) (*usecase.PublicEventView, error) {
	event, err := srv.eventRepo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, err
	}

	gifts, err := srv.registryRepo.ListItems(ctx, &event.ID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load registry for guest page")
	}

	return &usecase.PublicEventView{
		Event: event,
		Gifts: gifts,
	}, nil
}

func (srv *eventService) publishActivity(ctx context.Context, event *service.ActivityEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.publisher.PublishActivity(ctx, event); err != nil {
		srv.log(ctx).Warn("Activity publish failed",
			slog.String("kind", event.Kind),
			slog.String("error", err.Error()),
		)
	}
}
