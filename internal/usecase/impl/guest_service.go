package impl

import (
	"context"
	"log/slog"
	"time"

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

// guestService implements the GuestUsecase interface.
type guestService struct {
	txManager repository.TransactionManager
	guestRepo repository.GuestRepository
	eventRepo repository.EventRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// GuestServiceParams defines the dependencies for the guest service.
type GuestServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	GuestRepo repository.GuestRepository
	EventRepo repository.EventRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewGuestService is the constructor for guestService.
func NewGuestService(params GuestServiceParams) usecase.GuestUsecase {
	return &guestService{
		txManager: params.TxManager,
		guestRepo: params.GuestRepo,
		eventRepo: params.EventRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *guestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddGuest resolves the profile by email and links it to the event inside
// one transaction, so a concurrent add of the same address cannot leave an
// orphaned profile.
func (srv *guestService) AddGuest(ctx context.Context, input usecase.AddGuestInput) (*entity.EventGuest, error) {
	language := input.Language
	if language == "" {
		language = entity.LanguageES
	}

	var guest *entity.EventGuest

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		eventRepo := repoFactory.EventRepo()
		profileRepo := repoFactory.ProfileRepo()
		guestRepo := repoFactory.GuestRepo()

		if _, err := eventRepo.FindByID(ctx, input.EventID); err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return domainerrors.ErrEventNotFound
			}

			return err
		}

		profile, err := profileRepo.Resolve(ctx, input.Email, input.Name, entity.RoleGuest)
		if err != nil {
			return errors.Wrap(err, "failed to resolve guest profile")
		}

		guest = &entity.EventGuest{
			EventID:   input.EventID,
			ProfileID: profile.ID,
			Status:    entity.RSVPPending,
			PlusOnes:  input.PlusOnes,
			Language:  language,
			Profile:   profile,
		}

		return guestRepo.Create(ctx, guest)
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		srv.log(ctx).Error("Guest creation failed",
			slog.String("event_id", input.EventID.String()),
			slog.String("error", err.Error()),
		)

		return nil, domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Guest added",
		slog.String("event_id", input.EventID.String()),
		slog.String("guest_id", guest.ID.String()),
	)

	return guest, nil
}

// ListGuests returns guest records, optionally filtered by event.
func (srv *guestService) ListGuests(ctx context.Context, eventID *uuid.UUID) ([]*entity.EventGuest, error) {
	return srv.guestRepo.List(ctx, eventID)
}

// UpdateRSVP applies an admin-side RSVP change to a guest record.
func (srv *guestService) UpdateRSVP(ctx context.Context, input usecase.UpdateRSVPInput) (*entity.EventGuest, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown RSVP status")
	}
	if input.PlusOnes < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("plus ones cannot be negative")
	}

	guest, err := srv.applyRSVP(ctx, input.GuestID, input.Status, input.PlusOnes, input.DietaryNotes)
	if err != nil {
		return nil, err
	}

	return guest, nil
}

// RespondRSVP applies a guest's own response, addressed by event and email.
func (srv *guestService) RespondRSVP(ctx context.Context, input usecase.RespondRSVPInput) (*entity.EventGuest, error) {
	if !input.Status.IsResponse() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("RSVP response must confirm or decline")
	}
	if input.PlusOnes < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("plus ones cannot be negative")
	}

	// The guest page only exists for active events.
	if _, err := srv.eventRepo.FindActiveByID(ctx, input.EventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, err
	}

	record, err := srv.findGuestByEmail(ctx, input.EventID, input.Email)
	if err != nil {
		return nil, err
	}

	guest, err := srv.applyRSVP(ctx, record.ID, input.Status, input.PlusOnes, input.DietaryNotes)
	if err != nil {
		return nil, err
	}

	srv.publishActivity(ctx, &service.ActivityEvent{
		Kind:      service.ActivityRSVPUpdated,
		EventID:   input.EventID.String(),
		ProfileID: guest.ProfileID.String(),
		Status:    guest.Status.String(),
	})

	return guest, nil
}

func (srv *guestService) findGuestByEmail(ctx context.Context, eventID uuid.UUID, email string) (*entity.EventGuest, error) {
	profile, err := srv.lookupProfile(ctx, email)
	if err != nil {
		return nil, err
	}

	guest, err := srv.guestRepo.FindByEventAndProfile(ctx, eventID, profile.ID)
	if err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			return nil, domainerrors.ErrGuestNotFound
		}

		return nil, err
	}

	return guest, nil
}

func (srv *guestService) lookupProfile(ctx context.Context, email string) (*entity.Profile, error) {
	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		profile, findErr = repoFactory.ProfileRepo().FindByEmail(ctx, email)

		return findErr
	})
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrGuestNotFound
		}

		return nil, err
	}

	return profile, nil
}

func (srv *guestService) applyRSVP(ctx context.Context, guestID uuid.UUID, status entity.RSVPStatus, plusOnes int, dietaryNotes string) (*entity.EventGuest, error) {
	if err := srv.guestRepo.UpdateRSVP(ctx, guestID, status, plusOnes, dietaryNotes, time.Now()); err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			return nil, domainerrors.ErrGuestNotFound
		}

		return nil, err
	}

	guest, err := srv.guestRepo.FindByID(ctx, guestID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload guest after RSVP update")
	}

	return guest, nil
}

func (srv *guestService) publishActivity(ctx context.Context, event *service.ActivityEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.publisher.PublishActivity(ctx, event); err != nil {
		srv.log(ctx).Warn("Activity publish failed",
			slog.String("kind", event.Kind),
			slog.String("error", err.Error()),
		)
	}
}
