package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

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

// registryService implements the RegistryUsecase interface.
type registryService struct {
	registryRepo repository.RegistryRepository
	eventRepo    repository.EventRepository
	imageStore   service.ImageStore
	logger       *slog.Logger
}

// RegistryServiceParams defines the dependencies for the registry service.
type RegistryServiceParams struct {
	fx.In

	RegistryRepo repository.RegistryRepository
	EventRepo    repository.EventRepository
	ImageStore   service.ImageStore
	Logger       *slog.Logger
}

// NewRegistryService is the constructor for registryService.
func NewRegistryService(params RegistryServiceParams) usecase.RegistryUsecase {
	return &registryService{
		registryRepo: params.RegistryRepo,
		eventRepo:    params.EventRepo,
		imageStore:   params.ImageStore,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *registryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateGift persists a new registry item.
func (srv *registryService) CreateGift(ctx context.Context, input usecase.CreateGiftInput) (*entity.GiftRegistryItem, error) {
	if input.TargetAmount <= 0 {
		return nil, domainerrors.ErrInvalidAmount
	}

	if _, err := srv.eventRepo.FindByID(ctx, input.EventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, err
	}

	gift := &entity.GiftRegistryItem{
		EventID:      input.EventID,
		Title:        input.Title,
		Description:  input.Description,
		TargetAmount: input.TargetAmount,
		ImageURL:     input.ImageURL,
	}

	if err := srv.registryRepo.CreateItem(ctx, gift); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Registry item created",
		slog.String("gift_id", gift.ID.String()),
		slog.String("event_id", gift.EventID.String()),
	)

	return gift, nil
}

// ListGifts returns registry items, optionally filtered by event and
// fulfillment state.
func (srv *registryService) ListGifts(ctx context.Context, eventID *uuid.UUID, onlyUnfulfilled bool) ([]*entity.GiftRegistryItem, error) {
	return srv.registryRepo.ListItems(ctx, eventID, onlyUnfulfilled)
}

// GetPublicGift returns a registry item with its contribution ledger for
// the contribute form. Gifts are only reachable through the active event
// that owns them.
func (srv *registryService) GetPublicGift(ctx context.Context, eventID, giftID uuid.UUID) (*usecase.GiftDetail, error) {
	event, err := srv.eventRepo.FindActiveByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, err
	}

	gift, err := srv.registryRepo.FindItemByID(ctx, giftID)
	if err != nil {
		if errors.Is(err, repository.ErrGiftNotFound) {
			return nil, domainerrors.ErrGiftNotFound
		}

		return nil, err
	}
	if gift.EventID != event.ID {
		return nil, domainerrors.ErrGiftNotFound
	}

	contributions, err := srv.registryRepo.ListContributions(ctx, giftID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load contributions for gift")
	}

	return &usecase.GiftDetail{
		Event:         event,
		Gift:          gift,
		Contributions: contributions,
	}, nil
}

// UploadGiftImage stores the uploaded image and records its URL on the item.
func (srv *registryService) UploadGiftImage(ctx context.Context, input usecase.UploadGiftImageInput) (*entity.GiftRegistryItem, error) {
	if _, err := srv.registryRepo.FindItemByID(ctx, input.GiftID); err != nil {
		if errors.Is(err, repository.ErrGiftNotFound) {
			return nil, domainerrors.ErrGiftNotFound
		}

		return nil, err
	}

	ext := strings.ToLower(path.Ext(input.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	key := fmt.Sprintf("gifts/%s%s", input.GiftID, ext)

	url, err := srv.imageStore.Save(ctx, key, input.ContentType, input.Data)
	if err != nil {
		srv.log(ctx).Error("Gift image upload failed",
			slog.String("gift_id", input.GiftID.String()),
			slog.String("error", err.Error()),
		)

		return nil, domainerrors.ErrImageUploadFailed.WrapMessage(err.Error())
	}

	if err := srv.registryRepo.UpdateImageURL(ctx, input.GiftID, url); err != nil {
		if errors.Is(err, repository.ErrGiftNotFound) {
			return nil, domainerrors.ErrGiftNotFound
		}

		return nil, err
	}

	gift, err := srv.registryRepo.FindItemByID(ctx, input.GiftID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload gift after image upload")
	}

	return gift, nil
}
