package impl

import (
	"context"
	"log/slog"

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

// contributionService implements the ContributionUsecase interface.
type contributionService struct {
	txManager    repository.TransactionManager
	registryRepo repository.RegistryRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// ContributionServiceParams defines the dependencies for the contribution service.
type ContributionServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	RegistryRepo repository.RegistryRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewContributionService is the constructor for contributionService.
func NewContributionService(params ContributionServiceParams) usecase.ContributionUsecase {
	return &contributionService{
		txManager:    params.TxManager,
		registryRepo: params.RegistryRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contributionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Contribute records a contribution inside one transaction: the contributor
// profile is resolved, the ledger row written, and the gift total updated
// atomically. A rejected amount writes nothing.
func (srv *contributionService) Contribute(ctx context.Context, input usecase.ContributeInput) (*usecase.ContributeOutput, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrInvalidAmount
	}

	var (
		contribution *entity.Contribution
		gift         *entity.GiftRegistryItem
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()
		registryRepo := repoFactory.RegistryRepo()

		if _, err := registryRepo.FindItemByID(ctx, input.GiftID); err != nil {
			if errors.Is(err, repository.ErrGiftNotFound) {
				return domainerrors.ErrGiftNotFound
			}

			return errors.Wrap(err, "failed to load gift")
		}

		contributor, err := profileRepo.Resolve(ctx, input.Email, input.Name, entity.RoleGuest)
		if err != nil {
			return errors.Wrap(err, "failed to resolve contributor")
		}

		contribution = &entity.Contribution{
			GiftID:        input.GiftID,
			ContributorID: contributor.ID,
			Amount:        input.Amount,
			Message:       input.Message,
			IsAnonymous:   input.IsAnonymous,
			Contributor:   contributor,
		}
		if err := registryRepo.CreateContribution(ctx, contribution); err != nil {
			return errors.Wrap(err, "failed to record contribution")
		}

		if err := registryRepo.ApplyContribution(ctx, input.GiftID, input.Amount); err != nil {
			if errors.Is(err, repository.ErrGiftNotFound) {
				return domainerrors.ErrGiftNotFound
			}

			return errors.Wrap(err, "failed to apply contribution")
		}

		gift, err = registryRepo.FindItemByID(ctx, input.GiftID)
		if err != nil {
			return errors.Wrap(err, "failed to reload gift after contribution")
		}

		return nil
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		srv.log(ctx).Error("Contribution transaction failed",
			slog.String("gift_id", input.GiftID.String()),
			slog.String("error", err.Error()),
		)

		return nil, domainerrors.ErrContributionFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Contribution recorded",
		slog.String("gift_id", gift.ID.String()),
		slog.Float64("amount", input.Amount),
		slog.Bool("fulfilled", gift.IsFulfilled),
	)

	srv.publishActivity(ctx, &service.ActivityEvent{
		Kind:      service.ActivityContributionRecorded,
		EventID:   gift.EventID.String(),
		GiftID:    gift.ID.String(),
		ProfileID: contribution.ContributorID.String(),
		Amount:    input.Amount,
	})

	return &usecase.ContributeOutput{
		Contribution: contribution,
		Gift:         gift,
	}, nil
}

// ListContributions returns the contribution ledger for a gift.
func (srv *contributionService) ListContributions(ctx context.Context, giftID uuid.UUID) ([]*entity.Contribution, error) {
	if _, err := srv.registryRepo.FindItemByID(ctx, giftID); err != nil {
		if errors.Is(err, repository.ErrGiftNotFound) {
			return nil, domainerrors.ErrGiftNotFound
		}

		return nil, errors.Wrap(err, "failed to load gift")
	}

	contributions, err := srv.registryRepo.ListContributions(ctx, giftID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contributions")
	}

	return contributions, nil
}

func (srv *contributionService) publishActivity(ctx context.Context, event *service.ActivityEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.publisher.PublishActivity(ctx, event); err != nil {
		srv.log(ctx).Warn("Activity publish failed",
			slog.String("kind", event.Kind),
			slog.String("error", err.Error()),
		)
	}
}
