package postgres

import (
	"context"
	"time"

	"cumple/internal/domain/entity"
	domainerrors "cumple/internal/domain/errors"
	"cumple/internal/domain/repository"

	"cumple/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// guestRepository implements the repository.GuestRepository interface.
type guestRepository struct {
	db *gorm.DB
}

// NewGuestRepository is the constructor for guestRepository.
func NewGuestRepository(db *gorm.DB) repository.GuestRepository {
	return &guestRepository{
		db: db,
	}
}

// Create persists a new guest record for an event.
func (repo *guestRepository) Create(ctx context.Context, guest *entity.EventGuest) error {
	guestM := model.FromGuestEntity(guest)

	if err := repo.db.WithContext(ctx).Create(guestM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("guest already invited to this event")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid event or profile reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create guest")
	}

	// Update the entity with generated values
	guest.ID = guestM.ID
	guest.CreatedAt = guestM.CreatedAt
	guest.UpdatedAt = guestM.UpdatedAt

	return nil
}

// FindByID retrieves a guest record with its profile preloaded.
func (repo *guestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.EventGuest, error) {
	var guestM model.EventGuest

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("id = ?", id).
		First(&guestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGuestNotFound
		}

		return nil, errors.Wrap(err, "failed to find guest by ID")
	}

	return guestM.ToEntity(), nil
}

// FindByEventAndProfile retrieves the guest record linking a profile to an event.
func (repo *guestRepository) FindByEventAndProfile(ctx context.Context, eventID, profileID uuid.UUID) (*entity.EventGuest, error) {
	var guestM model.EventGuest

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("event_id = ? AND profile_id = ?", eventID, profileID).
		First(&guestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGuestNotFound
		}

		return nil, errors.Wrap(err, "failed to find guest by event and profile")
	}

	return guestM.ToEntity(), nil
}

// List returns guest records with profiles preloaded, optionally filtered by event.
func (repo *guestRepository) List(ctx context.Context, eventID *uuid.UUID) ([]*entity.EventGuest, error) {
	var guestModels []*model.EventGuest

	query := repo.db.WithContext(ctx).
		Preload("Profile").
		Order("created_at DESC")

	if eventID != nil {
		query = query.Where("event_id = ?", *eventID)
	}

	if err := query.Find(&guestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list guests")
	}

	guests := make([]*entity.EventGuest, 0, len(guestModels))
	for _, guestM := range guestModels {
		guests = append(guests, guestM.ToEntity())
	}

	return guests, nil
}

// UpdateRSVP sets the RSVP fields and response timestamp on a guest record.
func (repo *guestRepository) UpdateRSVP(ctx context.Context, id uuid.UUID, status entity.RSVPStatus, plusOnes int, dietaryNotes string, respondedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EventGuest{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        string(status),
			"plus_ones":     plusOnes,
			"dietary_notes": dietaryNotes,
			"responded_at":  respondedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update RSVP")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGuestNotFound
	}

	return nil
}

// DeleteByEvent removes all guest records for an event.
func (repo *guestRepository) DeleteByEvent(ctx context.Context, eventID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Delete(&model.EventGuest{})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete guests by event")
	}

	return result.RowsAffected, nil
}

// Count returns the total number of guest records.
func (repo *guestRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.EventGuest{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count guests")
	}

	return count, nil
}

// CountByStatus returns the number of guest records with the given status.
func (repo *guestRepository) CountByStatus(ctx context.Context, status entity.RSVPStatus) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.EventGuest{}).
		Where("status = ?", string(status)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count guests by status")
	}

	return count, nil
}
