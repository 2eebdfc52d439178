package postgres

import (
	"context"

	"cumple/internal/domain/entity"
	domainerrors "cumple/internal/domain/errors"
	"cumple/internal/domain/repository"

	"cumple/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// registryRepository implements the repository.RegistryRepository interface.
type registryRepository struct {
	db *gorm.DB
}

// NewRegistryRepository is the constructor for registryRepository.
func NewRegistryRepository(db *gorm.DB) repository.RegistryRepository {
	return &registryRepository{
		db: db,
	}
}

// CreateItem persists a new registry item.
func (repo *registryRepository) CreateItem(ctx context.Context, item *entity.GiftRegistryItem) error {
	itemM := model.FromGiftEntity(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid event reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create registry item")
	}

	// Update the entity with generated values
	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindItemByID retrieves a registry item by its unique ID.
func (repo *registryRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*entity.GiftRegistryItem, error) {
	var itemM model.GiftRegistryItem

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGiftNotFound
		}

		return nil, errors.Wrap(err, "failed to find registry item by ID")
	}

	return itemM.ToEntity(), nil
}

// ListItems returns registry items ordered by creation time, optionally
// filtered by event and fulfillment.
func (repo *registryRepository) ListItems(ctx context.Context, eventID *uuid.UUID, onlyUnfulfilled bool) ([]*entity.GiftRegistryItem, error) {
	var itemModels []*model.GiftRegistryItem

	query := repo.db.WithContext(ctx).
		Order("created_at ASC")

	if eventID != nil {
		query = query.Where("event_id = ?", *eventID)
	}
	if onlyUnfulfilled {
		query = query.Where("is_fulfilled = ?", false)
	}

	if err := query.Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list registry items")
	}

	items := make([]*entity.GiftRegistryItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, itemM.ToEntity())
	}

	return items, nil
}

// ApplyContribution adds amount to the item's running total and recomputes
// the fulfilled flag in one UPDATE, so concurrent contributions serialize
// on the row lock instead of overwriting each other's read-modify-write.
func (repo *registryRepository) ApplyContribution(ctx context.Context, giftID uuid.UUID, amount float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GiftRegistryItem{}).
		Where("id = ?", giftID).
		Updates(map[string]any{
			"current_amount": gorm.Expr("current_amount + ?", amount),
			"is_fulfilled":   gorm.Expr("current_amount + ? >= target_amount", amount),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to apply contribution")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGiftNotFound
	}

	return nil
}

// UpdateImageURL sets the stored image URL for a registry item.
func (repo *registryRepository) UpdateImageURL(ctx context.Context, giftID uuid.UUID, imageURL string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GiftRegistryItem{}).
		Where("id = ?", giftID).
		Update("image_url", imageURL)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update registry item image")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGiftNotFound
	}

	return nil
}

// DeleteByEvent removes all registry items for an event. Contribution rows
// are left in place as an append-only ledger.
func (repo *registryRepository) DeleteByEvent(ctx context.Context, eventID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Delete(&model.GiftRegistryItem{})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete registry items by event")
	}

	return result.RowsAffected, nil
}

// CountItems returns the total number of registry items.
func (repo *registryRepository) CountItems(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.GiftRegistryItem{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count registry items")
	}

	return count, nil
}

// CreateContribution persists an immutable contribution row.
func (repo *registryRepository) CreateContribution(ctx context.Context, contribution *entity.Contribution) error {
	contributionM := model.FromContributionEntity(contribution)

	if err := repo.db.WithContext(ctx).Create(contributionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid gift or contributor reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contribution")
	}

	// Update the entity with generated values
	contribution.ID = contributionM.ID
	contribution.CreatedAt = contributionM.CreatedAt

	return nil
}

// ListContributions returns contributions for a gift, newest first.
func (repo *registryRepository) ListContributions(ctx context.Context, giftID uuid.UUID) ([]*entity.Contribution, error) {
	var contributionModels []*model.Contribution

	if err := repo.db.WithContext(ctx).
		Preload("Contributor").
		Where("gift_id = ?", giftID).
		Order("created_at DESC").
		Find(&contributionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list contributions")
	}

	contributions := make([]*entity.Contribution, 0, len(contributionModels))
	for _, contributionM := range contributionModels {
		contributions = append(contributions, contributionM.ToEntity())
	}

	return contributions, nil
}
