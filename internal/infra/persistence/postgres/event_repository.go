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

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// Create persists a new event.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM := model.FromEventEntity(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid organizer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	// Update the entity with generated values
	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// FindByID retrieves an event by its unique ID.
func (repo *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventM model.Event

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by ID")
	}

	return eventM.ToEntity(), nil
}

// FindActiveByID retrieves an event only if it is marked active.
func (repo *eventRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventM model.Event

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find active event by ID")
	}

	return eventM.ToEntity(), nil
}

// List returns all events ordered by event date, newest first.
func (repo *eventRepository) List(ctx context.Context) ([]*entity.Event, error) {
	var eventModels []*model.Event

	if err := repo.db.WithContext(ctx).
		Order("event_date DESC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, eventM.ToEntity())
	}

	return events, nil
}

// Update persists changes to an existing event.
func (repo *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	eventM := model.FromEventEntity(event)

	result := repo.db.WithContext(ctx).
		Model(&model.Event{}).
		Where("id = ?", event.ID).
		// Select forces zero values (cleared description, deactivation)
		// through; a bare Updates would skip them.
		Select("title", "celebrant", "event_date", "venue_name", "address_official",
			"address_google_maps", "address_apple_maps", "description", "is_active",
			"email_subject_es", "email_body_es", "email_subject_en", "email_body_en").
		Updates(eventM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update event")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// Delete removes the event row only. Dependent rows are removed by the
// owning repositories inside the same transaction.
func (repo *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Event{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete event")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// Count returns the total number of events.
func (repo *eventRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.Event{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count events")
	}

	return count, nil
}
