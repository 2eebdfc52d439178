package repository

import (
	"context"
	"errors"

	"cumple/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEventNotFound is a domain-specific error returned when an event is not found.
var ErrEventNotFound = errors.New("event not found")

// EventRepository defines the standard operations for event persistence.
type EventRepository interface {
	// Create persists a new event.
	Create(ctx context.Context, event *entity.Event) error

	// FindByID retrieves a single event by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// FindActiveByID retrieves an event only if it is marked active.
	// Inactive events are invisible to guests.
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// List returns all events ordered by event date, newest first.
	List(ctx context.Context) ([]*entity.Event, error)

	// Update persists changes to an existing event.
	Update(ctx context.Context, event *entity.Event) error

	// Delete removes the event row only. Dependent rows are removed by the
	// owning repositories inside the same transaction (see TransactionManager).
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of events.
	Count(ctx context.Context) (int64, error)
}
