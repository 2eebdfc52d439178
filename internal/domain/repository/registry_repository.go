package repository

import (
	"context"
	"errors"

	"cumple/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrGiftNotFound is a domain-specific error returned when a registry item is not found.
var ErrGiftNotFound = errors.New("gift not found")

// RegistryRepository defines the operations for gift-registry persistence,
// covering both registry items and their contribution ledger.
type RegistryRepository interface {
	// CreateItem persists a new registry item.
	CreateItem(ctx context.Context, item *entity.GiftRegistryItem) error

	// FindItemByID retrieves a registry item by its unique ID.
	FindItemByID(ctx context.Context, id uuid.UUID) (*entity.GiftRegistryItem, error)

	// ListItems returns registry items ordered by creation time, optionally
	// filtered by event. When onlyUnfulfilled is true, fulfilled items are
	// excluded (the guest-facing view).
	ListItems(ctx context.Context, eventID *uuid.UUID, onlyUnfulfilled bool) ([]*entity.GiftRegistryItem, error)

	// ApplyContribution atomically adds amount to the item's running total
	// and recomputes the fulfilled flag in the same statement:
	//
	//   current_amount = current_amount + amount
	//   is_fulfilled   = current_amount + amount >= target_amount
	//
	// Returns ErrGiftNotFound when no row matches.
	ApplyContribution(ctx context.Context, giftID uuid.UUID, amount float64) error

	// UpdateImageURL sets the stored image URL for a registry item.
	UpdateImageURL(ctx context.Context, giftID uuid.UUID, imageURL string) error

	// DeleteByEvent removes all registry items for an event and returns the
	// number of rows removed. Contribution rows are kept: they are an
	// append-only ledger.
	DeleteByEvent(ctx context.Context, eventID uuid.UUID) (int64, error)

	// CountItems returns the total number of registry items.
	CountItems(ctx context.Context) (int64, error)

	// CreateContribution persists an immutable contribution row.
	CreateContribution(ctx context.Context, contribution *entity.Contribution) error

	// ListContributions returns contributions for a gift, newest first,
	// with contributor profiles preloaded.
	ListContributions(ctx context.Context, giftID uuid.UUID) ([]*entity.Contribution, error)
}
