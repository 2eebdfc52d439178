package usecase

import (
	"context"
	"io"

	"cumple/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateGiftInput defines the data required to create a registry item.
type CreateGiftInput struct {
	EventID      uuid.UUID
	Title        string
	Description  string
	TargetAmount float64
	ImageURL     string
}

// UploadGiftImageInput carries an image upload for a registry item.
type UploadGiftImageInput struct {
	GiftID      uuid.UUID
	Filename    string
	ContentType string
	Data        io.Reader
}

// --- Output DTOs ---

// GiftDetail is the contribute-form view of a registry item: the gift, its
// contribution ledger, and the active event it belongs to.
type GiftDetail struct {
	Event         *entity.Event
	Gift          *entity.GiftRegistryItem
	Contributions []*entity.Contribution
}

// RegistryUsecase defines the interface for gift-registry operations.
type RegistryUsecase interface {
	CreateGift(ctx context.Context, input CreateGiftInput) (*entity.GiftRegistryItem, error)

	// ListGifts returns registry items, optionally filtered by event and
	// fulfillment state.
	ListGifts(ctx context.Context, eventID *uuid.UUID, onlyUnfulfilled bool) ([]*entity.GiftRegistryItem, error)

	// GetPublicGift returns a registry item with its contributions for the
	// guest-facing contribute form. The gift is only visible through an
	// active event it belongs to; a missing gift, a missing event or an
	// inactive event all read as not found.
	GetPublicGift(ctx context.Context, eventID, giftID uuid.UUID) (*GiftDetail, error)

	// UploadGiftImage stores the image and records its URL on the item.
	UploadGiftImage(ctx context.Context, input UploadGiftImageInput) (*entity.GiftRegistryItem, error)
}
