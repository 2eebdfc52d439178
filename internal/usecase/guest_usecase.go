package usecase

import (
	"context"

	"cumple/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddGuestInput defines the data required to add a guest to an event.
type AddGuestInput struct {
	EventID  uuid.UUID
	Email    string
	Name     string
	Language entity.Language
	PlusOnes int
}

// UpdateRSVPInput defines an admin-side RSVP correction on a guest record.
type UpdateRSVPInput struct {
	GuestID      uuid.UUID
	Status       entity.RSVPStatus
	PlusOnes     int
	DietaryNotes string
}

// RespondRSVPInput defines a guest-side response, addressed by event and
// the signed-in guest's email.
type RespondRSVPInput struct {
	EventID      uuid.UUID
	Email        string
	Status       entity.RSVPStatus
	PlusOnes     int
	DietaryNotes string
}

// GuestUsecase defines the interface for guest-list operations.
type GuestUsecase interface {
	// AddGuest resolves the profile by email and links it to the event,
	// both inside one transaction.
	AddGuest(ctx context.Context, input AddGuestInput) (*entity.EventGuest, error)

	// ListGuests returns guest records, optionally filtered by event.
	ListGuests(ctx context.Context, eventID *uuid.UUID) ([]*entity.EventGuest, error)

	// UpdateRSVP applies an admin-side RSVP change to a guest record.
	UpdateRSVP(ctx context.Context, input UpdateRSVPInput) (*entity.EventGuest, error)

	// RespondRSVP applies a guest's own response. The status must be an
	// actual response, not pending.
	RespondRSVP(ctx context.Context, input RespondRSVPInput) (*entity.EventGuest, error)
}
