package repository

import (
	"context"
	"errors"
	"time"

	"cumple/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrGuestNotFound is a domain-specific error returned when a guest record is not found.
var ErrGuestNotFound = errors.New("guest not found")

// GuestRepository defines the standard operations for event-guest persistence.
type GuestRepository interface {
	// Create persists a new guest record for an event.
	Create(ctx context.Context, guest *entity.EventGuest) error

	// FindByID retrieves a guest record with its profile preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.EventGuest, error)

	// FindByEventAndProfile retrieves the guest record linking a profile to
	// an event, used by the guest-side RSVP flow.
	FindByEventAndProfile(ctx context.Context, eventID, profileID uuid.UUID) (*entity.EventGuest, error)

	// List returns guest records with profiles preloaded, optionally
	// filtered by event when eventID is non-nil.
	List(ctx context.Context, eventID *uuid.UUID) ([]*entity.EventGuest, error)

	// UpdateRSVP sets the RSVP fields and response timestamp on a guest record.
	UpdateRSVP(ctx context.Context, id uuid.UUID, status entity.RSVPStatus, plusOnes int, dietaryNotes string, respondedAt time.Time) error

	// DeleteByEvent removes all guest records for an event and returns the
	// number of rows removed.
	DeleteByEvent(ctx context.Context, eventID uuid.UUID) (int64, error)

	// Count returns the total number of guest records.
	Count(ctx context.Context) (int64, error)

	// CountByStatus returns the number of guest records with the given status.
	CountByStatus(ctx context.Context, status entity.RSVPStatus) (int64, error)
}
