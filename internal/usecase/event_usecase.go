package usecase

import (
	"context"
	"time"

	"cumple/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateEventInput defines the data required to create an event.
type CreateEventInput struct {
	OrganizerID       uuid.UUID
	Title             string
	Celebrant         entity.Celebrant
	EventDate         time.Time
	VenueName         string
	AddressOfficial   string
	AddressGoogleMaps string
	AddressAppleMaps  string
	Description       string
	EmailSubjectES    string
	EmailBodyES       string
	EmailSubjectEN    string
	EmailBodyEN       string
}

// UpdateEventInput defines the data for updating an event. All fields are
// written as given; callers send the full desired state.
type UpdateEventInput struct {
	ID                uuid.UUID
	Title             string
	Celebrant         entity.Celebrant
	EventDate         time.Time
	VenueName         string
	AddressOfficial   string
	AddressGoogleMaps string
	AddressAppleMaps  string
	Description       string
	IsActive          bool
	EmailSubjectES    string
	EmailBodyES       string
	EmailSubjectEN    string
	EmailBodyEN       string
}

// --- Output DTOs ---

// EventWithCounts pairs an event with its guest-list tallies for admin lists.
type EventWithCounts struct {
	Event          *entity.Event
	GuestCount     int
	ConfirmedCount int
}

// EventDetail is the admin detail page for an event: the event plus its
// guest-list tallies, registry progress and the shareable guest link.
type EventDetail struct {
	Event          *entity.Event
	GuestCount     int
	ConfirmedCount int
	PendingCount   int
	PlusOnesTotal  int
	GiftCount      int
	FulfilledGifts int
	GuestLink      string
}

// DeleteEventOutput reports what the aggregate delete removed.
type DeleteEventOutput struct {
	GuestsRemoved   int64
	GiftsRemoved    int64
	ExpensesRemoved int64
}

// PublicEventView is the guest-facing event page: the event plus its
// still-unfulfilled registry items.
type PublicEventView struct {
	Event *entity.Event
	Gifts []*entity.GiftRegistryItem
}

// EventUsecase defines the interface for event management operations.
type EventUsecase interface {
	CreateEvent(ctx context.Context, input CreateEventInput) (*entity.Event, error)
	ListEvents(ctx context.Context) ([]*EventWithCounts, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// GetEventDetail returns the event with guest-list tallies, registry
	// progress and the link guests use to reach the event page.
	GetEventDetail(ctx context.Context, id uuid.UUID) (*EventDetail, error)
	UpdateEvent(ctx context.Context, input UpdateEventInput) (*entity.Event, error)

	// DeleteEvent removes the event and its guests, registry items, and
	// expenses in one transaction. Contribution rows stay.
	DeleteEvent(ctx context.Context, id uuid.UUID) (*DeleteEventOutput, error)

	// GuestPageQR renders the guest page URL for an event as a PNG QR code.
	GuestPageQR(ctx context.Context, id uuid.UUID) ([]byte, error)

	// GetPublicEvent returns the guest-facing view of an active event.
	// Inactive events are not found.
	GetPublicEvent(ctx context.Context, id uuid.UUID) (*PublicEventView, error)
}
