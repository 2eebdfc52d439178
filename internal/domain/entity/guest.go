package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventGuest represents one invitation: the link between an event and a
// profile, together with the RSVP state.
type EventGuest struct {
	ID           uuid.UUID
	EventID      uuid.UUID
	ProfileID    uuid.UUID
	Status       RSVPStatus
	PlusOnes     int // Additional companions, never negative.
	DietaryNotes string
	Language     Language   // Template language used for this guest's invitation.
	RespondedAt  *time.Time // Set when the guest confirms or declines.
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Profile *Profile // Preloaded for list views; nil otherwise.
}

// RSVPStatus is the guest's confirmation state for an event.
type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPConfirmed RSVPStatus = "confirmed"
	RSVPDeclined  RSVPStatus = "declined"
)

// String returns the string representation of the RSVPStatus.
func (s RSVPStatus) String() string {
	return string(s)
}

// IsValid checks if the RSVPStatus is a valid value.
func (s RSVPStatus) IsValid() bool {
	switch s {
	case RSVPPending, RSVPConfirmed, RSVPDeclined:
		return true
	default:
		return false
	}
}

// IsResponse reports whether the status is an actual guest answer, as
// opposed to the initial pending state.
func (s RSVPStatus) IsResponse() bool {
	return s == RSVPConfirmed || s == RSVPDeclined
}
