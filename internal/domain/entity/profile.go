// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the core person record shared by organizers, guests and
// contributors. Guests and contributors are created lazily on first
// interaction, keyed by email.
type Profile struct {
	ID           uuid.UUID // Global unique identifier for the person.
	Email        string    // Primary contact email, the lookup key for lazy creation.
	Name         string    // Display name used in invitations and contribution lists.
	Role         Role      // Either admin (organizer) or guest.
	PasswordHash string    // Bcrypt hash; set only for admin profiles that can sign in.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Role represents the kind of access a profile has in the system.
type Role string

const (
	// RoleAdmin indicates an organizer who manages events.
	RoleAdmin Role = "admin"
	// RoleGuest indicates an invited guest or contributor.
	RoleGuest Role = "guest"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleGuest:
		return true
	default:
		return false
	}
}
