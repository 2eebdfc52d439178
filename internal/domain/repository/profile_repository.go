// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cumple/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is a domain-specific error returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the standard operations for profile persistence.
type ProfileRepository interface {
	// FindByID retrieves a single profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByEmail retrieves a single profile by email address.
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// Resolve returns the profile for the given email, creating it with the
	// supplied name and role when absent. The implementation must be an
	// upsert on the unique email column so concurrent resolutions of the
	// same address cannot race into duplicate rows.
	Resolve(ctx context.Context, email, name string, role entity.Role) (*entity.Profile, error)
}
