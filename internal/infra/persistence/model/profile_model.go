package model

import (
	"time"

	"cumple/internal/domain/entity"

	"github.com/google/uuid"
)

// Profile maps the profiles table. Every person the system has ever
// addressed, organizer or guest, gets exactly one row keyed by email.
type Profile struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:uuid_generate_v7()"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	Name         string    `gorm:"column:name;not null"`
	Role         string    `gorm:"column:role;not null;default:guest"`
	PasswordHash string    `gorm:"column:password_hash"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for Profile model
func (Profile) TableName() string {
	return "profiles"
}

// ToEntity converts the model to a domain entity
func (p *Profile) ToEntity() *entity.Profile {
	return &entity.Profile{
		ID:           p.ID,
		Email:        p.Email,
		Name:         p.Name,
		Role:         entity.Role(p.Role),
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// FromProfileEntity converts a domain entity to the model
func FromProfileEntity(p *entity.Profile) *Profile {
	return &Profile{
		ID:           p.ID,
		Email:        p.Email,
		Name:         p.Name,
		Role:         p.Role.String(),
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
