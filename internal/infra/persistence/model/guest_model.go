package model

import (
	"time"

	"cumple/internal/domain/entity"

	"github.com/google/uuid"
)

// EventGuest maps the event_guests table. One row per invited person per
// event, unique on (event_id, profile_id).
type EventGuest struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:uuid_generate_v7()"`
	EventID      uuid.UUID  `gorm:"column:event_id;type:uuid;not null;uniqueIndex:idx_event_profile"`
	ProfileID    uuid.UUID  `gorm:"column:profile_id;type:uuid;not null;uniqueIndex:idx_event_profile"`
	Status       string     `gorm:"column:status;not null;default:pending"`
	PlusOnes     int        `gorm:"column:plus_ones;not null;default:0"`
	DietaryNotes string     `gorm:"column:dietary_notes"`
	Language     string     `gorm:"column:language;not null;default:es"`
	RespondedAt  *time.Time `gorm:"column:responded_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	Profile *Profile `gorm:"foreignKey:ProfileID;references:ID"`
}

// TableName specifies the table name for EventGuest model
func (EventGuest) TableName() string {
	return "event_guests"
}

// ToEntity converts the model to a domain entity
func (g *EventGuest) ToEntity() *entity.EventGuest {
	guest := &entity.EventGuest{
		ID:           g.ID,
		EventID:      g.EventID,
		ProfileID:    g.ProfileID,
		Status:       entity.RSVPStatus(g.Status),
		PlusOnes:     g.PlusOnes,
		DietaryNotes: g.DietaryNotes,
		Language:     entity.Language(g.Language),
		RespondedAt:  g.RespondedAt,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
	if g.Profile != nil {
		guest.Profile = g.Profile.ToEntity()
	}

	return guest
}

// FromGuestEntity converts a domain entity to the model
func FromGuestEntity(g *entity.EventGuest) *EventGuest {
	return &EventGuest{
		ID:           g.ID,
		EventID:      g.EventID,
		ProfileID:    g.ProfileID,
		Status:       string(g.Status),
		PlusOnes:     g.PlusOnes,
		DietaryNotes: g.DietaryNotes,
		Language:     string(g.Language),
		RespondedAt:  g.RespondedAt,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}
