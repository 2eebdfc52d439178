package model

import (
	"time"

	"cumple/internal/domain/entity"

	"github.com/google/uuid"
)

// Event maps the events table.
type Event struct {
	ID                uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:uuid_generate_v7()"`
	OrganizerID       uuid.UUID `gorm:"column:organizer_id;type:uuid;not null;index"`
	Title             string    `gorm:"column:title;not null"`
	Celebrant         string    `gorm:"column:celebrant;not null"`
	EventDate         time.Time `gorm:"column:event_date;not null"`
	VenueName         string    `gorm:"column:venue_name"`
	AddressOfficial   string    `gorm:"column:address_official"`
	AddressGoogleMaps string    `gorm:"column:address_google_maps"`
	AddressAppleMaps  string    `gorm:"column:address_apple_maps"`
	Description       string    `gorm:"column:description"`
	IsActive          bool      `gorm:"column:is_active;not null;default:true"`
	EmailSubjectES    string    `gorm:"column:email_subject_es"`
	EmailBodyES       string    `gorm:"column:email_body_es"`
	EmailSubjectEN    string    `gorm:"column:email_subject_en"`
	EmailBodyEN       string    `gorm:"column:email_body_en"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for Event model
func (Event) TableName() string {
	return "events"
}

// ToEntity converts the model to a domain entity
func (e *Event) ToEntity() *entity.Event {
	return &entity.Event{
		ID:                e.ID,
		OrganizerID:       e.OrganizerID,
		Title:             e.Title,
		Celebrant:         entity.Celebrant(e.Celebrant),
		EventDate:         e.EventDate,
		VenueName:         e.VenueName,
		AddressOfficial:   e.AddressOfficial,
		AddressGoogleMaps: e.AddressGoogleMaps,
		AddressAppleMaps:  e.AddressAppleMaps,
		Description:       e.Description,
		IsActive:          e.IsActive,
		EmailSubjectES:    e.EmailSubjectES,
		EmailBodyES:       e.EmailBodyES,
		EmailSubjectEN:    e.EmailSubjectEN,
		EmailBodyEN:       e.EmailBodyEN,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

// FromEventEntity converts a domain entity to the model
func FromEventEntity(e *entity.Event) *Event {
	return &Event{
		ID:                e.ID,
		OrganizerID:       e.OrganizerID,
		Title:             e.Title,
		Celebrant:         string(e.Celebrant),
		EventDate:         e.EventDate,
		VenueName:         e.VenueName,
		AddressOfficial:   e.AddressOfficial,
		AddressGoogleMaps: e.AddressGoogleMaps,
		AddressAppleMaps:  e.AddressAppleMaps,
		Description:       e.Description,
		IsActive:          e.IsActive,
		EmailSubjectES:    e.EmailSubjectES,
		EmailBodyES:       e.EmailBodyES,
		EmailSubjectEN:    e.EmailSubjectEN,
		EmailBodyEN:       e.EmailBodyEN,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}
