package model

import (
	"time"

	"cumple/internal/domain/entity"

	"github.com/google/uuid"
)

// Supplier maps the suppliers table.
type Supplier struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:uuid_generate_v7()"`
	Name         string    `gorm:"column:name;not null"`
	Category     string    `gorm:"column:category"`
	ContactName  string    `gorm:"column:contact_name"`
	ContactPhone string    `gorm:"column:contact_phone"`
	ContactEmail string    `gorm:"column:contact_email"`
	Notes        string    `gorm:"column:notes"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}

// ToEntity converts the model to a domain entity
func (s *Supplier) ToEntity() *entity.Supplier {
	return &entity.Supplier{
		ID:           s.ID,
		Name:         s.Name,
		Category:     s.Category,
		ContactName:  s.ContactName,
		ContactPhone: s.ContactPhone,
		ContactEmail: s.ContactEmail,
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// FromSupplierEntity converts a domain entity to the model
func FromSupplierEntity(s *entity.Supplier) *Supplier {
	return &Supplier{
		ID:           s.ID,
		Name:         s.Name,
		Category:     s.Category,
		ContactName:  s.ContactName,
		ContactPhone: s.ContactPhone,
		ContactEmail: s.ContactEmail,
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
