package entity

import (
	"time"

	"github.com/google/uuid"
)

// Supplier is an independent vendor record (catering, venue, music)
// optionally referenced by expenses.
type Supplier struct {
	ID           uuid.UUID
	Name         string
	Category     string
	ContactName  string
	ContactEmail string
	ContactPhone string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
