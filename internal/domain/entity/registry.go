package entity

import (
	"time"

	"github.com/google/uuid"
)

// GiftRegistryItem is a crowdfunded gift goal with a target and a running
// collected amount. IsFulfilled is derived from the amounts and is
// recomputed in the same statement that increments CurrentAmount, never
// accepted from a client.
type GiftRegistryItem struct {
	ID            uuid.UUID
	EventID       uuid.UUID
	Title         string
	Description   string
	TargetAmount  float64 // Euros, >= 0.
	CurrentAmount float64 // Euros, >= 0, monotonically non-decreasing.
	IsFulfilled   bool
	ImageURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Remaining returns the amount still needed to reach the target, never
// negative.
func (g *GiftRegistryItem) Remaining() float64 {
	if g.CurrentAmount >= g.TargetAmount {
		return 0
	}

	return g.TargetAmount - g.CurrentAmount
}

// Contribution is an immutable pledge against a registry item. Rows are
// append-only: they are never updated or deleted, even when the parent
// event is removed.
type Contribution struct {
	ID            uuid.UUID
	GiftID        uuid.UUID
	ContributorID uuid.UUID
	Amount        float64 // Euros, > 0.
	Message       string
	IsAnonymous   bool
	CreatedAt     time.Time

	Contributor *Profile // Preloaded for admin views; nil otherwise.
}
