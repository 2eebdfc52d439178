package usecase

import (
	"context"

	"cumple/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ContributeInput defines the data required to record a gift contribution.
type ContributeInput struct {
	GiftID      uuid.UUID
	Email       string
	Name        string
	Amount      float64
	Message     string
	IsAnonymous bool
}

// --- Output DTOs ---

// ContributeOutput returns the recorded contribution and the gift state
// after the amount was applied.
type ContributeOutput struct {
	Contribution *entity.Contribution
	Gift         *entity.GiftRegistryItem
}

// ContributionUsecase defines the interface for the crowdfunding workflow.
type ContributionUsecase interface {
	// Contribute records a contribution and updates the gift's running
	// total atomically: either both happen or neither does.
	Contribute(ctx context.Context, input ContributeInput) (*ContributeOutput, error)

	// ListContributions returns the contribution ledger for a gift.
	ListContributions(ctx context.Context, giftID uuid.UUID) ([]*entity.Contribution, error)
}
