// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cumple/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SendInvitationInput defines the data required to invite one guest.
type SendInvitationInput struct {
	Email    string
	Name     string
	EventID  uuid.UUID
	Language entity.Language
}

// --- Output DTOs ---

// SendInvitationOutput confirms a delivered invitation.
type SendInvitationOutput struct {
	Message string
}

// InvitationUsecase defines the interface for the invitation workflow:
// resolve the guest, mint a sign-in link, render the template, and deliver
// the email.
type InvitationUsecase interface {
	SendInvitation(ctx context.Context, input SendInvitationInput) (*SendInvitationOutput, error)
}
