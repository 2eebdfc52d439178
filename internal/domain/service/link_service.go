package service

import "context"

// ActionLinkRequest describes the single-use authentication link to mint.
type ActionLinkRequest struct {
	Email      string // Recipient the link authenticates.
	RedirectTo string // Guest-facing URL the provider redirects to after sign-in.
	Name       string // Display name stored as user metadata on the provider side.
}

// ActionLinkService mints provider-issued single-use invite links. The
// actual authentication protocol is entirely the provider's concern.
type ActionLinkService interface {
	// GenerateInviteLink returns the action link URL for the request.
	GenerateInviteLink(ctx context.Context, req *ActionLinkRequest) (string, error)
}
