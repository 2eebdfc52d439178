package usecase

import (
	"context"

	"cumple/internal/domain/entity"
)

// LoginInput defines the data required for an organizer to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the access token after a successful login.
type LoginOutput struct {
	AccessToken string
	Profile     *entity.Profile
}

// AuthUsecase defines the interface for organizer authentication.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}
