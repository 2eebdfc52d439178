package impl

import (
	"context"
	"log/slog"

	deliverycontext "cumple/internal/delivery/context"
	"cumple/internal/domain/entity"
	domainerrors "cumple/internal/domain/errors"
	"cumple/internal/domain/repository"
	"cumple/internal/domain/service"
	"cumple/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	profileRepo  repository.ProfileRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams defines the dependencies for the auth service.
type AuthServiceParams struct {
	fx.In

	ProfileRepo  repository.ProfileRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		profileRepo:  params.ProfileRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates an organizer and returns a signed access token.
// Guests never log in this way; their access rides on invite links.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	profile, err := srv.profileRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load profile for login")
	}

	if profile.Role != entity.RoleAdmin || profile.PasswordHash == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.hasher.Check(input.Password, profile.PasswordHash) {
		srv.log(ctx).Warn("Login rejected",
			slog.String("email", input.Email),
		)

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateAccessToken(profile.ID, profile.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	srv.log(ctx).Info("Organizer logged in",
		slog.String("profile_id", profile.ID.String()),
	)

	return &usecase.LoginOutput{
		AccessToken: token,
		Profile:     profile,
	}, nil
}
