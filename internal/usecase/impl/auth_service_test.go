package impl

import (
	"context"
	"testing"

	"cumple/internal/domain/entity"
	domainerrors "cumple/internal/domain/errors"
	"cumple/internal/domain/repository"
	mockRepo "cumple/internal/mocks/repository"
	mockSvc "cumple/internal/mocks/service"
	"cumple/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAuthService(t *testing.T) (
	usecase.AuthUsecase,
	*mockRepo.MockProfileRepository,
	*mockSvc.MockPasswordHasher,
	*mockSvc.MockTokenService,
) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		ProfileRepo:  profileRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return svc, profileRepo, hasher, tokenService
}

func newAdminProfile() *entity.Profile {
	return &entity.Profile{
		ID:           uuid.New(),
		Email:        "cova@example.com",
		Name:         "Cova",
		Role:         entity.RoleAdmin,
		PasswordHash: "$2a$12$hash",
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, profileRepo, hasher, tokenService := createTestAuthService(t)

	ctx := context.Background()
	profile := newAdminProfile()

	profileRepo.EXPECT().FindByEmail(ctx, profile.Email).Return(profile, nil)
	hasher.EXPECT().Check("secret", profile.PasswordHash).Return(true)
	tokenService.EXPECT().GenerateAccessToken(profile.ID, "admin").Return("signed.jwt.token", nil)

	output, err := svc.Login(ctx, usecase.LoginInput{Email: profile.Email, Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, profile, output.Profile)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, profileRepo, _, _ := createTestAuthService(t)

	ctx := context.Background()

	profileRepo.EXPECT().FindByEmail(ctx, "nadie@example.com").Return(nil, repository.ErrProfileNotFound)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "nadie@example.com", Password: "secret"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_GuestRoleRejected(t *testing.T) {
	svc, profileRepo, _, _ := createTestAuthService(t)

	ctx := context.Background()
	profile := newAdminProfile()
	profile.Role = entity.RoleGuest

	profileRepo.EXPECT().FindByEmail(ctx, profile.Email).Return(profile, nil)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: profile.Email, Password: "secret"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, profileRepo, hasher, _ := createTestAuthService(t)

	ctx := context.Background()
	profile := newAdminProfile()

	profileRepo.EXPECT().FindByEmail(ctx, profile.Email).Return(profile, nil)
	hasher.EXPECT().Check("wrong", profile.PasswordHash).Return(false)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: profile.Email, Password: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_EmptyPasswordHashRejected(t *testing.T) {
	svc, profileRepo, _, _ := createTestAuthService(t)

	ctx := context.Background()
	profile := newAdminProfile()
	profile.PasswordHash = ""

	profileRepo.EXPECT().FindByEmail(ctx, profile.Email).Return(profile, nil)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: profile.Email, Password: "secret"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
