package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cumple/config"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)
	profileID := uuid.New()

	token, err := svc.GenerateAccessToken(profileID, "admin")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, profileID, claims.ProfileID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, profileID.String(), claims.Subject)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateAccessToken(uuid.New(), "guest")
	require.NoError(t, err)

	other := &jwtService{accessSecret: "a-different-secret", accessTTL: svc.accessTTL}
	_, err = other.ValidateToken(token)

	assert.Error(t, err)
}

func TestJWTService_RejectsGarbageToken(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.ValidateToken("not.a.token")

	assert.Error(t, err)
}
