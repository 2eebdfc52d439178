package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	hash, err := hasher.Hash("super-secret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, hasher.Check("super-secret", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_CheckRejectsMalformedHash(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	assert.False(t, hasher.Check("anything", "not-a-bcrypt-hash"))
}
