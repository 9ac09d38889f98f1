package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$04$"), hash)
	assert.True(t, h.Verify("correct horse", hash))
	assert.False(t, h.Verify("correct horsf", hash))
	assert.False(t, h.Verify("correct horse", "not-a-hash"))

	again, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes must be salted")
}

func TestBcryptHasherRejectsLongPasswords(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	exact := strings.Repeat("a", MaxPasswordBytes)

	hash, err := h.Hash(exact)
	require.NoError(t, err)
	assert.True(t, h.Verify(exact, hash))

	_, err = h.Hash(exact + "b")
	assert.ErrorIs(t, err, ErrPasswordTooLong)
	// no silent truncation: the 73-byte input must not match the 72-byte hash
	assert.False(t, h.Verify(exact+"b", hash))
}

func TestNewBcryptHasherDefaultsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).Cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).Cost)
	assert.Equal(t, 12, NewBcryptHasher(12).Cost)
}
