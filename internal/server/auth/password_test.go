package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_VerifiesAndIsSalted(t *testing.T) {
	h1, err := HashPassword("p", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("p", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "p", h1)
	assert.NotEqual(t, h1, h2, "same password must produce different hashes")
	assert.True(t, CheckPassword("p", h1))
	assert.True(t, CheckPassword("p", h2))
	assert.False(t, CheckPassword("wrong", h1))
}

func TestHashPassword_InvalidCostFallsBack(t *testing.T) {
	h, err := HashPassword("p", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(h))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("x", 100), bcrypt.MinCost)
	assert.Error(t, err)
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	assert.False(t, CheckPassword("p", "not-a-bcrypt-hash"))
}
