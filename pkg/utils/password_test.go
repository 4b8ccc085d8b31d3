package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedco-api/pkg/utils"
)

func TestHashPassword_NotPlaintext(t *testing.T) {
	hash, err := utils.HashPassword("secret123")

	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"), "expected a bcrypt hash, got %q", hash)
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	second, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, utils.CheckPasswordHash("secret123", hash))
	assert.False(t, utils.CheckPasswordHash("wrong-password", hash))
	assert.False(t, utils.CheckPasswordHash("", hash))
}

func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	assert.False(t, utils.CheckPasswordHash("secret123", "not-a-bcrypt-hash"))
}
