package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_EmbedsSalt(t *testing.T) {
	first, err := HashPassword("pw12345")
	require.NoError(t, err)

	second, err := HashPassword("pw12345")
	require.NoError(t, err)

	// a fresh salt per call makes hashes of the same password differ
	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "$2"))
}

func TestVerifyPassword_Match(t *testing.T) {
	hash, err := HashPassword("pw12345")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("pw12345", hash))
}

func TestVerifyPassword_NoMatch(t *testing.T) {
	hash, err := HashPassword("pw12345")
	require.NoError(t, err)

	assert.False(t, VerifyPassword("wrong-password", hash))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	assert.False(t, VerifyPassword("pw12345", "not-a-bcrypt-hash"))
}
