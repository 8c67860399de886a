package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("sunshine1")
	require.NoError(t, err)
	require.NotEqual(t, "sunshine1", hash)

	require.True(t, VerifyPassword(hash, "sunshine1"))
	require.False(t, VerifyPassword(hash, "Sunshine1"))
	require.False(t, VerifyPassword("not-a-hash", "sunshine1"))
}

func TestGenerateToken(t *testing.T) {
	first, err := GenerateToken(48)
	require.NoError(t, err)
	second, err := GenerateToken(48)
	require.NoError(t, err)

	require.NotEmpty(t, first)
	require.NotEqual(t, first, second)

	// Zero and negative lengths fall back to a sane default.
	fallback, err := GenerateToken(0)
	require.NoError(t, err)
	require.NotEmpty(t, fallback)
}
