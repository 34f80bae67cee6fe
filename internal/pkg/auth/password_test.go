package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("strongpass123")
	require.NoError(t, err)
	assert.NotEqual(t, "strongpass123", hash)

	assert.True(t, CheckPassword(hash, "strongpass123"))
	assert.False(t, CheckPassword(hash, "wrongpass123"))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("strongpass123")
	require.NoError(t, err)
	second, err := HashPassword("strongpass123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
