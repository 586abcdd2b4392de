package bcrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	b := NewWithCost(4)

	hash, err := b.HashPassword("secret-password")
	require.NoError(t, err)

	assert.NotEqual(t, "secret-password", hash)
	assert.NotEmpty(t, hash)
}

func TestHashPasswordProducesDistinctHashes(t *testing.T) {
	b := NewWithCost(4)

	first, err := b.HashPassword("secret-password")
	require.NoError(t, err)

	second, err := b.HashPassword("secret-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestComparePassword(t *testing.T) {
	b := NewWithCost(4)

	hash, err := b.HashPassword("secret-password")
	require.NoError(t, err)

	assert.NoError(t, b.ComparePassword(hash, "secret-password"))
	assert.Error(t, b.ComparePassword(hash, "wrong-password"))
}
