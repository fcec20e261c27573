package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("hashes and verifies", func(t *testing.T) {
		hash, err := HashPassword("secret123")
		require.NoError(t, err)
		assert.NotEqual(t, "secret123", hash)

		assert.NoError(t, CheckPassword("secret123", hash))
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		hash, err := HashPassword("secret123")
		require.NoError(t, err)

		assert.Error(t, CheckPassword("wrong", hash))
	})

	t.Run("same password yields different hashes", func(t *testing.T) {
		first, err := HashPassword("secret123")
		require.NoError(t, err)
		second, err := HashPassword("secret123")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}
