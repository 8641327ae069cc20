package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tokenguess-backend/internal/entity"
)

func TestRandom_Resolve(t *testing.T) {
	t.Run("Stays on the board", func(t *testing.T) {
		// Given: a seeded resolver
		resolver := NewRandom(42)
		seen := make(map[int]bool)

		// When: many tokens are resolved
		for i := 0; i < 1000; i++ {
			token, err := resolver.Resolve()
			require.NoError(t, err)

			// Then: each token is on the board
			require.GreaterOrEqual(t, token, 1)
			require.LessOrEqual(t, token, entity.BoardTokens)
			seen[token] = true
		}

		// Then: every position is reachable
		assert.Len(t, seen, entity.BoardTokens)
	})

	t.Run("Same seed gives same sequence", func(t *testing.T) {
		// Given: two resolvers with the same seed
		first := NewRandom(7)
		second := NewRandom(7)

		for i := 0; i < 50; i++ {
			// When: both resolve
			a, err := first.Resolve()
			require.NoError(t, err)
			b, err := second.Resolve()
			require.NoError(t, err)

			// Then: they agree
			require.Equal(t, a, b)
		}
	})

	t.Run("Zero seed still works", func(t *testing.T) {
		// When: a time seeded resolver resolves
		token, err := NewRandom(0).Resolve()

		// Then: the token is on the board
		require.NoError(t, err)
		assert.True(t, token >= 1 && token <= entity.BoardTokens)
	})
}

func TestFixed_Resolve(t *testing.T) {
	// When: a fixed resolver resolves
	token, err := Fixed(13).Resolve()

	// Then: its value is returned
	require.NoError(t, err)
	assert.Equal(t, 13, token)
}
