package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tokenguess-backend/internal/apperror"
	"github.com/rocketscienceinc/tokenguess-backend/internal/entity"
	"github.com/rocketscienceinc/tokenguess-backend/internal/resolver"
)

func newSession(t *testing.T, id string) *entity.Session {
	t.Helper()

	game, err := entity.StartNew(resolver.Fixed(4), nil)
	require.NoError(t, err)

	return &entity.Session{ID: id, Game: game}
}

func TestSessionRepository_CreateOrUpdate(t *testing.T) {
	ctx := context.Background()
	sessionRepo := NewSessionRepository()

	// Given: a session with ID
	session := newSession(t, "123")

	// When: CreateOrUpdate is called
	err := sessionRepo.CreateOrUpdate(ctx, session)

	// Then: no error should be returned, and session is stored
	require.NoError(t, err)

	stored, err := sessionRepo.GetByID(ctx, "123")
	require.NoError(t, err)
	assert.Same(t, session, stored)
}

func TestSessionRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx := context.Background()
		sessionRepo := NewSessionRepository()

		// Given: a stored session that was replaced
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, newSession(t, "123")))
		replacement := newSession(t, "123")
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, replacement))

		// When: GetByID is called with existing ID
		retrieved, err := sessionRepo.GetByID(ctx, "123")

		// Then: the latest session is returned
		require.NoError(t, err)
		assert.Same(t, replacement, retrieved)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx := context.Background()
		sessionRepo := NewSessionRepository()

		// When: GetByID is called with non-existent ID
		retrieved, err := sessionRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, retrieved)
	})
}

func TestSessionRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx := context.Background()
		sessionRepo := NewSessionRepository()

		// Given: a stored session
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, newSession(t, "123")))

		// When: DeleteByID is called with existing ID
		err := sessionRepo.DeleteByID(ctx, "123")

		// Then: no error should be returned and the session is gone
		require.NoError(t, err)

		_, err = sessionRepo.GetByID(ctx, "123")
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx := context.Background()
		sessionRepo := NewSessionRepository()

		// When: DeleteByID is called with non-existent ID
		err := sessionRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}
