package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tokenguess-backend/internal/apperror"
	"github.com/rocketscienceinc/tokenguess-backend/internal/entity"
	"github.com/rocketscienceinc/tokenguess-backend/internal/repository"
	"github.com/rocketscienceinc/tokenguess-backend/internal/resolver"
	"github.com/rocketscienceinc/tokenguess-backend/internal/timer"
	mockedEntity "github.com/rocketscienceinc/tokenguess-backend/mocks/entity"
)

var (
	errStorageIsFull = errors.New("storage is full")
	errResolverDown  = errors.New("resolver down")
)

type fullSessionRepo struct {
	repository.SessionRepository
}

func (fullSessionRepo) CreateOrUpdate(context.Context, *entity.Session) error {
	return errStorageIsFull
}

type testService struct {
	GamePlayService
	countdowns []*timer.Countdown
}

// newTestService - a service with a fixed winning token whose countdowns only advance on Tic.
func newTestService(t *testing.T, winningToken int) (context.Context, *testService) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	svc := &testService{}

	newTimer := func() RunnableTimer {
		countdown := timer.NewCountdown(entity.TimeLimit)
		svc.countdowns = append(svc.countdowns, countdown)
		return countdown
	}

	svc.GamePlayService = NewGamePlayService(logger, resolver.Fixed(winningToken), newTimer, repository.NewSessionRepository())

	return ctx, svc
}

func TestGamePlayService_StartGame(t *testing.T) {
	t.Run("Starts a running game with a timer", func(t *testing.T) {
		ctx, svc := newTestService(t, 5)

		// When: a game is started
		session, err := svc.StartGame(ctx)

		// Then: the session is stored with a running countdown
		require.NoError(t, err)
		_, err = uuid.Parse(session.ID)
		require.NoError(t, err)
		require.Len(t, svc.countdowns, 1)
		assert.True(t, svc.countdowns[0].Running())
		assert.Equal(t, entity.TimeLimit, svc.countdowns[0].Remaining())

		snapshot, err := svc.GetState(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StateContinues, snapshot.State)
		assert.Equal(t, entity.MaxAttempts, snapshot.AttemptsLeft)
	})

	t.Run("Starts without timer when no factory is given", func(t *testing.T) {
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		svc := NewGamePlayService(logger, resolver.Fixed(5), nil, repository.NewSessionRepository())

		// When: a game is started
		session, err := svc.StartGame(context.Background())

		// Then: the session has no timer
		require.NoError(t, err)
		assert.Nil(t, session.Timer)
	})

	t.Run("Returns error when resolver fails", func(t *testing.T) {
		// Given: a failing resolver
		tokenResolver := mockedEntity.NewMockWinningTokenResolver(t)
		tokenResolver.EXPECT().Resolve().Return(0, errResolverDown).Once()

		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		svc := NewGamePlayService(logger, tokenResolver, nil, repository.NewSessionRepository())

		// When: a game is started
		session, err := svc.StartGame(context.Background())

		// Then: the error is returned
		require.ErrorIs(t, err, errResolverDown)
		assert.Nil(t, session)
	})

	t.Run("Stops timer when session cannot be saved", func(t *testing.T) {
		// Given: a repository that rejects writes
		var countdown *timer.Countdown
		newTimer := func() RunnableTimer {
			countdown = timer.NewCountdown(time.Second)
			return countdown
		}

		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		svc := NewGamePlayService(logger, resolver.Fixed(5), newTimer, fullSessionRepo{})

		// When: a game is started
		session, err := svc.StartGame(context.Background())

		// Then: the error is returned and the timer is stopped
		require.ErrorIs(t, err, errStorageIsFull)
		assert.Nil(t, session)
		assert.False(t, countdown.Running())
	})
}

func TestGamePlayService_Guess(t *testing.T) {
	t.Run("Miss keeps the session", func(t *testing.T) {
		ctx, svc := newTestService(t, 5)
		session, err := svc.StartGame(ctx)
		require.NoError(t, err)

		// When: a miss is guessed
		snapshot, err := svc.Guess(ctx, session.ID, 3)

		// Then: the game continues
		require.NoError(t, err)
		assert.Equal(t, entity.StateContinues, snapshot.State)
		assert.Equal(t, []int{3}, snapshot.Guesses)
		assert.Zero(t, snapshot.WinningToken)
	})

	t.Run("Win stops the timer and removes the session", func(t *testing.T) {
		ctx, svc := newTestService(t, 5)
		session, err := svc.StartGame(ctx)
		require.NoError(t, err)

		// When: the winning token is guessed
		snapshot, err := svc.Guess(ctx, session.ID, 5)

		// Then: the game is won and cleaned up
		require.NoError(t, err)
		assert.Equal(t, entity.StateWon, snapshot.State)
		assert.Equal(t, 5, snapshot.WinningToken)
		assert.False(t, svc.countdowns[0].Running())

		_, err = svc.GetState(ctx, session.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Loss reveals the winning token", func(t *testing.T) {
		ctx, svc := newTestService(t, 10)
		session, err := svc.StartGame(ctx)
		require.NoError(t, err)

		// When: five misses are guessed
		var snapshot entity.Snapshot
		for _, token := range []int{17, 3, 6, 18, 11} {
			snapshot, err = svc.Guess(ctx, session.ID, token)
			require.NoError(t, err)
		}

		// Then: the game is lost
		assert.Equal(t, entity.StateLost, snapshot.State)
		assert.Equal(t, 10, snapshot.WinningToken)
	})

	t.Run("Rejected guess is reported with the current state", func(t *testing.T) {
		ctx, svc := newTestService(t, 5)
		session, err := svc.StartGame(ctx)
		require.NoError(t, err)
		_, err = svc.Guess(ctx, session.ID, 3)
		require.NoError(t, err)

		// When: the same token is guessed again
		snapshot, err := svc.Guess(ctx, session.ID, 3)

		// Then: ErrAlreadyGuessed is returned and the session survives
		require.ErrorIs(t, err, apperror.ErrAlreadyGuessed)
		assert.Equal(t, []int{3}, snapshot.Guesses)

		_, err = svc.GetState(ctx, session.ID)
		require.NoError(t, err)
	})

	t.Run("Timed out game is cleaned up on next guess", func(t *testing.T) {
		ctx, svc := newTestService(t, 5)
		session, err := svc.StartGame(ctx)
		require.NoError(t, err)

		// Given: the time limit has elapsed
		svc.countdowns[0].Tic()

		snapshot, err := svc.GetState(ctx, session.ID)
		require.NoError(t, err)
		require.Equal(t, entity.StateTimeout, snapshot.State)

		// When: a guess is made
		snapshot, err = svc.Guess(ctx, session.ID, 5)

		// Then: ErrGameAlreadyEnded is returned and the session is removed
		require.ErrorIs(t, err, apperror.ErrGameAlreadyEnded)
		assert.Equal(t, entity.StateTimeout, snapshot.State)

		_, err = svc.GetState(ctx, session.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Unknown session", func(t *testing.T) {
		ctx, svc := newTestService(t, 5)

		// When: a guess is made for an unknown session
		_, err := svc.Guess(ctx, "missing", 5)

		// Then: ErrGameNotFound is returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGamePlayService_EndGame(t *testing.T) {
	t.Run("Stops timer and removes session", func(t *testing.T) {
		ctx, svc := newTestService(t, 5)
		session, err := svc.StartGame(ctx)
		require.NoError(t, err)

		// When: the game is abandoned
		err = svc.EndGame(ctx, session.ID)

		// Then: the countdown is stopped and the session is gone
		require.NoError(t, err)
		assert.False(t, svc.countdowns[0].Running())

		_, err = svc.GetState(ctx, session.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Unknown session", func(t *testing.T) {
		ctx, svc := newTestService(t, 5)

		// When: an unknown session is ended
		err := svc.EndGame(ctx, "missing")

		// Then: ErrGameNotFound is returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}
