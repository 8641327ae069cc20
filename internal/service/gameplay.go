package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tokenguess-backend/internal/apperror"
	"github.com/rocketscienceinc/tokenguess-backend/internal/entity"
)

type GamePlayService interface {
	StartGame(ctx context.Context) (*entity.Session, error)
	EndGame(ctx context.Context, sessionID string) error

	Guess(ctx context.Context, sessionID string, tokenPosition int) (entity.Snapshot, error)
	GetState(ctx context.Context, sessionID string) (entity.Snapshot, error)
}

// RunnableTimer is a timer that can drive itself until ctx is done.
type RunnableTimer interface {
	entity.Timer
	Run(ctx context.Context)
}

// TimerFactory builds one timer per game. A nil factory starts games without a time limit.
type TimerFactory func() RunnableTimer

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type gamePlayService struct {
	logger *slog.Logger

	resolver    entity.WinningTokenResolver
	newTimer    TimerFactory
	sessionRepo sessionRepo
}

func NewGamePlayService(logger *slog.Logger, resolver entity.WinningTokenResolver, newTimer TimerFactory, sessionRepo sessionRepo) GamePlayService {
	return &gamePlayService{
		logger:      logger,
		resolver:    resolver,
		newTimer:    newTimer,
		sessionRepo: sessionRepo,
	}
}

// StartGame creates a session. Its timer runs until it expires, is stopped, or ctx is done.
func (that *gamePlayService) StartGame(ctx context.Context) (*entity.Session, error) {
	sessionID := uuid.NewString()
	log := that.logger.With("method", "StartGame", "sessionID", sessionID)

	var timer RunnableTimer
	var gameTimer entity.Timer
	if that.newTimer != nil {
		timer = that.newTimer()
		gameTimer = timer
	}

	game, err := entity.StartNew(that.resolver, gameTimer)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	session := &entity.Session{
		ID:        sessionID,
		Game:      game,
		Timer:     gameTimer,
		StartedAt: time.Now(),
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		if timer != nil {
			timer.Stop()
		}

		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	if timer != nil {
		timer.Register(timeoutLogger{logger: log})
		go timer.Run(ctx)
	}

	log.Info("game started", "timeLimit", entity.TimeLimit, "withTimer", timer != nil)

	return session, nil
}

func (that *gamePlayService) Guess(ctx context.Context, sessionID string, tokenPosition int) (entity.Snapshot, error) {
	log := that.logger.With("method", "Guess", "sessionID", sessionID)

	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to get session by id: %w", err)
	}

	if err = session.Game.Guess(tokenPosition); err != nil {
		snapshot := session.Game.Snapshot()

		if errors.Is(err, apperror.ErrGameAlreadyEnded) {
			that.cleanupSession(ctx, session)
		}

		return snapshot, fmt.Errorf("failed to make guess: %w", err)
	}

	snapshot := session.Game.Snapshot()
	if snapshot.State.IsTerminal() {
		log.Info("game finished", "state", snapshot.State, "attempts", len(snapshot.Guesses))
		that.cleanupSession(ctx, session)
	}

	return snapshot, nil
}

func (that *gamePlayService) GetState(ctx context.Context, sessionID string) (entity.Snapshot, error) {
	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to get session by id: %w", err)
	}

	return session.Game.Snapshot(), nil
}

// EndGame abandons a session and stops its timer.
func (that *gamePlayService) EndGame(ctx context.Context, sessionID string) error {
	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session by id: %w", err)
	}

	if session.Timer != nil {
		session.Timer.Stop()
	}

	if err = that.sessionRepo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("game abandoned", "method", "EndGame", "sessionID", sessionID, "state", session.Game.State())

	return nil
}

// cleanupSession drops a finished session. Failures are only logged.
func (that *gamePlayService) cleanupSession(ctx context.Context, session *entity.Session) {
	log := that.logger.With("method", "cleanupSession", "sessionID", session.ID)

	if err := that.sessionRepo.DeleteByID(ctx, session.ID); err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
		log.Error("failed to delete session", "error", err)
	}
}

type timeoutLogger struct {
	logger *slog.Logger
}

func (that timeoutLogger) Timeout() {
	that.logger.Info("game timed out")
}
