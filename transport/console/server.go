package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tokenguess-backend/internal/apperror"
	"github.com/rocketscienceinc/tokenguess-backend/internal/entity"
)

const prompt = "> "

type gamePlay interface {
	StartGame(ctx context.Context) (*entity.Session, error)
	EndGame(ctx context.Context, sessionID string) error

	Guess(ctx context.Context, sessionID string, tokenPosition int) (entity.Snapshot, error)
	GetState(ctx context.Context, sessionID string) (entity.Snapshot, error)
}

// Server plays one game at a time with a single player over a line based text stream.
type Server struct {
	logger   *slog.Logger
	gamePlay gamePlay

	handlers map[string]func(ctx context.Context, msg *Message, writer io.Writer) error

	sessionID string
}

func New(logger *slog.Logger, gamePlay gamePlay) *Server {
	server := &Server{
		logger:   logger.With("component", "console"),
		gamePlay: gamePlay,

		handlers: make(map[string]func(context.Context, *Message, io.Writer) error),
	}

	server.handlers[actionNew] = server.handleNewGame
	server.handlers[actionGuess] = server.handleGuess
	server.handlers[actionState] = server.handleState
	server.handlers[actionHelp] = server.handleHelp

	return server
}

// Serve reads commands until quit, end of input or ctx is done.
func (that *Server) Serve(ctx context.Context, reader io.Reader, writer io.Writer) error {
	log := that.logger.With("method", "Serve")

	defer that.endSession(ctx)

	if err := that.handleHelp(ctx, &Message{}, writer); err != nil {
		return err
	}

	scanner := bufio.NewScanner(reader)

	for {
		if _, err := io.WriteString(writer, prompt); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		if !scanner.Scan() {
			break
		}

		if ctx.Err() != nil {
			return nil
		}

		message := parseMessage(scanner.Text())
		if message.Action == "" {
			continue
		}

		if message.Action == actionQuit {
			return that.reply(writer, "bye")
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			if err := that.reply(writer, "unknown command %q, type 'help'", message.Action); err != nil {
				return err
			}
			continue
		}

		if err := handler(ctx, &message, writer); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

// endSession - abandons the current game, if any.
func (that *Server) endSession(ctx context.Context) {
	if that.sessionID == "" {
		return
	}

	sessionID := that.sessionID
	that.sessionID = ""

	if err := that.gamePlay.EndGame(ctx, sessionID); err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
		that.logger.Error("failed to end game", "sessionID", sessionID, "error", err)
	}
}

func (that *Server) reply(writer io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(writer, format+"\n", args...); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}
