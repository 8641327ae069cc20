package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tokenguess-backend/internal/apperror"
	"github.com/rocketscienceinc/tokenguess-backend/internal/entity"
)

const noGameMessage = "no active game, type 'new' to start one"

func (that *Server) handleNewGame(ctx context.Context, _ *Message, writer io.Writer) error {
	log := that.logger.With("method", "handleNewGame")

	that.endSession(ctx)

	session, err := that.gamePlay.StartGame(ctx)
	if err != nil {
		log.Error("failed to start game", "error", err)
		return that.reply(writer, "could not start a new game")
	}

	that.sessionID = session.ID

	return that.reply(writer, "new game: pick a token between 1 and %d, you have %d attempts and %d seconds",
		entity.BoardTokens, entity.MaxAttempts, int(entity.TimeLimit.Seconds()))
}

func (that *Server) handleGuess(ctx context.Context, msg *Message, writer io.Writer) error {
	if len(msg.Args) != 1 {
		return that.reply(writer, "usage: guess <token>")
	}

	token, err := strconv.Atoi(msg.Args[0])
	if err != nil {
		return that.reply(writer, "%q is not a number", msg.Args[0])
	}

	if that.sessionID == "" {
		return that.reply(writer, noGameMessage)
	}

	snapshot, err := that.gamePlay.Guess(ctx, that.sessionID, token)
	if err != nil {
		return that.replyGuessError(writer, token, snapshot, err)
	}

	return that.replySnapshot(writer, snapshot)
}

func (that *Server) handleState(ctx context.Context, _ *Message, writer io.Writer) error {
	if that.sessionID == "" {
		return that.reply(writer, noGameMessage)
	}

	snapshot, err := that.gamePlay.GetState(ctx, that.sessionID)
	if errors.Is(err, apperror.ErrGameNotFound) {
		that.sessionID = ""
		return that.reply(writer, noGameMessage)
	}

	if err != nil {
		return fmt.Errorf("failed to get game state: %w", err)
	}

	if snapshot.State.IsTerminal() {
		that.endSession(ctx)
		return that.replySnapshot(writer, snapshot)
	}

	return that.reply(writer, "state: %s, attempts left: %d, guessed: %s",
		snapshot.State, snapshot.AttemptsLeft, formatGuesses(snapshot.Guesses))
}

func (that *Server) handleHelp(_ context.Context, _ *Message, writer io.Writer) error {
	return that.reply(writer, strings.Join([]string{
		"guess the winning token on a board of %d",
		"  new          start a new game",
		"  guess <n>    guess token n (or just type n)",
		"  state        show the current game",
		"  help         show this help",
		"  quit         leave",
	}, "\n"), entity.BoardTokens)
}

// replySnapshot - reports the outcome of an accepted guess.
func (that *Server) replySnapshot(writer io.Writer, snapshot entity.Snapshot) error {
	switch snapshot.State {
	case entity.StateWon:
		that.sessionID = ""
		return that.reply(writer, "you found the token %d in %d attempts!", snapshot.WinningToken, len(snapshot.Guesses))
	case entity.StateLost:
		that.sessionID = ""
		return that.reply(writer, "out of attempts, the winning token was %d", snapshot.WinningToken)
	case entity.StateTimeout:
		that.sessionID = ""
		return that.reply(writer, "time is up, the winning token was %d", snapshot.WinningToken)
	default:
		return that.reply(writer, "miss, %d attempts left (guessed: %s)", snapshot.AttemptsLeft, formatGuesses(snapshot.Guesses))
	}
}

func (that *Server) replyGuessError(writer io.Writer, token int, snapshot entity.Snapshot, err error) error {
	switch {
	case errors.Is(err, apperror.ErrOutOfRange):
		return that.reply(writer, "token %d is off the board, pick between 1 and %d", token, entity.BoardTokens)
	case errors.Is(err, apperror.ErrAlreadyGuessed):
		return that.reply(writer, "you already tried %d", token)
	case errors.Is(err, apperror.ErrGameAlreadyEnded):
		return that.replySnapshot(writer, snapshot)
	case errors.Is(err, apperror.ErrGameNotFound):
		that.sessionID = ""
		return that.reply(writer, noGameMessage)
	default:
		return fmt.Errorf("failed to make guess: %w", err)
	}
}

func formatGuesses(guesses []int) string {
	if len(guesses) == 0 {
		return "none"
	}

	parts := make([]string, 0, len(guesses))
	for _, guess := range guesses {
		parts = append(parts, strconv.Itoa(guess))
	}

	return strings.Join(parts, ", ")
}
