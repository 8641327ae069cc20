package entity

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rocketscienceinc/tokenguess-backend/internal/apperror"
)

type State string

const (
	StateContinues State = "CONTINUES"
	StateWon       State = "WON"
	StateLost      State = "LOST"
	StateTimeout   State = "TIMEOUT"
)

// Game settings.
const (
	BoardTokens = 20
	MaxAttempts = 5
	TimeLimit   = 60 * time.Second
)

// IsTerminal reports whether no further guesses are accepted in this state.
func (that State) IsTerminal() bool {
	return that != StateContinues
}

// Snapshot is a read-only view of a game. WinningToken stays 0 until the game ends.
type Snapshot struct {
	State        State `json:"state"`
	Guesses      []int `json:"guesses"`
	AttemptsLeft int   `json:"attempts_left"`
	WinningToken int   `json:"winning_token,omitempty"`
}

// Game is a single round of guess the token. All methods are safe for concurrent use,
// so a Timer may deliver Timeout from its own goroutine.
type Game struct {
	mu sync.Mutex

	winningToken int
	state        State
	guesses      []int

	timer Timer
}

// StartNew resolves the winning token and, when a timer is given, sets it for TimeLimit
// and registers the game as its observer.
func StartNew(resolver WinningTokenResolver, timer Timer) (*Game, error) {
	winningToken, err := resolver.Resolve()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve winning token: %w", err)
	}

	if !isOnBoard(winningToken) {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidWinningToken, winningToken)
	}

	game := &Game{
		winningToken: winningToken,
		state:        StateContinues,
		guesses:      make([]int, 0, MaxAttempts),
		timer:        timer,
	}

	if timer != nil {
		timer.SetFor(TimeLimit)
		timer.Register(game)
	}

	return game, nil
}

// Guess records a guess and moves the game to WON or LOST when it decides the round.
// A rejected guess leaves the game untouched.
func (that *Game) Guess(tokenPosition int) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.validateGuess(tokenPosition); err != nil {
		return err
	}

	that.guesses = append(that.guesses, tokenPosition)
	that.updateState(tokenPosition)

	return nil
}

// validateGuess - checks range, then state, then duplicates.
func (that *Game) validateGuess(tokenPosition int) error {
	if !isOnBoard(tokenPosition) {
		return fmt.Errorf("%w: token %d", apperror.ErrOutOfRange, tokenPosition)
	}

	if that.state.IsTerminal() {
		return apperror.ErrGameAlreadyEnded
	}

	if slices.Contains(that.guesses, tokenPosition) {
		return apperror.ErrAlreadyGuessed
	}

	return nil
}

// updateState - applies the outcome of the latest guess.
func (that *Game) updateState(tokenPosition int) {
	switch {
	case tokenPosition == that.winningToken:
		that.state = StateWon
	case len(that.guesses) == MaxAttempts:
		that.state = StateLost
	default:
		return
	}

	if that.timer != nil {
		that.timer.Stop()
	}
}

// Timeout ends a running game with TIMEOUT. A game that is already over keeps its result.
func (that *Game) Timeout() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.state.IsTerminal() {
		return
	}

	that.state = StateTimeout
}

func (that *Game) State() State {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state
}

func (that *Game) IsFinished() bool {
	return that.State().IsTerminal()
}

// Guesses returns a copy of the accepted guesses in the order they were made.
func (that *Game) Guesses() []int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return slices.Clone(that.guesses)
}

func (that *Game) AttemptsLeft() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.attemptsLeft()
}

func (that *Game) Snapshot() Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	snapshot := Snapshot{
		State:        that.state,
		Guesses:      slices.Clone(that.guesses),
		AttemptsLeft: that.attemptsLeft(),
	}

	if that.state.IsTerminal() {
		snapshot.WinningToken = that.winningToken
	}

	return snapshot
}

func (that *Game) attemptsLeft() int {
	if that.state.IsTerminal() {
		return 0
	}

	return MaxAttempts - len(that.guesses)
}

func isOnBoard(tokenPosition int) bool {
	return tokenPosition >= 1 && tokenPosition <= BoardTokens
}
