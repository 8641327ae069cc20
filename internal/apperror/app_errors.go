package apperror

import "errors"

var (
	ErrOutOfRange          = errors.New("token is out of board range")
	ErrGameAlreadyEnded    = errors.New("game has already ended")
	ErrAlreadyGuessed      = errors.New("token has already been guessed")
	ErrInvalidWinningToken = errors.New("winning token is out of board range")
	ErrGameNotFound        = errors.New("game not found")
)
