package apperror

import "errors"

var (
	ErrGameFinished       = errors.New("game is already finished")
	ErrGameIsNotStarted   = errors.New("game is not started")
	ErrGameAlreadyStarted = errors.New("game already has two players")
	ErrNotYourTurn        = errors.New("it's not your turn")
	ErrUnknownOutcome     = errors.New("unknown outcome")

	ErrIllegalMove        = errors.New("illegal move")
	ErrOutOfRange         = errors.New("cell index out of range")
	ErrEmptyCell          = errors.New("cell is empty")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrNoPendingJump      = errors.New("no jump chain to cancel")
	ErrInvariantViolation = errors.New("engine invariant violated")
	ErrUnknownSide        = errors.New("unknown side")

	ErrMatchNotFound    = errors.New("match not found")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrPlayerNotInMatch = errors.New("player is not seated in this match")
	ErrTooManyMatches   = errors.New("match limit reached")
	ErrMatchExists      = errors.New("match already exists")

	ErrInvalidScript = errors.New("invalid match script")
)
