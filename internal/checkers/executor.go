package checkers

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/checkers-backend/internal/apperror"
	"github.com/rocketscienceinc/checkers-backend/internal/entity"
)

type MoveKind int

const (
	MoveNone MoveKind = iota
	MoveJump
)

func (that MoveKind) String() string {
	if that == MoveJump {
		return "JUMP"
	}
	return "NONE"
}

// ApplyMove - validates src->dest against the legal destinations and performs it: capture,
// relocation, then promotion. An illegal move leaves the board untouched.
func ApplyMove(board *entity.Board, src, dest, continuation int) (MoveKind, error) {
	destinations, err := LegalDestinations(board, src, continuation)
	if err != nil {
		return MoveNone, fmt.Errorf("%w: %w", apperror.ErrIllegalMove, err)
	}

	if !slices.Contains(destinations, dest) {
		return MoveNone, fmt.Errorf("%w: %d -> %d", apperror.ErrIllegalMove, src, dest)
	}

	kind := classify(src, dest)
	if kind == MoveJump {
		if err = capture(board, src, dest); err != nil {
			return MoveNone, err
		}
	}

	if err = board.Relocate(src, dest); err != nil {
		return MoveNone, fmt.Errorf("%w: relocate %d -> %d: %w", apperror.ErrInvariantViolation, src, dest, err)
	}

	if _, err = board.PromoteIfEligible(dest); err != nil {
		return MoveNone, fmt.Errorf("%w: promote %d: %w", apperror.ErrInvariantViolation, dest, err)
	}

	return kind, nil
}

func classify(src, dest int) MoveKind {
	switch dest - src {
	case 14, -14, 18, -18:
		return MoveJump
	default:
		return MoveNone
	}
}

// capture - removes the piece jumped over between src and dest.
func capture(board *entity.Board, src, dest int) error {
	step := (dest - src) / 2

	switch step {
	case 7, -7, 9, -9:
	default:
		return fmt.Errorf("%w: bad jump geometry %d -> %d", apperror.ErrInvariantViolation, src, dest)
	}

	if err := board.RemovePiece(src + step); err != nil {
		return fmt.Errorf("%w: capture at %d: %w", apperror.ErrInvariantViolation, src+step, err)
	}

	return nil
}
