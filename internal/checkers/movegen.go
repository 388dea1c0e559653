package checkers

import (
	"fmt"

	"github.com/rocketscienceinc/checkers-backend/internal/apperror"
	"github.com/rocketscienceinc/checkers-backend/internal/entity"
)

type direction struct {
	step int
	// forward is the side whose men may travel this way; kings ignore it.
	forward entity.Side
	left    bool
}

// directions in evaluation order: up-left, up-right, down-left, down-right.
var directions = [4]direction{
	{step: -9, forward: entity.SideA, left: true},
	{step: -7, forward: entity.SideA, left: false},
	{step: 7, forward: entity.SideB, left: true},
	{step: 9, forward: entity.SideB, left: false},
}

// fits - reports whether hops diagonal steps from column col stay on the same side of the board edge.
func (that direction) fits(col, hops int) bool {
	if that.left {
		return col >= hops
	}
	return col <= entity.RowSize-1-hops
}

// LegalDestinations - cells the piece on pos may move to. While a continuation is pending only the
// continuing piece moves, and only by jumping. Capturing is not mandatory otherwise.
func LegalDestinations(board *entity.Board, pos, continuation int) ([]int, error) {
	if !entity.OnBoard(pos) {
		return nil, fmt.Errorf("%w: cell %d", apperror.ErrOutOfRange, pos)
	}

	destinations := make([]int, 0, len(directions))

	piece, occupied := board.Cell(pos)
	if !occupied {
		return destinations, nil
	}

	if continuation != entity.NoContinuation && continuation != pos {
		return destinations, nil
	}

	for _, dir := range directions {
		if !piece.King && dir.forward != piece.Side {
			continue
		}

		if dest, ok := tryDirection(board, piece, dir, continuation); ok {
			destinations = append(destinations, dest)
		}
	}

	return destinations, nil
}

func tryDirection(board *entity.Board, piece entity.Piece, dir direction, continuation int) (int, bool) {
	col := entity.Column(piece.Pos)

	next := piece.Pos + dir.step
	if !dir.fits(col, 1) || !entity.OnBoard(next) {
		return 0, false
	}

	other, occupied := board.Cell(next)
	if !occupied {
		return next, continuation == entity.NoContinuation
	}

	if other.Side == piece.Side {
		return 0, false
	}

	landing := next + dir.step
	if !dir.fits(col, 2) || !entity.OnBoard(landing) {
		return 0, false
	}

	if _, blocked := board.Cell(landing); blocked {
		return 0, false
	}

	return landing, true
}

// MovablePieces - cells holding a piece of side with at least one legal destination. A pending
// continuation short-circuits to the continuing piece.
func MovablePieces(board *entity.Board, side entity.Side, continuation int) ([]int, error) {
	if continuation != entity.NoContinuation {
		owner, err := board.OwnerAt(continuation)
		if err != nil {
			return nil, fmt.Errorf("%w: continuation cell %d: %w", apperror.ErrInvariantViolation, continuation, err)
		}

		if owner != side {
			return nil, fmt.Errorf("%w: continuation cell %d belongs to side %s, not %s",
				apperror.ErrInvariantViolation, continuation, owner, side)
		}

		return []int{continuation}, nil
	}

	pieces := make([]int, 0, entity.PiecesPerSide)

	for pos := 0; pos < entity.BoardSize; pos++ {
		piece, occupied := board.Cell(pos)
		if !occupied || piece.Side != side {
			continue
		}

		destinations, err := LegalDestinations(board, pos, continuation)
		if err != nil {
			return nil, err
		}

		if len(destinations) > 0 {
			pieces = append(pieces, pos)
		}
	}

	return pieces, nil
}
