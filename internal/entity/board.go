package entity

import (
	"fmt"

	"github.com/rocketscienceinc/checkers-backend/internal/apperror"
)

const (
	BoardSize     = 64
	RowSize       = 8
	PiecesPerSide = 12
)

const (
	LabelBlank  = "BLANK"
	LabelP1     = "P1"
	LabelP1King = "P1_KING"
	LabelP2     = "P2"
	LabelP2King = "P2_KING"
)

// Side identifies which seat owns a piece. SideA starts on rows 5-7 and advances towards row 0,
// SideB starts on rows 0-2 and advances towards row 7.
type Side int

const (
	NoSide Side = iota
	SideA
	SideB
)

func (that Side) Opponent() Side {
	switch that {
	case SideA:
		return SideB
	case SideB:
		return SideA
	default:
		return NoSide
	}
}

func (that Side) String() string {
	switch that {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "-"
	}
}

// promotionRow - the row on which a man of this side is crowned.
func (that Side) promotionRow() int {
	if that == SideA {
		return 0
	}
	return RowSize - 1
}

type Piece struct {
	Side Side
	King bool
	Pos  int
}

func (that Piece) IsEmpty() bool {
	return that.Side == NoSide
}

// Board is the 8x8 grid. Cells hold pieces by value, so relocating a piece never leaves two
// cells sharing state.
type Board struct {
	cells     [BoardSize]Piece
	remaining [3]int
}

// NewBoard - builds the standard starting layout: twelve men per side on the dark squares
// of the three rows closest to each player.
func NewBoard() *Board {
	board := NewEmptyBoard()

	for pos := 0; pos < BoardSize; pos++ {
		if (Row(pos)+Column(pos))%2 == 0 {
			continue
		}

		switch row := Row(pos); {
		case row < 3:
			board.place(pos, SideB, false)
		case row > 4:
			board.place(pos, SideA, false)
		}
	}

	return board
}

func NewEmptyBoard() *Board {
	return &Board{}
}

func Row(pos int) int {
	return pos / RowSize
}

func Column(pos int) int {
	return pos % RowSize
}

func OnBoard(pos int) bool {
	return pos >= 0 && pos < BoardSize
}

// Place - puts a piece on an empty cell. Used to set up positions other than the starting one.
func (that *Board) Place(pos int, side Side, king bool) error {
	if !OnBoard(pos) {
		return fmt.Errorf("%w: cell %d", apperror.ErrOutOfRange, pos)
	}

	if side != SideA && side != SideB {
		return fmt.Errorf("%w: %d", apperror.ErrUnknownSide, side)
	}

	if !that.cells[pos].IsEmpty() {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, pos)
	}

	that.place(pos, side, king)

	return nil
}

func (that *Board) place(pos int, side Side, king bool) {
	that.cells[pos] = Piece{Side: side, King: king, Pos: pos}
	that.remaining[side]++
}

// Cell - returns the piece on pos and whether the cell is occupied. Off-board cells are reported empty.
func (that *Board) Cell(pos int) (Piece, bool) {
	if !OnBoard(pos) {
		return Piece{}, false
	}

	piece := that.cells[pos]

	return piece, !piece.IsEmpty()
}

func (that *Board) PieceAt(pos int) (Piece, error) {
	if !OnBoard(pos) {
		return Piece{}, fmt.Errorf("%w: cell %d", apperror.ErrOutOfRange, pos)
	}

	piece := that.cells[pos]
	if piece.IsEmpty() {
		return Piece{}, fmt.Errorf("%w: cell %d", apperror.ErrEmptyCell, pos)
	}

	return piece, nil
}

func (that *Board) OwnerAt(pos int) (Side, error) {
	piece, err := that.PieceAt(pos)
	if err != nil {
		return NoSide, err
	}

	return piece.Side, nil
}

func (that *Board) IsKing(pos int) (bool, error) {
	piece, err := that.PieceAt(pos)
	if err != nil {
		return false, err
	}

	return piece.King, nil
}

func (that *Board) Remaining(side Side) int {
	if side != SideA && side != SideB {
		return 0
	}

	return that.remaining[side]
}

// RemovePiece - clears pos and decrements the owner's count.
func (that *Board) RemovePiece(pos int) error {
	piece, err := that.PieceAt(pos)
	if err != nil {
		return err
	}

	that.cells[pos] = Piece{}
	that.remaining[piece.Side]--

	return nil
}

// Relocate - moves the piece on src to the empty cell dest.
func (that *Board) Relocate(src, dest int) error {
	piece, err := that.PieceAt(src)
	if err != nil {
		return err
	}

	if !OnBoard(dest) {
		return fmt.Errorf("%w: cell %d", apperror.ErrOutOfRange, dest)
	}

	if !that.cells[dest].IsEmpty() {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, dest)
	}

	piece.Pos = dest
	that.cells[dest] = piece
	that.cells[src] = Piece{}

	return nil
}

// PromoteIfEligible - crowns a man standing on its promotion row. Kings stay kings.
func (that *Board) PromoteIfEligible(pos int) (bool, error) {
	piece, err := that.PieceAt(pos)
	if err != nil {
		return false, err
	}

	if piece.King || Row(pos) != piece.Side.promotionRow() {
		return false, nil
	}

	that.cells[pos].King = true

	return true, nil
}

// Labels - one label per cell, in index order.
func (that *Board) Labels() []string {
	labels := make([]string, BoardSize)

	for pos, piece := range that.cells {
		switch {
		case piece.Side == SideA && piece.King:
			labels[pos] = LabelP1King
		case piece.Side == SideA:
			labels[pos] = LabelP1
		case piece.Side == SideB && piece.King:
			labels[pos] = LabelP2King
		case piece.Side == SideB:
			labels[pos] = LabelP2
		default:
			labels[pos] = LabelBlank
		}
	}

	return labels
}
