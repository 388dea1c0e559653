package entity

import (
	"testing"

	"github.com/rocketscienceinc/checkers-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	// When: a new board is built
	board := NewBoard()

	// Then: each side has twelve men
	assert.Equal(t, PiecesPerSide, board.Remaining(SideA))
	assert.Equal(t, PiecesPerSide, board.Remaining(SideB))

	// Then: the men stand on the expected dark squares
	expectedB := []int{1, 3, 5, 7, 8, 10, 12, 14, 17, 19, 21, 23}
	expectedA := []int{40, 42, 44, 46, 49, 51, 53, 55, 56, 58, 60, 62}

	for _, pos := range expectedB {
		piece, err := board.PieceAt(pos)
		require.NoError(t, err)
		assert.Equal(t, Piece{Side: SideB, Pos: pos}, piece)
	}

	for _, pos := range expectedA {
		piece, err := board.PieceAt(pos)
		require.NoError(t, err)
		assert.Equal(t, Piece{Side: SideA, Pos: pos}, piece)
	}

	// Then: the middle rows are empty
	for pos := 24; pos < 40; pos++ {
		_, occupied := board.Cell(pos)
		assert.False(t, occupied, "cell %d", pos)
	}
}

func TestBoard_PieceAt(t *testing.T) {
	t.Run("Out of range", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: cells outside 0-63 are read
		_, errLow := board.PieceAt(-1)
		_, errHigh := board.PieceAt(BoardSize)

		// Then: ErrOutOfRange should be returned
		require.ErrorIs(t, errLow, apperror.ErrOutOfRange)
		require.ErrorIs(t, errHigh, apperror.ErrOutOfRange)
	})

	t.Run("Empty cell", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: an empty cell is queried
		_, err := board.PieceAt(30)
		_, ownerErr := board.OwnerAt(30)
		_, kingErr := board.IsKing(30)

		// Then: ErrEmptyCell should be returned by every accessor
		require.ErrorIs(t, err, apperror.ErrEmptyCell)
		require.ErrorIs(t, ownerErr, apperror.ErrEmptyCell)
		require.ErrorIs(t, kingErr, apperror.ErrEmptyCell)
	})

	t.Run("Cell 0 is on the board", func(t *testing.T) {
		// Given: a board with a king on cell 0
		board := NewEmptyBoard()
		require.NoError(t, board.Place(0, SideB, true))

		// When: cell 0 is read
		owner, err := board.OwnerAt(0)
		require.NoError(t, err)
		king, err := board.IsKing(0)
		require.NoError(t, err)

		// Then: the piece is found
		assert.Equal(t, SideB, owner)
		assert.True(t, king)
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("Rejects an occupied cell", func(t *testing.T) {
		// Given: a board with a piece on cell 10
		board := NewEmptyBoard()
		require.NoError(t, board.Place(10, SideA, false))

		// When: another piece is placed there
		err := board.Place(10, SideB, false)

		// Then: ErrCellOccupied should be returned and counts stay the same
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, 1, board.Remaining(SideA))
		assert.Equal(t, 0, board.Remaining(SideB))
	})

	t.Run("Rejects an unknown side", func(t *testing.T) {
		// Given: an empty board
		board := NewEmptyBoard()

		// When: a piece without an owner is placed
		err := board.Place(10, NoSide, false)

		// Then: ErrUnknownSide should be returned
		require.ErrorIs(t, err, apperror.ErrUnknownSide)
	})
}

func TestBoard_RemovePiece(t *testing.T) {
	t.Run("Decrements the owner's count", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: a piece of side B is removed
		err := board.RemovePiece(17)
		require.NoError(t, err)

		// Then: only side B loses a piece and the cell is empty
		assert.Equal(t, PiecesPerSide-1, board.Remaining(SideB))
		assert.Equal(t, PiecesPerSide, board.Remaining(SideA))
		_, occupied := board.Cell(17)
		assert.False(t, occupied)
	})

	t.Run("Empty cell", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: an empty cell is removed
		err := board.RemovePiece(30)

		// Then: ErrEmptyCell should be returned
		require.ErrorIs(t, err, apperror.ErrEmptyCell)
		assert.Equal(t, PiecesPerSide, board.Remaining(SideA))
		assert.Equal(t, PiecesPerSide, board.Remaining(SideB))
	})
}

func TestBoard_Relocate(t *testing.T) {
	t.Run("Moves the piece and clears the source", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: the man on 40 is moved to 33
		err := board.Relocate(40, 33)
		require.NoError(t, err)

		// Then: the stored position follows the cell
		piece, err := board.PieceAt(33)
		require.NoError(t, err)
		assert.Equal(t, Piece{Side: SideA, Pos: 33}, piece)

		_, occupied := board.Cell(40)
		assert.False(t, occupied)
		assert.Equal(t, PiecesPerSide, board.Remaining(SideA))
	})

	t.Run("Occupied destination", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: a piece is moved onto another piece
		err := board.Relocate(40, 49)

		// Then: ErrCellOccupied should be returned and nothing moves
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		piece, err := board.PieceAt(40)
		require.NoError(t, err)
		assert.Equal(t, 40, piece.Pos)
	})

	t.Run("Out of range destination", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: a piece is moved off the board
		err := board.Relocate(62, 71)

		// Then: ErrOutOfRange should be returned
		require.ErrorIs(t, err, apperror.ErrOutOfRange)
	})
}

func TestBoard_PromoteIfEligible(t *testing.T) {
	t.Run("Side A is crowned on row 0", func(t *testing.T) {
		// Given: a man of side A on row 0
		board := NewEmptyBoard()
		require.NoError(t, board.Place(3, SideA, false))

		// When: promotion is checked
		promoted, err := board.PromoteIfEligible(3)
		require.NoError(t, err)

		// Then: the man becomes a king
		assert.True(t, promoted)
		king, err := board.IsKing(3)
		require.NoError(t, err)
		assert.True(t, king)
	})

	t.Run("Side B is crowned on row 7", func(t *testing.T) {
		// Given: a man of side B on row 7
		board := NewEmptyBoard()
		require.NoError(t, board.Place(60, SideB, false))

		// When: promotion is checked
		promoted, err := board.PromoteIfEligible(60)
		require.NoError(t, err)

		// Then: the man becomes a king
		assert.True(t, promoted)
	})

	t.Run("Own back row does not crown", func(t *testing.T) {
		// Given: men standing on their own back rows
		board := NewEmptyBoard()
		require.NoError(t, board.Place(60, SideA, false))
		require.NoError(t, board.Place(3, SideB, false))

		// When: promotion is checked
		promotedA, err := board.PromoteIfEligible(60)
		require.NoError(t, err)
		promotedB, err := board.PromoteIfEligible(3)
		require.NoError(t, err)

		// Then: neither is crowned
		assert.False(t, promotedA)
		assert.False(t, promotedB)
	})

	t.Run("Kings stay kings after leaving the row", func(t *testing.T) {
		// Given: a crowned piece
		board := NewEmptyBoard()
		require.NoError(t, board.Place(3, SideA, false))
		_, err := board.PromoteIfEligible(3)
		require.NoError(t, err)

		// When: it moves away from the promotion row
		require.NoError(t, board.Relocate(3, 12))
		promoted, err := board.PromoteIfEligible(12)
		require.NoError(t, err)

		// Then: it is still a king
		assert.False(t, promoted)
		king, err := board.IsKing(12)
		require.NoError(t, err)
		assert.True(t, king)
	})
}

func TestBoard_Labels(t *testing.T) {
	// Given: a board with one piece of every kind
	board := NewEmptyBoard()
	require.NoError(t, board.Place(1, SideB, false))
	require.NoError(t, board.Place(3, SideB, true))
	require.NoError(t, board.Place(60, SideA, false))
	require.NoError(t, board.Place(62, SideA, true))

	// When: the labels are taken
	labels := board.Labels()

	// Then: every cell has a label matching its content
	require.Len(t, labels, BoardSize)
	assert.Equal(t, LabelP2, labels[1])
	assert.Equal(t, LabelP2King, labels[3])
	assert.Equal(t, LabelP1, labels[60])
	assert.Equal(t, LabelP1King, labels[62])
	assert.Equal(t, LabelBlank, labels[0])
	assert.Equal(t, LabelBlank, labels[63])
}
