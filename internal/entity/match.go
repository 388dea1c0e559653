package entity

import (
	"fmt"

	"github.com/rocketscienceinc/checkers-backend/internal/apperror"
)

// NoContinuation marks the absence of a pending jump chain.
const NoContinuation = -1

// Match is the mutable state of one game. It carries no lock of its own; see Room.
type Match struct {
	PlayerA PlayerID
	PlayerB PlayerID

	Board *Board
	Turn  Side

	// Continuation is the cell of the piece that must make the next move, or NoContinuation.
	Continuation int

	Outcome Outcome
	Done    bool
}

// NewMatch - a match waiting for its second player. The board is laid out already.
func NewMatch(playerA PlayerID) *Match {
	return &Match{
		PlayerA:      playerA,
		Board:        NewBoard(),
		Turn:         SideA,
		Continuation: NoContinuation,
		Outcome:      OutcomeWaiting,
	}
}

func (that *Match) HasPlayerB() bool {
	return that.PlayerB != ""
}

func (that *Match) HasContinuation() bool {
	return that.Continuation != NoContinuation
}

func (that *Match) PlayerFor(side Side) PlayerID {
	switch side {
	case SideA:
		return that.PlayerA
	case SideB:
		return that.PlayerB
	default:
		return ""
	}
}

// SideOf - the seat held by player, NoSide when the player is not part of the match.
func (that *Match) SideOf(player PlayerID) Side {
	switch {
	case player == "":
		return NoSide
	case player == that.PlayerA:
		return SideA
	case player == that.PlayerB:
		return SideB
	default:
		return NoSide
	}
}

func (that *Match) PlayerToMove() PlayerID {
	return that.PlayerFor(that.Turn)
}

func (that *Match) IsFinished() bool {
	return that.Outcome.IsTerminal()
}

func (that *Match) IsOngoing() bool {
	return that.Outcome.IsTurn()
}

func (that *Match) IsWaiting() bool {
	return that.Outcome == OutcomeWaiting
}

func (that *Match) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %d", apperror.ErrUnknownOutcome, int(that.Outcome))
	}
}
