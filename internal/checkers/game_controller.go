package checkers

import (
	"fmt"

	"github.com/rocketscienceinc/checkers-backend/internal/apperror"
	"github.com/rocketscienceinc/checkers-backend/internal/entity"
)

// GameController drives the turn/outcome state machine of a single match.
//
// It is not safe for concurrent use. Every method, including MovablePieces and Snapshot which may
// end the game as a side effect, must be serialized per match by the caller (see entity.Room).
type GameController struct {
	match *entity.Match
}

func NewGameController(match *entity.Match) *GameController {
	return &GameController{match: match}
}

func (that *GameController) Match() *entity.Match {
	return that.match
}

// Join - seats the second player, lays out a fresh board and hands the first turn to side A.
func (that *GameController) Join(playerB entity.PlayerID) error {
	match := that.match

	if !match.IsWaiting() {
		if match.IsFinished() {
			return apperror.ErrGameFinished
		}
		return apperror.ErrGameAlreadyStarted
	}

	match.PlayerB = playerB
	match.Board = entity.NewBoard()
	match.Continuation = entity.NoContinuation
	match.Turn = entity.SideA
	match.Outcome = entity.OutcomeATurn

	return nil
}

// LegalMoves - destinations of the piece on pos under the current continuation.
func (that *GameController) LegalMoves(pos int) ([]int, error) {
	return LegalDestinations(that.match.Board, pos, that.match.Continuation)
}

// MakeMove - moves a piece of the player to move. A jump that leaves another jump available keeps
// the turn and pins the next move to the landing cell.
func (that *GameController) MakeMove(src, dest int) (MoveKind, error) {
	match := that.match

	if err := match.ConfirmOngoingState(); err != nil {
		return MoveNone, err
	}

	owner, err := match.Board.OwnerAt(src)
	if err != nil {
		return MoveNone, fmt.Errorf("%w: %w", apperror.ErrIllegalMove, err)
	}

	if owner != match.Turn {
		return MoveNone, fmt.Errorf("%w: piece on %d belongs to side %s", apperror.ErrIllegalMove, src, owner)
	}

	kind, err := ApplyMove(match.Board, src, dest, match.Continuation)
	if err != nil {
		return MoveNone, err
	}

	if match.Board.Remaining(match.Turn.Opponent()) == 0 {
		match.Continuation = entity.NoContinuation
		match.Outcome = entity.WinFor(match.Turn)

		return kind, nil
	}

	if kind == MoveJump {
		further, err := LegalDestinations(match.Board, dest, dest)
		if err != nil {
			return kind, fmt.Errorf("%w: %w", apperror.ErrInvariantViolation, err)
		}

		if len(further) > 0 {
			match.Continuation = dest
			return kind, nil
		}
	}

	that.passTurn()

	return kind, nil
}

// CancelMove - the player declines to continue a jump chain; the turn passes.
func (that *GameController) CancelMove() error {
	if err := that.match.ConfirmOngoingState(); err != nil {
		return err
	}

	if !that.match.HasContinuation() {
		return apperror.ErrNoPendingJump
	}

	that.passTurn()

	return nil
}

// MovablePieces - pieces the player to move can move. This is a command: when the list comes back
// empty the opponent is declared the winner.
func (that *GameController) MovablePieces() ([]int, error) {
	match := that.match

	if !match.Outcome.IsTurn() {
		return []int{}, nil
	}

	pieces, err := MovablePieces(match.Board, match.Turn, match.Continuation)
	if err != nil {
		return nil, err
	}

	if len(pieces) == 0 {
		match.Continuation = entity.NoContinuation
		match.Outcome = entity.WinFor(match.Turn.Opponent())
	}

	return pieces, nil
}

// End - forces a terminal outcome, typically a disconnect. A match already decided keeps its outcome.
func (that *GameController) End(reason entity.Outcome) error {
	if !reason.IsTerminal() {
		return fmt.Errorf("%w: %s is not terminal", apperror.ErrUnknownOutcome, reason)
	}

	match := that.match
	match.Done = true
	match.Continuation = entity.NoContinuation

	if !match.IsFinished() {
		match.Outcome = reason
	}

	return nil
}

// Snapshot - the wire view of the match. Computing the movable pieces may end the game, so the
// outcome is read afterwards.
func (that *GameController) Snapshot() (*entity.Snapshot, error) {
	match := that.match

	movable, err := that.MovablePieces()
	if err != nil {
		return nil, err
	}

	snapshot := &entity.Snapshot{
		PlayerTurn:    match.PlayerToMove(),
		Board:         match.Board.Labels(),
		MovablePieces: movable,
		State:         match.Outcome,
	}

	if match.HasContinuation() {
		secondMove := match.Continuation
		snapshot.SecondMove = &secondMove
	}

	playerA := match.PlayerA
	snapshot.Players[0] = &playerA

	if match.HasPlayerB() {
		playerB := match.PlayerB
		snapshot.Players[1] = &playerB
	}

	return snapshot, nil
}

func (that *GameController) passTurn() {
	match := that.match

	match.Turn = match.Turn.Opponent()
	match.Continuation = entity.NoContinuation
	match.Outcome = entity.TurnFor(match.Turn)
}
