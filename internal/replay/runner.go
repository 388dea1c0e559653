package replay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/checkers-backend/internal/apperror"
	"github.com/rocketscienceinc/checkers-backend/internal/entity"
)

type matchManager interface {
	CreateMatch(ctx context.Context) (*entity.Seat, *entity.Snapshot, error)
	JoinMatch(ctx context.Context, matchID string) (*entity.Seat, *entity.Snapshot, error)
	GetLegalMoves(ctx context.Context, matchID string, playerID entity.PlayerID, pos int) (*entity.LegalMoves, error)
	MakeMove(ctx context.Context, matchID string, playerID entity.PlayerID, src, dest int) (*entity.Snapshot, error)
	CancelMove(ctx context.Context, matchID string, playerID entity.PlayerID) (*entity.Snapshot, error)
	Leave(ctx context.Context, matchID string, playerID entity.PlayerID) (*entity.Snapshot, error)
	Snapshot(ctx context.Context, matchID string) (*entity.Snapshot, error)
}

// Frame records what one step produced. Error holds the rejection of a refused command.
type Frame struct {
	Step     int                `json:"step"`
	Command  Command            `json:"command"`
	Player   entity.PlayerID    `json:"player,omitempty"`
	Seat     *entity.Seat       `json:"seat,omitempty"`
	Moves    *entity.LegalMoves `json:"moves,omitempty"`
	Snapshot *entity.Snapshot   `json:"snapshot,omitempty"`
	Error    string             `json:"error,omitempty"`
}

type Result struct {
	Script  string           `json:"script,omitempty"`
	MatchID string           `json:"match_id"`
	Frames  []Frame          `json:"frames"`
	Final   *entity.Snapshot `json:"final"`
}

// Rejected - number of frames holding a refused command.
func (that *Result) Rejected() int {
	count := 0
	for _, frame := range that.Frames {
		if frame.Error != "" {
			count++
		}
	}

	return count
}

type Runner struct {
	logger  *slog.Logger
	manager matchManager
}

func NewRunner(logger *slog.Logger, manager matchManager) *Runner {
	return &Runner{
		logger:  logger.With("component", "replay"),
		manager: manager,
	}
}

// session - the match and seats a running script has produced so far.
type session struct {
	matchID string
	players map[Seat]entity.PlayerID
	turn    entity.PlayerID
}

func (that *session) resolve(seat Seat) (entity.PlayerID, error) {
	if seat == SeatTurn {
		if that.turn == "" {
			return "", errors.New("nobody is to move")
		}
		return that.turn, nil
	}

	player, ok := that.players[seat]
	if !ok {
		return "", fmt.Errorf("seat %s is empty", seat)
	}

	return player, nil
}

func (that *session) observe(snapshot *entity.Snapshot) {
	if snapshot != nil && snapshot.PlayerTurn != "" {
		that.turn = snapshot.PlayerTurn
	}
}

// Run - issues every step of script against a fresh match. Refused commands are recorded and the
// replay goes on; invariant violations and context cancellation stop it.
func (that *Runner) Run(ctx context.Context, script *Script) (*Result, error) {
	log := that.logger.With("method", "Run", "script", script.Name)

	result := &Result{
		Script: script.Name,
		Frames: make([]Frame, 0, len(script.Steps)),
	}
	state := &session{players: make(map[Seat]entity.PlayerID, 2)}

	for i, step := range script.Steps {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("replay interrupted at step %d: %w", i, err)
		}

		frame, err := that.runStep(ctx, state, step)
		frame.Step = i
		frame.Command = step.Command

		if err != nil {
			if fatal(err) || step.Command == CommandCreate {
				log.Error("replay aborted", "step", i, "error", err)
				return result, fmt.Errorf("step %d (%s): %w", i, step.Command, err)
			}

			log.Debug("command rejected", "step", i, "command", step.Command, "error", err)
			frame.Error = err.Error()
		}

		result.Frames = append(result.Frames, frame)
	}

	result.MatchID = state.matchID

	final, err := that.manager.Snapshot(ctx, state.matchID)
	if err != nil {
		return result, fmt.Errorf("failed to take final snapshot: %w", err)
	}
	result.Final = final

	log.Info("replay finished", "steps", len(result.Frames), "rejected", result.Rejected(), "outcome", final.State)

	return result, nil
}

func (that *Runner) runStep(ctx context.Context, state *session, step Step) (Frame, error) {
	frame := Frame{}

	switch step.Command {
	case CommandCreate:
		seat, snapshot, err := that.manager.CreateMatch(ctx)
		if err != nil {
			return frame, err
		}

		state.matchID = seat.RoomID
		state.players[SeatA] = seat.PlayerID
		state.observe(snapshot)
		frame.Player, frame.Seat, frame.Snapshot = seat.PlayerID, seat, snapshot

		return frame, nil

	case CommandJoin:
		seat, snapshot, err := that.manager.JoinMatch(ctx, state.matchID)
		if err != nil {
			return frame, err
		}

		state.players[SeatB] = seat.PlayerID
		state.observe(snapshot)
		frame.Player, frame.Seat, frame.Snapshot = seat.PlayerID, seat, snapshot

		return frame, nil

	case CommandSnapshot:
		snapshot, err := that.manager.Snapshot(ctx, state.matchID)
		state.observe(snapshot)
		frame.Snapshot = snapshot

		return frame, err
	}

	player, err := state.resolve(step.Seat)
	if err != nil {
		return frame, fmt.Errorf("%w: %w", apperror.ErrInvalidScript, err)
	}
	frame.Player = player

	var snapshot *entity.Snapshot

	switch step.Command {
	case CommandMoves:
		frame.Moves, err = that.manager.GetLegalMoves(ctx, state.matchID, player, *step.Pos)

		return frame, err
	case CommandMove:
		snapshot, err = that.manager.MakeMove(ctx, state.matchID, player, *step.Src, *step.Dest)
	case CommandCancel:
		snapshot, err = that.manager.CancelMove(ctx, state.matchID, player)
	case CommandLeave:
		snapshot, err = that.manager.Leave(ctx, state.matchID, player)
	default:
		return frame, fmt.Errorf("%w: unknown command %q", apperror.ErrInvalidScript, step.Command)
	}

	state.observe(snapshot)
	frame.Snapshot = snapshot

	return frame, err
}

func fatal(err error) bool {
	return errors.Is(err, apperror.ErrInvariantViolation) ||
		errors.Is(err, apperror.ErrInvalidScript) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
