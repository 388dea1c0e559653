package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/checkers-backend/internal/apperror"
	"github.com/rocketscienceinc/checkers-backend/internal/checkers"
	"github.com/rocketscienceinc/checkers-backend/internal/entity"
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id entity.PlayerID) (*entity.Player, error)
	DeleteByID(ctx context.Context, id entity.PlayerID) error
}

type matchRepo interface {
	Create(ctx context.Context, room *entity.Room) error
	GetByID(ctx context.Context, id string) (*entity.Room, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Room, error)
}

type idGenerator interface {
	NextMatchID() string
	NewPlayerID() entity.PlayerID
}

// MatchManager is the command surface used by a transport. Commands touching a match run under that
// match's room lock; different matches proceed in parallel.
type MatchManager struct {
	logger *slog.Logger

	playerRepo playerRepo
	matchRepo  matchRepo
	ids        idGenerator
}

func NewMatchManager(logger *slog.Logger, playerRepo playerRepo, matchRepo matchRepo, ids idGenerator) *MatchManager {
	return &MatchManager{
		logger: logger.With("component", "match-manager"),

		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		ids:        ids,
	}
}

// CreateMatch - opens a room with a fresh player in seat A.
func (that *MatchManager) CreateMatch(ctx context.Context) (*entity.Seat, *entity.Snapshot, error) {
	log := that.logger.With("method", "CreateMatch")

	player := &entity.Player{
		ID:   that.ids.NewPlayerID(),
		Side: entity.SideA,
	}

	room := entity.NewRoom(that.ids.NextMatchID(), entity.NewMatch(player.ID))
	if err := that.matchRepo.Create(ctx, room); err != nil {
		return nil, nil, fmt.Errorf("failed to create match: %w", err)
	}

	player.MatchID = room.ID
	if err := that.updatePlayer(ctx, player); err != nil {
		that.deleteRoom(ctx, log, room.ID)

		return nil, nil, err
	}

	snapshot, err := that.snapshot(room)
	if err != nil {
		return nil, nil, err
	}

	log.Info("match created", "matchID", room.ID, "playerID", player.ID)

	return &entity.Seat{PlayerID: player.ID, RoomID: room.ID}, snapshot, nil
}

// JoinMatch - seats a fresh player in seat B and starts the game.
func (that *MatchManager) JoinMatch(ctx context.Context, matchID string) (*entity.Seat, *entity.Snapshot, error) {
	log := that.logger.With("method", "JoinMatch", "matchID", matchID)

	room, err := that.getRoom(ctx, matchID)
	if err != nil {
		return nil, nil, err
	}

	player := &entity.Player{
		ID:      that.ids.NewPlayerID(),
		MatchID: room.ID,
		Side:    entity.SideB,
	}

	if err = that.updatePlayer(ctx, player); err != nil {
		return nil, nil, err
	}

	var snapshot *entity.Snapshot
	err = that.withController(room, func(controller *checkers.GameController) error {
		if err := controller.Join(player.ID); err != nil {
			return fmt.Errorf("failed to join match: %w", err)
		}

		snapshot, err = controller.Snapshot()

		return err
	})
	if err != nil {
		that.logFailure(log, err)
		that.deletePlayer(ctx, log, player.ID)

		return nil, nil, err
	}

	log.Info("player joined", "playerID", player.ID)

	return &entity.Seat{PlayerID: player.ID, RoomID: room.ID}, snapshot, nil
}

// GetLegalMoves - destinations of the piece on pos. Any seated player may ask, on or off turn.
func (that *MatchManager) GetLegalMoves(ctx context.Context, matchID string, playerID entity.PlayerID, pos int) (*entity.LegalMoves, error) {
	room, _, err := that.authorize(ctx, matchID, playerID)
	if err != nil {
		return nil, err
	}

	var pieces []int
	err = that.withController(room, func(controller *checkers.GameController) error {
		pieces, err = controller.LegalMoves(pos)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get legal moves: %w", err)
	}

	return &entity.LegalMoves{
		PlayerID:        playerID,
		Pieces:          pieces,
		PieceBeingMoved: pos,
	}, nil
}

// MakeMove - moves a piece for the player on turn and returns the resulting snapshot.
func (that *MatchManager) MakeMove(ctx context.Context, matchID string, playerID entity.PlayerID, src, dest int) (*entity.Snapshot, error) {
	log := that.logger.With("method", "MakeMove", "matchID", matchID, "playerID", playerID)

	room, side, err := that.authorize(ctx, matchID, playerID)
	if err != nil {
		return nil, err
	}

	var snapshot *entity.Snapshot
	err = that.withController(room, func(controller *checkers.GameController) error {
		if err := confirmTurn(controller.Match(), side); err != nil {
			return err
		}

		kind, err := controller.MakeMove(src, dest)
		if err != nil {
			return fmt.Errorf("failed to make move: %w", err)
		}

		log.Debug("move made", "src", src, "dest", dest, "kind", kind)

		snapshot, err = controller.Snapshot()

		return err
	})
	if err != nil {
		that.logFailure(log, err)

		return nil, err
	}

	if snapshot.State.IsTerminal() {
		log.Info("match decided", "outcome", snapshot.State)
	}

	return snapshot, nil
}

// CancelMove - the player on turn declines to continue a jump chain.
func (that *MatchManager) CancelMove(ctx context.Context, matchID string, playerID entity.PlayerID) (*entity.Snapshot, error) {
	log := that.logger.With("method", "CancelMove", "matchID", matchID, "playerID", playerID)

	room, side, err := that.authorize(ctx, matchID, playerID)
	if err != nil {
		return nil, err
	}

	var snapshot *entity.Snapshot
	err = that.withController(room, func(controller *checkers.GameController) error {
		if err := confirmTurn(controller.Match(), side); err != nil {
			return err
		}

		if err := controller.CancelMove(); err != nil {
			return fmt.Errorf("failed to cancel move: %w", err)
		}

		snapshot, err = controller.Snapshot()

		return err
	})
	if err != nil {
		that.logFailure(log, err)

		return nil, err
	}

	return snapshot, nil
}

// Leave - ends the match because playerID disconnected.
func (that *MatchManager) Leave(ctx context.Context, matchID string, playerID entity.PlayerID) (*entity.Snapshot, error) {
	log := that.logger.With("method", "Leave", "matchID", matchID, "playerID", playerID)

	room, side, err := that.authorize(ctx, matchID, playerID)
	if err != nil {
		return nil, err
	}

	var snapshot *entity.Snapshot
	err = that.withController(room, func(controller *checkers.GameController) error {
		if err := controller.End(entity.DisconnectFor(side)); err != nil {
			return fmt.Errorf("failed to end match: %w", err)
		}

		snapshot, err = controller.Snapshot()

		return err
	})
	if err != nil {
		that.logFailure(log, err)

		return nil, err
	}

	log.Info("player left", "outcome", snapshot.State)

	return snapshot, nil
}

func (that *MatchManager) Snapshot(ctx context.Context, matchID string) (*entity.Snapshot, error) {
	room, err := that.getRoom(ctx, matchID)
	if err != nil {
		return nil, err
	}

	snapshot, err := that.snapshot(room)
	if err != nil {
		that.logFailure(that.logger.With("method", "Snapshot", "matchID", matchID), err)

		return nil, err
	}

	return snapshot, nil
}

// CleanupFinished - drops ended matches and their players from the registries.
func (that *MatchManager) CleanupFinished(ctx context.Context) (int, error) {
	log := that.logger.With("method", "CleanupFinished")

	rooms, err := that.matchRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list matches: %w", err)
	}

	removed := 0
	for _, room := range rooms {
		var players []entity.PlayerID

		err = room.WithMatch(func(match *entity.Match) error {
			if match.Done || match.IsFinished() {
				players = []entity.PlayerID{match.PlayerA, match.PlayerB}
			}
			return nil
		})
		if err != nil {
			log.Error("failed to inspect match", "matchID", room.ID, "error", err)
			continue
		}

		if players == nil {
			continue
		}

		that.deleteRoom(ctx, log, room.ID)

		for _, playerID := range players {
			if playerID == "" {
				continue
			}

			that.deletePlayer(ctx, log, playerID)
		}

		removed++
	}

	if removed > 0 {
		log.Info("finished matches removed", "count", removed)
	}

	return removed, nil
}

func confirmTurn(match *entity.Match, side entity.Side) error {
	if err := match.ConfirmOngoingState(); err != nil {
		return err
	}

	if match.Turn != side {
		return apperror.ErrNotYourTurn
	}

	return nil
}

// authorize - loads the room and the seat of playerID in it.
func (that *MatchManager) authorize(ctx context.Context, matchID string, playerID entity.PlayerID) (*entity.Room, entity.Side, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, entity.NoSide, fmt.Errorf("failed to get player: %w", err)
	}

	if player.MatchID != matchID {
		return nil, entity.NoSide, fmt.Errorf("%w: player %s, match %s", apperror.ErrPlayerNotInMatch, playerID, matchID)
	}

	room, err := that.getRoom(ctx, matchID)
	if err != nil {
		return nil, entity.NoSide, err
	}

	return room, player.Side, nil
}

func (that *MatchManager) withController(room *entity.Room, fn func(controller *checkers.GameController) error) error {
	return room.WithMatch(func(match *entity.Match) error {
		return fn(checkers.NewGameController(match))
	})
}

func (that *MatchManager) snapshot(room *entity.Room) (*entity.Snapshot, error) {
	var snapshot *entity.Snapshot

	err := that.withController(room, func(controller *checkers.GameController) error {
		var err error
		snapshot, err = controller.Snapshot()

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to take snapshot: %w", err)
	}

	return snapshot, nil
}

func (that *MatchManager) getRoom(ctx context.Context, id string) (*entity.Room, error) {
	room, err := that.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return room, nil
}

func (that *MatchManager) updatePlayer(ctx context.Context, player *entity.Player) error {
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	return nil
}

func (that *MatchManager) deleteRoom(ctx context.Context, log *slog.Logger, id string) {
	if err := that.matchRepo.DeleteByID(ctx, id); err != nil {
		log.Error("failed to delete match", "matchID", id, "error", err)
	}
}

func (that *MatchManager) deletePlayer(ctx context.Context, log *slog.Logger, id entity.PlayerID) {
	if err := that.playerRepo.DeleteByID(ctx, id); err != nil {
		log.Error("failed to delete player", "playerID", id, "error", err)
	}
}

// logFailure - invariant violations are bugs and logged as errors; rejected commands are routine.
func (that *MatchManager) logFailure(log *slog.Logger, err error) {
	if errors.Is(err, apperror.ErrInvariantViolation) {
		log.Error("engine invariant violated", "error", err)
		return
	}

	log.Debug("command rejected", "error", err)
}
