package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/checkers-backend/internal/apperror"
	"github.com/rocketscienceinc/checkers-backend/internal/entity"
)

type PlayerRepository interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id entity.PlayerID) (*entity.Player, error)
	DeleteByID(ctx context.Context, id entity.PlayerID) error
}

type memPlayer struct {
	mu      sync.RWMutex
	players map[entity.PlayerID]entity.Player
}

func NewPlayerRepository() PlayerRepository {
	return &memPlayer{
		players: make(map[entity.PlayerID]entity.Player),
	}
}

func (that *memPlayer) CreateOrUpdate(ctx context.Context, player *entity.Player) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to set player: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.players[player.ID] = *player

	return nil
}

// GetByID - returns a copy; changes are stored with CreateOrUpdate.
func (that *memPlayer) GetByID(ctx context.Context, id entity.PlayerID) (*entity.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get player by ID: %w", err)
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	player, ok := that.players[id]
	if !ok {
		return nil, apperror.ErrPlayerNotFound
	}

	return &player, nil
}

func (that *memPlayer) DeleteByID(ctx context.Context, id entity.PlayerID) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to delete player by ID: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.players[id]; !ok {
		return apperror.ErrPlayerNotFound
	}

	delete(that.players, id)

	return nil
}
