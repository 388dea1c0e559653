package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/checkers-backend/internal/apperror"
	"github.com/rocketscienceinc/checkers-backend/internal/entity"
)

type MatchRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	GetByID(ctx context.Context, id string) (*entity.Room, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Room, error)
}

type memMatch struct {
	mu    sync.RWMutex
	rooms map[string]*entity.Room
	limit int
}

// NewMatchRepository - in-memory room registry. A limit of zero means unbounded.
func NewMatchRepository(limit int) MatchRepository {
	return &memMatch{
		rooms: make(map[string]*entity.Room),
		limit: limit,
	}
}

func (that *memMatch) Create(ctx context.Context, room *entity.Room) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.rooms[room.ID]; ok {
		return fmt.Errorf("%w: id %s", apperror.ErrMatchExists, room.ID)
	}

	if that.limit > 0 && len(that.rooms) >= that.limit {
		return fmt.Errorf("%w: %d", apperror.ErrTooManyMatches, that.limit)
	}

	that.rooms[room.ID] = room

	return nil
}

func (that *memMatch) GetByID(ctx context.Context, id string) (*entity.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	room, ok := that.rooms[id]
	if !ok {
		return nil, apperror.ErrMatchNotFound
	}

	return room, nil
}

func (that *memMatch) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.rooms[id]; !ok {
		return apperror.ErrMatchNotFound
	}

	delete(that.rooms, id)

	return nil
}

// List - every registered room, in no particular order.
func (that *memMatch) List(ctx context.Context) ([]*entity.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	rooms := make([]*entity.Room, 0, len(that.rooms))
	for _, room := range that.rooms {
		rooms = append(rooms, room)
	}

	return rooms, nil
}
