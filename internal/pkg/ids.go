package pkg

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/checkers-backend/internal/entity"
)

// IDGenerator issues room ids from a monotonic counter and player ids as random UUIDs.
type IDGenerator struct {
	rooms atomic.Uint64
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// NextMatchID - generates a unique identifier for the room.
func (that *IDGenerator) NextMatchID() string {
	return strconv.FormatUint(that.rooms.Add(1), 10)
}

// NewPlayerID - generates a new unique player identity.
func (that *IDGenerator) NewPlayerID() entity.PlayerID {
	return entity.PlayerID(uuid.NewString())
}
