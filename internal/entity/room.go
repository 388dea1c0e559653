package entity

import "sync"

// Room owns a match and serializes every access to it.
type Room struct {
	ID string

	mu    sync.Mutex
	match *Match
}

func NewRoom(id string, match *Match) *Room {
	return &Room{
		ID:    id,
		match: match,
	}
}

// WithMatch - runs fn while holding the room lock. fn must not keep the match after it returns.
func (that *Room) WithMatch(fn func(match *Match) error) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	return fn(that.match)
}
