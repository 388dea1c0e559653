package entity

// PlayerID is an opaque identity token. The engine only compares it.
type PlayerID string

type Player struct {
	ID      PlayerID `json:"id"`
	MatchID string   `json:"match_id,omitempty"`
	Side    Side     `json:"side,omitempty"`
}

// Seat tells a client which identity and room it was given.
type Seat struct {
	PlayerID PlayerID `json:"player_id"`
	RoomID   string   `json:"room_id"`
}
