package entity

// Snapshot is the serializable view of a match sent to both participants.
type Snapshot struct {
	PlayerTurn    PlayerID     `json:"playerTurn"`
	SecondMove    *int         `json:"secondMove"`
	Players       [2]*PlayerID `json:"players"`
	Board         []string     `json:"board"`
	MovablePieces []int        `json:"movablePieces"`
	State         Outcome      `json:"state"`
}

// LegalMoves answers a destination query for a single piece.
type LegalMoves struct {
	PlayerID        PlayerID `json:"player_id"`
	Pieces          []int    `json:"pieces"`
	PieceBeingMoved int      `json:"pieceBeingMoved"`
}
