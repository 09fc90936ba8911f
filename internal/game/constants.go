package game

// Capacity bounds for the fixed-size state arrays. GameState relies on these
// so a hand never allocates; exceeding MaxNumActions in a round is a reported
// transition failure, not silent growth.
const (
	MaxPlayers    = 22
	MaxRounds     = 4
	MaxNumActions = 32
	MaxBoardCards = 7
	MaxHoleCards  = 5
)
