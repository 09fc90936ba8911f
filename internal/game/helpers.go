package game

// HoldemInfo returns a standard no-limit hold'em ruleset for the given
// number of players: 1/2 blinds, 200-chip stacks, four rounds with a
// 0/3/1/1 board. Heads-up, the small blind acts first pre-flop and the big
// blind first after; with more players the seat after the big blind opens
// and the small blind leads later rounds.
func HoldemInfo(numPlayers int) *GameInfo {
	stacks := make([]int, numPlayers)
	blinds := make([]int, numPlayers)
	for i := range stacks {
		stacks[i] = 200
	}
	blinds[0] = 1
	blinds[1] = 2

	firstPlayer := []int{2 % numPlayers, 0, 0, 0}
	if numPlayers == 2 {
		firstPlayer = []int{0, 1, 1, 1}
	}

	return &GameInfo{
		StartingStacks: stacks,
		Blinds:         blinds,
		RaiseSizes:     []int{2, 2, 4, 4},
		MaxRaises:      []int{8, 8, 8, 8},
		FirstPlayer:    firstPlayer,
		NumBoardCards:  []int{0, 3, 1, 1},
		BettingType:    NoLimit,
		NumPlayers:     numPlayers,
		NumRounds:      4,
		NumSuits:       4,
		NumRanks:       13,
		NumHoleCards:   2,
	}
}
