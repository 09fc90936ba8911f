package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/pokerforge/engine/internal/deck"
)

// BettingType selects the betting structure for a game.
type BettingType int

const (
	// Limit games use a fixed raise size per round.
	Limit BettingType = iota
	// NoLimit games allow raises up to the raiser's full stack.
	NoLimit
)

func (b BettingType) String() string {
	if b == NoLimit {
		return "nolimit"
	}
	return "limit"
}

// GameInfo holds the static ruleset of a poker game. It is immutable once
// validated and safe to share between any number of hands and goroutines.
type GameInfo struct {
	// StartingStacks and Blinds have one entry per player.
	StartingStacks []int
	Blinds         []int

	// RaiseSizes, MaxRaises, FirstPlayer and NumBoardCards have one entry
	// per betting round. RaiseSizes is the fixed raise increment for limit
	// games; FirstPlayer is the seat that acts first in that round.
	RaiseSizes    []int
	MaxRaises     []int
	FirstPlayer   []int
	NumBoardCards []int

	BettingType  BettingType
	NumPlayers   int
	NumRounds    int
	NumSuits     int
	NumRanks     int
	NumHoleCards int
}

// Validate checks the ruleset's structural invariants: every per-player
// slice has NumPlayers entries and every per-round slice has NumRounds
// entries, within the engine's capacity bounds. A failure here is a fatal
// configuration error, distinct from the protocol violations in errors.go.
func (g *GameInfo) Validate() error {
	if g.NumPlayers < 2 || g.NumPlayers > MaxPlayers {
		return fmt.Errorf("game: num_players %d out of range [2,%d]", g.NumPlayers, MaxPlayers)
	}
	if g.NumRounds < 1 || g.NumRounds > MaxRounds {
		return fmt.Errorf("game: num_rounds %d out of range [1,%d]", g.NumRounds, MaxRounds)
	}
	if len(g.StartingStacks) != g.NumPlayers {
		return fmt.Errorf("game: starting_stacks has %d entries, want %d", len(g.StartingStacks), g.NumPlayers)
	}
	if len(g.Blinds) != g.NumPlayers {
		return fmt.Errorf("game: blinds has %d entries, want %d", len(g.Blinds), g.NumPlayers)
	}
	if len(g.RaiseSizes) != g.NumRounds {
		return fmt.Errorf("game: raise_sizes has %d entries, want %d", len(g.RaiseSizes), g.NumRounds)
	}
	if len(g.MaxRaises) != g.NumRounds {
		return fmt.Errorf("game: max_raises has %d entries, want %d", len(g.MaxRaises), g.NumRounds)
	}
	if len(g.FirstPlayer) != g.NumRounds {
		return fmt.Errorf("game: first_player has %d entries, want %d", len(g.FirstPlayer), g.NumRounds)
	}
	if len(g.NumBoardCards) != g.NumRounds {
		return fmt.Errorf("game: num_board_cards has %d entries, want %d", len(g.NumBoardCards), g.NumRounds)
	}
	for i, p := range g.FirstPlayer {
		if p < 0 || p >= g.NumPlayers {
			return fmt.Errorf("game: first_player[%d] = %d out of range [0,%d)", i, p, g.NumPlayers)
		}
	}
	if g.NumHoleCards < 1 || g.NumHoleCards > MaxHoleCards {
		return fmt.Errorf("game: num_hole_cards %d out of range [1,%d]", g.NumHoleCards, MaxHoleCards)
	}
	if total := g.TotalBoardCards(g.NumRounds - 1); total > MaxBoardCards {
		return fmt.Errorf("game: %d total board cards exceeds max %d", total, MaxBoardCards)
	}
	return nil
}

// TotalBoardCards returns the number of board cards visible once the given
// round has been dealt. Board cards accumulate across rounds.
func (g *GameInfo) TotalBoardCards(round int) int {
	total := 0
	for i := 0; i <= round; i++ {
		total += g.NumBoardCards[i]
	}
	return total
}

// GenerateDeck returns a fresh unshuffled deck restricted to the game's
// rank and suit counts.
func (g *GameInfo) GenerateDeck() (*deck.Deck, error) {
	return deck.New(g.NumRanks, g.NumSuits)
}

// GenerateShuffledDeck returns a deck shuffled with the provided RNG. The
// RNG is caller-supplied so hands are reproducible under test.
func (g *GameInfo) GenerateShuffledDeck(rng *rand.Rand) (*deck.Deck, error) {
	d, err := g.GenerateDeck()
	if err != nil {
		return nil, err
	}
	d.Shuffle(rng)
	return d, nil
}

// DealHoleAndBoardCards shuffles a deck with the provided RNG and deals
// every player's hole cards followed by the full board for all rounds.
func (g *GameInfo) DealHoleAndBoardCards(rng *rand.Rand) (hole [][]deck.Card, board []deck.Card, err error) {
	d, err := g.GenerateShuffledDeck(rng)
	if err != nil {
		return nil, nil, err
	}

	needed := g.NumPlayers*g.NumHoleCards + g.TotalBoardCards(g.NumRounds-1)
	if d.Remaining() < needed {
		return nil, nil, fmt.Errorf("game: deck of %d cards cannot cover %d dealt cards", d.Remaining(), needed)
	}

	hole = make([][]deck.Card, g.NumPlayers)
	for i := 0; i < g.NumPlayers; i++ {
		hole[i] = d.DealN(g.NumHoleCards)
	}
	board = d.DealN(g.TotalBoardCards(g.NumRounds - 1))
	return hole, board, nil
}
