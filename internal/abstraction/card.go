package abstraction

import (
	"fmt"

	"github.com/pokerforge/engine/internal/deck"
	"github.com/pokerforge/engine/internal/game"
)

// BucketID identifies a group of strategically similar card situations.
type BucketID uint32

// BucketStrategy selects how a round's cards collapse into buckets.
type BucketStrategy int

const (
	// NoBuckets gives every distinct card combination its own bucket.
	NoBuckets BucketStrategy = iota
	// LosslessBuckets groups suit-isomorphic combinations. Not implemented
	// yet; every situation maps to bucket 0.
	LosslessBuckets
)

func (s BucketStrategy) String() string {
	return [...]string{"none", "lossless"}[s]
}

// RoundBuckets buckets card situations for a single betting round.
type RoundBuckets struct {
	Strategy      BucketStrategy
	NumSuits      int
	NumRanks      int
	NumBoardCards int
	NumHoleCards  int
}

// NewRoundBuckets derives a round's bucketing from the ruleset.
func NewRoundBuckets(info *game.GameInfo, round int, strategy BucketStrategy) RoundBuckets {
	return RoundBuckets{
		Strategy:      strategy,
		NumSuits:      info.NumSuits,
		NumRanks:      info.NumRanks,
		NumBoardCards: info.TotalBoardCards(round),
		NumHoleCards:  info.NumHoleCards,
	}
}

// Bucket maps the visible cards to a bucket. Hole cards are encoded first,
// then board cards, each as a digit in a (ranks x suits) mixed-radix number.
func (rb RoundBuckets) Bucket(board, hole []deck.Card) BucketID {
	switch rb.Strategy {
	case LosslessBuckets:
		// TODO: suit-isomorphism reduction (Waugh's isomorphism paper).
		return 0
	default:
	}

	base := uint32(rb.NumSuits) * uint32(rb.NumRanks)
	var bucket uint32
	for i := 0; i < rb.NumHoleCards; i++ {
		if i > 0 {
			bucket *= base
		}
		bucket += uint32(hole[i].RankIndex())*uint32(rb.NumSuits) + uint32(hole[i].SuitIndex())
	}
	for i := 0; i < rb.NumBoardCards; i++ {
		bucket *= base
		bucket += uint32(board[i].RankIndex())*uint32(rb.NumSuits) + uint32(board[i].SuitIndex())
	}
	return BucketID(bucket)
}

// CardAbstraction holds one bucketing per betting round.
type CardAbstraction struct {
	rounds []RoundBuckets
}

// NewCardAbstraction builds a card abstraction with one entry per round.
func NewCardAbstraction(rounds []RoundBuckets) *CardAbstraction {
	return &CardAbstraction{rounds: rounds}
}

// ForGame builds a uniform card abstraction for every round of a game.
func ForGame(info *game.GameInfo, strategy BucketStrategy) *CardAbstraction {
	rounds := make([]RoundBuckets, info.NumRounds)
	for r := 0; r < info.NumRounds; r++ {
		rounds[r] = NewRoundBuckets(info, r, strategy)
	}
	return &CardAbstraction{rounds: rounds}
}

// Bucket returns the bucket for the given round's visible cards.
func (c *CardAbstraction) Bucket(round int, board, hole []deck.Card) (BucketID, error) {
	if round < 0 || round >= len(c.rounds) {
		return 0, fmt.Errorf("abstraction: no buckets for round %d", round)
	}
	rb := c.rounds[round]
	if len(hole) < rb.NumHoleCards || len(board) < rb.NumBoardCards {
		return 0, fmt.Errorf("abstraction: round %d needs %d hole and %d board cards, have %d and %d",
			round, rb.NumHoleCards, rb.NumBoardCards, len(hole), len(board))
	}
	return rb.Bucket(board, hole), nil
}
