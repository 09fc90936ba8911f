// Package evaluator supplies the hand-strength collaborator for the rules
// engine. The engine never looks inside a RankClass; it only compares them,
// so any totally ordered implementation can be swapped in.
package evaluator

import (
	"fmt"

	"github.com/paulhankin/poker"

	"github.com/pokerforge/engine/internal/deck"
)

// RankClass is an ordered hand-strength category: a larger value beats a
// smaller one, equal values split. Values are opaque; only ordering and
// equality are meaningful, and only between hands of the same game.
type RankClass int32

// Evaluator turns a set of cards (hole plus board) into a RankClass.
type Evaluator interface {
	RankClass(cards []deck.Card) (RankClass, error)
}

// Categories for the built-in small-hand classes. General evaluations are
// offset above every built-in class; the two never meet within one game
// because all hands in a game have the same card count.
const (
	highCardCategory = 1
	pairCategory     = 2
	generalOffset    = 1 << 16
)

// HighCard returns the class of a one-card (or unpaired two-card) hand.
func HighCard(r deck.Rank) RankClass {
	return RankClass(highCardCategory<<8 | int(r))
}

// Pair returns the class of a paired two-card hand. Any pair beats any
// high card.
func Pair(r deck.Rank) RankClass {
	return RankClass(pairCategory<<8 | int(r))
}

// Standard evaluates 3-, 5-, 6- and 7-card hands using the paulhankin/poker
// lookup tables. Hands of one or two cards are the engine's own fallback
// (HighCard/Pair above) since the tables need at least three cards.
type Standard struct{}

// NewStandard returns the table-backed evaluator.
func NewStandard() Standard {
	return Standard{}
}

// RankClass implements Evaluator. Six-card hands are scored as the best
// five-card subset.
func (Standard) RankClass(cards []deck.Card) (RankClass, error) {
	switch len(cards) {
	case 3:
		var h [3]poker.Card
		if err := convert(cards, h[:]); err != nil {
			return 0, err
		}
		return general(poker.Eval3(&h)), nil
	case 5:
		var h [5]poker.Card
		if err := convert(cards, h[:]); err != nil {
			return 0, err
		}
		return general(poker.Eval5(&h)), nil
	case 6:
		var h [6]poker.Card
		if err := convert(cards, h[:]); err != nil {
			return 0, err
		}
		best := RankClass(0)
		var sub [5]poker.Card
		for skip := 0; skip < 6; skip++ {
			j := 0
			for i, c := range h {
				if i == skip {
					continue
				}
				sub[j] = c
				j++
			}
			if rc := general(poker.Eval5(&sub)); rc > best {
				best = rc
			}
		}
		return best, nil
	case 7:
		var h [7]poker.Card
		if err := convert(cards, h[:]); err != nil {
			return 0, err
		}
		return general(poker.Eval7(&h)), nil
	default:
		return 0, fmt.Errorf("evaluator: unsupported hand size %d", len(cards))
	}
}

func general(score int16) RankClass {
	return RankClass(generalOffset + int32(score))
}

// convert maps engine cards onto the library's representation. The library
// numbers suits club, diamond, heart, spade and ranks ace=1 through king=13.
func convert(cards []deck.Card, out []poker.Card) error {
	for i, c := range cards {
		var suit poker.Suit
		switch c.Suit {
		case deck.Clubs:
			suit = poker.Suit(0)
		case deck.Diamonds:
			suit = poker.Suit(1)
		case deck.Hearts:
			suit = poker.Suit(2)
		case deck.Spades:
			suit = poker.Suit(3)
		}

		rank := int(c.Rank)
		if c.Rank == deck.Ace {
			rank = 1
		}

		pc, err := poker.MakeCard(suit, poker.Rank(rank))
		if err != nil {
			return fmt.Errorf("evaluator: bad card %s: %w", c, err)
		}
		out[i] = pc
	}
	return nil
}
