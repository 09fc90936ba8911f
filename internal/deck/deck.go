package deck

import (
	"fmt"
	rand "math/rand/v2"
)

// Deck represents an ordered deck of playing cards. Decks are generated from
// a rank and suit count so that reduced variants (Kuhn, Leduc) use the same
// code path as a full 52-card deck. Shuffling requires an explicit RNG; the
// package never reaches for process-wide randomness.
type Deck struct {
	cards []Card
	next  int
}

// New creates an unshuffled deck containing every (rank, suit) combination
// within the first numRanks ranks and numSuits suits.
func New(numRanks, numSuits int) (*Deck, error) {
	if numRanks < 1 || numRanks > NumRanks {
		return nil, fmt.Errorf("deck: rank count %d out of range [1,%d]", numRanks, NumRanks)
	}
	if numSuits < 1 || numSuits > NumSuits {
		return nil, fmt.Errorf("deck: suit count %d out of range [1,%d]", numSuits, NumSuits)
	}

	d := &Deck{cards: make([]Card, 0, numRanks*numSuits)}
	for r := Two; r < Two+Rank(numRanks); r++ {
		for s := Spades; s < Suit(numSuits); s++ {
			d.cards = append(d.cards, NewCard(r, s))
		}
	}
	return d, nil
}

// Shuffle randomizes the order of the remaining cards using the provided RNG.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards)-d.next, func(i, j int) {
		d.cards[d.next+i], d.cards[d.next+j] = d.cards[d.next+j], d.cards[d.next+i]
	})
}

// Deal removes and returns the top card from the deck
func (d *Deck) Deal() (Card, bool) {
	if d.next >= len(d.cards) {
		return Card{}, false
	}
	c := d.cards[d.next]
	d.next++
	return c, true
}

// DealN deals up to n cards from the deck
func (d *Deck) DealN(n int) []Card {
	if remaining := len(d.cards) - d.next; n > remaining {
		n = remaining
	}
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		c, _ := d.Deal()
		cards = append(cards, c)
	}
	return cards
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Cards returns the undealt cards in order. The slice aliases the deck's
// backing storage and must not be modified.
func (d *Deck) Cards() []Card {
	return d.cards[d.next:]
}

// Reset restores every dealt card, preserving the current order.
func (d *Deck) Reset() {
	d.next = 0
}
