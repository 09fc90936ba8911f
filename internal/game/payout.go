package game

import (
	"fmt"
	"math"

	"github.com/pokerforge/engine/internal/deck"
	"github.com/pokerforge/engine/internal/evaluator"
)

// Payout returns the queried player's net chip result for a finished hand:
// positive for a win, negative for a net cost. board holds the visible
// community cards and hole the hole cards per seat.
//
// A folded player simply loses what they spent, and that is answerable even
// before the hand finishes. Every other case requires a finished hand;
// asking earlier is a programmer error and panics, as does a broken
// invariant during side-pot resolution.
//
// Showdowns resolve pot layers from the smallest remaining commitment up:
// each layer is contested by everyone still funding it, folded players fund
// but never win, and the best rank class splits the layer. Players who ran
// out of chips early only contest the layers their commitment covers.
func (s *GameState) Payout(info *GameInfo, ev evaluator.Evaluator, board []deck.Card, hole [][]deck.Card, player int) int {
	if s.playersFolded[player] {
		return -s.spent[player]
	}

	if !s.finished {
		panic("game: payout requested before the hand finished")
	}

	// Single non-folder: they collect everyone else's commitment outright.
	if s.NumFolded(info)+1 == info.NumPlayers {
		value := 0
		for i := 0; i < info.NumPlayers; i++ {
			if i != player {
				value += s.spent[i]
			}
		}
		return value
	}

	type contender struct {
		spent int
		rank  evaluator.RankClass
		live  bool // folded players fund layers but cannot win them
	}

	contenders := make([]contender, 0, info.NumPlayers)
	playerIdx := -1
	for i := 0; i < info.NumPlayers; i++ {
		if s.spent[i] == 0 {
			continue
		}
		c := contender{spent: s.spent[i]}
		if !s.playersFolded[i] {
			c.live = true
			c.rank = rankFor(ev, hole[i], board)
			if i == player {
				playerIdx = len(contenders)
			}
		}
		contenders = append(contenders, c)
	}

	if len(contenders) < 2 {
		panic("game: showdown payout with fewer than two contributors")
	}
	if playerIdx < 0 {
		panic("game: payout player contributed no chips")
	}

	value := 0
	for {
		// The smallest remaining commitment defines this layer's size.
		size := math.MaxInt
		winRank := evaluator.RankClass(0)
		numWinners := 0
		for i := range contenders {
			if contenders[i].spent <= 0 {
				panic("game: contender with empty commitment in pot layer")
			}
			if contenders[i].spent < size {
				size = contenders[i].spent
			}
			if !contenders[i].live {
				continue
			}
			switch {
			case contenders[i].rank > winRank:
				winRank = contenders[i].rank
				numWinners = 1
			case contenders[i].rank == winRank:
				numWinners++
			}
		}
		if numWinners == 0 {
			panic("game: pot layer resolved with no winners")
		}

		if contenders[playerIdx].rank == winRank {
			// Integer split; any remainder is dropped, not redistributed.
			value += size * (len(contenders) - numWinners) / numWinners
		} else {
			value -= size
		}

		// Peel the layer off and drop exhausted contenders.
		kept := 0
		for i := range contenders {
			contenders[i].spent -= size
			if contenders[i].spent == 0 {
				if i == playerIdx {
					return value
				}
				continue
			}
			if i == playerIdx {
				playerIdx = kept
			}
			contenders[kept] = contenders[i]
			kept++
		}
		contenders = contenders[:kept]
	}
}

// rankFor evaluates one player's full hand. Hands of one or two cards use
// the built-in high-card/pair comparison, since the general evaluator needs
// more cards; degenerate small-deck variants never reach it.
func rankFor(ev evaluator.Evaluator, hole, board []deck.Card) evaluator.RankClass {
	cards := make([]deck.Card, 0, len(hole)+len(board))
	cards = append(cards, hole...)
	cards = append(cards, board...)

	switch len(cards) {
	case 1:
		return evaluator.HighCard(cards[0].Rank)
	case 2:
		if cards[0].Rank == cards[1].Rank {
			return evaluator.Pair(cards[0].Rank)
		}
		r := cards[0].Rank
		if cards[1].Rank > r {
			r = cards[1].Rank
		}
		return evaluator.HighCard(r)
	default:
		rc, err := ev.RankClass(cards)
		if err != nil {
			panic(fmt.Sprintf("game: hand evaluation failed: %v", err))
		}
		return rc
	}
}
