package game

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// GameState is the betting state of a single hand. It is a value type over
// fixed-capacity arrays: copying it is a plain assignment and ApplyAction
// returns a new state without touching its receiver, so old states remain
// valid for tree search.
//
// The ruleset is passed into each method rather than stored, keeping the
// state a self-contained, serialisable value.
type GameState struct {
	handID uint32

	// maxSpent is the largest cumulative commitment of any player, i.e. the
	// amount others must match to call. minNoLimitRaiseTo is the smallest
	// legal raise-to amount under no-limit rules.
	maxSpent          int
	minNoLimitRaiseTo int

	spent         [MaxPlayers]int
	stackPlayer   [MaxPlayers]int
	sumRoundSpent [MaxRounds][MaxPlayers]int

	// actions[r][i] and actingPlayer[r][i] record the ith action of round r.
	actions      [MaxRounds][MaxNumActions]Action
	actingPlayer [MaxRounds][MaxNumActions]int
	numActions   [MaxRounds]int

	activePlayer  int
	round         int
	finished      bool
	playersFolded [MaxPlayers]bool
}

// New constructs the initial state of a hand: blinds posted, round 0, the
// configured first player to act. The ruleset must have passed Validate.
func New(info *GameInfo, handID uint32) GameState {
	s := GameState{handID: handID}

	for i := 0; i < info.NumPlayers; i++ {
		s.spent[i] = info.Blinds[i]
		s.sumRoundSpent[0][i] = info.Blinds[i]
		if info.Blinds[i] > s.maxSpent {
			s.maxSpent = info.Blinds[i]
		}
		s.stackPlayer[i] = info.StartingStacks[i]
	}

	switch {
	case info.BettingType == NoLimit && s.maxSpent > 0:
		s.minNoLimitRaiseTo = s.maxSpent * 2
	case info.BettingType == NoLimit:
		s.minNoLimitRaiseTo = 1
	default:
		s.minNoLimitRaiseTo = 0
	}

	s.activePlayer = info.FirstPlayer[0]
	return s
}

// HandID returns the caller-assigned hand identifier.
func (s *GameState) HandID() uint32 {
	return s.handID
}

// PotTotal returns the sum of all players' commitments.
func (s *GameState) PotTotal(info *GameInfo) int {
	total := 0
	for i := 0; i < info.NumPlayers; i++ {
		total += s.spent[i]
	}
	return total
}

// PlayerStack returns the player's starting stack, the ceiling on their
// commitment.
func (s *GameState) PlayerStack(player int) int {
	return s.stackPlayer[player]
}

// PlayerSpent returns the player's cumulative commitment for the hand.
func (s *GameState) PlayerSpent(player int) int {
	return s.spent[player]
}

// RoundSpent returns the chips the player committed within the given round.
func (s *GameState) RoundSpent(round, player int) int {
	return s.sumRoundSpent[round][player]
}

// CurrentRound returns the current betting round index.
func (s *GameState) CurrentRound() int {
	return s.round
}

// MaxSpent returns the largest cumulative commitment of any player, the
// amount a call must match.
func (s *GameState) MaxSpent() int {
	return s.maxSpent
}

// MinNoLimitRaiseTo returns the smallest legal raise-to amount under
// no-limit rules.
func (s *GameState) MinNoLimitRaiseTo() int {
	return s.minNoLimitRaiseTo
}

// Finished reports whether the hand has reached a terminal state.
func (s *GameState) Finished() bool {
	return s.finished
}

// CurrentPlayer returns the seat whose turn it is. It panics on a finished
// state; check Finished first.
func (s *GameState) CurrentPlayer() int {
	if s.finished {
		panic("game: no current player, hand is finished")
	}
	return s.activePlayer
}

// HasFolded reports whether the player has folded.
func (s *GameState) HasFolded(player int) bool {
	return s.playersFolded[player]
}

// NumActivePlayers counts players who can still act: neither folded nor
// fully committed.
func (s *GameState) NumActivePlayers(info *GameInfo) int {
	count := 0
	for i := 0; i < info.NumPlayers; i++ {
		if !s.playersFolded[i] && s.spent[i] < s.stackPlayer[i] {
			count++
		}
	}
	return count
}

// NumFolded counts folded players.
func (s *GameState) NumFolded(info *GameInfo) int {
	count := 0
	for i := 0; i < info.NumPlayers; i++ {
		if s.playersFolded[i] {
			count++
		}
	}
	return count
}

// NumCalled counts players who have matched the current bet this round and
// can still act. The scan walks the round's log backwards and stops at the
// last raise, since a raise reopens the action for everyone before it.
func (s *GameState) NumCalled(info *GameInfo) int {
	count := 0
	for i := s.numActions[s.round] - 1; i >= 0; i-- {
		player := s.actingPlayer[s.round][i]
		switch s.actions[s.round][i].Kind {
		case Raise:
			if s.spent[player] < s.stackPlayer[player] {
				count++
			}
			return count
		case Call:
			if s.spent[player] < s.stackPlayer[player] {
				count++
			}
		}
	}
	return count
}

// NumRaises counts raises made in the current round.
func (s *GameState) NumRaises() int {
	count := 0
	for i := 0; i < s.numActions[s.round]; i++ {
		if s.actions[s.round][i].Kind == Raise {
			count++
		}
	}
	return count
}

// NumRoundActions returns the number of actions recorded for a round.
func (s *GameState) NumRoundActions(round int) int {
	return s.numActions[round]
}

// ActionAt returns the ith action of a round and the seat that made it.
func (s *GameState) ActionAt(round, i int) (Action, int) {
	return s.actions[round][i], s.actingPlayer[round][i]
}

// nextPlayer returns the next seat after the active player that can still
// act. The active player can act in the receiver state, so the wrap-around
// scan always terminates.
func (s *GameState) nextPlayer(info *GameInfo) int {
	p := s.activePlayer
	for {
		p = (p + 1) % info.NumPlayers
		if !s.playersFolded[p] && s.spent[p] < s.stackPlayer[p] {
			return p
		}
	}
}

// RaiseRange returns the legal raise-to interval for the active player under
// no-limit rules. A (0, 0) result means no raise is possible: the round's
// raise cap is hit, too few players can act, or the action log could not fit
// a raise plus everyone's response. A player whose whole stack is below the
// minimum raise may still push all-in as the only raise size, unless the
// current bet already covers their stack.
func (s *GameState) RaiseRange(info *GameInfo) (int, int) {
	if s.finished {
		return 0, 0
	}

	if s.NumRaises() >= info.MaxRaises[s.round] {
		return 0, 0
	}

	if s.numActions[s.round]+info.NumPlayers > MaxNumActions {
		log.Warn("raise disabled, action log near capacity",
			"round", s.round, "actions", s.numActions[s.round])
		return 0, 0
	}

	if s.NumActivePlayers(info) <= 1 {
		return 0, 0
	}

	if info.BettingType == Limit {
		log.Warn("raise range queried for a limit game")
		return 0, 0
	}

	minRaise := s.minNoLimitRaiseTo
	maxRaise := s.stackPlayer[s.activePlayer]
	if maxRaise < s.minNoLimitRaiseTo {
		if s.maxSpent >= maxRaise {
			return 0, 0
		}
		minRaise = maxRaise
	}
	return minRaise, maxRaise
}

// IsValidAction reports whether the action is legal for the active player.
// Every action is illegal once the hand is finished. A call is always legal
// (a check is a call for zero chips); a fold is illegal only for a player
// who is already all-in.
func (s *GameState) IsValidAction(info *GameInfo, a Action) bool {
	if s.finished {
		return false
	}

	switch a.Kind {
	case Fold:
		return s.spent[s.activePlayer] != s.stackPlayer[s.activePlayer]
	case Call:
		return true
	case Raise:
		if s.NumRaises() >= info.MaxRaises[s.round] {
			return false
		}
		if info.BettingType == Limit {
			return a.Amount == info.RaiseSizes[s.round]
		}
		minRaise, maxRaise := s.RaiseRange(info)
		if maxRaise == 0 {
			return false
		}
		return a.Amount >= minRaise && a.Amount <= maxRaise
	}
	return false
}

// spentBefore returns the player's cumulative commitment in rounds before
// the given one.
func (s *GameState) spentBefore(round, player int) int {
	total := 0
	for r := 0; r < round; r++ {
		total += s.sumRoundSpent[r][player]
	}
	return total
}

// ApplyAction records the active player's action and returns the resulting
// state. The receiver is never modified. Failures are protocol violations:
// ErrHandFinished, ErrRoundFull, or ErrInvalidAction.
//
// After the chip effects, the turn passes to the next seat that can act.
// The hand finishes immediately when at most one player remains unfolded.
// Otherwise the round closes once every player who can still act has
// called: play either advances to the next round, skips straight to a
// showdown when fewer than two players can act, or finishes after the last
// round.
func (s *GameState) ApplyAction(info *GameInfo, a Action) (GameState, error) {
	if s.finished {
		return GameState{}, ErrHandFinished
	}
	if s.numActions[s.round] >= MaxNumActions {
		return GameState{}, ErrRoundFull
	}
	if !s.IsValidAction(info, a) {
		return GameState{}, fmt.Errorf("%w: %s", ErrInvalidAction, a)
	}

	next := *s
	player := s.activePlayer

	next.actions[s.round][s.numActions[s.round]] = a
	next.actingPlayer[s.round][s.numActions[s.round]] = player
	next.numActions[s.round]++

	switch a.Kind {
	case Fold:
		next.playersFolded[player] = true

	case Call:
		// A call never exceeds the caller's own stack; calling with a
		// short stack is how all-in-by-call is represented.
		total := next.maxSpent
		if total > next.stackPlayer[player] {
			total = next.stackPlayer[player]
		}
		next.spent[player] = total
		next.sumRoundSpent[s.round][player] = total - next.spentBefore(s.round, player)

	case Raise:
		switch info.BettingType {
		case NoLimit:
			// The next raise must grow by at least the size of this one.
			if 2*a.Amount-next.maxSpent > next.minNoLimitRaiseTo {
				next.minNoLimitRaiseTo = 2*a.Amount - next.maxSpent
			}
			next.maxSpent = a.Amount
		case Limit:
			if next.maxSpent+info.RaiseSizes[next.round] > next.stackPlayer[player] {
				next.maxSpent = next.stackPlayer[player]
			} else {
				next.maxSpent += info.RaiseSizes[next.round]
			}
		}
		next.spent[player] = next.maxSpent
		next.sumRoundSpent[next.round][player] = next.maxSpent - next.spentBefore(next.round, player)
	}

	next.activePlayer = s.nextPlayer(info)

	if next.NumFolded(info)+1 >= info.NumPlayers {
		next.finished = true
	} else if next.NumCalled(info) >= next.NumActivePlayers(info) {
		if next.NumActivePlayers(info) > 1 {
			if next.round+1 < info.NumRounds {
				next.round++
				next.minNoLimitRaiseTo = 1
				for i := 0; i < info.NumPlayers; i++ {
					if info.Blinds[i] > next.minNoLimitRaiseTo {
						next.minNoLimitRaiseTo = info.Blinds[i]
					}
				}
				next.minNoLimitRaiseTo += next.maxSpent
				next.activePlayer = info.FirstPlayer[next.round]
				for next.playersFolded[next.activePlayer] || next.spent[next.activePlayer] >= next.stackPlayer[next.activePlayer] {
					next.activePlayer = (next.activePlayer + 1) % info.NumPlayers
				}
			} else {
				next.finished = true
			}
		} else {
			// Forced all-in showdown: nobody left to bet, run out the board.
			next.finished = true
			next.round = info.NumRounds - 1
		}
	}

	return next, nil
}
