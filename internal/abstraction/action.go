// Package abstraction maps the solver's coarse view of a game onto the
// exact rules engine: abstract raise sizes become concrete raise-to
// amounts, and card situations become bucket identifiers. Both abstractions
// are closed tagged variants chosen at construction time, so no runtime
// reflection is involved in loading or storing them.
package abstraction

import (
	"fmt"

	"github.com/pokerforge/engine/internal/game"
)

// RaiseKind enumerates the abstract raise flavours a solver may use.
type RaiseKind int

const (
	// AllIn raises to the active player's full stack.
	AllIn RaiseKind = iota
	// PotRatio raises to a multiple of the current call amount.
	PotRatio
	// Fixed raises by a fixed chip amount; mostly useful for limit games.
	Fixed
)

func (k RaiseKind) String() string {
	return [...]string{"allin", "potratio", "fixed"}[k]
}

// RoundRuleKind says when during a round an abstract raise is available.
type RoundRuleKind int

const (
	NotAllowed RoundRuleKind = iota
	Always
	// Before allows the raise only before Count raises have been made.
	Before
)

// RoundRule is the availability of one abstract raise in one round.
type RoundRule struct {
	Kind  RoundRuleKind
	Count int // raise threshold for Before
}

// AbstractRaise is one abstract raise size with per-round availability.
type AbstractRaise struct {
	Kind  RaiseKind
	Ratio float64 // PotRatio multiplier
	Chips int     // Fixed increment

	// RoundRules has one entry per betting round.
	RoundRules []RoundRule
}

// ActionAbstraction generates the abstract action set for a state.
type ActionAbstraction struct {
	possibleRaises []AbstractRaise
}

// New builds an action abstraction from the given raise menu. Each raise
// must carry a rule for every round of the game it is used with.
func New(raises []AbstractRaise) *ActionAbstraction {
	return &ActionAbstraction{possibleRaises: raises}
}

// Validate checks every raise covers numRounds rounds.
func (a *ActionAbstraction) Validate(numRounds int) error {
	for i, r := range a.possibleRaises {
		if len(r.RoundRules) != numRounds {
			return fmt.Errorf("abstraction: raise %d has %d round rules, want %d", i, len(r.RoundRules), numRounds)
		}
	}
	return nil
}

// allowed reports whether the raise is available given the round and the
// number of raises already made.
func (r *AbstractRaise) allowed(round, numRaises int) bool {
	rule := r.RoundRules[round]
	switch rule.Kind {
	case Always:
		return true
	case Before:
		return rule.Count > numRaises
	default:
		return false
	}
}

// ConcreteRaise translates an abstract raise into a legal concrete action
// for the state, or reports that none exists.
func ConcreteRaise(info *game.GameInfo, state *game.GameState, raise *AbstractRaise) (game.Action, bool) {
	if state.Finished() || !raise.allowed(state.CurrentRound(), state.NumRaises()) {
		return game.Action{}, false
	}

	var action game.Action
	switch raise.Kind {
	case AllIn:
		action = game.RaiseTo(state.PlayerStack(state.CurrentPlayer()))
	case Fixed:
		if info.BettingType == game.NoLimit {
			action = game.RaiseTo(state.MaxSpent() + raise.Chips)
		} else {
			action = game.RaiseTo(raise.Chips)
		}
	case PotRatio:
		action = game.RaiseTo(int(float64(state.MaxSpent()) * raise.Ratio))
	}

	if !state.IsValidAction(info, action) {
		return game.Action{}, false
	}
	return action, true
}

// Actions returns the legal abstract actions for the state: fold and call
// when valid, plus every abstract raise that maps to a legal concrete
// raise. Distinct abstract raises can collapse to the same concrete amount
// (e.g. a pot-ratio raise equal to an all-in); duplicates are dropped.
func (a *ActionAbstraction) Actions(info *game.GameInfo, state *game.GameState) []game.Action {
	var actions []game.Action

	if state.IsValidAction(info, game.FoldAction()) {
		actions = append(actions, game.FoldAction())
	}
	if state.IsValidAction(info, game.CallAction()) {
		actions = append(actions, game.CallAction())
	}

	for i := range a.possibleRaises {
		action, ok := ConcreteRaise(info, state, &a.possibleRaises[i])
		if !ok {
			continue
		}
		dup := false
		for _, seen := range actions {
			if seen == action {
				dup = true
				break
			}
		}
		if !dup {
			actions = append(actions, action)
		}
	}

	return actions
}
