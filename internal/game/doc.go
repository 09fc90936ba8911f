// Package game implements the rules engine for a single poker hand.
//
// The two main types are GameInfo, the immutable ruleset (stakes, blinds,
// betting structure, round layout), and GameState, the per-hand betting state
// machine. GameState is a plain value: ApplyAction never mutates its
// receiver, it returns a fresh state, so callers can branch the action tree
// from any node (one goroutine per candidate action is safe).
//
// # Basic Usage
//
//	info := game.HoldemInfo(2) // or config.LoadGameInfo(path)
//	state := game.New(info, 1)
//	for !state.Finished() {
//	    p := state.CurrentPlayer()
//	    next, err := state.ApplyAction(info, chooseAction(p, &state))
//	    if err != nil {
//	        // protocol violation: pick another action
//	        continue
//	    }
//	    state = next
//	}
//
// Once a hand is finished, Payout reports each player's net chip result,
// including multi-way side-pot splits. Hand strength comes in through the
// evaluator.Evaluator interface; the engine only uses its total order.
//
// Errors returned by ApplyAction (finished hand, full action log, illegal
// action) are recoverable protocol violations. Calling CurrentPlayer on a
// finished state or Payout on an unfinished one is a programmer error and
// panics.
package game
