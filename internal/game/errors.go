package game

import "errors"

// Protocol violations returned by ApplyAction. Callers branch on these to
// re-prompt for a legal action; they never indicate engine corruption.
var (
	// ErrHandFinished is returned when an action is applied to a finished hand.
	ErrHandFinished = errors.New("game: hand is already finished")

	// ErrRoundFull is returned when the current round's action log is at capacity.
	ErrRoundFull = errors.New("game: betting round is at max actions")

	// ErrInvalidAction is returned when the proposed action fails validation.
	ErrInvalidAction = errors.New("game: action is not legal in this state")
)
