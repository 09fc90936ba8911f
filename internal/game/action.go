package game

import "fmt"

// ActionKind enumerates the three betting moves.
type ActionKind int

const (
	Fold ActionKind = iota
	Call
	Raise
)

func (k ActionKind) String() string {
	return [...]string{"fold", "call", "raise"}[k]
}

// Action is a player's move. A check is a Call that adds no chips; a raise
// carries the total commitment level it raises to, not the increment.
type Action struct {
	Kind   ActionKind
	Amount int // raise-to amount, only meaningful for Raise
}

// FoldAction returns a fold.
func FoldAction() Action { return Action{Kind: Fold} }

// CallAction returns a call (or check, when nothing is owed).
func CallAction() Action { return Action{Kind: Call} }

// RaiseTo returns a raise to the given total commitment.
func RaiseTo(amount int) Action { return Action{Kind: Raise, Amount: amount} }

func (a Action) String() string {
	if a.Kind == Raise {
		return fmt.Sprintf("raise %d", a.Amount)
	}
	return a.Kind.String()
}
