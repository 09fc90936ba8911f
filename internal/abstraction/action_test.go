package abstraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokerforge/engine/internal/game"
)

func always(numRounds int) []RoundRule {
	rules := make([]RoundRule, numRounds)
	for i := range rules {
		rules[i] = RoundRule{Kind: Always}
	}
	return rules
}

func TestValidate(t *testing.T) {
	t.Parallel()

	aa := New([]AbstractRaise{{Kind: AllIn, RoundRules: always(4)}})
	require.NoError(t, aa.Validate(4))
	assert.Error(t, aa.Validate(3), "rule count must match the round count")
}

func TestConcreteRaiseMapping(t *testing.T) {
	t.Parallel()

	info := game.HoldemInfo(2)
	state := game.New(info, 1)

	tests := []struct {
		name  string
		raise AbstractRaise
		want  game.Action
		ok    bool
	}{
		{
			name:  "all-in targets the full stack",
			raise: AbstractRaise{Kind: AllIn, RoundRules: always(4)},
			want:  game.RaiseTo(200),
			ok:    true,
		},
		{
			name:  "pot ratio multiplies the call amount",
			raise: AbstractRaise{Kind: PotRatio, Ratio: 3, RoundRules: always(4)},
			want:  game.RaiseTo(6),
			ok:    true,
		},
		{
			name:  "fixed adds chips above the call amount",
			raise: AbstractRaise{Kind: Fixed, Chips: 10, RoundRules: always(4)},
			want:  game.RaiseTo(12),
			ok:    true,
		},
		{
			name:  "pot ratio below the minimum raise is dropped",
			raise: AbstractRaise{Kind: PotRatio, Ratio: 1.5, RoundRules: always(4)},
			ok:    false,
		},
		{
			name:  "never-allowed raise is dropped",
			raise: AbstractRaise{Kind: AllIn, RoundRules: make([]RoundRule, 4)},
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ConcreteRaise(info, &state, &tt.raise)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBeforeRuleCountsRaises(t *testing.T) {
	t.Parallel()

	info := game.HoldemInfo(2)
	state := game.New(info, 1)

	capped := AbstractRaise{
		Kind: PotRatio, Ratio: 2,
		RoundRules: []RoundRule{{Kind: Before, Count: 1}, {}, {}, {}},
	}

	_, ok := ConcreteRaise(info, &state, &capped)
	assert.True(t, ok, "no raises yet, Before:1 applies")

	next, err := state.ApplyAction(info, game.RaiseTo(10))
	require.NoError(t, err)

	_, ok = ConcreteRaise(info, &next, &capped)
	assert.False(t, ok, "one raise made, Before:1 no longer applies")
}

func TestActionsMenu(t *testing.T) {
	t.Parallel()

	info := game.HoldemInfo(2)
	state := game.New(info, 1)

	aa := New([]AbstractRaise{
		{Kind: PotRatio, Ratio: 2, RoundRules: always(4)},
		{Kind: AllIn, RoundRules: always(4)},
	})
	require.NoError(t, aa.Validate(info.NumRounds))

	got := aa.Actions(info, &state)
	want := []game.Action{
		game.FoldAction(),
		game.CallAction(),
		game.RaiseTo(4),
		game.RaiseTo(200),
	}
	assert.Equal(t, want, got)
}

func TestActionsDropDuplicateRaises(t *testing.T) {
	t.Parallel()

	info := game.HoldemInfo(2)
	info.StartingStacks = []int{4, 4}
	state := game.New(info, 1)

	// Pot-ratio 2 resolves to raise-to 4, the same as the all-in.
	aa := New([]AbstractRaise{
		{Kind: PotRatio, Ratio: 2, RoundRules: always(4)},
		{Kind: AllIn, RoundRules: always(4)},
	})

	got := aa.Actions(info, &state)
	want := []game.Action{
		game.FoldAction(),
		game.CallAction(),
		game.RaiseTo(4),
	}
	assert.Equal(t, want, got)
}

func TestActionsOnFinishedHand(t *testing.T) {
	t.Parallel()

	info := game.HoldemInfo(2)
	state := game.New(info, 1)
	next, err := state.ApplyAction(info, game.FoldAction())
	require.NoError(t, err)

	aa := New([]AbstractRaise{{Kind: AllIn, RoundRules: always(4)}})
	assert.Empty(t, aa.Actions(info, &next))
}
