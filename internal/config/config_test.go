package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokerforge/engine/internal/game"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const holdemHCL = `
game {
  betting_type    = "nolimit"
  num_players     = 2
  num_rounds      = 4
  num_suits       = 4
  num_ranks       = 13
  num_hole_cards  = 2
  starting_stacks = [200, 200]
  blinds          = [1, 2]
  raise_sizes     = [2, 2, 4, 4]
  max_raises      = [8, 8, 8, 8]
  first_player    = [0, 1, 1, 1]
  num_board_cards = [0, 3, 1, 1]
}
`

func TestLoadGameInfo(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "holdem.hcl", holdemHCL)
	info, err := LoadGameInfo(path)
	require.NoError(t, err)

	assert.Equal(t, game.NoLimit, info.BettingType)
	assert.Equal(t, 2, info.NumPlayers)
	assert.Equal(t, []int{200, 200}, info.StartingStacks)
	assert.Equal(t, []int{1, 2}, info.Blinds)
	assert.Equal(t, []int{0, 3, 1, 1}, info.NumBoardCards)

	// The loaded ruleset drives a hand end to end.
	s := game.New(info, 1)
	s, err = s.ApplyAction(info, game.CallAction())
	require.NoError(t, err)
	assert.Equal(t, 1, s.CurrentRound())
}

func TestLoadGameInfoErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"missing file", ""},
		{"syntax error", `game {`},
		{
			"unknown betting type",
			`game {
  betting_type    = "spread"
  num_players     = 2
  num_rounds      = 1
  num_suits       = 4
  num_ranks       = 13
  num_hole_cards  = 1
  starting_stacks = [10, 10]
  blinds          = [1, 1]
  raise_sizes     = [2]
  max_raises      = [8]
  first_player    = [0]
  num_board_cards = [0]
}`,
		},
		{
			"length mismatch",
			`game {
  betting_type    = "limit"
  num_players     = 3
  num_rounds      = 1
  num_suits       = 4
  num_ranks       = 13
  num_hole_cards  = 1
  starting_stacks = [10, 10]
  blinds          = [1, 1, 0]
  raise_sizes     = [2]
  max_raises      = [8]
  first_player    = [0]
  num_board_cards = [0]
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "missing.hcl")
			if tt.content != "" {
				path = writeFile(t, "bad.hcl", tt.content)
			}
			_, err := LoadGameInfo(path)
			assert.Error(t, err)
		})
	}
}

const raisesHCL = `
raise "half_pot_early" {
  kind   = "potratio"
  ratio  = 1.5
  rounds = ["before:2", "before:1", "never", "never"]
}

raise "pot" {
  kind   = "potratio"
  ratio  = 2
  rounds = ["always", "always", "always", "always"]
}

raise "shove" {
  kind   = "allin"
  rounds = ["always", "always", "always", "always"]
}
`

func TestLoadActionAbstraction(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "raises.hcl", raisesHCL)
	aa, err := LoadActionAbstraction(path, 4)
	require.NoError(t, err)

	info := game.HoldemInfo(2)
	state := game.New(info, 1)
	got := aa.Actions(info, &state)

	// Pot-ratio 1.5 of the 2-chip bet is below the minimum raise of 4, so
	// the opening menu is fold, call, pot and all-in.
	want := []game.Action{
		game.FoldAction(),
		game.CallAction(),
		game.RaiseTo(4),
		game.RaiseTo(200),
	}
	assert.Equal(t, want, got)
}

func TestLoadActionAbstractionErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		rounds  int
	}{
		{
			"wrong round count",
			`raise "pot" {
  kind   = "potratio"
  ratio  = 2
  rounds = ["always", "always"]
}`,
			4,
		},
		{
			"unknown kind",
			`raise "x" {
  kind   = "martingale"
  rounds = ["always"]
}`,
			1,
		},
		{
			"potratio without ratio",
			`raise "x" {
  kind   = "potratio"
  rounds = ["always"]
}`,
			1,
		},
		{
			"fixed without chips",
			`raise "x" {
  kind   = "fixed"
  rounds = ["always"]
}`,
			1,
		},
		{
			"bad round rule",
			`raise "x" {
  kind   = "allin"
  rounds = ["sometimes"]
}`,
			1,
		},
		{
			"bad before count",
			`raise "x" {
  kind   = "allin"
  rounds = ["before:0"]
}`,
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, "bad.hcl", tt.content)
			_, err := LoadActionAbstraction(path, tt.rounds)
			assert.Error(t, err)
		})
	}
}
