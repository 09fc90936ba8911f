// Package config loads game rules and action abstractions from HCL files.
// A failure here is a fatal configuration error; it is reported before any
// hand starts and is distinct from the engine's run-time protocol errors.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/pokerforge/engine/internal/abstraction"
	"github.com/pokerforge/engine/internal/game"
)

type gameFile struct {
	Game gameBlock `hcl:"game,block"`
}

type gameBlock struct {
	BettingType    string `hcl:"betting_type"`
	NumPlayers     int    `hcl:"num_players"`
	NumRounds      int    `hcl:"num_rounds"`
	NumSuits       int    `hcl:"num_suits"`
	NumRanks       int    `hcl:"num_ranks"`
	NumHoleCards   int    `hcl:"num_hole_cards"`
	StartingStacks []int  `hcl:"starting_stacks"`
	Blinds         []int  `hcl:"blinds"`
	RaiseSizes     []int  `hcl:"raise_sizes"`
	MaxRaises      []int  `hcl:"max_raises"`
	FirstPlayer    []int  `hcl:"first_player"`
	NumBoardCards  []int  `hcl:"num_board_cards"`
}

// LoadGameInfo reads and validates a ruleset from an HCL file.
func LoadGameInfo(filename string) (*game.GameInfo, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse %s: %s", filename, diags.Error())
	}

	var raw gameFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode %s: %s", filename, diags.Error())
	}

	info, err := gameInfoFromBlock(&raw.Game)
	if err != nil {
		return nil, err
	}
	if err := info.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", filename, err)
	}
	return info, nil
}

func gameInfoFromBlock(b *gameBlock) (*game.GameInfo, error) {
	var betting game.BettingType
	switch strings.ToLower(b.BettingType) {
	case "limit":
		betting = game.Limit
	case "nolimit":
		betting = game.NoLimit
	default:
		return nil, fmt.Errorf("config: unknown betting_type %q", b.BettingType)
	}

	return &game.GameInfo{
		StartingStacks: b.StartingStacks,
		Blinds:         b.Blinds,
		RaiseSizes:     b.RaiseSizes,
		MaxRaises:      b.MaxRaises,
		FirstPlayer:    b.FirstPlayer,
		NumBoardCards:  b.NumBoardCards,
		BettingType:    betting,
		NumPlayers:     b.NumPlayers,
		NumRounds:      b.NumRounds,
		NumSuits:       b.NumSuits,
		NumRanks:       b.NumRanks,
		NumHoleCards:   b.NumHoleCards,
	}, nil
}

type abstractionFile struct {
	Raises []raiseBlock `hcl:"raise,block"`
}

type raiseBlock struct {
	Name   string   `hcl:"name,label"`
	Kind   string   `hcl:"kind"`
	Ratio  float64  `hcl:"ratio,optional"`
	Chips  int      `hcl:"chips,optional"`
	Rounds []string `hcl:"rounds"`
}

// LoadActionAbstraction reads a raise menu from an HCL file. Round rules
// are written as "always", "never" or "before:N", one per betting round.
func LoadActionAbstraction(filename string, numRounds int) (*abstraction.ActionAbstraction, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse %s: %s", filename, diags.Error())
	}

	var raw abstractionFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode %s: %s", filename, diags.Error())
	}

	raises := make([]abstraction.AbstractRaise, 0, len(raw.Raises))
	for _, rb := range raw.Raises {
		raise, err := raiseFromBlock(&rb)
		if err != nil {
			return nil, fmt.Errorf("config: raise %q: %w", rb.Name, err)
		}
		raises = append(raises, raise)
	}

	aa := abstraction.New(raises)
	if err := aa.Validate(numRounds); err != nil {
		return nil, fmt.Errorf("config: %s: %w", filename, err)
	}
	return aa, nil
}

func raiseFromBlock(rb *raiseBlock) (abstraction.AbstractRaise, error) {
	raise := abstraction.AbstractRaise{Ratio: rb.Ratio, Chips: rb.Chips}

	switch strings.ToLower(rb.Kind) {
	case "allin":
		raise.Kind = abstraction.AllIn
	case "potratio":
		raise.Kind = abstraction.PotRatio
		if rb.Ratio <= 0 {
			return raise, fmt.Errorf("potratio raise needs a positive ratio")
		}
	case "fixed":
		raise.Kind = abstraction.Fixed
		if rb.Chips <= 0 {
			return raise, fmt.Errorf("fixed raise needs a positive chip amount")
		}
	default:
		return raise, fmt.Errorf("unknown raise kind %q", rb.Kind)
	}

	raise.RoundRules = make([]abstraction.RoundRule, 0, len(rb.Rounds))
	for _, r := range rb.Rounds {
		rule, err := parseRoundRule(r)
		if err != nil {
			return raise, err
		}
		raise.RoundRules = append(raise.RoundRules, rule)
	}
	return raise, nil
}

func parseRoundRule(s string) (abstraction.RoundRule, error) {
	switch lower := strings.ToLower(s); {
	case lower == "always":
		return abstraction.RoundRule{Kind: abstraction.Always}, nil
	case lower == "never":
		return abstraction.RoundRule{Kind: abstraction.NotAllowed}, nil
	case strings.HasPrefix(lower, "before:"):
		n, err := strconv.Atoi(strings.TrimPrefix(lower, "before:"))
		if err != nil || n < 1 {
			return abstraction.RoundRule{}, fmt.Errorf("bad round rule %q", s)
		}
		return abstraction.RoundRule{Kind: abstraction.Before, Count: n}, nil
	default:
		return abstraction.RoundRule{}, fmt.Errorf("bad round rule %q", s)
	}
}
