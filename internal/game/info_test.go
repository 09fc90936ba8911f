package game

import (
	"reflect"
	"testing"

	"github.com/pokerforge/engine/internal/deck"
	"github.com/pokerforge/engine/internal/randutil"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*GameInfo)
		wantErr bool
	}{
		{name: "holdem", mutate: func(*GameInfo) {}},
		{name: "too few players", mutate: func(g *GameInfo) { g.NumPlayers = 1 }, wantErr: true},
		{name: "too many players", mutate: func(g *GameInfo) { g.NumPlayers = MaxPlayers + 1 }, wantErr: true},
		{name: "too many rounds", mutate: func(g *GameInfo) { g.NumRounds = MaxRounds + 1 }, wantErr: true},
		{name: "stacks length", mutate: func(g *GameInfo) { g.StartingStacks = g.StartingStacks[:1] }, wantErr: true},
		{name: "blinds length", mutate: func(g *GameInfo) { g.Blinds = append(g.Blinds, 0) }, wantErr: true},
		{name: "raise sizes length", mutate: func(g *GameInfo) { g.RaiseSizes = g.RaiseSizes[:2] }, wantErr: true},
		{name: "max raises length", mutate: func(g *GameInfo) { g.MaxRaises = nil }, wantErr: true},
		{name: "first player length", mutate: func(g *GameInfo) { g.FirstPlayer = g.FirstPlayer[:3] }, wantErr: true},
		{name: "first player out of range", mutate: func(g *GameInfo) { g.FirstPlayer[2] = 5 }, wantErr: true},
		{name: "board cards length", mutate: func(g *GameInfo) { g.NumBoardCards = g.NumBoardCards[:1] }, wantErr: true},
		{name: "too many hole cards", mutate: func(g *GameInfo) { g.NumHoleCards = MaxHoleCards + 1 }, wantErr: true},
		{name: "too many board cards", mutate: func(g *GameInfo) { g.NumBoardCards = []int{0, 3, 3, 3} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info := HoldemInfo(3)
			tt.mutate(info)
			err := info.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestTotalBoardCards(t *testing.T) {
	t.Parallel()

	info := HoldemInfo(2)
	want := []int{0, 3, 4, 5}
	for round, w := range want {
		if got := info.TotalBoardCards(round); got != w {
			t.Errorf("TotalBoardCards(%d) = %d, want %d", round, got, w)
		}
	}
}

func TestDealHoleAndBoardCards(t *testing.T) {
	t.Parallel()

	info := HoldemInfo(6)
	hole, board, err := info.DealHoleAndBoardCards(randutil.New(42))
	if err != nil {
		t.Fatalf("DealHoleAndBoardCards: %v", err)
	}

	if len(hole) != 6 {
		t.Fatalf("hole hands = %d, want 6", len(hole))
	}
	if len(board) != 5 {
		t.Fatalf("board cards = %d, want 5", len(board))
	}

	seen := make(map[deck.Card]bool)
	for _, h := range hole {
		if len(h) != 2 {
			t.Fatalf("hole cards = %d, want 2", len(h))
		}
		for _, c := range h {
			if seen[c] {
				t.Fatalf("card %s dealt twice", c)
			}
			seen[c] = true
		}
	}
	for _, c := range board {
		if seen[c] {
			t.Fatalf("card %s dealt twice", c)
		}
		seen[c] = true
	}

	// Same seed, same deal.
	hole2, board2, err := info.DealHoleAndBoardCards(randutil.New(42))
	if err != nil {
		t.Fatalf("DealHoleAndBoardCards: %v", err)
	}
	if !reflect.DeepEqual(hole, hole2) || !reflect.DeepEqual(board, board2) {
		t.Error("identical seeds produced different deals")
	}
}

func TestDealFailsWhenDeckTooSmall(t *testing.T) {
	t.Parallel()

	info := HoldemInfo(4)
	info.NumRanks = 2
	info.NumSuits = 2 // 4 cards cannot cover 8 hole cards plus the board

	if _, _, err := info.DealHoleAndBoardCards(randutil.New(1)); err == nil {
		t.Error("deal from an undersized deck should fail")
	}
}
