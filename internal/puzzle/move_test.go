package puzzle

import (
	"math/rand"
	"testing"
)

func TestMoveTableEdges(t *testing.T) {
	for i := 0; i < BoardLen; i++ {
		moves := moveTable[i]

		if _, ok := moves[DirLeft]; ok && i%GridSize == 0 {
			t.Errorf("position %d: left move offered in leftmost column", i)
		}
		if _, ok := moves[DirRight]; ok && i%GridSize == GridSize-1 {
			t.Errorf("position %d: right move offered in rightmost column", i)
		}
		if _, ok := moves[DirUp]; ok && i < GridSize {
			t.Errorf("position %d: up move offered in top row", i)
		}
		if _, ok := moves[DirDown]; ok && i >= BoardLen-GridSize {
			t.Errorf("position %d: down move offered in bottom row", i)
		}
	}
}

func TestMoveTableTargets(t *testing.T) {
	tests := []struct {
		pos  Position
		dir  Direction
		want Move
	}{
		{pos: 5, dir: DirUp, want: Move{From: 5, To: 1}},
		{pos: 5, dir: DirDown, want: Move{From: 5, To: 9}},
		{pos: 5, dir: DirLeft, want: Move{From: 5, To: 4}},
		{pos: 5, dir: DirRight, want: Move{From: 5, To: 6}},
		{pos: 0, dir: DirDown, want: Move{From: 0, To: 4}},
		{pos: 0, dir: DirRight, want: Move{From: 0, To: 1}},
		{pos: 15, dir: DirUp, want: Move{From: 15, To: 11}},
		{pos: 15, dir: DirLeft, want: Move{From: 15, To: 14}},
	}

	for _, tc := range tests {
		got, ok := moveTable[tc.pos][tc.dir]
		if !ok {
			t.Errorf("position %d: expected %v move to exist", tc.pos, tc.dir)
			continue
		}
		if got != tc.want {
			t.Errorf("position %d %v: got %+v, want %+v", tc.pos, tc.dir, got, tc.want)
		}
	}
}

func TestAvailableMovesSolvedBoard(t *testing.T) {
	// Empty at 15: exactly up (15,11) and left (15,14).
	moves := AvailableMoves(Solved())

	if len(moves) != 2 {
		t.Fatalf("expected 2 moves from solved board, got %d: %v", len(moves), moves)
	}
	if m := moves[DirUp]; m != (Move{From: 15, To: 11}) {
		t.Errorf("up move = %+v, want {15 11}", m)
	}
	if m := moves[DirLeft]; m != (Move{From: 15, To: 14}) {
		t.Errorf("left move = %+v, want {15 14}", m)
	}
}

func TestAvailableMovesCenter(t *testing.T) {
	b := Solved()
	b[5], b[15] = b[15], b[5] // empty at interior position 5

	moves := AvailableMoves(b)
	if len(moves) != 4 {
		t.Errorf("expected 4 moves from position 5, got %d", len(moves))
	}
}

func TestApplySlidesTile(t *testing.T) {
	b, ok := Apply(Solved(), DirUp)
	if !ok {
		t.Fatal("up should be legal on the solved board")
	}

	// The tile above the empty slot slid down; empty moved to 11.
	if b[11] != Empty {
		t.Errorf("position 11 = %d, want Empty", b[11])
	}
	if b[15] != 12 {
		t.Errorf("position 15 = %d, want 12 (the tile previously at 11)", b[15])
	}
	if b.IsSolved() {
		t.Error("board should no longer be solved after a move")
	}
}

func TestApplyBlockedLeavesBoardUnchanged(t *testing.T) {
	b := Solved() // empty at 15: down and right are blocked
	for _, d := range []Direction{DirDown, DirRight} {
		got, ok := Apply(b, d)
		if ok {
			t.Errorf("%v should be blocked with empty at 15", d)
		}
		if got != b {
			t.Errorf("%v: blocked move must not change the board", d)
		}
	}
}

func TestApplySelfInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for trial := 0; trial < 100; trial++ {
		b := Shuffled(rng)
		for d := range AvailableMoves(b) {
			moved, ok := Apply(b, d)
			if !ok {
				t.Fatalf("trial %d: available move %v failed to apply", trial, d)
			}
			back, ok := Apply(moved, d.Opposite())
			if !ok {
				t.Fatalf("trial %d: opposite of %v not legal immediately after", trial, d)
			}
			if back != b {
				t.Errorf("trial %d: %v then %v did not restore the board", trial, d, d.Opposite())
			}
		}
	}
}

func TestDirectionRoundTrip(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		parsed, ok := ParseDirection(d.String())
		if !ok || parsed != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), parsed, ok)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: Opposite is not an involution", d)
		}
	}

	if _, ok := ParseDirection("sideways"); ok {
		t.Error("ParseDirection should reject unknown names")
	}
}
