package puzzle

import (
	"math/rand"
	"testing"
)

func TestSolvedLayout(t *testing.T) {
	b := Solved()

	for i := 0; i < BoardLen-1; i++ {
		if b[i] != Tile(i+1) {
			t.Errorf("Solved()[%d] = %d, want %d", i, b[i], i+1)
		}
	}
	if b[BoardLen-1] != Empty {
		t.Errorf("Solved()[15] = %d, want Empty", b[BoardLen-1])
	}

	if !b.IsSolved() {
		t.Error("IsSolved(Solved()) should be true")
	}
}

func TestIsSolvedOrderSensitive(t *testing.T) {
	b := Solved()
	// Swap two tiles: same multiset, different order.
	b[0], b[1] = b[1], b[0]
	if b.IsSolved() {
		t.Error("board with swapped tiles should not be solved")
	}
}

func TestShuffledIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		b := Shuffled(rng)

		seen := make(map[Tile]int)
		for _, tile := range b {
			seen[tile]++
		}

		if len(seen) != BoardLen {
			t.Fatalf("trial %d: board has %d distinct values, want %d\n%s", trial, len(seen), BoardLen, b)
		}
		for v := Tile(1); v <= 15; v++ {
			if seen[v] != 1 {
				t.Errorf("trial %d: tile %d appears %d times", trial, v, seen[v])
			}
		}
		if seen[Empty] != 1 {
			t.Errorf("trial %d: empty appears %d times", trial, seen[Empty])
		}
	}
}

func TestWalkShuffledStaysSolvable(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := WalkShuffled(rng, 200)

	// A walk of legal moves must be reversible to solved by legal moves.
	// We don't solve it here; instead verify the invariant held and that
	// zero steps means no shuffle at all.
	b.EmptyPos() // panics on invariant violation

	if got := WalkShuffled(rng, 0); !got.IsSolved() {
		t.Errorf("WalkShuffled with 0 steps should return the solved board, got\n%s", got)
	}
}

func TestWalkShuffledDeterministic(t *testing.T) {
	b1 := WalkShuffled(rand.New(rand.NewSource(99)), 64)
	b2 := WalkShuffled(rand.New(rand.NewSource(99)), 64)
	if b1 != b2 {
		t.Errorf("same seed should produce the same walk:\n%s\nvs\n%s", b1, b2)
	}
}

func TestEmptyPosPanicsOnBrokenInvariant(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("EmptyPos should panic on a board with two empty slots")
		}
	}()

	b := Solved()
	b[0] = Empty // now two empties
	b.EmptyPos()
}

func TestTileLabels(t *testing.T) {
	if got := Tile(7).Label(); got != "7" {
		t.Errorf("Tile(7).Label() = %q, want %q", got, "7")
	}
	if got := Empty.Label(); got != "" {
		t.Errorf("Empty.Label() = %q, want empty string", got)
	}

	labels := Solved().Labels()
	if labels[0] != "1" || labels[14] != "15" || labels[15] != "" {
		t.Errorf("Solved().Labels() = %v", labels)
	}
}
