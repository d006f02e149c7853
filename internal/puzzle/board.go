// Package puzzle implements the 15-puzzle board model, move engine, and
// replay-based game session. It contains pure logic with no external
// dependencies (especially no Bubble Tea) to keep the game testable.
package puzzle

import (
	"fmt"
	"math/rand"
	"strconv"
)

// Tile is a single board cell value: 1..15 for numbered tiles,
// Empty for the one open slot.
type Tile uint8

// Empty marks the slot with no numbered tile.
const Empty Tile = 0

// Board geometry. The grid is fixed at 4x4; positions are row-major
// indices in [0, BoardLen).
const (
	GridSize = 4
	BoardLen = GridSize * GridSize
)

// Position is a row-major cell index in [0, BoardLen).
type Position int

// Row returns the grid row of the position.
func (p Position) Row() int { return int(p) / GridSize }

// Col returns the grid column of the position.
func (p Position) Col() int { return int(p) % GridSize }

// Board is the full 16-slot tile arrangement. It is a value type:
// every transformation returns a new Board, never mutates in place.
//
// Invariant: each tile 1..15 appears exactly once and Empty appears
// exactly once. The puzzle package is the only producer of Boards, so a
// violation is a programming error, not a runtime condition.
type Board [BoardLen]Tile

// Solved returns the canonical solved board: 1..15 in positions 0..14,
// the empty slot at position 15.
func Solved() Board {
	var b Board
	for i := range BoardLen - 1 {
		b[i] = Tile(i + 1)
	}
	b[BoardLen-1] = Empty
	return b
}

// IsSolved reports whether the board equals the solved configuration,
// including the empty slot's position.
func (b Board) IsSolved() bool {
	return b == Solved()
}

// EmptyPos returns the position of the empty slot.
// Panics if the board invariant is broken (zero or multiple empties).
func (b Board) EmptyPos() Position {
	found := Position(-1)
	for i, t := range b {
		if t != Empty {
			continue
		}
		if found >= 0 {
			panic(fmt.Sprintf("puzzle: board has multiple empty slots (%d and %d)", found, i))
		}
		found = Position(i)
	}
	if found < 0 {
		panic("puzzle: board has no empty slot")
	}
	return found
}

// Shuffled returns a uniformly random permutation of the 16 tiles.
// No solvability filter is applied: roughly half of all permutations
// cannot be solved by legal slides. That matches classic behavior and is
// deliberate; use WalkShuffled for guaranteed-solvable boards.
func Shuffled(rng *rand.Rand) Board {
	b := Solved()
	rng.Shuffle(BoardLen, func(i, j int) {
		b[i], b[j] = b[j], b[i]
	})
	return b
}

// WalkShuffled returns a board produced by a random walk of legal moves
// from the solved state. Every board it returns is solvable.
func WalkShuffled(rng *rand.Rand, steps int) Board {
	b := Solved()
	for range steps {
		avail := AvailableMoves(b)
		dirs := make([]Direction, 0, len(avail))
		for d := range avail {
			dirs = append(dirs, d)
		}
		// Map iteration order is random but not seed-stable; sort for
		// deterministic walks under a fixed seed.
		for i := 1; i < len(dirs); i++ {
			for j := i; j > 0 && dirs[j] < dirs[j-1]; j-- {
				dirs[j], dirs[j-1] = dirs[j-1], dirs[j]
			}
		}
		b, _ = Apply(b, dirs[rng.Intn(len(dirs))])
	}
	return b
}

// Label returns the display string for a tile: its number, or the empty
// string for the open slot. Text layout is the presentation layer's job.
func (t Tile) Label() string {
	if t == Empty {
		return ""
	}
	return strconv.Itoa(int(t))
}

// Labels returns the 16 display-ready tile strings in board order.
func (b Board) Labels() [BoardLen]string {
	var out [BoardLen]string
	for i, t := range b {
		out[i] = t.Label()
	}
	return out
}

// String renders the board as four rows for logs and test failures.
func (b Board) String() string {
	s := ""
	for row := range GridSize {
		if row > 0 {
			s += "\n"
		}
		for col := range GridSize {
			t := b[row*GridSize+col]
			if t == Empty {
				s += "  ."
			} else {
				s += fmt.Sprintf("%3d", t)
			}
		}
	}
	return s
}
