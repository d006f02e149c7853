package puzzle

// Direction names the side from which a tile slides into the empty slot.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the direction that undoes this one.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// ParseDirection maps a direction name to its value.
// Unrecognized input is reported via ok=false; the engine itself treats
// any unavailable direction the same way, so parsing is a convenience
// for text-facing callers, not a gate.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	}
	return DirUp, false
}

// Move is the pair of positions exchanged to realize a slide. From is
// the empty slot, To the tile that slides into it.
type Move struct {
	From Position
	To   Position
}

// moveTable maps every position of the empty slot to the moves legal
// from it. Built once at package init, never mutated, shared read-only
// by all sessions.
var moveTable = buildMoveTable()

// buildMoveTable computes the adjacency table. A candidate move is kept
// iff its target stays on the board and does not wrap across a row edge:
// left is illegal from column 0, right from column 3; up and down need
// no column check because their out-of-range targets fail the bounds
// test already.
func buildMoveTable() [BoardLen]map[Direction]Move {
	var table [BoardLen]map[Direction]Move
	for i := range BoardLen {
		pos := Position(i)
		moves := make(map[Direction]Move, 4)

		candidates := map[Direction]Position{
			DirUp:    pos - GridSize,
			DirDown:  pos + GridSize,
			DirLeft:  pos - 1,
			DirRight: pos + 1,
		}
		for dir, target := range candidates {
			if target < 0 || target >= BoardLen {
				continue
			}
			if dir == DirLeft && pos.Col() == 0 {
				continue
			}
			if dir == DirRight && pos.Col() == GridSize-1 {
				continue
			}
			moves[dir] = Move{From: pos, To: target}
		}
		table[i] = moves
	}
	return table
}

// AvailableMoves returns the legal directions from the board's current
// empty position, each with the position pair it would swap. The result
// is a fresh map; callers may not mutate the shared table through it.
func AvailableMoves(b Board) map[Direction]Move {
	moves := moveTable[b.EmptyPos()]
	out := make(map[Direction]Move, len(moves))
	for d, m := range moves {
		out[d] = m
	}
	return out
}

// Apply attempts a slide in the given direction. When the direction is
// not available from the current empty position it returns the board
// unchanged and ok=false; being blocked is legality, not an error.
// Otherwise it returns the new board with the move's two positions
// exchanged.
func Apply(b Board, d Direction) (Board, bool) {
	m, ok := moveTable[b.EmptyPos()][d]
	if !ok {
		return b, false
	}
	b[m.From], b[m.To] = b[m.To], b[m.From]
	return b, true
}
