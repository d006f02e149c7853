package fifteen

import "github.com/vovakirdan/tui-fifteen/internal/puzzle"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSolved      GameStateType = "solved"
	StatePausedSmall GameStateType = "paused_small_window"
	StatePaused      GameStateType = "paused"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Board    puzzle.Board
	Moves    int
	Attempts int
	History  []puzzle.Direction
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.solved:
		state = StateSolved
	}

	return Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Board:    g.board,
		Moves:    g.moves,
		Attempts: g.attempts,
		History:  g.session.History(),
		State:    state,
	}
}
