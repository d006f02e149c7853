// Package fifteen implements the classic 15-puzzle as a platform game.
// All board and replay logic lives in internal/puzzle; this package
// adapts a puzzle session to the platform's tick/input/render loop and
// acts as the session's presentation observer.
package fifteen

import (
	"math/rand"

	"github.com/vovakirdan/tui-fifteen/internal/config"
	"github.com/vovakirdan/tui-fifteen/internal/core"
	"github.com/vovakirdan/tui-fifteen/internal/puzzle"
	"github.com/vovakirdan/tui-fifteen/internal/registry"
)

// Mode selects how the initial board is shuffled.
type Mode string

const (
	// ModeClassic deals a uniformly random permutation. About half of
	// them cannot be solved by legal slides; that is part of the game.
	ModeClassic Mode = "classic"

	// ModeSolvable scrambles by a random walk of legal moves from the
	// solved board, so every deal is solvable.
	ModeSolvable Mode = "solvable"
)

// Game runs one fifteen puzzle session.
type Game struct {
	mode Mode
	rng  *rand.Rand
	tick uint64
	cfg  config.FifteenConfig

	session *puzzle.Session

	// Latest state reported by the session through the observer
	// callbacks. The session itself never stores a current board.
	board  puzzle.Board
	solved bool

	moves       int  // Legal slides in the current history
	attempts    int  // All requests, blocked ones included
	lastBlocked bool // Whether the newest request was "no tile there"

	replayLegal int // Legal steps seen during the replay in flight

	screenW int
	screenH int

	paused        bool
	tooSmall      bool
	moveProcessed bool // One slide per tick
	solvedTick    uint64
}

// Package-level settings applied at the next Reset, set by the CLI
// before the platform creates the game.
var configPath string

// SetConfigPath sets the YAML config path. Empty means search order.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a classic-mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewSolvable creates a solvable-mode game.
func NewSolvable() *Game {
	return &Game{mode: ModeSolvable}
}

func init() {
	registry.Register("fifteen", func() registry.Game {
		return New()
	})
	registry.Register("fifteen_solvable", func() registry.Game {
		return NewSolvable()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSolvable {
		return "fifteen_solvable"
	}
	return "fifteen"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSolvable {
		return "Fifteen (Solvable Deals)"
	}
	return "Fifteen"
}

// Reset shuffles a fresh board and starts a new session over it.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.moveProcessed = false
	g.solved = false
	g.moves = 0
	g.attempts = 0
	g.lastBlocked = false
	g.solvedTick = 0

	loaded, err := config.LoadFifteen(configPath)
	if err != nil {
		loaded = config.DefaultFifteenConfig()
	}
	g.cfg = loaded

	var initial puzzle.Board
	if g.mode == ModeSolvable {
		initial = puzzle.WalkShuffled(g.rng, g.cfg.Shuffle.WalkSteps)
	} else {
		initial = puzzle.Shuffled(g.rng)
	}

	g.session = puzzle.NewSessionWithBoard(initial, g)
	g.board = initial

	g.checkScreenSize()
}

// checkScreenSize checks if the screen fits the board plus HUD.
func (g *Game) checkScreenSize() {
	minW := puzzle.GridSize*(g.cfg.Board.CellWidth+1) + 1
	minH := puzzle.GridSize*(g.cfg.Board.CellHeight+1) + 1 + 5 // board + HUD
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// MoveReplayed implements puzzle.Observer. Every request replays the
// whole history; the game counts the legal steps of the current replay
// and remembers whether the final (newest) step was blocked.
func (g *Game) MoveReplayed(step int, d puzzle.Direction, board puzzle.Board, legal bool) {
	if step == 0 {
		g.replayLegal = 0
	}
	if legal {
		g.replayLegal++
	}
	if step == g.session.MoveCount()-1 {
		g.lastBlocked = !legal
	}
}

// BoardUpdated implements puzzle.Observer: the final state of the fold.
func (g *Game) BoardUpdated(board puzzle.Board, solved bool) {
	g.board = board
	g.solved = solved
	g.moves = g.replayLegal
	g.attempts = g.session.MoveCount()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart is handled by the platform via Reset; nothing to do here.
	if in.Has(core.ActionRestart) {
		return core.StepResult{State: g.State()}
	}

	// A solved board stays playable: no state gate around moves.
	dir, ok := directionFor(in)
	if ok && !g.moveProcessed {
		wasSolved := g.solved
		g.session.RequestMove(dir)
		g.moveProcessed = true
		if g.solved && !wasSolved {
			g.solvedTick = g.tick
		}
	}

	return core.StepResult{State: g.State()}
}

// directionFor maps input actions to a slide direction.
func directionFor(in core.InputFrame) (puzzle.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return puzzle.DirUp, true
	case in.Has(core.ActionDown):
		return puzzle.DirDown, true
	case in.Has(core.ActionLeft):
		return puzzle.DirLeft, true
	case in.Has(core.ActionRight):
		return puzzle.DirRight, true
	}
	return puzzle.DirUp, false
}

// Session exposes the underlying puzzle session (for the platform's
// result bookkeeping and for tests).
func (g *Game) Session() *puzzle.Session {
	return g.session
}

// State returns the current platform-visible state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.moves,
		Attempts: g.attempts,
		Solved:   g.solved,
		GameOver: false, // No terminal state: solved boards remain playable
		Paused:   g.paused || g.tooSmall,
	}
}
