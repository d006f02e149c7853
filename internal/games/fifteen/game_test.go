package fifteen

import (
	"testing"

	"github.com/vovakirdan/tui-fifteen/internal/core"
	"github.com/vovakirdan/tui-fifteen/internal/puzzle"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     12345,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := testConfig()

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 60; i++ {
		input.Clear()
		switch i {
		case 5:
			input.Set(core.ActionUp)
		case 10:
			input.Set(core.ActionLeft)
		case 15:
			input.Set(core.ActionDown)
		case 20:
			input.Set(core.ActionRight)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1.Tick != snap2.Tick {
		t.Errorf("Tick mismatch: %d vs %d", snap1.Tick, snap2.Tick)
	}
	if snap1.Board != snap2.Board {
		t.Errorf("Board mismatch:\n%s\nvs\n%s", snap1.Board, snap2.Board)
	}
	if snap1.Moves != snap2.Moves || snap1.Attempts != snap2.Attempts {
		t.Errorf("Counter mismatch: %d/%d vs %d/%d",
			snap1.Moves, snap1.Attempts, snap2.Moves, snap2.Attempts)
	}
}

func TestClassicShuffleIsPermutation(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	seen := make(map[puzzle.Tile]int)
	for _, tile := range g.Session().InitialBoard() {
		seen[tile]++
	}
	if len(seen) != puzzle.BoardLen {
		t.Errorf("initial board has %d distinct values, want %d", len(seen), puzzle.BoardLen)
	}
}

func TestSolvableModeUsesWalkShuffle(t *testing.T) {
	g := NewSolvable()
	g.Reset(testConfig())

	if g.ID() != "fifteen_solvable" {
		t.Errorf("ID() = %q", g.ID())
	}

	// A walk shuffle never breaks the invariant; EmptyPos panics if the
	// deal were malformed.
	g.Session().InitialBoard().EmptyPos()
}

func TestEveryRequestIsRecorded(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	input := core.NewInputFrame()
	actions := []core.Action{
		core.ActionUp, core.ActionUp, core.ActionDown,
		core.ActionLeft, core.ActionRight, core.ActionUp,
	}

	for _, a := range actions {
		input.Clear()
		input.Set(a)
		g.Step(input)
	}

	st := g.State()
	if st.Attempts != len(actions) {
		t.Errorf("Attempts = %d, want %d (blocked requests count too)", st.Attempts, len(actions))
	}
	if got := len(g.Session().History()); got != len(actions) {
		t.Errorf("history length = %d, want %d", got, len(actions))
	}
	if st.Score > st.Attempts {
		t.Errorf("legal moves (%d) cannot exceed attempts (%d)", st.Score, st.Attempts)
	}
}

func TestBlockedMoveKeepsBoard(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	before := g.Snapshot().Board
	empty := before.EmptyPos()

	// Find a direction that is blocked from the current empty position.
	var blocked core.Action
	avail := puzzle.AvailableMoves(before)
	for d, a := range map[puzzle.Direction]core.Action{
		puzzle.DirUp:    core.ActionUp,
		puzzle.DirDown:  core.ActionDown,
		puzzle.DirLeft:  core.ActionLeft,
		puzzle.DirRight: core.ActionRight,
	} {
		if _, ok := avail[d]; !ok {
			blocked = a
			break
		}
	}
	if blocked == core.ActionNone {
		t.Skipf("all four directions legal from position %d", empty)
	}

	input := core.NewInputFrame()
	input.Set(blocked)
	g.Step(input)

	snap := g.Snapshot()
	if snap.Board != before {
		t.Error("blocked move changed the board")
	}
	if snap.Attempts != 1 || snap.Moves != 0 {
		t.Errorf("counters = %d moves / %d attempts, want 0/1", snap.Moves, snap.Attempts)
	}
	if !g.lastBlocked {
		t.Error("blocked request should raise the no-tile-there notice")
	}
}

func TestOneSlidePerTick(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Two direction actions in one frame: only the first mapped one counts.
	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	input.Set(core.ActionLeft)
	g.Step(input)

	if got := g.State().Attempts; got != 1 {
		t.Errorf("Attempts = %d, want 1 (one slide per tick)", got)
	}
}

func TestPauseBlocksMoves(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)

	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	input.Clear()
	input.Set(core.ActionUp)
	g.Step(input)

	if got := g.State().Attempts; got != 0 {
		t.Errorf("moves should not register while paused, attempts = %d", got)
	}

	input.Clear()
	input.Set(core.ActionPause)
	g.Step(input)
	if g.State().Paused {
		t.Error("second pause press should resume")
	}
}

func TestSolvedStateReached(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Force a nearly solved session: one slide from done.
	oneAway, ok := puzzle.Apply(puzzle.Solved(), puzzle.DirUp)
	if !ok {
		t.Fatal("up must be legal on the solved board")
	}
	g.session = puzzle.NewSessionWithBoard(oneAway, g)
	g.board = oneAway
	g.solved = false
	g.moves = 0
	g.attempts = 0

	input := core.NewInputFrame()
	input.Set(core.ActionDown) // inverse of up
	g.Step(input)

	st := g.State()
	if !st.Solved {
		t.Fatalf("expected solved state, board:\n%s", g.Snapshot().Board)
	}
	if st.GameOver {
		t.Error("solved must not end the session; the board stays playable")
	}

	// Keep sliding after the solve
	input.Clear()
	input.Set(core.ActionUp)
	g.Step(input)
	if g.State().Solved {
		t.Error("moving off the solved board should clear the solved flag")
	}
}

func TestRenderProducesBoardFrame(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if len(out) == 0 {
		t.Fatal("render produced nothing")
	}

	// The frame must contain the grid corners.
	for _, r := range []rune{'┌', '┐', '└', '┘'} {
		found := false
		for _, c := range out {
			if c == r {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("rendered frame missing %q", r)
		}
	}
}
