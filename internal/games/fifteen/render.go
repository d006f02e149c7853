package fifteen

import (
	"fmt"

	"github.com/vovakirdan/tui-fifteen/internal/core"
	"github.com/vovakirdan/tui-fifteen/internal/puzzle"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	cellW := g.cfg.Board.CellWidth + 1  // interior + left border
	cellH := g.cfg.Board.CellHeight + 1 // interior + top border

	boardW := puzzle.GridSize*cellW + 1 // +1 for right border
	boardH := puzzle.GridSize*cellH + 1 // +1 for bottom border
	hudHeight := 3

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY, cellW, cellH)
	g.renderFooter(dst, boardX, boardY+boardH)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the title and move counters.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	movesStr := fmt.Sprintf("Moves: %d", g.moves)
	dst.DrawText(boardX, 1, movesStr)

	if g.attempts > g.moves {
		blockedStr := fmt.Sprintf("Blocked: %d", g.attempts-g.moves)
		blockedX := boardX + boardW - len(blockedStr)
		if blockedX < boardX+len(movesStr)+2 {
			blockedX = boardX + len(movesStr) + 2
		}
		dst.DrawTextColored(blockedX, 1, blockedStr, core.ColorGray)
	}

	modeStr := "Classic Deal"
	if g.mode == ModeSolvable {
		modeStr = "Solvable Deal"
	}
	modeX := boardX + (boardW-len(modeStr))/2
	dst.DrawTextColored(modeX, 2, modeStr, core.ColorGray)
}

// renderBoard draws the 4x4 grid with its tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY, cellW, cellH int) {
	// Grid lines and intersections
	for y := range puzzle.GridSize + 1 {
		for x := range puzzle.GridSize + 1 {
			px := boardX + x*cellW
			py := boardY + y*cellH

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == puzzle.GridSize:
				corner = '┐'
			case y == puzzle.GridSize && x == 0:
				corner = '└'
			case y == puzzle.GridSize && x == puzzle.GridSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == puzzle.GridSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == puzzle.GridSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < puzzle.GridSize {
				for i := 1; i < cellW; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < puzzle.GridSize {
				for i := 1; i < cellH; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	movable := g.movableTiles()

	// Tile labels, centered in their cells
	labels := g.board.Labels()
	for i, label := range labels {
		if label == "" {
			continue
		}

		pos := puzzle.Position(i)
		cellX := boardX + pos.Col()*cellW + 1
		cellY := boardY + pos.Row()*cellH + 1

		padLeft := (cellW - 1 - len(label)) / 2
		if padLeft < 0 {
			padLeft = 0
		}
		padTop := (cellH - 1) / 2

		color := core.ColorDefault
		if g.cfg.Board.HighlightMovable && movable[pos] {
			color = core.ColorBrightCyan
		}
		dst.DrawTextColored(cellX+padLeft, cellY+padTop, label, color)
	}
}

// movableTiles returns the positions whose tiles can slide right now.
func (g *Game) movableTiles() map[puzzle.Position]bool {
	out := make(map[puzzle.Position]bool, 4)
	for _, m := range puzzle.AvailableMoves(g.board) {
		out[m.To] = true
	}
	return out
}

// renderFooter draws the blocked-move notice and key hints.
func (g *Game) renderFooter(dst *core.Screen, boardX, y int) {
	if g.lastBlocked {
		dst.DrawTextColored(boardX, y, "No tile there.", core.ColorYellow)
	}

	hints := "Arrows/WASD: slide  P: pause  R: reshuffle  Q: quit"
	hintX := (g.screenW - len(hints)) / 2
	dst.DrawTextColored(hintX, y+1, hints, core.ColorGray)
}

// renderOverlays draws pause and solved overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.solved {
		movesStr := fmt.Sprintf("Solved in %d moves!", g.moves)
		g.drawOverlay(dst, centerX, centerY, movesStr, "Keep sliding, or press R for a new deal")
	}
}

// drawOverlay draws a centered text overlay in a box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrow keys/WASD: Slide | P: Pause | R: Reshuffle | Q: Quit"
}
