// Package config provides YAML-based game configuration loading for the
// fifteen puzzle platform.
package config

// FifteenConfig contains all configuration for the fifteen puzzle.
type FifteenConfig struct {
	Shuffle ShuffleConfig `yaml:"shuffle"`
	Board   BoardConfig   `yaml:"board"`
}

// ShuffleConfig controls how fresh boards are produced.
type ShuffleConfig struct {
	// WalkSteps is the length of the random walk used by the solvable
	// mode. The classic mode ignores it and deals a uniformly random
	// permutation, solvable or not.
	WalkSteps int `yaml:"walk_steps"`
}

// BoardConfig controls how the 4x4 grid is drawn.
type BoardConfig struct {
	CellWidth  int `yaml:"cell_width"`  // Interior width of a tile cell
	CellHeight int `yaml:"cell_height"` // Interior height of a tile cell

	// HighlightMovable colors the tiles that can currently slide.
	HighlightMovable bool `yaml:"highlight_movable"`
}

// Validate clamps out-of-range values to usable ones.
func (c *FifteenConfig) Validate() {
	if c.Shuffle.WalkSteps < 1 {
		c.Shuffle.WalkSteps = 1
	}
	if c.Board.CellWidth < 3 {
		c.Board.CellWidth = 3
	}
	if c.Board.CellHeight < 1 {
		c.Board.CellHeight = 1
	}
}
