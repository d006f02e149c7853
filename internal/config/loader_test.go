package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsMatchEmbeddedYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "fifteen.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	cfg, err := LoadFifteen(path)
	if err != nil {
		t.Fatalf("LoadFifteen() failed: %v", err)
	}

	want := DefaultFifteenConfig()
	if cfg != want {
		t.Errorf("embedded YAML parsed to %+v, hardcoded default is %+v", cfg, want)
	}
}

func TestLoadCustomConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	yaml := `
shuffle:
  walk_steps: 40
board:
  cell_width: 7
  cell_height: 3
  highlight_movable: false
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	cfg, err := LoadFifteen(path)
	if err != nil {
		t.Fatalf("LoadFifteen() failed: %v", err)
	}

	if cfg.Shuffle.WalkSteps != 40 {
		t.Errorf("walk_steps = %d, want 40", cfg.Shuffle.WalkSteps)
	}
	if cfg.Board.CellWidth != 7 || cfg.Board.CellHeight != 3 {
		t.Errorf("board cell = %dx%d, want 7x3", cfg.Board.CellWidth, cfg.Board.CellHeight)
	}
	if cfg.Board.HighlightMovable {
		t.Error("highlight_movable should be false")
	}
}

func TestLoadMissingCustomConfigFails(t *testing.T) {
	if _, err := LoadFifteen("/nonexistent/fifteen.yaml"); err == nil {
		t.Error("missing custom config path should be an error")
	}
}

func TestValidateClampsValues(t *testing.T) {
	cfg := FifteenConfig{}
	cfg.Validate()

	if cfg.Shuffle.WalkSteps < 1 {
		t.Errorf("walk_steps not clamped: %d", cfg.Shuffle.WalkSteps)
	}
	if cfg.Board.CellWidth < 3 || cfg.Board.CellHeight < 1 {
		t.Errorf("board cell not clamped: %dx%d", cfg.Board.CellWidth, cfg.Board.CellHeight)
	}
}
