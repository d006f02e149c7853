package config

import (
	_ "embed"
)

//go:embed defaults/fifteen.yaml
var defaultFifteenYAML []byte

// DefaultFifteenConfig returns the default fifteen puzzle configuration.
func DefaultFifteenConfig() FifteenConfig {
	return FifteenConfig{
		Shuffle: ShuffleConfig{
			WalkSteps: 250,
		},
		Board: BoardConfig{
			CellWidth:        5,
			CellHeight:       2,
			HighlightMovable: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFifteenYAML
}
