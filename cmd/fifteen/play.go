package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-fifteen/internal/core"
	"github.com/vovakirdan/tui-fifteen/internal/games/fifteen"
	"github.com/vovakirdan/tui-fifteen/internal/platform/tui"
	"github.com/vovakirdan/tui-fifteen/internal/registry"
	"github.com/vovakirdan/tui-fifteen/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a deal",
	Long: `Start playing. With no mode argument an interactive picker is shown.

Controls:
  Arrows/WASD/HJKL - Slide a tile into the empty slot
  P                - Pause
  R                - Reshuffle (new deal)
  Q/Ctrl+C         - Quit

Deal modes:
  fifteen           - Classic: any permutation may be dealt, solvable or not
  fifteen_solvable  - Scrambled by legal moves, always solvable

Examples:
  fifteen play
  fifteen play fifteen_solvable
  fifteen play fifteen --seed 42
  fifteen play --config ./my-fifteen.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early for the mode picker
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	fifteen.SetConfigPath(flagConfig)

	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'fifteen list' to see available modes.")
			os.Exit(1)
		}
	} else {
		// Interactive picker; loops back after the scoreboard screen.
		for gameID == "" {
			selection, updatedCfg, selErr := tui.RunModeSelector(cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				os.Exit(1)
			}
			cfg = updatedCfg

			// User pressed back or quit
			if selection == nil {
				return
			}

			if selection.Choice == tui.ModeChoiceScores {
				store, storeErr := storage.Open(flagDBPath)
				if storeErr != nil {
					fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", storeErr)
					os.Exit(1)
				}
				goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
				store.Close()
				if sbErr != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
					os.Exit(1)
				}
				if !goBack {
					return
				}
				continue
			}

			gameID = selection.GameID
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
