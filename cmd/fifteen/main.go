// fifteen is a terminal rendition of the classic 15-puzzle.
//
// Usage:
//
//	fifteen play [mode]      - Play (mode picker when omitted)
//	fifteen list             - List available deal modes
//	fifteen scores <mode>    - Show best results for a mode
//	fifteen serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible deals
//	--db <path>     - Set database path (default: ~/.fifteen/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its deal modes
	_ "github.com/vovakirdan/tui-fifteen/internal/games/fifteen"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fifteen",
	Short: "Fifteen - the sliding tile puzzle in your terminal",
	Long: `Fifteen is a terminal rendition of the classic 15-puzzle: slide the
numbered tiles around the empty slot until they read 1 through 15.

Available commands:
  list     - Show the available deal modes
  play     - Play a deal (interactive mode picker when no mode given)
  serve    - Start SSH server for remote play
  scores   - View best results

Examples:
  fifteen play
  fifteen play fifteen_solvable
  fifteen scores fifteen
  fifteen serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fifteen/results.db", "Path to results database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
