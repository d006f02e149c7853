package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fifteen/internal/registry"
	"github.com/vovakirdan/tui-fifteen/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show best results for a deal mode",
	Long: `Display the top 10 results for the specified deal mode,
ranked by fewest moves. Only solved deals count.

Examples:
  fifteen scores fifteen
  fifteen scores fifteen_solvable`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'fifteen list' to see available modes.")
		os.Exit(1)
	}

	// Get mode title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.BestResults(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Results - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No solved deals recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'fifteen play %s' to set the first record!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-7s  %-8s  %-7s  %s\n", "Rank", "Moves", "Blocked", "Time", "Date")
	fmt.Printf("  %-4s  %-7s  %-8s  %-7s  %s\n", "----", "-----", "-------", "----", "----")

	for i, entry := range results {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		timeStr := fmt.Sprintf("%d:%02d", entry.Duration/60, entry.Duration%60)
		fmt.Printf("  %-4d  %-7d  %-8d  %-7s  %s\n",
			i+1, entry.Moves, entry.Attempts-entry.Moves, timeStr, dateStr)
	}

	fmt.Println()
	best, err := store.BestMoves(gameID)
	if err == nil && best > 0 {
		fmt.Printf("Best: %d moves\n", best)
	}
}
