package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guyguy2/go-arcade/internal/journal"
	"github.com/guyguy2/go-arcade/internal/registry"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs <game>",
	Short: "Show recorded sim runs for a game",
	Long: `Display the most recent recorded sim runs for the specified game.

Examples:
  arcade runs xonix
  arcade runs paratrooper --limit 25`,
	Args: cobra.ExactArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Maximum number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open the run journal
	j, err := journal.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	defer j.Close()

	runs, err := j.RunsFor(gameID, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	// Display runs
	fmt.Printf("Recorded Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Record one with 'arcade sim %s --record'.\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-12s  %-6s  %-7s  %-10s  %s\n",
		"Date", "Seed", "Ticks", "Score", "Outcome", "Digest")
	fmt.Printf("  %-16s  %-12s  %-6s  %-7s  %-10s  %s\n",
		"----", "----", "-----", "-----", "-------", "------")

	// Print runs
	for _, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-16s  %-12d  %-6d  %-7d  %-10s  %s\n",
			dateStr, entry.Seed, entry.Ticks, entry.Score, entry.Outcome, entry.Digest)
	}

	// Show best score
	fmt.Println()
	best, err := j.BestScore(gameID)
	if err == nil {
		fmt.Printf("Best score: %d\n", best)
	}
}
