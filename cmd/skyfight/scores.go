package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-fight/internal/highscore"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top-5 table",
	Long: `Display the five best named scores.

Examples:
  skyfight scores
  skyfight scores --scores ./scores.txt`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	table, err := highscore.Load(flagScoresPath)
	if err != nil {
		fail("reading high scores: %v", err)
	}

	fmt.Println("Sky Fight - Top Scores")
	fmt.Println()

	entries := table.Entries()
	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skyfight play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %s\n", "Rank", "Name", "Score")
	fmt.Printf("  %-4s  %-16s  %s\n", "----", "----", "-----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-16s  %d\n", i+1, e.Name, e.Score)
	}

	if table.Path() != "" {
		fmt.Fprintf(os.Stdout, "\nStored in %s\n", table.Path())
	}
}
