package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-fight/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryTop   bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded sessions and statistics",
	Long: `Display finished sessions from the history database, newest first,
followed by overall statistics.

Examples:
  skyfight history
  skyfight history --top --limit 5
  skyfight history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagHistoryTop, "top", false, "Order by score instead of date")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the whole history")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening history database: %v", err)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearSessions(); err != nil {
			fail("%v", err)
		}
		fmt.Println("History cleared.")
		return
	}

	var records []storage.SessionRecord
	if flagHistoryTop {
		records, err = store.TopSessions(flagHistoryLimit)
	} else {
		records, err = store.RecentSessions(flagHistoryLimit)
	}
	if err != nil {
		fail("%v", err)
	}

	if len(records) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Printf("  %-12s  %-10s  %-6s  %-8s  %-6s  %s\n", "Player", "Score", "Result", "Mode", "Ticks", "Date")
	fmt.Printf("  %-12s  %-10s  %-6s  %-8s  %-6s  %s\n", "------", "-----", "------", "----", "-----", "----")
	for _, r := range records {
		result := "lost"
		if r.Won {
			result = "won"
		}
		fmt.Printf("  %-12s  %-10d  %-6s  %-8s  %-6d  %s\n",
			r.Player, r.Score, result, r.Difficulty, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		fail("%v", err)
	}
	fmt.Println()
	fmt.Printf("Games: %d  Wins: %d  Best: %d  Average: %.0f\n",
		stats.Games, stats.Wins, stats.BestScore, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
