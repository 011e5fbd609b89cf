// skyfight is a terminal bullet-hell duel: one player ship against one
// descending enemy that grows more aggressive as it loses health.
//
// Usage:
//
//	skyfight                 - Play (same as skyfight play)
//	skyfight play            - Play in this terminal
//	skyfight scores          - Show the top-5 table
//	skyfight history         - Show recent sessions and statistics
//	skyfight serve           - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>        - Game config YAML
//	--difficulty <preset>  - easy, normal or hard
//	--fps <rate>           - Simulation tick rate (default: 120)
//	--scores <path>        - Top-5 table (default: ~/.skyfight/scores.txt)
//	--db <path>            - Session history (default: ~/.skyfight/history.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-fight/internal/highscore"
	"github.com/vovakirdan/sky-fight/internal/storage"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagScoresPath string
	flagDBPath     string
	flagMute       bool
	flagName       string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyfight",
	Short: "Sky Fight - a bullet-hell duel in your terminal",
	Long: `Sky Fight puts your ship against a single enemy that rains bullet
patterns down the screen. Hit it a thousand times before you run out of
lives; the faster you win, the bigger the time bonus.

Available commands:
  play     - Play in this terminal (default)
  scores   - Show the top-5 table
  history  - Show recorded sessions and statistics
  serve    - Start SSH server for remote play

Examples:
  skyfight
  skyfight play --difficulty hard
  skyfight scores
  skyfight serve --ssh :23234`,
	Run: runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.IntVar(&flagFPS, "fps", 120, "Simulation tick rate (ticks per second)")
	pf.StringVar(&flagScoresPath, "scores", highscore.DefaultPath(), "Path to the top-5 table")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath(), "Path to the session history database")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound")
	pf.StringVar(&flagName, "name", "", "Default name for high-score entry")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
