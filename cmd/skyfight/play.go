package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sky-fight/internal/audio"
	"github.com/vovakirdan/sky-fight/internal/config"
	"github.com/vovakirdan/sky-fight/internal/core"
	"github.com/vovakirdan/sky-fight/internal/platform/tui"
	"github.com/vovakirdan/sky-fight/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start Sky Fight in the current terminal.

Controls:
  Arrows/WASD        - Move
  Shift+Arrows/WASD  - Move with focus (slower, tighter shots)
  Z/Space            - Fire
  X                  - Toggle auto-fire
  C                  - Toggle focus lock
  P/Esc              - Pause
  Ctrl+S             - Save a screenshot
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - 5 lives
  normal - 3 lives
  hard   - 1 life

Examples:
  skyfight play
  skyfight play --difficulty easy --name Ace
  skyfight play --fps 60 --mute
  skyfight play --config ./my-skyfight.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, difficulty := loadGameConfig()

	// The TUI owns the terminal; logs go to a file
	err := withLogFile(logFilePath(), func(logger *log.Logger) error {
		log.SetDefault(logger)
		return play(logger, gameCfg, difficulty)
	})
	if err != nil {
		fail("running game: %v", err)
	}
}

// play runs the TUI until the player exits and releases the store and the
// speaker on the way out.
func play(logger *log.Logger, gameCfg config.SkyFightConfig, difficulty string) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var player *audio.Player
	if !flagMute {
		player = audio.NewPlayer(0.25)
		if initErr := player.Init(); initErr != nil {
			logger.Warn("audio disabled", "error", initErr)
		}
	}
	defer player.Close()

	return tui.Run(tui.Options{
		Runtime:    rt,
		Game:       gameCfg,
		Difficulty: difficulty,
		Scores:     loadScores(logger),
		Store:      store,
		Audio:      player,
		PlayerName: flagName,
		Logger:     logger,
	})
}
