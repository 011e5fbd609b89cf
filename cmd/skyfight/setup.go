package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-fight/internal/config"
	"github.com/vovakirdan/sky-fight/internal/highscore"
)

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the command logger at the --log-level level.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyfight",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// logFilePath returns ~/.skyfight/skyfight.log, or "" when the home
// directory is unknown.
func logFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyfight", "skyfight.log")
}

// openLogFile opens the log file for appending. It falls back to discarding
// output.
func openLogFile(path string) (io.Writer, func()) {
	if path == "" {
		return io.Discard, func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

// withLogFile runs fn with a logger writing to path and closes the file
// before returning fn's error.
func withLogFile(path string, fn func(*log.Logger) error) error {
	out, closeLog := openLogFile(path)
	defer closeLog()
	return fn(newLogger(out))
}

// loadGameConfig loads the game config and applies --difficulty.
func loadGameConfig() (config.SkyFightConfig, string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	difficulty := config.DifficultyNormal
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			fail("unknown difficulty %q (use easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
		difficulty = preset
	}
	return cfg, string(difficulty)
}

// loadScores opens the top-5 table. An unreadable file is logged and an
// empty table backed by the same path is used.
func loadScores(logger *log.Logger) *highscore.Table {
	scores, err := highscore.Load(flagScoresPath)
	if err != nil {
		logger.Warn("could not read high scores", "error", err)
	}
	return scores
}
