package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-fight/internal/platform/tui"
	"github.com/vovakirdan/sky-fight/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Sky Fight SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. All players share the top-5 table
and the session history of this server. The SSH user name is offered as
the high-score name unless --name is set.

Remote sessions tick at 60 per second unless --fps is given.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.skyfight/host_key

Examples:
  skyfight serve                           # Listen on :23234 with auto-generated key
  skyfight serve --ssh :2222               # Listen on port 2222
  skyfight serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)
	logger.SetPrefix("skyfight-ssh")
	gameCfg, difficulty := loadGameConfig()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	if cmd.Flags().Changed("fps") {
		cfg.TickRate = flagFPS
	}

	if err := serve(logger, cfg, tui.Options{
		Game:       gameCfg,
		Difficulty: difficulty,
		Scores:     loadScores(logger),
		PlayerName: flagName,
		Logger:     logger,
	}); err != nil {
		fail("%v", err)
	}
}

// serve runs the SSH server until it stops and closes the history store
// before returning.
func serve(logger *log.Logger, cfg tui.SSHServerConfig, opts tui.Options) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}
	opts.Store = store

	server, err := tui.NewSSHServer(cfg, opts)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Sky Fight SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
