package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the breakout SSH server",
	Long: `Start an SSH server that allows users to connect and play breakout.

Each SSH connection gets its own independent game. Finished sessions are
stored in the server's database, so all users share one leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses server.host_key_path from the config
  - The key is generated on first start if it does not exist

Examples:
  arcade serve                           # Listen on :2222
  arcade serve --ssh :23234              # Listen on port 23234
  arcade serve --host-key ./my_host_key  # Use specific host key
  arcade serve --idle-timeout 10m        # Drop idle sessions sooner

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":2222", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle timeout before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		fail("%v", err)
	}
	logger := newLogger(settings.Log.Level, "arcade-ssh")

	cfg := tui.SSHServerConfig{
		Address:     settings.Server.Address,
		HostKeyPath: settings.Server.HostKeyPath,
		IdleTimeout: settings.Server.IdleTimeout,
		GameID:      defaultGameID,
		TickRate:    settings.Display.TickRate,
		HoldTicks:   settings.Display.HoldTicks,
	}

	var saver tui.ScoreSaver
	store := openStore(settings.Storage.DBPath, logger)
	if store != nil {
		defer store.Close()
		saver = store
	}

	server, err := tui.NewSSHServer(cfg, saver, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	logger.Info("press Ctrl+C to stop", "connect", "ssh localhost -p <port>")

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		fail("%v", err)
	}
}
