package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var flagHoldTicks int

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: breakout).

Controls:
  Left/A/H     - Move paddle left
  Right/D/L    - Move paddle right
  Space/R      - Restart (after the game has ended)
  Ctrl+S       - Save a text screenshot to ~/.arcade/screenshots
  Q/Ctrl+C     - Quit

Terminals report key presses but not releases, so a direction stays
held for --hold-ticks ticks after each press. Keyboard auto-repeat keeps
the paddle moving while a key is held down.

Examples:
  arcade play
  arcade play breakout --fps 30
  arcade play --hold-ticks 12
  arcade play --config ./my-arcade.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", tui.DefaultHoldTicks, "Ticks a direction stays held after a key press")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultGameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fail("unknown game %q\nRun 'arcade list' to see available games.", gameID)
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		fail("%v", err)
	}
	logger := newLogger(settings.Log.Level, "arcade")

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: settings.Display.TickRate,
		},
		HoldTicks: settings.Display.HoldTicks,
	}

	// Continue without storage if the database is unavailable
	store := openStore(settings.Storage.DBPath, logger)
	if store != nil {
		opts.Store = store
	}

	runErr := tui.Run(game, opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
