// arcade runs the breakout simulation in the terminal, locally or over SSH.
//
// Usage:
//
//	arcade list                  - List available games
//	arcade play [game]           - Play a game (default: breakout)
//	arcade serve                 - Start SSH server for remote play
//	arcade scores [game]         - Show high scores for a game
//	arcade inventory <command>   - Inventory shortage calculator
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.arcade/configs, ./configs)
//	--fps <rate>        - Set tick rate (default: 60)
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

const defaultGameID = "breakout"

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "TUI Breakout - break bricks in your terminal",
	Long: `TUI Breakout runs a classic single-screen breakout game in the terminal.

Available commands:
  list       - Show all available games
  play       - Play breakout
  serve      - Start SSH server for remote play
  scores     - View high scores
  inventory  - Inventory shortage calculator

Examples:
  arcade play
  arcade play --fps 30
  arcade serve --ssh :2222
  arcade scores --plain
  arcade inventory import ./items.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(inventoryCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
