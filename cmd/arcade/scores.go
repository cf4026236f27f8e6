package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the best finished sessions for a game (default: breakout).

Without --plain, an interactive table is shown. With --plain, the top
scores are printed as text, which is handy for scripts and pipes.

Examples:
  arcade scores
  arcade scores --plain --limit 5
  arcade scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as plain text")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLimit, "Number of scores to print with --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := defaultGameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fail("unknown game %q\nRun 'arcade list' to see available games.", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}
	title := game.Title()

	settings, err := loadSettings(cmd)
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(settings.Storage.DBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Scores for %s cleared.\n", title)
		return
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, gameID, title, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	printScores(store, gameID, title)
}

func printScores(store *storage.Store, gameID, title string) {
	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-6s  %s\n", "Rank", "Bricks", "Lives", "Result", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-6s  %s\n", "----", "------", "-----", "------", "----")

	rows := tui.ScoreRows(scores)
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-6d  %-5d  %-6s  %s\n",
			i+1, entry.Score, entry.Lives, rows[i][3], entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Games: %d  Wins: %d  Avg: %.1f\n",
			stats.HighScore, stats.GamesCount, stats.Wins, stats.AvgScore)
	}
}
