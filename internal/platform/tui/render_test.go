package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/inventory"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorBlue)
	s.DrawText(0, 1, "plain")

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "abcd") {
		t.Errorf("colored runs should keep their text, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "plain") {
		t.Errorf("second line = %q", lines[1])
	}
	if len(lines[0]) != 12 {
		t.Errorf("lines should span the full width, got %d", len(lines[0]))
	}
}

type fakeScores struct {
	entries []storage.ScoreEntry
	stats   *storage.GameStats
	err     error
}

func (f fakeScores) TopScores(string, int) ([]storage.ScoreEntry, error) {
	return f.entries, f.err
}

func (f fakeScores) GetGameStats(string) (*storage.GameStats, error) {
	return f.stats, f.err
}

func TestScoreboardView(t *testing.T) {
	src := fakeScores{
		entries: []storage.ScoreEntry{
			{Score: 50, Lives: 2, Won: true, CreatedAt: time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)},
			{Score: 12},
		},
		stats: &storage.GameStats{GamesCount: 2, Wins: 1, HighScore: 50, AvgScore: 31},
	}

	m := NewScoreboardModel(src, "breakout", "Breakout", 80, 24)
	view := ansi.Strip(m.View())

	for _, want := range []string{"HIGH SCORES - Breakout", "Games: 2", "Wins: 1", "#1", "win"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	m := NewScoreboardModel(fakeScores{}, "breakout", "Breakout", 80, 24)
	if !strings.Contains(ansi.Strip(m.View()), "No scores recorded yet") {
		t.Error("empty scoreboard should show a hint")
	}

	m = NewScoreboardModel(fakeScores{err: errors.New("boom")}, "breakout", "Breakout", 80, 24)
	if !strings.Contains(ansi.Strip(m.View()), "boom") {
		t.Error("load errors should be shown")
	}
}

func TestScoreRows(t *testing.T) {
	rows := ScoreRows([]storage.ScoreEntry{{Score: 9, Lives: 0}, {Score: 3, Won: true}})

	if rows[0][0] != "#1" || rows[0][1] != "9" || rows[0][3] != "loss" {
		t.Errorf("unexpected first row: %v", rows[0])
	}
	if rows[1][0] != "#2" || rows[1][3] != "win" {
		t.Errorf("unexpected second row: %v", rows[1])
	}
}

func TestInventoryView(t *testing.T) {
	rows := []storage.InventoryRow{
		{ID: 1, Item: inventory.NewItem("bolts", "40", "100"), Shortage: 60},
		{ID: 2, Item: inventory.NewItem("nuts", "5", "7.5"), Shortage: 2.5},
	}

	m := NewInventoryModel(rows, 80, 24)
	if m.TotalShortage() != 62.5 {
		t.Errorf("TotalShortage() = %v, expected 62.5", m.TotalShortage())
	}

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "bolts") || !strings.Contains(view, "Total shortage: 62.5") {
		t.Errorf("unexpected inventory view:\n%s", view)
	}

	table := InventoryRows(rows)
	if table[1][2] != "7.5" || table[1][3] != "2.5" {
		t.Errorf("unexpected formatted row: %v", table[1])
	}
}
