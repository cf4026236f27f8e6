package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/inventory"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("breakout", 12, 0, false); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	// Migrations must be re-runnable
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("breakout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("Expected persisted high score 12, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	sessions := []struct {
		game  string
		score int
		lives int
		won   bool
	}{
		{"breakout", 20, 0, false},
		{"breakout", 50, 2, true},
		{"breakout", 35, 0, false},
		{"breakout", 35, 0, false},
		{"other", 99, 0, false},
	}
	for _, s := range sessions {
		if _, err := store.SaveScore(s.game, s.score, s.lives, s.won); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("breakout", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(scores))
	}

	want := []int{50, 35, 35, 20}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if !scores[0].Won || scores[0].Lives != 2 {
		t.Errorf("Top entry should be the won session with 2 lives, got %+v", scores[0])
	}
	if scores[1].ID > scores[2].ID {
		t.Error("Ties should be ordered by the earlier session")
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		if _, err := store.SaveScore("breakout", i, 0, false); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	tests := []struct {
		limit int
		want  int
	}{
		{5, 5},
		{0, DefaultLimit},
		{-1, DefaultLimit},
		{100, 15},
	}
	for _, tc := range tests {
		scores, err := store.TopScores("breakout", tc.limit)
		if err != nil {
			t.Fatalf("TopScores(%d) failed: %v", tc.limit, err)
		}
		if len(scores) != tc.want {
			t.Errorf("TopScores(%d) returned %d entries, expected %d", tc.limit, len(scores), tc.want)
		}
	}

	all, err := store.AllScores("breakout")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 15 || all[0].Score != 14 {
		t.Errorf("AllScores() should return all 15 entries best-first, got %d", len(all))
	}
}

func TestHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("breakout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Empty table should report 0, got %d", high)
	}

	store.SaveScore("breakout", 7, 0, false)  //nolint:errcheck
	store.SaveScore("breakout", 42, 1, true) //nolint:errcheck

	if high, _ = store.HighScore("breakout"); high != 42 {
		t.Errorf("Expected high score 42, got %d", high)
	}

	if err := store.ClearScores("breakout"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if high, _ = store.HighScore("breakout"); high != 0 {
		t.Errorf("Expected 0 after clear, got %d", high)
	}
}

func TestGetGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("breakout")
	if err != nil {
		t.Fatalf("GetGameStats() on empty table failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Empty stats expected, got %+v", stats)
	}

	store.SaveScore("breakout", 10, 0, false) //nolint:errcheck
	store.SaveScore("breakout", 50, 3, true)  //nolint:errcheck
	store.SaveScore("breakout", 30, 0, false) //nolint:errcheck

	stats, err = store.GetGameStats("breakout")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.Wins != 1 {
		t.Errorf("Wins = %d, expected 1", stats.Wins)
	}
	if stats.HighScore != 50 {
		t.Errorf("HighScore = %d, expected 50", stats.HighScore)
	}
	if stats.AvgScore != 30 {
		t.Errorf("AvgScore = %v, expected 30", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestInventorySaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	rows, err := store.LoadInventory()
	if err != nil {
		t.Fatalf("LoadInventory() failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("New store should have no inventory, got %d rows", len(rows))
	}

	items := []inventory.Item{
		inventory.NewItem("bolts", "40", "100"),
		inventory.NewItem("nuts", "100", "40"),
	}
	if err := store.SaveInventory(items); err != nil {
		t.Fatalf("SaveInventory() failed: %v", err)
	}

	rows, err = store.LoadInventory()
	if err != nil {
		t.Fatalf("LoadInventory() failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Item.Name != "bolts" || rows[0].Shortage != 60 {
		t.Errorf("Unexpected first row: %+v", rows[0])
	}
	if rows[1].Item.Name != "nuts" || rows[1].Shortage != 0 {
		t.Errorf("Unexpected second row: %+v", rows[1])
	}

	// Saving again replaces everything
	if err := store.SaveInventory([]inventory.Item{inventory.NewItem("washers", "1", "3")}); err != nil {
		t.Fatalf("SaveInventory() failed: %v", err)
	}
	rows, _ = store.LoadInventory()
	if len(rows) != 1 || rows[0].Item.Name != "washers" || rows[0].Shortage != 2 {
		t.Errorf("Second save should replace rows, got %+v", rows)
	}
}

func TestInventorySaveRollsBack(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveInventory([]inventory.Item{inventory.NewItem("bolts", "1", "2")}); err != nil {
		t.Fatalf("SaveInventory() failed: %v", err)
	}

	// Break the insert statement so the transaction fails after DELETE.
	if _, err := store.db.Exec("ALTER TABLE inventory_items RENAME COLUMN shortage TO missing"); err != nil {
		t.Fatalf("alter table: %v", err)
	}

	if err := store.SaveInventory([]inventory.Item{inventory.NewItem("nuts", "1", "2")}); err == nil {
		t.Fatal("SaveInventory() should fail with a broken schema")
	}

	var count int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM inventory_items").Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("Failed save should keep the previous rows, got %d", count)
	}
}

func TestAddInventoryItem(t *testing.T) {
	store := openTestStore(t)

	store.SaveInventory([]inventory.Item{inventory.NewItem("bolts", "1", "2")}) //nolint:errcheck
	if _, err := store.AddInventoryItem(inventory.NewItem("nuts", "0", "5")); err != nil {
		t.Fatalf("AddInventoryItem() failed: %v", err)
	}

	rows, err := store.LoadInventory()
	if err != nil {
		t.Fatalf("LoadInventory() failed: %v", err)
	}
	if len(rows) != 2 || rows[1].Item.Name != "nuts" || rows[1].Shortage != 5 {
		t.Errorf("Added item should be appended, got %+v", rows)
	}
}

func TestNilStore(t *testing.T) {
	var store *Store

	if _, err := store.SaveScore("breakout", 1, 0, false); err == nil {
		t.Error("nil store SaveScore should fail")
	}
	if _, err := store.LoadInventory(); err == nil {
		t.Error("nil store LoadInventory should fail")
	}
}
