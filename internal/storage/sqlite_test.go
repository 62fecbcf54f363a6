package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("snake", score, 0); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different game
	if _, err := store.SaveScore("simon", 12, 0); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	simonScores, err := store.TopScores("simon", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(simonScores) != 1 {
		t.Errorf("Expected 1 simon score, got %d", len(simonScores))
	}
}

func TestStoreMovesBreakTies(t *testing.T) {
	store := openTestStore(t)

	// Same pair count, different move counts: fewer moves ranks higher.
	store.SaveScore("memory", 8, 14)
	store.SaveScore("memory", 8, 10)
	store.SaveScore("memory", 8, 22)

	scores, err := store.TopScores("memory", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Moves != 10 || scores[1].Moves != 14 || scores[2].Moves != 22 {
		t.Errorf("Moves not breaking ties: %v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("snake", (i+1)*100, 0)
	}

	scores, err := store.TopScores("snake", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("snake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("snake", 100, 0)
	store.SaveScore("snake", 300, 0)
	store.SaveScore("snake", 200, 0)

	high, err = store.HighScore("snake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("snake", 100, 0)
	store.SaveScore("snake", 200, 0)
	store.SaveScore("memory", 8, 12)

	if err := store.ClearScores("snake"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	snakeScores, _ := store.TopScores("snake", 10)
	if len(snakeScores) != 0 {
		t.Errorf("Expected 0 snake scores after clear, got %d", len(snakeScores))
	}

	memoryScores, _ := store.TopScores("memory", 10)
	if len(memoryScores) != 1 {
		t.Errorf("Memory scores should not be affected by clearing snake")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("snake", i*10, 0)
	}

	scores, err := store.AllScores("snake")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("memory", 8, 15)
	store.SaveScore("memory", 8, 11)
	store.SaveScore("memory", 6, 20)

	stats, err := store.GetGameStats("memory")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.HighScore != 8 {
		t.Errorf("HighScore = %d, expected 8", stats.HighScore)
	}
	if stats.BestMoves != 11 {
		t.Errorf("BestMoves = %d, expected 11", stats.BestMoves)
	}
	if stats.TotalScore != 22 {
		t.Errorf("TotalScore = %d, expected 22", stats.TotalScore)
	}
}

func TestStoreBestMovesIgnoresZero(t *testing.T) {
	store := openTestStore(t)

	// Snake does not count moves; its zeros must not win the MIN.
	store.SaveScore("snake", 10, 0)

	stats, err := store.GetGameStats("snake")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.BestMoves != 0 {
		t.Errorf("BestMoves = %d for a movesless game, expected 0", stats.BestMoves)
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("snake", 5, 0)
	store.SaveScore("simon", 9, 0)
	store.SaveScore("memory", 8, 13)

	stats, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}

	if len(stats) != 3 {
		t.Fatalf("Expected stats for 3 games, got %d", len(stats))
	}
	for _, id := range []string{"snake", "simon", "memory"} {
		if stats[id] == nil {
			t.Errorf("Missing stats for %q", id)
		}
	}
	if stats["memory"].BestMoves != 13 {
		t.Errorf("memory BestMoves = %d, expected 13", stats["memory"].BestMoves)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
