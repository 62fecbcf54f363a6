package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trio-arcade/trio/internal/hub"
	"github.com/trio-arcade/trio/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresStats bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top scores for the specified game, or a summary
across all games when no game is given.

Examples:
  trio scores              # Summary for every game
  trio scores snake        # Top 10 for Snake
  trio scores memory --limit 25
  trio scores memory --stats
  trio scores simon --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "How many scores to show (0 = all)")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show aggregate statistics instead of the score list")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores for the game")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// No game argument: print the cross-game summary
	if len(args) == 0 {
		printAllStats(store)
		return
	}

	gameID := args[0]

	// Check if game exists
	if !hub.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'trio list' to see available games.")
		os.Exit(1)
	}
	title := gameTitle(gameID)

	if flagScoresClear {
		if clearErr := store.ClearScores(gameID); clearErr != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", clearErr)
			os.Exit(1)
		}
		fmt.Printf("Cleared all scores for %s.\n", title)
		return
	}

	if flagScoresStats {
		printGameStats(store, gameID, title)
		return
	}

	printTopScores(store, gameID, title)
}

// gameTitle resolves the display title for a registered game ID.
func gameTitle(gameID string) string {
	for _, info := range hub.List() {
		if info.ID == gameID {
			return info.Title
		}
	}
	return gameID
}

func printTopScores(store *storage.Store, gameID, title string) {
	var scores []storage.ScoreEntry
	var err error
	if flagScoresLimit > 0 {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	} else {
		scores, err = store.AllScores(gameID)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'trio play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Moves", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		moves := "-"
		if entry.Moves > 0 {
			moves = fmt.Sprintf("%d", entry.Moves)
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6s  %s\n", i+1, entry.Score, moves, dateStr)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

func printGameStats(store *storage.Store, gameID, title string) {
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Statistics - %s\n", title)
	fmt.Println()

	if stats.GamesCount == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	fmt.Printf("  Games played:  %d\n", stats.GamesCount)
	fmt.Printf("  High score:    %d\n", stats.HighScore)
	fmt.Printf("  Average score: %.1f\n", stats.AvgScore)
	fmt.Printf("  Total score:   %d\n", stats.TotalScore)
	if stats.BestMoves > 0 {
		fmt.Printf("  Best moves:    %d\n", stats.BestMoves)
	}
	fmt.Printf("  Last played:   %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
}

func printAllStats(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'trio play <game>' to set the first high score!")
		return
	}

	fmt.Printf("  %-10s  %-7s  %-10s  %-6s  %s\n", "Game", "Games", "High", "Moves", "Last played")
	fmt.Printf("  %-10s  %-7s  %-10s  %-6s  %s\n", "----", "-----", "----", "-----", "-----------")

	for _, stats := range all {
		moves := "-"
		if stats.BestMoves > 0 {
			moves = fmt.Sprintf("%d", stats.BestMoves)
		}
		fmt.Printf("  %-10s  %-7d  %-10d  %-6s  %s\n",
			gameTitle(stats.GameID), stats.GamesCount, stats.HighScore, moves,
			stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
