// trio is a terminal arcade of three clock-driven mini games: Snake,
// Simon and Memory.
//
// Usage:
//
//	trio list              - List available games
//	trio play <game>       - Play a game
//	trio menu              - Start menu to pick games interactively
//	trio serve             - Start SSH server for remote play
//	trio scores <game>     - Show high scores for a game
//	trio config init       - Write a starter config file
//
// Global flags:
//
//	--config <path> - Path to a trio.yaml config file
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.trio/scores.db)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/trio-arcade/trio/internal/config"
	"github.com/trio-arcade/trio/internal/games/memory"
	"github.com/trio-arcade/trio/internal/games/snake"

	// Simon registers itself and takes no settings
	_ "github.com/trio-arcade/trio/internal/games/simon"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trio",
	Short: "Trio - Snake, Simon and Memory in your terminal",
	Long: `Trio is a terminal arcade of three clock-driven mini games.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Manage the config file

Examples:
  trio list
  trio play snake
  trio menu
  trio serve --ssh :2222
  trio scores memory`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (default: ~/.trio/config.yaml, then ./trio.yaml)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the effective config for this invocation.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

// applyGameConfig pushes the loaded settings into the game packages so that
// engines created through the hub pick them up. A nonzero seed flag
// overrides the per-game seeds for reproducible runs.
func applyGameConfig(cfg config.Config) {
	sc := snake.Config{
		Columns:      cfg.Snake.Board.Columns,
		Rows:         cfg.Snake.Board.Rows,
		TickInterval: time.Duration(cfg.Snake.TickMS) * time.Millisecond,
		Seed:         cfg.Snake.Seed,
	}
	mc := memory.Config{
		Pairs: cfg.Memory.Pairs,
		Set:   memory.ContentSet(cfg.Memory.Set),
		Seed:  cfg.Memory.Seed,
	}

	if flagSeed != 0 {
		sc.Seed = flagSeed
		mc.Seed = flagSeed
	}

	snake.Configure(sc)
	memory.Configure(mc)
}

// dbPath picks the database location: the --db flag wins over the config.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Storage.Path
}
