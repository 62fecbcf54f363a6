package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/trio-arcade/trio/internal/config"
	"github.com/trio-arcade/trio/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that allows users to connect and play games.

Each SSH connection gets their own session with a game picker menu.
Scores are stored per-server (all users share the same leaderboard).

Settings come from flags, then TRIO_* environment variables (a .env
file next to the binary is read if present), then the config file.
The config file is watched while the server runs; edits to game
settings apply to new games without a restart.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.trio/host_key

Examples:
  trio serve                           # Listen on :23234 with auto-generated key
  trio serve --ssh :2222               # Listen on port 2222
  trio serve --host-key ./my_host_key  # Use specific host key
  trio serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) {
	// A .env file is optional; real environment variables win either way
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	applyGameConfig(cfg)

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = firstOf(flagSSHAddr, os.Getenv("TRIO_SSH_ADDR"), cfg.Server.Address)
	srvCfg.HostKeyPath = firstOf(flagHostKey, os.Getenv("TRIO_HOST_KEY"), cfg.Server.HostKeyPath)
	srvCfg.DBPath = firstOf(flagDBPath, os.Getenv("TRIO_DB"), cfg.Storage.Path)
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	} else if cfg.Server.IdleTimeoutMin > 0 {
		srvCfg.IdleTimeout = time.Duration(cfg.Server.IdleTimeoutMin) * time.Minute
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	// Live-reload game settings while the server runs
	watchConfig()

	fmt.Printf("Starting trio SSH server on %s\n", srvCfg.Address)
	if _, port, splitErr := net.SplitHostPort(srvCfg.Address); splitErr == nil {
		fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	}
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// watchConfig reapplies game settings when the effective config file
// changes on disk. Sessions already in a game keep their engine; new
// games pick up the reloaded values.
func watchConfig() {
	path := config.ResolvePath(flagConfig)
	if path == "" {
		return
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "trio-config",
	})

	go func() {
		err := config.Watch(context.Background(), path, func(cfg config.Config, err error) {
			if err != nil {
				logger.Warn("config reload failed", "error", err)
				return
			}
			applyGameConfig(cfg)
			logger.Info("config reloaded", "path", path)
		})
		if err != nil {
			logger.Warn("config watch unavailable", "error", err)
		}
	}()
}

// firstOf returns the first nonempty value.
func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
