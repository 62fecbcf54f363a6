package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/trio-arcade/trio/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
	Long: `Inspect and bootstrap the trio configuration.

Config files are searched in this order:
  1. --config <path>
  2. ~/.trio/config.yaml
  3. ./trio.yaml
Missing values fall back to built-in defaults, so partial files are fine.

Examples:
  trio config init
  trio config init --config ./trio.yaml
  trio config show`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long:  `Writes the default configuration, with comments, to ~/.trio/config.yaml (or the --config path). Refuses to overwrite an existing file.`,
	Run:   runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Loads the configuration the way the games would and prints the result as YAML.`,
	Run:   runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(_ *cobra.Command, _ []string) {
	path := config.UserConfigPath()
	if flagConfig != "" {
		path = flagConfig
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: cannot determine home directory; pass --config <path>")
		os.Exit(1)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists, refusing to overwrite\n", path)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", path)
	fmt.Println("Edit it and run 'trio config show' to check the result.")
}

func runConfigShow(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if path := config.ResolvePath(flagConfig); path != "" {
		fmt.Printf("# from %s\n", path)
	} else {
		fmt.Println("# built-in defaults")
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
