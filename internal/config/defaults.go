package config

import (
	_ "embed"
)

//go:embed defaults/trio.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors the
// embedded defaults/trio.yaml and serves as the fallback when even the
// embedded document fails to parse.
func DefaultConfig() Config {
	return Config{
		Snake: SnakeConfig{
			Board:  BoardConfig{Columns: 16, Rows: 24},
			TickMS: 160,
		},
		Memory: MemoryConfig{
			Pairs: 8,
			Set:   "symbols",
		},
		Server: ServerConfig{
			Address:        ":23234",
			IdleTimeoutMin: 30,
		},
		Storage: StorageConfig{
			Path: "~/.trio/scores.db",
		},
	}
}

// DefaultYAML returns the embedded default document, for `trio config init`.
func DefaultYAML() []byte {
	return defaultYAML
}
