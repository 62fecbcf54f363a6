// Package config provides YAML-based configuration loading for the
// arcade platform, with an fsnotify watcher for live reload.
package config

// Config is the full trio.yaml document. Simon carries no section:
// its pacing ramps on a fixed schedule and takes no tuning.
type Config struct {
	Snake   SnakeConfig   `yaml:"snake"`
	Memory  MemoryConfig  `yaml:"memory"`
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
}

// SnakeConfig contains the board and pacing parameters for Snake.
type SnakeConfig struct {
	Board  BoardConfig `yaml:"board"`
	TickMS int         `yaml:"tick_ms"`
	Seed   int64       `yaml:"seed"`
}

// BoardConfig defines playfield dimensions in cells.
type BoardConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// MemoryConfig contains the deck parameters for Memory.
type MemoryConfig struct {
	Pairs int    `yaml:"pairs"`
	Set   string `yaml:"set"`
	Seed  int64  `yaml:"seed"`
}

// ServerConfig contains the SSH server settings.
type ServerConfig struct {
	Address        string `yaml:"address"`
	HostKeyPath    string `yaml:"host_key_path"`
	IdleTimeoutMin int    `yaml:"idle_timeout_min"`
}

// StorageConfig contains the score database settings.
type StorageConfig struct {
	Path string `yaml:"path"`
}
