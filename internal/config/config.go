package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Player          string `koanf:"player"`            // "auto", "mpris", or "cmus"
	PollIntervalMs  int    `koanf:"poll_interval_ms"`  // tick interval (default 100)
	FetchTimeoutSec int    `koanf:"fetch_timeout_sec"` // online fetch timeout (default 5)
	LyricsDir       string `koanf:"lyrics_dir"`        // extra local lyrics directory
	Offline         bool   `koanf:"offline"`           // disable the lrclib API
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.LyricsDir = expandPath(cfg.LyricsDir)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/refrain/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "refrain", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// PlayerName returns the configured player provider, defaulting to auto.
func (c *Config) PlayerName() string {
	switch c.Player {
	case "mpris", "cmus":
		return c.Player
	default:
		return "auto"
	}
}

// PollInterval returns the tick interval with defaults and bounds
// applied (50ms–1s).
func (c *Config) PollInterval() time.Duration {
	ms := c.PollIntervalMs
	if ms <= 0 {
		ms = 100
	}
	if ms < 50 {
		ms = 50
	}
	if ms > 1000 {
		ms = 1000
	}
	return time.Duration(ms) * time.Millisecond
}

// FetchTimeout returns the online fetch timeout with defaults and
// bounds applied (1s–30s).
func (c *Config) FetchTimeout() time.Duration {
	sec := c.FetchTimeoutSec
	if sec <= 0 {
		sec = 5
	}
	if sec > 30 {
		sec = 30
	}
	return time.Duration(sec) * time.Second
}
