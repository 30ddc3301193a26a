// Package config loads the optional TOML configuration controlling prompt
// text, word-jump behavior, marker word lists, and cache/kitten paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full configuration with every path already expanded.
type Config struct {
	Prompt         string  `toml:"prompt"`
	WordJumpPolicy string  `toml:"word_jump_policy"` // "smart" or "alphanum"
	LogFile        string  `toml:"log_file"`
	Paths          Paths   `toml:"paths"`
	Markers        Markers `toml:"markers"`
}

// Paths locates the persisted state files and the scroll_mark kitten.
type Paths struct {
	LastSearch       string `toml:"last_search"`
	LastPosition     string `toml:"last_position"`
	ScrollMarkKitten string `toml:"scroll_mark_kitten"`
}

// Markers overrides the severity word lists used to pick a highlight color.
type Markers struct {
	AlertWords   []string `toml:"alert_words"`
	WarningWords []string `toml:"warning_words"`
}

// Default returns the configuration used when no file exists. State lives
// next to kitty's own configuration, matching where the scroll_mark kitten
// is installed.
func Default() Config {
	kittyDir := filepath.Join(configHome(), "kitty")
	return Config{
		Prompt:         "Search: ",
		WordJumpPolicy: "smart",
		Paths: Paths{
			LastSearch:       filepath.Join(kittyDir, ".last_search"),
			LastPosition:     filepath.Join(kittyDir, ".search_position"),
			ScrollMarkKitten: filepath.Join(kittyDir, "scroll_mark.py"),
		},
	}
}

// DefaultPath returns the location probed when no --config flag is given.
func DefaultPath() string {
	return filepath.Join(configHome(), "kitty-live-search", "config.toml")
}

// Load reads the configuration at path, filling every omitted field from the
// defaults. A missing file yields the defaults; a malformed file is an
// error so a typo is caught before the terminal enters raw mode.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	switch cfg.WordJumpPolicy {
	case "", "smart", "alphanum":
	default:
		return cfg, fmt.Errorf("config %s: unknown word_jump_policy %q", path, cfg.WordJumpPolicy)
	}

	cfg.Paths.LastSearch = expandHome(cfg.Paths.LastSearch)
	cfg.Paths.LastPosition = expandHome(cfg.Paths.LastPosition)
	cfg.Paths.ScrollMarkKitten = expandHome(cfg.Paths.ScrollMarkKitten)
	cfg.LogFile = expandHome(cfg.LogFile)
	return cfg, nil
}

func configHome() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "."
		}
		return filepath.Join(home, ".config")
	}
	return dir
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
