// Package config loads marktide's TOML configuration. A missing config file
// is not an error: defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the user-tunable knobs.
type Config struct {
	// DebounceMs is the typing coalescing delay for history commits.
	DebounceMs int `toml:"debounce_ms"`

	// HistoryDepth caps the undo/redo stacks.
	HistoryDepth int `toml:"history_depth"`

	// PandocPath overrides the pandoc binary used for import/export.
	PandocPath string `toml:"pandoc_path"`

	// HooksPath points at a Lua hook script (on_open/on_save).
	HooksPath string `toml:"hooks_path"`

	// Preview toggles the rendered pane.
	Preview bool `toml:"preview"`

	// LineHeight is the per-line height used for outline scroll targets.
	LineHeight int `toml:"line_height"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DebounceMs:   700,
		HistoryDepth: 200,
		PandocPath:   "pandoc",
		Preview:      true,
		LineHeight:   1,
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "marktide", "config.toml")
}

// Load reads the config at path, applying defaults for absent keys. A missing
// file returns the defaults without error; a malformed file returns the
// defaults alongside the error so the caller can continue.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("load config %s: %w", path, err)
	}

	if cfg.DebounceMs <= 0 {
		cfg.DebounceMs = Default().DebounceMs
	}
	if cfg.HistoryDepth <= 0 {
		cfg.HistoryDepth = Default().HistoryDepth
	}
	if cfg.LineHeight <= 0 {
		cfg.LineHeight = Default().LineHeight
	}
	return cfg, nil
}

// Debounce returns the typing coalescing delay as a duration.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}
