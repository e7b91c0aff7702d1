package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// SidebarConfig holds sidebar display defaults.
type SidebarConfig struct {
	// Side is the default sidebar placement: left, right, top, bottom.
	Side string `toml:"side"`

	// AutoUpdate re-renders sidebars on buffer-set-changed
	// notifications by default.
	AutoUpdate bool `toml:"auto_update"`

	// Width is the default sidebar width in display cells.
	Width int `toml:"width"`

	// MinIntervalMS throttles sidebar recomputation to at most one run
	// per interval, in milliseconds. Zero disables throttling.
	MinIntervalMS int `toml:"min_interval_ms"`

	// ModifiedFirst groups buffers with unsaved changes ahead of clean
	// ones in the default sort.
	ModifiedFirst bool `toml:"modified_first"`

	// Blacklist lists regexes of frame titles that may not host a
	// sidebar.
	Blacklist []string `toml:"blacklist"`
}

// LogConfig holds logging defaults.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `toml:"level"`
}

// Config is the root framescope configuration.
type Config struct {
	Sidebar SidebarConfig `toml:"sidebar"`
	Log     LogConfig     `toml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Sidebar: SidebarConfig{
			Side:       "right",
			AutoUpdate: true,
			Width:      30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// MinInterval returns the throttle interval as a duration.
func (c SidebarConfig) MinInterval() time.Duration {
	return time.Duration(c.MinIntervalMS) * time.Millisecond
}

// Load reads configuration from the given path, applying values on top
// of the defaults. A missing file is not an error and yields the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
