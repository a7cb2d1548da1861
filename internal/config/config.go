// Package config loads the pomostart configuration from layered sources.
// Priority: environment variables > local config > global config > defaults.
// Every knob the launcher used to hard-code (log path, working directory,
// emulator preference order, timer parameters, window geometry) is a
// recognized field here so the launch sequence is testable across
// environments.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the pomostart tool configuration
type Configuration struct {
	LogPath    string `koanf:"log_path" validate:"required"`
	WorkingDir string `koanf:"working_dir" validate:"required"`

	// Terminals is the emulator preference order; launch strategies are
	// tried front to back until one spawns.
	Terminals   []string `koanf:"terminals" validate:"required,min=1"`
	WindowTitle string   `koanf:"window_title" validate:"required"`

	// TimerCmd is the command run inside the spawned terminal window.
	TimerCmd     string `koanf:"timer_cmd" validate:"required"`
	WorkMinutes  int    `koanf:"work_minutes" validate:"min=1,max=600"`
	BreakMinutes int    `koanf:"break_minutes" validate:"min=1,max=600"`

	// Window geometry constants for emulators that take --geometry.
	// Width/height are in character cells, offsets in pixels.
	WindowWidth  int `koanf:"window_width" validate:"min=1"`
	WindowHeight int `koanf:"window_height" validate:"min=1"`
	RightMargin  int `koanf:"right_margin" validate:"min=0"`
	TopOffset    int `koanf:"top_offset" validate:"min=0"`

	// Session readiness wait: poll for ReadyMarker (or a display env) up
	// to ReadyTimeoutSecs, then fall back to sleeping StartupDelaySecs.
	StartupDelaySecs int    `koanf:"startup_delay" validate:"min=0,max=300"`
	ReadyMarker      string `koanf:"ready_marker"`
	ReadyTimeoutSecs int    `koanf:"ready_timeout" validate:"min=0,max=300"`

	// StateFile is where the built-in timer persists its state.
	StateFile string `koanf:"state_file" validate:"required"`
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Load global config if it exists
	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".pomostart", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Load local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider("POMOSTART_", ".", envTransform), nil)

	// Unmarshal into struct
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Expand home directory in paths
	cfg.LogPath = expandHomePath(cfg.LogPath)
	cfg.WorkingDir = expandHomePath(cfg.WorkingDir)
	cfg.StateFile = expandHomePath(cfg.StateFile)
	if cfg.ReadyMarker != "" {
		cfg.ReadyMarker = expandHomePath(cfg.ReadyMarker)
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys
// Example: POMOSTART_WORKING_DIR -> working_dir
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "POMOSTART_"))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
