// Package config loads the term2048 YAML configuration, validates it against
// an embedded JSON schema and applies TERM2048_* environment overrides.
package config

import "time"

// Config is the effective term2048 configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	UI      UIConfig      `yaml:"ui"`

	// Source is the file the configuration was read from, or "embedded".
	Source string `yaml:"-"`
}

// BoardConfig holds the grid engine parameters.
type BoardConfig struct {
	Size                 int     `yaml:"size"`
	SpawnFourProbability float64 `yaml:"spawn_four_probability"`
	WinTile              int     `yaml:"win_tile"`
}

// StorageConfig locates the best score database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig configures the charmbracelet logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// UIConfig holds renderer settings.
type UIConfig struct {
	MergeFlashMS int `yaml:"merge_flash_ms"`
}

// MergeFlash returns how long merged tiles stay highlighted.
func (u UIConfig) MergeFlash() time.Duration {
	return time.Duration(u.MergeFlashMS) * time.Millisecond
}
