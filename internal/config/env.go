package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envOverrides lists the TERM2048_* variables. Zero values mean unset.
type envOverrides struct {
	BoardSize int    `env:"TERM2048_BOARD_SIZE"`
	DBPath    string `env:"TERM2048_DB"`
	LogLevel  string `env:"TERM2048_LOG_LEVEL"`
	LogFile   string `env:"TERM2048_LOG_FILE"`
}

// ApplyEnv overrides cfg with TERM2048_* environment variables and
// re-validates the result.
func ApplyEnv(cfg *Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}

	if o.BoardSize != 0 {
		cfg.Board.Size = o.BoardSize
	}
	if o.DBPath != "" {
		cfg.Storage.DBPath = o.DBPath
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.LogFile != "" {
		cfg.Log.File = o.LogFile
	}

	return cfg.Validate()
}
