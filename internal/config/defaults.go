package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/term2048.yaml
var defaultYAML []byte

//go:embed defaults/config.schema.json
var schemaJSON string

// EmbeddedSource marks a configuration built from the embedded default.
const EmbeddedSource = "embedded"

// Default returns the embedded default configuration.
func Default() Config {
	cfg := hardcodedDefault()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return hardcodedDefault()
	}
	cfg.Source = EmbeddedSource
	return cfg
}

func hardcodedDefault() Config {
	return Config{
		Board: BoardConfig{
			Size:                 4,
			SpawnFourProbability: 0.1,
			WinTile:              2048,
		},
		Storage: StorageConfig{DBPath: "~/.term2048/scores.db"},
		Log:     LogConfig{Level: "info", File: "~/.term2048/term2048.log"},
		UI:      UIConfig{MergeFlashMS: 150},
		Source:  EmbeddedSource,
	}
}
