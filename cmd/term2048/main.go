// term2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	term2048 [play]          - Play a game (default command)
//	term2048 best            - Show best scores per board size
//	term2048 best --reset    - Clear the best score for the configured board size
//	term2048 config show     - Print the effective configuration
//	term2048 config init     - Write the default config to ~/.term2048/config.yaml
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.term2048, ./configs)
//	--db <path>         - Best score database (default: ~/.term2048/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string

	// Set by loadSettings before any command runs.
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Defining the flags resets the flag
// variables to their defaults.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "term2048",
		Short: "2048 in your terminal",
		Long: `term2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the tiles, merge equal neighbours and reach 2048.
Running term2048 without a subcommand starts a game.

Available commands:
  play     - Play a game (default)
  best     - Show or reset best scores
  config   - Show or initialise the configuration

Examples:
  term2048
  term2048 play --size 5
  term2048 best
  term2048 config init`,
		PersistentPreRunE: loadSettings,
		RunE:              runPlay,
		SilenceUsage:      true,
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to best score database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newBestCmd())
	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

// loadSettings resolves the configuration (file, then environment, then
// flags) and sets up the stderr logger.
func loadSettings(cmd *cobra.Command, _ []string) error {
	// A missing .env file is normal.
	_ = godotenv.Load()

	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(&loaded); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		loaded.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		loaded.Log.Level = flagLogLevel
	}
	if flags.Changed("size") {
		loaded.Board.Size = flagSize
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	l, err := newLogger(os.Stderr, loaded.Log.Level)
	if err != nil {
		return err
	}

	cfg = loaded
	logger = l
	logger.Debug("configuration loaded", "source", cfg.Source)
	return nil
}
