package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/storage"
	"github.com/vovakirdan/term2048/internal/t2048"
)

var (
	flagSeed int64
	flagSize int
)

func newPlayCmd() *cobra.Command {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game",
		Long: `Start a game of 2048.

Controls:
  Arrows/WASD/hjkl - Slide tiles
  R                - Restart
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Examples:
  term2048 play
  term2048 play --size 5
  term2048 play --seed 42`,
		Args: cobra.NoArgs,
		RunE: runPlay,
	}
	addPlayFlags(playCmd)
	return playCmd
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	cmd.Flags().IntVar(&flagSize, "size", t2048.DefaultSize, "Board size (2-8)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	rc.MergeFlash = cfg.UI.MergeFlash()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	// The terminal belongs to Bubble Tea while playing, so the game logs to a file.
	gameLog, closeLog := sessionLogger()
	defer closeLog()

	opts := []t2048.Option{
		t2048.WithSize(cfg.Board.Size),
		t2048.WithSeed(rc.Seed),
		t2048.WithSpawnFourProbability(cfg.Board.SpawnFourProbability),
		t2048.WithWinTile(cfg.Board.WinTile),
		t2048.WithLogger(gameLog),
	}

	// Open best score storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database, best score will not be saved", "error", err)
	} else {
		defer store.Close()
		opts = append(opts, t2048.WithBestStore(store.Best(storage.KeyForSize(cfg.Board.Size))))
	}

	engine := t2048.New(opts...)
	gameLog.Info("session started",
		"size", cfg.Board.Size,
		"seed", flagSeed,
		"best", engine.Best(),
		"config", cfg.Source,
	)

	if err := tui.Run(engine, rc, gameLog); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	gameLog.Info("session ended", "score", engine.Score(), "best", engine.Best())
	return nil
}

// sessionLogger returns the logger used during play, tagged with a session id.
// It writes to the configured log file, or nowhere if none can be opened.
func sessionLogger() (*log.Logger, func()) {
	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)

	if cfg.Log.File != "" {
		f, err := openLogFile(cfg.Log.File)
		if err != nil {
			logger.Warn("logging disabled for this session", "error", err)
		} else {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	// Level was validated in loadSettings.
	l, _ := newLogger(w, cfg.Log.Level)
	return l.With("session", uuid.NewString()), closeFn
}
