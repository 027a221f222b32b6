package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/storage"
	"github.com/vovakirdan/term2048/internal/t2048"
)

var flagReset bool

func newBestCmd() *cobra.Command {
	bestCmd := &cobra.Command{
		Use:   "best",
		Short: "Show best scores",
		Long: `Display the best score for every board size played.

With --reset, clear the best score for the configured board size instead.

Examples:
  term2048 best
  term2048 best --reset --size 5`,
		Args: cobra.NoArgs,
		RunE: runBest,
	}
	bestCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the best score for the board size")
	bestCmd.Flags().IntVar(&flagSize, "size", t2048.DefaultSize, "Board size used with --reset")
	return bestCmd
}

func runBest(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagReset {
		key := storage.KeyForSize(cfg.Board.Size)
		if err := store.ResetBestScore(key); err != nil {
			return err
		}
		logger.Info("best score reset", "key", key)
		fmt.Fprintf(out, "Best score for %dx%d cleared.\n", cfg.Board.Size, cfg.Board.Size)
		return nil
	}

	entries, err := store.AllBestScores()
	if err != nil {
		return err
	}
	fmt.Fprint(out, tui.BestTable(entries))
	return nil
}
