package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/config"
)

var flagForce bool

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialise the configuration",
	}

	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# source: %s\n", cfg.Source)
			_, err = out.Write(data)
			return err
		},
	}

	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to ~/.term2048/config.yaml",
		Args:  cobra.NoArgs,
		// Skip loading: init must work even when the existing file is broken.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := flagConfig
			if path == "" {
				path = config.UserConfigPath()
			}
			if path == "" {
				return errors.New("cannot determine home directory, use --config")
			}
			if err := config.WriteDefault(path, flagForce); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	return configCmd
}
