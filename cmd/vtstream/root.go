package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vtstream-dev/vtstream/internal/config"
	"github.com/vtstream-dev/vtstream/internal/debug"
)

func newRootCmd(state *appState) *cobra.Command {
	var (
		cfgPath   string
		debugFlag bool
	)

	rootCmd := &cobra.Command{
		Use:          "vtstream",
		Short:        "Classify a terminal program's output into a typed control-sequence stream",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			resolvedPath, err := resolveConfigPath(cfgPath)
			if err != nil {
				return err
			}
			cfg, found, err := config.Load(resolvedPath)
			if err != nil {
				return err
			}
			if debugFlag {
				cfg.Debug.Enabled = true
			}
			state.cfg = cfg
			state.cfgFound = found
			state.cfgPath = resolvedPath
			state.logger = debug.New(cfg.Debug.Enabled)
			if !found && cmd.Name() != "init" {
				fmt.Fprintln(os.Stderr, "vtstream: no config found; run `vtstream init`")
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable sanitized debug logging")

	rootCmd.AddCommand(newRunCmd(state))
	rootCmd.AddCommand(newReplayCmd(state))
	rootCmd.AddCommand(newCopyCmd(state))
	rootCmd.AddCommand(newInitCmd(&cfgPath))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
