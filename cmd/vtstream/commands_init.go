package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vtstream-dev/vtstream/internal/config"
)

func newInitCmd(cfgPath *string) *cobra.Command {
	var (
		installHook bool
		force       bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config and optionally install a shell hook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(*cfgPath)
			if err != nil {
				return err
			}
			if exists(path) && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}

			cfg := config.DefaultConfig()
			cfg.IPC.Enabled = installHook || cfg.IPC.Enabled
			if cfg.IPC.SocketPath == "" {
				socketPath, err := config.DefaultSocketPath()
				if err != nil {
					return err
				}
				cfg.IPC.SocketPath = socketPath
			}

			if err := config.Write(path, cfg); err != nil {
				return err
			}
			fmt.Printf("Wrote config to %s\n", path)

			if installHook {
				selected := currentShellSelection(detectShellOptions())
				if len(selected) == 0 {
					fmt.Println("No shell detected for $SHELL; skipping hook install")
					return nil
				}
				if err := installShellHooks(selected, cfg.IPC.SocketPath); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&installHook, "install-shell-hook", false, "export VTSTREAM_SOCKET in the current shell's rc file")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
