package main

import (
	"errors"
	"os/exec"

	"github.com/spf13/cobra"
)

func newRunCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "run [-- <cmd> [args...]]",
		Short: "Run a command under a PTY, classifying its output as it streams",
		RunE: func(cmd *cobra.Command, args []string) error {
			var command *exec.Cmd
			if cmd.ArgsLenAtDash() == -1 {
				if len(state.cfg.Command) > 0 {
					command = exec.Command(state.cfg.Command[0], state.cfg.Command[1:]...)
				} else {
					command = defaultShellCommand()
				}
			} else {
				runArgs := cmd.Flags().Args()
				if len(runArgs) == 0 {
					return errors.New("run requires a command after --")
				}
				command = exec.Command(runArgs[0], runArgs[1:]...)
			}
			return runWithPTY(cmd.Context(), state.cfg, command, state.logger)
		},
	}
}
