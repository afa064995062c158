package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/term"

	"github.com/vtstream-dev/vtstream/internal/config"
	"github.com/vtstream-dev/vtstream/internal/debug"
	"github.com/vtstream-dev/vtstream/internal/history"
	"github.com/vtstream-dev/vtstream/internal/ipc"
	"github.com/vtstream-dev/vtstream/internal/kindfilter"
	"github.com/vtstream-dev/vtstream/internal/ptywrap"
	"github.com/vtstream-dev/vtstream/internal/ui"
	"github.com/vtstream-dev/vtstream/internal/vtparse"
)

func runWithPTY(ctx context.Context, cfg config.Config, command *exec.Cmd, logger *debug.Logger) error {
	command.Env = os.Environ()
	command.Env = append(command.Env, "VTSTREAM_WRAPPED=1")

	filter, err := kindfilter.New(cfg.KindFilter.Allow, cfg.KindFilter.Deny)
	if err != nil {
		return fmt.Errorf("kind filter: %w", err)
	}
	if !cfg.KindFilter.Enabled {
		filter = nil
	}

	var ring *history.Ring
	if cfg.History.Enabled {
		ring = history.New(cfg.History.Capacity)
	}

	ipcServer, socketPath, cleanup, err := startIPCServer(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "vtstream: ipc unavailable:", err)
	}
	defer cleanup()
	if ipcServer != nil && socketPath != "" {
		command.Env = append(command.Env, "VTSTREAM_SOCKET="+socketPath)
	}

	parser := vtparse.New()
	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth <= 0 {
		termWidth = 80
	}
	parser.OnElementAdded(func(el vtparse.StreamElement) {
		if !elementPasses(el, filter) {
			return
		}
		if ring != nil {
			ring.Push(el)
		}
		if ipcServer != nil {
			ipcServer.Broadcast(el)
		}
		if logger != nil && cfg.Debug.LogEvents {
			logEvent(logger, el)
		}
		if interactive && el.Kind == vtparse.ElementControl {
			fmt.Fprintln(os.Stderr, ui.StatusLine(el.ControlKind, el.Parameters))
		}
	})
	if interactive {
		parser.OnTransientText(func(text string) {
			fmt.Fprintf(os.Stderr, "\r%s", ui.TransientPreview(text, termWidth))
		})
	}

	exitCode, err := ptywrap.RunCommand(ctx, command, ptywrap.Options{
		RawMode:         true,
		Output:          os.Stdout,
		Tap:             parser.Feed,
		FilterResponses: true,
	})
	if err != nil {
		return err
	}
	if exitCode != 0 {
		return &exitCodeError{code: exitCode}
	}
	return nil
}

func elementPasses(el vtparse.StreamElement, filter *kindfilter.Filter) bool {
	if el.Kind != vtparse.ElementControl {
		return true
	}
	return filter.Allowed(string(el.ControlKind))
}

func logEvent(logger *debug.Logger, el vtparse.StreamElement) {
	if el.Kind == vtparse.ElementText {
		logger.Infof("element_added kind=text len=%d", len(el.Text))
		return
	}
	logger.Infof("element_added kind=control control_kind=%s params=%v", el.ControlKind, el.Parameters)
}

func startIPCServer(cfg config.Config) (*ipc.Server, string, func(), error) {
	if !cfg.IPC.Enabled {
		return nil, "", func() {}, nil
	}
	socketPath := cfg.IPC.SocketPath
	if socketPath == "" {
		var err error
		socketPath, err = ipc.TempSocketPath()
		if err != nil {
			return nil, "", func() {}, err
		}
	}
	server, err := ipc.StartServer(socketPath)
	if err != nil {
		return nil, "", func() {}, err
	}
	cleanup := func() {
		_ = server.Close()
		_ = os.Remove(socketPath)
	}
	return server, socketPath, cleanup, nil
}

func defaultShellCommand() *exec.Cmd {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	return exec.Command(shell, "-l", "-i")
}
