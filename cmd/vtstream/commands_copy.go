package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vtstream-dev/vtstream/internal/clipboard"
	"github.com/vtstream-dev/vtstream/internal/ipc"
)

// copyWaitTimeout bounds how long `copy` waits for the replayed last-text
// element before giving up on a session that connected but never sent one.
const copyWaitTimeout = 2 * time.Second

func newCopyCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "copy",
		Short: "Copy the most recent text element from a running `vtstream run` session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd.Context(), state)
		},
	}
}

func runCopy(ctx context.Context, state *appState) error {
	socketPath := os.Getenv("VTSTREAM_SOCKET")
	if socketPath == "" {
		socketPath = state.cfg.IPC.SocketPath
	}
	if socketPath == "" {
		return errors.New("no running session: VTSTREAM_SOCKET is unset and ipc.socket_path is not configured")
	}

	text, err := fetchLastText(ctx, socketPath)
	if err != nil {
		return err
	}
	if text == "" {
		return errors.New("no text has been captured yet")
	}
	if err := clipboard.CopyText(state.cfg.Clipboard.Backend, text); err != nil {
		return err
	}
	// Best-effort: some backends can't be read back in minimal/headless
	// environments, so a verification failure is reported but doesn't
	// undo a copy that the write side already confirmed.
	if err := clipboard.VerifyText(state.cfg.Clipboard.Backend, text); err != nil {
		fmt.Fprintln(os.Stderr, "vtstream: clipboard verification:", err)
	}
	return nil
}

// fetchLastText subscribes just long enough to receive the single
// lastText element the server replays to every newly-accepted client,
// then disconnects.
func fetchLastText(ctx context.Context, socketPath string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, copyWaitTimeout)
	defer cancel()

	result := make(chan string, 1)
	err := ipc.Subscribe(ctx, socketPath, func(el ipc.Element) {
		if el.Kind != "text" {
			return
		}
		select {
		case result <- el.Text:
		default:
		}
		cancel()
	})
	select {
	case text := <-result:
		return text, nil
	default:
	}
	if err != nil && ctx.Err() == nil {
		return "", err
	}
	return "", nil
}
