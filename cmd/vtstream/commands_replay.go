package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vtstream-dev/vtstream/internal/kindfilter"
	"github.com/vtstream-dev/vtstream/internal/vtparse"
)

func newReplayCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <captured-file>",
		Short: "Feed a captured byte log through the parser and print the classified elements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(state, args[0], cmd.OutOrStdout())
		},
	}
}

func runReplay(state *appState, path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open capture: %w", err)
	}
	defer func() { _ = f.Close() }()

	filter, err := kindfilter.New(state.cfg.KindFilter.Allow, state.cfg.KindFilter.Deny)
	if err != nil {
		return fmt.Errorf("kind filter: %w", err)
	}
	if !state.cfg.KindFilter.Enabled {
		filter = nil
	}

	w := bufio.NewWriter(out)
	defer func() { _ = w.Flush() }()

	parser := vtparse.New()
	parser.OnElementAdded(func(el vtparse.StreamElement) {
		if !elementPasses(el, filter) {
			return
		}
		printElement(w, el)
	})

	r := bufio.NewReader(f)
	for {
		c, _, err := r.ReadRune()
		if err != nil {
			break
		}
		parser.Feed(c)
	}
	return nil
}

func printElement(w *bufio.Writer, el vtparse.StreamElement) {
	switch el.Kind {
	case vtparse.ElementText:
		fmt.Fprintf(w, "TEXT %q\n", el.Text)
	case vtparse.ElementControl:
		if len(el.Parameters) == 0 {
			fmt.Fprintf(w, "%s\n", el.ControlKind)
			return
		}
		fmt.Fprintf(w, "%s params=%v\n", el.ControlKind, el.Parameters)
	}
}
