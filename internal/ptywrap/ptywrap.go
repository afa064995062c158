// Package ptywrap spawns a command under a real pseudo-terminal and
// proxies its IO, tapping the output stream into a vtparse.Parser as
// it flows to the real terminal.
package ptywrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"unicode/utf8"

	"github.com/creack/pty"
	"golang.org/x/term"
)

// Options controls PTY execution behavior.
type Options struct {
	RawMode bool
	Output  io.Writer

	// Tap, if non-nil, receives every decoded rune of the child's
	// output after its bytes have been written to Output — the splitter side of
	// vtparse.Parser.Feed, typically.
	Tap func(rune)

	// FilterResponses, when true, strips terminal query responses
	// (DSR cursor-position reports, OSC 11 color replies) out of the
	// bytes handed to Tap during the drain window right after start,
	// since those are the terminal answering the application, not
	// content a consumer should classify. The raw bytes still reach
	// Output unfiltered.
	FilterResponses bool
}

// RunCommand starts cmd under a PTY and proxies IO.
func RunCommand(ctx context.Context, cmd *exec.Cmd, opts Options) (int, error) {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return 1, fmt.Errorf("start pty: %w", err)
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	restore, err := maybeMakeRaw(opts.RawMode)
	if err != nil {
		return 1, err
	}
	if restore != nil {
		defer restore()
	}

	_ = pty.InheritSize(os.Stdin, ptmx)
	stopSignals := forwardSignals(cmd.Process, ptmx)
	defer stopSignals()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { _, _ = io.Copy(ptmx, os.Stdin) }()
	go copyWithContext(ctx, out, ptmx, opts, errCh)

	waitErr := cmd.Wait()
	cancel()
	_ = ptmx.Close()
	_ = closeOutput(out)
	<-errCh

	if waitErr == nil {
		return 0, nil
	}
	return exitCode(waitErr), nil
}

func copyWithContext(ctx context.Context, dst io.Writer, src io.Reader, opts Options, errCh chan<- error) {
	var filter *responseFilter
	if opts.FilterResponses {
		filter = newResponseFilter(responseDrainWindow)
	}
	tapped := dst
	if opts.Tap != nil {
		tapped = &tapWriter{out: dst, tap: opts.Tap, filter: filter}
	}
	_, err := io.Copy(tapped, src)
	if tw, ok := tapped.(*tapWriter); ok {
		tw.flush()
	}
	select {
	case errCh <- err:
	case <-ctx.Done():
	}
}

// tapWriter writes every byte through to out unchanged, while feeding
// the decoded rune stream to tap — filtered through filter first, if
// set, so query-response echoes never reach the classifier.
type tapWriter struct {
	out     io.Writer
	tap     func(rune)
	filter  *responseFilter
	pending []byte
}

func (w *tapWriter) Write(p []byte) (int, error) {
	n, err := w.out.Write(p)
	if err != nil {
		return n, err
	}
	classify := p
	if w.filter != nil {
		classify = w.filter.Filter(p)
	}
	w.feed(classify)
	return n, nil
}

func (w *tapWriter) feed(b []byte) {
	w.pending = append(w.pending, b...)
	for len(w.pending) > 0 {
		r, size := decodeRune(w.pending)
		if size == 0 {
			return
		}
		w.tap(r)
		w.pending = w.pending[size:]
	}
}

func (w *tapWriter) flush() {
	if w.filter != nil {
		w.feed(w.filter.Flush())
	}
}

// decodeRune reports the next rune in b and its width, or (0, 0) if b
// holds only the start of a rune that hasn't fully arrived yet.
func decodeRune(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 && !utf8.FullRune(b) {
		return 0, 0
	}
	return r, size
}

func closeOutput(out io.Writer) error {
	if closer, ok := out.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

func maybeMakeRaw(enable bool) (func(), error) {
	if !enable {
		return nil, nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("set raw mode: %w", err)
	}
	return func() { _ = term.Restore(fd, state) }, nil
}

func forwardSignals(proc *os.Process, ptmx *os.File) func() {
	if proc == nil {
		return func() {}
	}
	ch := make(chan os.Signal, 8)
	signal.Notify(ch, syscall.SIGWINCH, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for sig := range ch {
			switch sig {
			case syscall.SIGWINCH:
				_ = pty.InheritSize(os.Stdin, ptmx)
			default:
				_ = proc.Signal(sig)
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(ch)
		<-done
	}
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			if status.Signaled() {
				return 128 + int(status.Signal())
			}
			return status.ExitStatus()
		}
	}
	return 1
}
