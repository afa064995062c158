package clipboard

import (
	"context"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestTextsMatchTrimsOneTrailingNewline(t *testing.T) {
	cases := []struct {
		got, want string
		match     bool
	}{
		{"hello", "hello", true},
		{"hello\n", "hello", true},
		{"hello", "hello\n", true},
		{"hello\n", "hello\n", true},
		{"hello\n\n", "hello", false},
		{"hello", "world", false},
	}
	for _, c := range cases {
		if got := textsMatch(c.got, c.want); got != c.match {
			t.Errorf("textsMatch(%q, %q) = %v, want %v", c.got, c.want, got, c.match)
		}
	}
}

func TestResolveBackendExplicit(t *testing.T) {
	for _, backend := range []string{"pbcopy", "wl-copy", "xclip", "xsel", "none", "AUTO"} {
		if _, err := ResolveBackend(backend); err != nil {
			// "auto" may legitimately fail in a display-less test
			// environment; every other name must resolve cleanly.
			if !strings.EqualFold(backend, string(BackendAuto)) {
				t.Errorf("ResolveBackend(%q) = %v", backend, err)
			}
		}
	}
	if _, err := ResolveBackend("notareal-backend"); err == nil {
		t.Fatal("expected error for unsupported backend")
	}
}

// withFakeClipboard points runCopyCommand/runPasteCommand at a shell script
// that round-trips through a temp file instead of a real OS clipboard, so
// CopyText/VerifyText can be exercised without pbcopy/xclip/wl-copy
// installed.
func withFakeClipboard(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	store := filepath.Join(dir, "clip")

	prev := execCommand
	execCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		script := "cat > " + store
		if name == "pbpaste" {
			script = "cat " + store
		}
		for _, a := range args {
			if a == "-o" || a == "--output" {
				script = "cat " + store
			}
		}
		return exec.CommandContext(ctx, "sh", "-c", script)
	}
	t.Cleanup(func() { execCommand = prev })
}

func TestCopyThenVerifyRoundTrips(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("no sh available")
	}
	withFakeClipboard(t)

	backend := string(BackendXclip)
	if runtime.GOOS == "darwin" {
		backend = string(BackendPbcopy)
	}
	if err := CopyText(backend, "hello from the stream\n"); err != nil {
		t.Fatalf("CopyText: %v", err)
	}
	if err := VerifyText(backend, "hello from the stream"); err != nil {
		t.Fatalf("VerifyText: %v", err)
	}
}

func TestCopyTextRejectsDisabledBackend(t *testing.T) {
	if err := CopyText("none", "x"); err == nil {
		t.Fatal("expected error for none backend")
	}
}
