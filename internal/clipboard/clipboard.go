package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Backend identifies a clipboard command backend.
type Backend string

const (
	BackendAuto   Backend = "auto"
	BackendPbcopy Backend = "pbcopy"
	BackendWlCopy Backend = "wl-copy"
	BackendXclip  Backend = "xclip"
	BackendXsel   Backend = "xsel"
	BackendNone   Backend = "none"
)

var lookPath = exec.LookPath

// CopyText writes a captured StreamElement.Text run to the clipboard using
// the requested backend.
func CopyText(backend string, text string) error {
	resolved, err := ResolveBackend(backend)
	if err != nil {
		return err
	}
	if resolved == BackendNone {
		return errors.New("clipboard disabled")
	}
	return copyText(resolved, text)
}

// VerifyText checks that the clipboard holds the text most recently copied
// with CopyText. Text runs from the stream almost never end in a newline,
// but some paste backends (wl-paste without --no-newline, xsel) hand one
// back regardless, so the comparison tolerates at most one trailing '\n'
// on either side instead of demanding an exact byte match.
func VerifyText(backend string, expected string) error {
	resolved, err := ResolveBackend(backend)
	if err != nil {
		return err
	}
	if resolved == BackendNone {
		return errors.New("clipboard disabled")
	}
	actual, err := pasteText(resolved)
	if err != nil {
		return err
	}
	if !textsMatch(actual, expected) {
		return errors.New("clipboard verification failed")
	}
	return nil
}

func textsMatch(got, want string) bool {
	return strings.TrimSuffix(got, "\n") == strings.TrimSuffix(want, "\n")
}

// ResolveBackend converts a backend string into a concrete backend.
func ResolveBackend(backend string) (Backend, error) {
	requested := Backend(strings.ToLower(strings.TrimSpace(backend)))
	if requested == "" {
		requested = BackendAuto
	}
	switch requested {
	case BackendAuto:
		return autoBackend()
	case BackendPbcopy, BackendWlCopy, BackendXclip, BackendXsel, BackendNone:
		return requested, nil
	default:
		return "", fmt.Errorf("unsupported clipboard backend: %q", backend)
	}
}

func autoBackend() (Backend, error) {
	candidates := autoBackendCandidates()
	if len(candidates) == 0 {
		return "", errors.New("no clipboard backend available (missing display server)")
	}
	for _, candidate := range candidates {
		if hasCommand(candidate) {
			return candidate, nil
		}
	}
	var names []string
	for _, candidate := range candidates {
		names = append(names, string(candidate))
	}
	return "", fmt.Errorf("no clipboard backend found; install one of: %s", strings.Join(names, ", "))
}

func hasCommand(backend Backend) bool {
	if backend == BackendNone || backend == "" {
		return false
	}
	_, err := lookPath(string(backend))
	return err == nil
}
