//go:build linux
// +build linux

package clipboard

import "fmt"

func copyText(backend Backend, text string) error {
	switch backend {
	case BackendWlCopy:
		return runCopyCommand("wl-copy", nil, text)
	case BackendXclip:
		return runCopyCommand("xclip", []string{"-selection", "clipboard"}, text)
	case BackendXsel:
		return runCopyCommand("xsel", []string{"--clipboard", "--input"}, text)
	default:
		return fmt.Errorf("clipboard backend %q is not supported on linux", backend)
	}
}
