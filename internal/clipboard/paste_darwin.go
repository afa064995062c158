//go:build darwin
// +build darwin

package clipboard

import "fmt"

func pasteText(backend Backend) (string, error) {
	switch backend {
	case BackendPbcopy:
		return runPasteCommand("pbpaste", nil)
	default:
		return "", fmt.Errorf("clipboard backend %q is not supported on darwin", backend)
	}
}
