//go:build darwin
// +build darwin

package clipboard

import "fmt"

func copyText(backend Backend, text string) error {
	switch backend {
	case BackendPbcopy:
		return runCopyCommand("pbcopy", nil, text)
	default:
		return fmt.Errorf("clipboard backend %q is not supported on darwin", backend)
	}
}
