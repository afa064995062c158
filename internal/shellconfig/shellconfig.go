// Package shellconfig installs and removes a marker block in a shell rc
// file that exports VTSTREAM_SOCKET, so other tooling in the same shell
// can find a running `vtstream run` session's IPC socket.
package shellconfig

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	beginMarker = "# >>> vtstream >>>"
	endMarker   = "# <<< vtstream <<<"
)

// InstallBlock removes any existing block for path, then appends a
// fresh one exporting socketPath for shellKind.
func InstallBlock(path, shellKind, socketPath string) (bool, error) {
	block, err := blockForShell(shellKind, socketPath)
	if err != nil {
		return false, err
	}
	if _, err := RemoveBlock(path); err != nil {
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return false, err
	}
	content, perm, err := readFileWithPerm(path)
	if err != nil {
		return false, err
	}
	if len(content) > 0 && !bytes.HasSuffix(content, []byte("\n")) {
		content = append(content, '\n')
	}
	content = append(content, []byte(strings.Join(block, "\n")+"\n")...)
	if err := os.WriteFile(path, content, perm); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveBlock removes the vtstream marker block from a shell config file.
func RemoveBlock(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	changed := false
	inBlock := false
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, beginMarker) {
			inBlock = true
			changed = true
			continue
		}
		if strings.Contains(line, endMarker) {
			if inBlock {
				inBlock = false
				changed = true
				continue
			}
		}
		if inBlock {
			changed = true
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}
	output := strings.Join(lines, "\n")
	if bytes.HasSuffix(data, []byte("\n")) {
		output += "\n"
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(path, []byte(output), info.Mode().Perm()); err != nil {
		return false, err
	}
	return true, nil
}

func blockForShell(kind, socketPath string) ([]string, error) {
	socketPath = strings.TrimSpace(socketPath)
	if socketPath == "" {
		return nil, errors.New("socket path required")
	}
	switch kind {
	case "zsh", "bash", "sh":
		return []string{
			beginMarker,
			fmt.Sprintf("export VTSTREAM_SOCKET=\"%s\"", socketPath),
			endMarker,
		}, nil
	case "fish":
		return []string{
			beginMarker,
			fmt.Sprintf("set -gx VTSTREAM_SOCKET \"%s\"", socketPath),
			endMarker,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported shell: %s", kind)
	}
}

func readFileWithPerm(path string) ([]byte, os.FileMode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0o644, nil
		}
		return nil, 0, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, err
	}
	return data, info.Mode().Perm(), nil
}
