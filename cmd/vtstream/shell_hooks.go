package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/vtstream-dev/vtstream/internal/shellconfig"
)

type shellOption struct {
	Name string
	Kind string
	Path string
}

func detectShellOptions() []shellOption {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	candidates := defaultShellCandidates(home)
	current := filepath.Base(os.Getenv("SHELL"))
	etcShells := readEtcShells()
	var out []shellOption
	for _, candidate := range candidates {
		if candidate.Kind == current || exists(candidate.Path) || etcShells[candidate.Kind] || hasInPath(candidate.Kind) {
			out = append(out, candidate)
		}
	}
	if len(out) == 0 {
		return candidates
	}
	return out
}

func defaultShellCandidates(home string) []shellOption {
	fishPath := filepath.Join(home, ".config", "fish", "conf.d", "vtstream.fish")
	if runtime.GOOS == "linux" {
		return []shellOption{
			{Name: "bash", Kind: "bash", Path: filepath.Join(home, ".bashrc")},
			{Name: "zsh", Kind: "zsh", Path: filepath.Join(home, ".zshrc")},
			{Name: "fish", Kind: "fish", Path: fishPath},
		}
	}
	return []shellOption{
		{Name: "zsh", Kind: "zsh", Path: filepath.Join(home, ".zshenv")},
		{Name: "bash", Kind: "bash", Path: filepath.Join(home, ".bash_profile")},
		{Name: "fish", Kind: "fish", Path: fishPath},
	}
}

// currentShellSelection returns the single shellOption matching the
// user's active $SHELL, since `init` installs a hook non-interactively
// rather than prompting for a selection.
func currentShellSelection(options []shellOption) []shellOption {
	current := filepath.Base(os.Getenv("SHELL"))
	for _, opt := range options {
		if opt.Kind == current {
			return []shellOption{opt}
		}
	}
	return nil
}

func installShellHooks(selected []shellOption, socketPath string) error {
	for _, opt := range selected {
		changed, err := shellconfig.InstallBlock(opt.Path, opt.Kind, socketPath)
		if err != nil {
			return err
		}
		if changed {
			fmt.Printf("Installed shell hook in %s\n", opt.Path)
		}
	}
	return nil
}

func readEtcShells() map[string]bool {
	data, err := os.ReadFile("/etc/shells")
	if err != nil {
		return map[string]bool{}
	}
	out := make(map[string]bool)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out[filepath.Base(line)] = true
	}
	return out
}

func hasInPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
