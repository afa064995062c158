package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigVersion = 1
	defaultConfigRelPath = "vtstream/config.yaml"
	defaultSocketName    = "vtstream.sock"
	defaultHistoryCap    = 4096
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the top-level configuration schema for the vtstream CLI
// layer. None of it reaches into internal/vtparse — the catalog is
// immutable and unconfigurable by design.
type Config struct {
	Version int `yaml:"version"`

	// Command is the argv launched under the PTY when no command is
	// given on the command line. Empty means "the user's login shell".
	Command []string `yaml:"command,omitempty"`

	KindFilter KindFilter `yaml:"kind_filter"`
	IPC        IPC        `yaml:"ipc"`
	History    History    `yaml:"history"`
	Clipboard  Clipboard  `yaml:"clipboard"`
	Debug      Debug      `yaml:"debug"`
}

// KindFilter configures which ControlSequenceType names are forwarded to
// IPC subscribers and the debug log.
type KindFilter struct {
	Enabled bool     `yaml:"enabled"`
	Allow   []string `yaml:"allow,omitempty"`
	Deny    []string `yaml:"deny,omitempty"`
}

// IPC configures the Unix-socket event broadcaster.
type IPC struct {
	Enabled    bool   `yaml:"enabled"`
	SocketPath string `yaml:"socket_path,omitempty"`
}

// History configures the bounded replay ring.
type History struct {
	Enabled  bool `yaml:"enabled"`
	Capacity int  `yaml:"capacity"`
}

// Clipboard configures the backend `vtstream copy` resolves to.
type Clipboard struct {
	Backend string `yaml:"backend"`
}

// Debug controls the sanitized logger.
type Debug struct {
	Enabled   bool `yaml:"enabled"`
	LogEvents bool `yaml:"log_events"`
}

// DefaultConfig returns the canonical default configuration.
func DefaultConfig() Config {
	return Config{
		Version: DefaultConfigVersion,
		KindFilter: KindFilter{
			Enabled: true,
			Deny:    []string{"CURSOR_POSITION", "CHARACTER_POSITION_*", "DEVICE_STATUS_REPORT*"},
		},
		IPC: IPC{
			Enabled:    false,
			SocketPath: "",
		},
		History: History{
			Enabled:  true,
			Capacity: defaultHistoryCap,
		},
		Clipboard: Clipboard{
			Backend: "auto",
		},
		Debug: Debug{
			Enabled:   false,
			LogEvents: false,
		},
	}
}

// DefaultPath returns the default config path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, defaultConfigRelPath), nil
	}
	return filepath.Join(home, ".config", defaultConfigRelPath), nil
}

// DefaultSocketPath returns the IPC socket path to use when none is
// configured: alongside the config file's directory, named
// vtstream.sock.
func DefaultSocketPath() (string, error) {
	cfgPath, err := DefaultPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(cfgPath), defaultSocketName), nil
}

// Parse parses YAML config content, applying defaults.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads config from disk, applying defaults when missing. The
// boolean return indicates whether a config file was found.
func Load(pathOverride string) (Config, bool, error) {
	p := strings.TrimSpace(pathOverride)
	if p == "" {
		var err error
		p, err = DefaultPath()
		if err != nil {
			return Config{}, false, err
		}
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			if err := cfg.Validate(); err != nil {
				return Config{}, false, err
			}
			return cfg, false, nil
		}
		return Config{}, false, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, true, err
	}
	return cfg, true, nil
}

// Validate enforces the supported configuration schema.
func (c Config) Validate() error {
	var errs []string
	if c.Version != DefaultConfigVersion {
		errs = append(errs, fmt.Sprintf("version must be %d", DefaultConfigVersion))
	}
	if c.History.Capacity < 0 {
		errs = append(errs, "history.capacity must be >= 0")
	}
	if !validClipboardBackend(c.Clipboard.Backend) {
		errs = append(errs, "clipboard.backend must be one of: auto, pbcopy, wl-copy, xclip, xsel, none")
	}
	for i, entry := range c.KindFilter.Allow {
		if err := validGlob(entry); err != nil {
			errs = append(errs, fmt.Sprintf("kind_filter.allow[%d]: %v", i, err))
		}
	}
	for i, entry := range c.KindFilter.Deny {
		if err := validGlob(entry); err != nil {
			errs = append(errs, fmt.Sprintf("kind_filter.deny[%d]: %v", i, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}

func validGlob(pattern string) error {
	trimmed := strings.TrimSpace(pattern)
	if trimmed == "" {
		return fmt.Errorf("must not be empty")
	}
	if _, err := path.Match(trimmed, "PROBE"); err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}
	return nil
}

func validClipboardBackend(backend string) bool {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "auto", "pbcopy", "wl-copy", "xclip", "xsel", "none":
		return true
	default:
		return false
	}
}
