// Package config handles the XDG configuration directory, the optional
// config.yaml file and environment overrides.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "tarefas"

	// ConfigFile is the optional settings file inside the config directory.
	ConfigFile = "config.yaml"

	// SessionFile marks a logged-in CLI session.
	SessionFile = "session.json"

	// LogFile receives logs while the terminal UI owns the screen.
	LogFile = "tarefas.log"

	// DataDir holds the task storage.
	DataDir = "data"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "TAREFAS_"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Storage selects and tunes the durable storage backend.
type Storage struct {
	// Backend is "sqlite" (default) or "file".
	Backend string `yaml:"backend" env:"BACKEND"`

	// Timeout bounds each storage call. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout" env:"TIMEOUT"`
}

// Log configures the logger.
type Log struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `yaml:"level" env:"LEVEL"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `yaml:"-"`

	// Debug enables debug logging.
	Debug bool `yaml:"-" env:"DEBUG"`

	// Quiet suppresses informational output.
	Quiet bool `yaml:"-"`

	// Interactive is set when the terminal UI owns stdout.
	Interactive bool `yaml:"-"`

	Storage Storage `yaml:"storage" envPrefix:"STORAGE_"`
	Log     Log     `yaml:"log" envPrefix:"LOG_"`
}

// New creates a Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/tarefas or $HOME/.config/tarefas.
// Settings come from defaults, then config.yaml, then TAREFAS_* variables.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{
		Dir: dir,
		Storage: Storage{
			Backend: BackendSQLite,
		},
		Log: Log{
			Level: "warn",
		},
	}

	if err := cfg.loadFile(); err != nil {
		return nil, err
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.Wrap(err, "invalid environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile() error {
	data, err := os.ReadFile(c.FilePath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", ConfigFile)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "invalid %s", ConfigFile)
	}
	return nil
}

// Validate checks settings that cannot be fixed up silently.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile:
	default:
		return errors.Errorf("unknown storage backend: %s", c.Storage.Backend)
	}
	if c.Storage.Timeout < 0 {
		return errors.Errorf("invalid storage timeout: %s", c.Storage.Timeout)
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path to config.yaml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// SessionPath returns the path to the session marker.
func (c *Config) SessionPath() string {
	return filepath.Join(c.Dir, SessionFile)
}

// LogPath returns the path to the UI log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, LogFile)
}

// DataPath returns the directory holding task storage.
func (c *Config) DataPath() string {
	return filepath.Join(c.Dir, DataDir)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasSession checks if the session file exists.
func (c *Config) HasSession() bool {
	_, err := os.Stat(c.SessionPath())
	return err == nil
}

// RemoveSession deletes the session file.
func (c *Config) RemoveSession() error {
	return os.Remove(c.SessionPath())
}
