// Package config handles the XDG configuration directory, config.toml and file paths.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"todoboard/internal/board"
	"todoboard/internal/logging"
)

const (
	// AppName is the application directory name.
	AppName = "todoboard"

	// ConfigFile is the board settings filename.
	ConfigFile = "config.toml"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"

	// DefaultAddr is the listen address for serve.
	DefaultAddr = "127.0.0.1:8080"

	// EnvAddr overrides the listen address.
	EnvAddr = "TODOBOARD_ADDR"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Board holds the closed category and status sets.
	Board BoardConfig

	// Server holds settings for the HTTP view.
	Server ServerConfig

	// Logger receives diagnostics. Use Log to read it.
	Logger *log.Logger
}

// BoardConfig is the [board] section of config.toml.
type BoardConfig struct {
	Categories []string `toml:"categories"`
	Statuses   []string `toml:"statuses"`
}

// ServerConfig is the [server] section of config.toml.
type ServerConfig struct {
	Addr           string   `toml:"addr"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// fileConfig mirrors config.toml.
type fileConfig struct {
	Board  BoardConfig  `toml:"board"`
	Server ServerConfig `toml:"server"`
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todoboard or $HOME/.config/todoboard.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir}, nil
}

// Load creates a Config for configDir and applies config.toml and the
// environment on top of the defaults. A missing config.toml is not an error.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}
	cfg.setDefaults()

	if err := cfg.loadFile(cfg.ConfigPath()); err != nil {
		return nil, err
	}
	if addr := strings.TrimSpace(os.Getenv(EnvAddr)); addr != "" {
		cfg.Server.Addr = addr
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	c.Board = BoardConfig{
		Categories: slices.Clone(board.DefaultCategories),
		Statuses:   slices.Clone(board.DefaultStatuses),
	}
	c.Server = ServerConfig{
		Addr:           DefaultAddr,
		AllowedOrigins: []string{"*"},
	}
}

func (c *Config) loadFile(path string) error {
	var fc fileConfig
	_, err := toml.DecodeFile(path, &fc)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if len(fc.Board.Categories) > 0 {
		c.Board.Categories = fc.Board.Categories
	}
	if len(fc.Board.Statuses) > 0 {
		c.Board.Statuses = fc.Board.Statuses
	}
	if fc.Server.Addr != "" {
		c.Server.Addr = fc.Server.Addr
	}
	if fc.Server.AllowedOrigins != nil {
		c.Server.AllowedOrigins = fc.Server.AllowedOrigins
	}
	return nil
}

func (c *Config) validate() error {
	for _, s := range c.Board.Statuses {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("board.statuses must not contain blank entries")
		}
	}
	for _, s := range c.Board.Categories {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("board.categories must not contain blank entries")
		}
	}
	if dup := firstDuplicate(c.Board.Statuses); dup != "" {
		return fmt.Errorf("board.statuses: duplicate status %q", dup)
	}
	if dup := firstDuplicate(c.Board.Categories); dup != "" {
		return fmt.Errorf("board.categories: duplicate category %q", dup)
	}
	return nil
}

func firstDuplicate(values []string) string {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return sorted[i]
		}
	}
	return ""
}

// Log returns the configured logger, or one that discards everything.
func (c *Config) Log() *log.Logger {
	if c == nil || c.Logger == nil {
		return logging.Discard()
	}
	return c.Logger
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to config.toml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
