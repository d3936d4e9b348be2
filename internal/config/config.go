// Package config handles codepet configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"codepet/internal/pet"
)

// Environment overrides
const (
	EnvDataDir  = "CODEPET_DATA_DIR"
	EnvStore    = "CODEPET_STORE"
	EnvLogLevel = "CODEPET_LOG_LEVEL"
)

// FileName is the config file inside the data dir
const FileName = "config.json"

// Config holds all configuration
type Config struct {
	DataDir string       `json:"data_dir"`
	PetName string       `json:"pet_name"`
	Store   StoreConfig  `json:"store"`
	Timers  TimersConfig `json:"timers"`
	Log     LogConfig    `json:"log"`
}

// StoreConfig selects the snapshot backend
type StoreConfig struct {
	Backend string `json:"backend"`
	Key     string `json:"key"`
}

// TimersConfig holds the ambient tick intervals as duration strings
type TimersConfig struct {
	Decay string `json:"decay"`
	Idle  string `json:"idle"`
}

// LogConfig for the leveled logger
type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// DefaultDataDir returns ~/.config/codepet
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".codepet"
	}
	return filepath.Join(home, ".config", "codepet")
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		DataDir: DefaultDataDir(),
		PetName: pet.DefaultPetName,
		Store: StoreConfig{
			Backend: "file",
			Key:     pet.StorageKey,
		},
		Timers: TimersConfig{
			Decay: pet.DefaultDecayInterval.String(),
			Idle:  pet.DefaultIdleInterval.String(),
		},
		Log: LogConfig{
			Level: "info",
			File:  "codepet.log",
		},
	}
}

// Path returns the config file for a data dir
func Path(dataDir string) string {
	return filepath.Join(dataDir, FileName)
}

// Load reads config from path, falling back to defaults, then applies env overrides.
// An empty path means <data dir>/config.json.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.DataDir = getEnv(EnvDataDir, cfg.DataDir)

	if path == "" {
		path = Path(cfg.DataDir)
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.DataDir = getEnv(EnvDataDir, c.DataDir)
	c.Store.Backend = getEnv(EnvStore, c.Store.Backend)
	c.Log.Level = getEnv(EnvLogLevel, c.Log.Level)
}

// Validate checks the backend and timer values
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("store backend %q: must be file or sqlite", c.Store.Backend)
	}
	if c.Store.Key == "" {
		c.Store.Key = pet.StorageKey
	}
	if strings.ContainsAny(c.Store.Key, `/\`) || strings.Contains(c.Store.Key, "..") {
		return fmt.Errorf("store key %q: must be a plain name", c.Store.Key)
	}
	if _, err := c.DecayInterval(); err != nil {
		return err
	}
	if _, err := c.IdleInterval(); err != nil {
		return err
	}
	return nil
}

// DecayInterval parses Timers.Decay
func (c *Config) DecayInterval() (time.Duration, error) {
	return parseInterval("decay", c.Timers.Decay, pet.DefaultDecayInterval)
}

// IdleInterval parses Timers.Idle
func (c *Config) IdleInterval() (time.Duration, error) {
	return parseInterval("idle", c.Timers.Idle, pet.DefaultIdleInterval)
}

func parseInterval(name, v string, def time.Duration) (time.Duration, error) {
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s timer: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s timer must be positive, got %s", name, v)
	}
	return d, nil
}

// LogPath resolves Log.File against the data dir
func (c *Config) LogPath() string {
	if c.Log.File == "" || filepath.IsAbs(c.Log.File) {
		return c.Log.File
	}
	return filepath.Join(c.DataDir, c.Log.File)
}

// Save writes config to path, or to the data dir when path is empty
func (c *Config) Save(path string) error {
	if path == "" {
		path = Path(c.DataDir)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
