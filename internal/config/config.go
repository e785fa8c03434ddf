package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/tgienger/todo/internal/db"
)

// Storage backends for the task slot
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	DataDir      string        `yaml:"data_dir" env:"TODO_DATA_DIR"`
	Backend      string        `yaml:"backend" env:"TODO_BACKEND" env-default:"sqlite"`
	SlotKey      string        `yaml:"slot_key" env:"TODO_SLOT_KEY" env-default:"awesome-todos"`
	FilePath     string        `yaml:"file_path" env:"TODO_FILE_PATH"`
	RedisAddr    string        `yaml:"redis_addr" env:"TODO_REDIS_ADDR" env-default:"localhost:6379"`
	RedisTimeout time.Duration `yaml:"redis_timeout" env:"TODO_REDIS_TIMEOUT" env-default:"2s"`
	LogLevel     string        `yaml:"log_level" env:"TODO_LOG_LEVEL" env-default:"info"`
	LogFile      string        `yaml:"log_file" env:"TODO_LOG_FILE"`
}

// DefaultPath returns $XDG_CONFIG_HOME/todo/config.yaml, falling back to ~/.config
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "todo", "config.yaml")
}

// Load reads the config file at path with environment overrides. A missing
// file, or an empty path, means environment and defaults only.
func Load(path string) (Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("cannot read env: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		var pe *os.PathError
		if !errors.As(err, &pe) {
			return Config{}, fmt.Errorf("cannot read config %q: %w", path, err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("cannot read env: %w", err)
		}
	}

	if err := cfg.fillPaths(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) fillPaths() error {
	if c.DataDir == "" {
		dir, err := db.DefaultDataDir()
		if err != nil {
			return fmt.Errorf("cannot resolve data directory: %w", err)
		}
		c.DataDir = dir
	}
	if c.FilePath == "" {
		c.FilePath = filepath.Join(c.DataDir, c.SlotKey+".json")
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(c.DataDir, "todo.log")
	}
	return nil
}

// Validate rejects unknown backends and log levels
func (c Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendFile, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.SlotKey == "" {
		return errors.New("slot key must not be empty")
	}
	return nil
}

// DBPath returns the SQLite database location
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, db.FileName)
}
