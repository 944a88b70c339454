// Package config loads optional settings from a TOML file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultDBPath    = "db.json"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"

	// FileName is the config file looked up in the working directory.
	FileName = ".todo.toml"
)

// Config holds the settings for one invocation.
type Config struct {
	DBPath    string `toml:"db_path"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	Color     bool   `toml:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DBPath:    DefaultDBPath,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Color:     true,
	}
}

// Load returns the defaults overlaid with dir/.todo.toml when present.
// A relative database path is resolved against dir.
func Load(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("checking config file %s: %w", path, err)
	}

	if err := finalizeConfig(cfg, dir); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func finalizeConfig(cfg *Config, dir string) error {
	if strings.TrimSpace(cfg.DBPath) == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	if !filepath.IsAbs(cfg.DBPath) {
		cfg.DBPath = filepath.Join(dir, cfg.DBPath)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q, must be one of: debug, info, warn, error", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log_format %q, must be one of: text, json, logfmt", cfg.LogFormat)
	}
	return nil
}
