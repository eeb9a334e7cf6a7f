// Package config loads register settings from a YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store drivers.
const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// Config holds register configuration persisted to disk.
type Config struct {
	DataFile   string `yaml:"data_file,omitempty" json:"data_file,omitempty"`
	LogFile    string `yaml:"log_file,omitempty" json:"log_file,omitempty"`
	Driver     string `yaml:"driver,omitempty" json:"driver,omitempty"`
	SQLitePath string `yaml:"sqlite_path,omitempty" json:"sqlite_path,omitempty"`
	Backup     *bool  `yaml:"backup,omitempty" json:"backup,omitempty"`
	ServerURL  string `yaml:"server_url,omitempty" json:"server_url,omitempty"`
	DevMode    bool   `yaml:"dev_mode,omitempty" json:"dev_mode,omitempty"`
}

// BackupEnabled reports whether corrupt store files are copied aside
// before being replaced. Defaults to true.
func (c Config) BackupEnabled() bool {
	return c.Backup == nil || *c.Backup
}

// Path returns the path to the config file: ~/.config/vr/config.yaml
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "vr", "config.yaml"), nil
}

// Defaults returns the built-in configuration rooted at ~/.visitor-register.
func Defaults() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	dir := filepath.Join(home, ".visitor-register")
	return Config{
		DataFile:   filepath.Join(dir, "visitors.json"),
		LogFile:    filepath.Join(dir, "signout_log.txt"),
		Driver:     DriverJSON,
		SQLitePath: filepath.Join(dir, "visitors.db"),
	}, nil
}

// Load reads the config file at path.
// Returns a zero-value config if the file doesn't exist.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Resolve layers defaults, the file at path, and VR_* environment
// variables, in increasing precedence.
func Resolve(path string) (Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return Config{}, err
	}

	file, err := Load(path)
	if err != nil {
		return Config{}, err
	}
	cfg = merge(cfg, file)

	env, err := fromEnv()
	if err != nil {
		return Config{}, err
	}
	return merge(cfg, env), nil
}

// Validate checks that the config can open a store.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverJSON:
		if c.DataFile == "" {
			return fmt.Errorf("data_file is required for the %s driver", DriverJSON)
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("sqlite_path is required for the %s driver", DriverSQLite)
		}
	default:
		return fmt.Errorf("unknown driver %q (use %s or %s)", c.Driver, DriverJSON, DriverSQLite)
	}
	if c.LogFile == "" {
		return fmt.Errorf("log_file is required")
	}
	return nil
}

// Set assigns a config value by its YAML key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "data_file":
		c.DataFile = value
	case "log_file":
		c.LogFile = value
	case "driver":
		c.Driver = strings.ToLower(value)
	case "sqlite_path":
		c.SQLitePath = value
	case "server_url":
		c.ServerURL = value
	case "backup":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid backup value %q: %w", value, err)
		}
		c.Backup = &b
	case "dev_mode":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid dev_mode value %q: %w", value, err)
		}
		c.DevMode = b
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

func fromEnv() (Config, error) {
	cfg := Config{
		DataFile:   os.Getenv("VR_DATA_FILE"),
		LogFile:    os.Getenv("VR_LOG_FILE"),
		Driver:     strings.ToLower(os.Getenv("VR_DRIVER")),
		SQLitePath: os.Getenv("VR_SQLITE_PATH"),
		ServerURL:  os.Getenv("VR_SERVER_URL"),
		DevMode:    os.Getenv("VR_DEV_MODE") == "true",
	}
	if v := os.Getenv("VR_BACKUP"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid VR_BACKUP %q: %w", v, err)
		}
		cfg.Backup = &b
	}
	return cfg, nil
}

// merge overlays the non-zero fields of top onto base.
func merge(base, top Config) Config {
	if top.DataFile != "" {
		base.DataFile = top.DataFile
	}
	if top.LogFile != "" {
		base.LogFile = top.LogFile
	}
	if top.Driver != "" {
		base.Driver = top.Driver
	}
	if top.SQLitePath != "" {
		base.SQLitePath = top.SQLitePath
	}
	if top.Backup != nil {
		base.Backup = top.Backup
	}
	if top.ServerURL != "" {
		base.ServerURL = top.ServerURL
	}
	if top.DevMode {
		base.DevMode = true
	}
	return base
}
