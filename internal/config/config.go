// ABOUTME: Routine configuration management with backend selection.
// ABOUTME: Layers the config file and ROUTINE_* env vars with viper; builds storage and calendar.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/harperreed/routine/internal/charm"
	"github.com/harperreed/routine/internal/dates"
	"github.com/harperreed/routine/internal/storage"
	"github.com/spf13/viper"
)

// Backends lists the storage backends OpenBackend understands.
var Backends = []string{"sqlite", "badger", "charm", "memory"}

// Config stores routine tool configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default), "badger",
	// "charm", or "memory".
	Backend string `json:"backend,omitempty" mapstructure:"backend"`

	// DataDir is the root directory for data storage.
	// SQLite puts routine.db here, Badger uses a badger/ folder.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/routine.
	DataDir string `json:"data_dir,omitempty" mapstructure:"data_dir"`

	// Timezone is the IANA zone used for weekdays and date keys. Defaults to UTC.
	Timezone string `json:"timezone,omitempty" mapstructure:"timezone"`

	LogLevel string `json:"log_level,omitempty" mapstructure:"log_level"`
	LogFile  string `json:"log_file,omitempty" mapstructure:"log_file"`
	LogJSON  bool   `json:"log_json,omitempty" mapstructure:"log_json"`

	// LogToStderr keeps logging to stderr when LogFile is set.
	LogToStderr bool `json:"log_to_stderr,omitempty" mapstructure:"log_to_stderr"`
}

// Keys lists the settings accepted by Set, in display order.
var Keys = []string{"backend", "data_dir", "timezone", "log_level", "log_file", "log_json", "log_to_stderr"}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return strings.ToLower(c.Backend)
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetTimezone returns the configured timezone name, defaulting to "UTC".
func (c *Config) GetTimezone() string {
	if c.Timezone == "" {
		return "UTC"
	}
	return c.Timezone
}

// GetLogLevel returns the configured log level, defaulting to "warn".
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "warn"
	}
	return c.LogLevel
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage opens the configured backend.
func (c *Config) OpenStorage() (storage.KV, error) {
	return c.OpenBackend(c.GetBackend())
}

// OpenBackend opens the named backend under this config's data directory.
func (c *Config) OpenBackend(backend string) (storage.KV, error) {
	dataDir := c.GetDataDir()

	switch strings.ToLower(backend) {
	case "sqlite":
		return storage.Open(filepath.Join(dataDir, "routine.db"))
	case "badger":
		return storage.OpenBadger(filepath.Join(dataDir, "badger"))
	case "charm":
		return charm.Open()
	case "memory":
		return storage.NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// Location loads the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.GetTimezone())
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.GetTimezone(), err)
	}
	return loc, nil
}

// Calendar builds the calendar for the configured timezone.
func (c *Config) Calendar() (*dates.Calendar, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}
	return dates.New(loc), nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "routine", "config.json")
}

// Load reads config from disk, then applies ROUTINE_* environment overrides.
// A missing config file is not an error.
func Load() (*Config, error) {
	return load(true)
}

// LoadFile reads only the config file, ignoring the environment. Use it
// before Save so overrides are not written back to disk.
func LoadFile() (*Config, error) {
	return load(false)
}

func load(withEnv bool) (*Config, error) {
	v := viper.New()
	v.SetConfigType("json")
	if withEnv {
		v.SetEnvPrefix("ROUTINE")
		v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))
		v.AutomaticEnv()

		for _, key := range Keys {
			if err := v.BindEnv(key); err != nil {
				return nil, err
			}
		}
	}

	path := GetConfigPath()
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Set assigns one setting by its config file key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "backend":
		b := strings.ToLower(value)
		if !slices.Contains(Backends, b) {
			return fmt.Errorf("unknown backend: %q (use %s)", value, strings.Join(Backends, ", "))
		}
		c.Backend = b
	case "data_dir":
		c.DataDir = value
	case "timezone":
		if _, err := time.LoadLocation(value); err != nil {
			return fmt.Errorf("unknown timezone %q: %w", value, err)
		}
		c.Timezone = value
	case "log_level":
		c.LogLevel = strings.ToLower(value)
	case "log_file":
		c.LogFile = value
	case "log_json", "log_to_stderr":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false, got %q", key, value)
		}
		if key == "log_json" {
			c.LogJSON = b
		} else {
			c.LogToStderr = b
		}
	default:
		return fmt.Errorf("unknown config key %q (use %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

// Get returns one setting by its config file key, with defaults applied.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "backend":
		return c.GetBackend(), nil
	case "data_dir":
		return c.GetDataDir(), nil
	case "timezone":
		return c.GetTimezone(), nil
	case "log_level":
		return c.GetLogLevel(), nil
	case "log_file":
		return c.LogFile, nil
	case "log_json":
		return strconv.FormatBool(c.LogJSON), nil
	case "log_to_stderr":
		return strconv.FormatBool(c.LogToStderr), nil
	default:
		return "", fmt.Errorf("unknown config key %q (use %s)", key, strings.Join(Keys, ", "))
	}
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
