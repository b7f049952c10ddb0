package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/xolan/worklog/internal/osutil"
)

// ConfigFile is the name of the TOML configuration file
const ConfigFile = "config.toml"

// Duration matching modes.
const (
	DurationMatchSubstring = "substring"
	DurationMatchExact     = "exact"
)

// Config represents the application configuration
type Config struct {
	// DBPath overrides the default location of the SQLite file
	DBPath string `toml:"db_path"`
	// Timezone is used when displaying timestamps (IANA name or "Local")
	Timezone string `toml:"timezone"`
	// CaseSensitiveSearch makes every "contains" match case-sensitive
	CaseSensitiveSearch bool `toml:"case_sensitive_search"`
	// DurationMatch selects how the duration strategy compares values
	DurationMatch string `toml:"duration_match"`
	// ClearScreen clears the terminal between REPL screens
	ClearScreen bool `toml:"clear_screen"`
}

// DefaultConfig returns a Config with the defaults used when no file exists.
func DefaultConfig() Config {
	return Config{
		DBPath:              "",
		Timezone:            "Local",
		CaseSensitiveSearch: false,
		DurationMatch:       DurationMatchSubstring,
		ClearScreen:         true,
	}
}

// GetConfigPath returns the path to the config file, creating its directory.
func GetConfigPath() (string, error) {
	return osutil.AppFile(ConfigFile)
}

// Load reads the config at path. Keys absent from the file keep their
// default values. The result is normalized and validated.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault is Load, except a missing file yields DefaultConfig.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return Load(path)
}

// Normalize trims and lower-cases enumerated values in place.
func (c *Config) Normalize() {
	c.DBPath = strings.TrimSpace(c.DBPath)
	c.Timezone = strings.TrimSpace(c.Timezone)
	c.DurationMatch = strings.ToLower(strings.TrimSpace(c.DurationMatch))
	if c.DurationMatch == "" {
		c.DurationMatch = DurationMatchSubstring
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := c.loadLocation(); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}

	switch c.DurationMatch {
	case DurationMatchSubstring, DurationMatchExact:
	default:
		return fmt.Errorf("invalid duration_match %q: must be %q or %q",
			c.DurationMatch, DurationMatchSubstring, DurationMatchExact)
	}
	return nil
}

// Location returns the configured display timezone, falling back to
// time.Local when the setting cannot be resolved.
func (c Config) Location() *time.Location {
	loc, err := c.loadLocation()
	if err != nil {
		return time.Local
	}
	return loc
}

func (c Config) loadLocation() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// GenerateSampleConfig returns a commented config file documenting every key.
func GenerateSampleConfig() string {
	return `# worklog configuration file
# Uncomment a setting to override its default.

# Path of the SQLite file holding the log.
# Defaults to worklog.db in the user config directory.
# db_path = "/home/me/worklog.db"

# Timezone used to display entry dates.
# Use "Local" for the system timezone or an IANA name such as
# "America/New_York", "Europe/London" or "Asia/Tokyo".
# timezone = "Local"

# Match search terms, employee names and dates case-sensitively.
# case_sensitive_search = false

# How "Find by time spent" compares durations:
#   "substring" - 12 also matches 120 (historical behavior)
#   "exact"     - 12 matches only 12
# duration_match = "substring"

# Clear the terminal between screens.
# clear_screen = true
`
}
