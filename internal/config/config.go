package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/firefly-engineering/checkenv/internal/errors"
	"github.com/firefly-engineering/checkenv/internal/logging"
)

const (
	// DefaultProbeTimeout bounds the java probe so the report is always printed.
	DefaultProbeTimeout = 10 * time.Second

	SystemConfigPath = "/etc/checkenv/config.toml"
	ConfigFileName   = "config.toml"
	AppName          = "checkenv"
)

// Environment variables that tune diagnostics. None of them change the
// report itself.
const (
	EnvConfig    = "CHECKENV_CONFIG"
	EnvDebug     = "CHECKENV_DEBUG"
	EnvLogFormat = "CHECKENV_LOG_FORMAT"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Duration wraps time.Duration so it can be written as "5s" in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config is the optional checkenv configuration file.
type Config struct {
	// Java is an explicit path to the java binary to probe.
	Java string `toml:"java"`

	ProbeTimeout Duration `toml:"probe_timeout"`
	LogFormat    string   `toml:"log_format"`
	Debug        bool     `toml:"debug"`

	// Source is the file the config was read from, empty for defaults.
	Source string `toml:"-"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		ProbeTimeout: Duration{DefaultProbeTimeout},
		LogFormat:    LogFormatText,
	}
}

// Validate checks that the Config is valid.
func (c *Config) Validate() error {
	if c.ProbeTimeout.Duration <= 0 {
		return fmt.Errorf("probe_timeout must be positive, got %s", c.ProbeTimeout)
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log_format: %s (must be text or json)", c.LogFormat)
	}

	return nil
}

// SearchPaths returns the candidate config files in priority order.
// lookup is typically os.LookupEnv.
func SearchPaths(lookup func(string) (string, bool)) []string {
	if p, ok := lookup(EnvConfig); ok && p != "" {
		return []string{p}
	}

	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, AppName, ConfigFileName))
	}
	return append(paths, SystemConfigPath)
}

// LoadFile reads and validates a single TOML config file on top of the
// defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to parse config %s", path), err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		logging.Debug("unknown config keys", "path", path, "keys", undecoded)
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("invalid config %s", path), err)
	}

	cfg.Source = path
	return cfg, nil
}

// Load returns the first config file found on the search path, or the
// defaults when none exists. A malformed file is reported through
// warn and skipped; the defaults are used instead.
func Load(lookup func(string) (string, bool), warn func(path string, err error)) *Config {
	cfg := Default()

	for _, path := range SearchPaths(lookup) {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		loaded, err := LoadFile(path)
		if err != nil {
			if warn != nil {
				warn(path, err)
			}
			break
		}
		cfg = loaded
		break
	}

	cfg.applyEnv(lookup)
	return cfg
}

// applyEnv lets the diagnostic environment variables override the file.
func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvDebug); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}

	if v, ok := lookup(EnvLogFormat); ok {
		switch f := strings.ToLower(v); f {
		case LogFormatText, LogFormatJSON:
			c.LogFormat = f
		}
	}
}
