package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "phonetrace.config.yml"

	envTimeout      = "PHONETRACE_TIMEOUT"
	envRateLimit    = "PHONETRACE_RATE_LIMIT"
	envCacheEnabled = "PHONETRACE_CACHE_ENABLED"
	envVerbose      = "PHONETRACE_VERBOSE"
)

// Loader merges configuration coming from files, environment variables, and CLI flags.
type Loader struct {
	ConfigPath string
}

// Settings contains the fully merged runtime settings.
type Settings struct {
	Timeout      int
	RateLimit    int
	CacheEnabled bool
	Verbose      bool
}

// Overrides captures values coming from env vars or CLI flags.
type Overrides struct {
	Timeout      *int
	RateLimit    *int
	CacheEnabled *bool
	Verbose      *bool
}

// DefaultSettings returns the baseline configuration when no overrides are provided.
func DefaultSettings() Settings {
	return Settings{
		Timeout:      30,
		RateLimit:    60,
		CacheEnabled: true,
	}
}

// Load resolves the final runtime settings. Config file problems never fail
// the run: a missing or unparseable file falls back to defaults with a
// logged warning.
func (l Loader) Load(override Overrides) Settings {
	cfg := DefaultSettings()
	path := l.ConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	if fileExists(path) {
		fileOv, err := loadFromFile(path)
		if err != nil {
			log.WithError(err).Errorf("error loading config %s, using defaults", path)
		} else {
			cfg.apply(fileOv)
		}
	} else if l.ConfigPath != "" {
		log.Warnf("config file %s not found, using defaults", l.ConfigPath)
	}

	cfg.apply(overridesFromEnv())
	cfg.apply(override)

	return cfg
}

func (c *Settings) apply(src Overrides) {
	if src.Timeout != nil {
		c.Timeout = *src.Timeout
	}

	if src.RateLimit != nil {
		c.RateLimit = *src.RateLimit
	}

	if src.CacheEnabled != nil {
		c.CacheEnabled = *src.CacheEnabled
	}

	if src.Verbose != nil {
		c.Verbose = *src.Verbose
	}
}

func loadFromFile(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, err
	}

	type rawConfig struct {
		Settings struct {
			Timeout      *int  `yaml:"timeout"`
			RateLimit    *int  `yaml:"rate_limit"`
			CacheEnabled *bool `yaml:"cache_enabled"`
			Verbose      *bool `yaml:"verbose"`
		} `yaml:"settings"`
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Overrides{}, err
	}

	return Overrides{
		Timeout:      raw.Settings.Timeout,
		RateLimit:    raw.Settings.RateLimit,
		CacheEnabled: raw.Settings.CacheEnabled,
		Verbose:      raw.Settings.Verbose,
	}, nil
}

func overridesFromEnv() Overrides {
	ov := Overrides{}

	if value := os.Getenv(envTimeout); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			ov.Timeout = &parsed
		}
	}

	if value := os.Getenv(envRateLimit); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			ov.RateLimit = &parsed
		}
	}

	if value := os.Getenv(envCacheEnabled); value != "" {
		parsed := parseBool(value)
		ov.CacheEnabled = &parsed
	}

	if value := os.Getenv(envVerbose); value != "" {
		parsed := parseBool(value)
		ov.Verbose = &parsed
	}

	return ov
}

func parseBool(value string) bool {
	return strings.EqualFold(value, "true") || value == "1"
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
