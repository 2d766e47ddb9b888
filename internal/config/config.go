// Package config loads the driver configuration: a yaml file, environment
// overrides on top, defaults for everything left unset.
package config

import (
	"os"
	"strconv"

	"github.com/joomcode/errorx"
	"gopkg.in/yaml.v3"

	"github.com/dcao/tagtime/lcg"
	"github.com/dcao/tagtime/ping"
)

var (
	// Errors is the namespace of all configuration errors.
	Errors = errorx.NewNamespace("config")

	// ErrUnreadable - config file could not be read.
	ErrUnreadable = Errors.NewType("unreadable")
	// ErrMalformed - config file is not valid yaml.
	ErrMalformed = Errors.NewType("malformed")
	// ErrInvalid - a setting has a value outside its domain.
	ErrInvalid = Errors.NewType("invalid")

	// EKPath - path of the offending file.
	EKPath = errorx.RegisterPrintableProperty("path")
	// EKSetting - name of the offending setting.
	EKSetting = errorx.RegisterPrintableProperty("setting")
)

// Output formats understood by the driver.
const (
	FormatTicks   = "ticks"
	FormatMillis  = "millis"
	FormatRFC3339 = "rfc3339"
)

type ScheduleConfig struct {
	// GapSeconds is the desired average interval between pings.
	GapSeconds int64 `yaml:"gap_seconds"`
	// Multiplier, Modulus and Seed override the shared generator
	// parameters. Doing so leaves the universal schedule: pings will no
	// longer agree with anyone else's.
	Multiplier int64 `yaml:"multiplier"`
	Modulus    int64 `yaml:"modulus"`
	Seed       int64 `yaml:"seed"`
	// StartMillis seeds the schedule at a fixed Unix-millisecond instant.
	// Zero means start at the current time.
	StartMillis int64 `yaml:"start_millis"`
}

type OutputConfig struct {
	Count  int    `yaml:"count"`
	Format string `yaml:"format"` // ticks|millis|rfc3339
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // json|text
}

type Config struct {
	Schedule ScheduleConfig `yaml:"schedule"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// Load reads the yaml file at path (an empty path skips the file and
// yields the built-in defaults), applies TAGTIME_* environment overrides,
// fills defaults and validates the result.
func Load(path string) (*Config, error) {
	var c Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, ErrUnreadable.Wrap(err, "could not read config").WithProperty(EKPath, path)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, ErrMalformed.Wrap(err, "could not parse config").WithProperty(EKPath, path)
		}
	}

	// Env overrides
	if v := os.Getenv("TAGTIME_GAP_SECONDS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, ErrInvalid.Wrap(err, "TAGTIME_GAP_SECONDS is not an integer")
		}
		c.Schedule.GapSeconds = n
	}
	if v := os.Getenv("TAGTIME_START_MILLIS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, ErrInvalid.Wrap(err, "TAGTIME_START_MILLIS is not an integer")
		}
		c.Schedule.StartMillis = n
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Schedule.GapSeconds == 0 {
		c.Schedule.GapSeconds = ping.DefaultGapSeconds
	}
	if c.Schedule.Multiplier == 0 {
		c.Schedule.Multiplier = lcg.DefaultMultiplier
	}
	if c.Schedule.Modulus == 0 {
		c.Schedule.Modulus = lcg.DefaultModulus
	}
	if c.Schedule.Seed == 0 {
		c.Schedule.Seed = lcg.DefaultSeed
	}
	if c.Output.Count == 0 {
		c.Output.Count = 5
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatTicks
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// Validate checks every setting against its domain. Load calls it; the
// driver calls it again after applying flag overrides.
func (c *Config) Validate() error {
	if c.Schedule.GapSeconds <= 0 {
		return ErrInvalid.New("gap must be positive, got %d", c.Schedule.GapSeconds).
			WithProperty(EKSetting, "schedule.gap_seconds")
	}
	if c.Schedule.Modulus <= 0 {
		return ErrInvalid.New("modulus must be positive, got %d", c.Schedule.Modulus).
			WithProperty(EKSetting, "schedule.modulus")
	}
	if c.Output.Count < 0 {
		return ErrInvalid.New("count must be non-negative, got %d", c.Output.Count).
			WithProperty(EKSetting, "output.count")
	}
	switch c.Output.Format {
	case FormatTicks, FormatMillis, FormatRFC3339:
	default:
		return ErrInvalid.New("unknown output format %q", c.Output.Format).
			WithProperty(EKSetting, "output.format")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalid.New("unknown log level %q", c.Logging.Level).
			WithProperty(EKSetting, "logging.level")
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return ErrInvalid.New("unknown log format %q", c.Logging.Format).
			WithProperty(EKSetting, "logging.format")
	}
	return nil
}
