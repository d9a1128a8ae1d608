package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/docker/go-units"
	"github.com/rightson/overleaf/errors"
)

const (
	// DefaultBufferSize is the transfer chunk size.
	DefaultBufferSize = "32KiB"

	// MaxBufferSize caps the transfer chunk size in bytes. Every transfer
	// allocates one buffer of this size.
	MaxBufferSize = 64 << 20

	// DefaultRateLimit disables throttling.
	DefaultRateLimit = "0"

	// DefaultStatConcurrency bounds parallel stats in DirectorySize.
	DefaultStatConcurrency = 16

	// DefaultLogLevel is the minimum level logged.
	DefaultLogLevel = "info"
)

// Config contains persistor configuration.
type Config struct {
	// Location is the default storage root.
	Location string `json:"location,omitempty" toml:"location" yaml:"location,omitempty"`

	// TempDir is where incoming streams are staged. Default: os.TempDir().
	TempDir string `json:"temp_dir,omitempty" toml:"temp_dir" yaml:"temp_dir,omitempty"`

	// BufferSize is the transfer chunk size. Default: "32KiB".
	BufferSize string `json:"buffer_size,omitempty" toml:"buffer_size" yaml:"buffer_size,omitempty"`

	// RateLimit caps transfer throughput in bytes per second. "0" disables
	// throttling.
	RateLimit string `json:"rate_limit,omitempty" toml:"rate_limit" yaml:"rate_limit,omitempty"`

	// StatConcurrency bounds concurrent stats while sizing a directory.
	StatConcurrency int `json:"stat_concurrency,omitempty" toml:"stat_concurrency" yaml:"stat_concurrency,omitempty"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `json:"log_level,omitempty" toml:"log_level" yaml:"log_level,omitempty"`

	bufferSizeVal int64
	rateLimitVal  int64
	logLevelVal   slog.Level
}

// Env names the environment variables consulted by Finalize. Empty names
// are skipped.
type Env struct {
	Location        string
	TempDir         string
	BufferSize      string
	RateLimit       string
	StatConcurrency string
	LogLevel        string
}

// DefaultEnv returns the standard FILESTORE_* variable names.
func DefaultEnv() *Env {
	return &Env{
		Location:        "FILESTORE_LOCATION",
		TempDir:         "FILESTORE_TEMP_DIR",
		BufferSize:      "FILESTORE_BUFFER_SIZE",
		RateLimit:       "FILESTORE_RATE_LIMIT",
		StatConcurrency: "FILESTORE_STAT_CONCURRENCY",
		LogLevel:        "FILESTORE_LOG_LEVEL",
	}
}

// BufferSizeBytes returns the parsed buffer size. Valid after Finalize.
func (c *Config) BufferSizeBytes() int64 {
	return c.bufferSizeVal
}

// RateLimitBytes returns the parsed rate limit in bytes per second. Valid
// after Finalize.
func (c *Config) RateLimitBytes() int64 {
	return c.rateLimitVal
}

// Level returns the parsed log level. Valid after Finalize.
func (c *Config) Level() slog.Level {
	return c.logLevelVal
}

// Logger returns a text logger writing to stderr at the configured level.
func (c *Config) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.logLevelVal}))
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		if err := c.loadEnv(env); err != nil {
			return err
		}
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Location != "" {
		c.Location = overlay.Location
	}
	if overlay.TempDir != "" {
		c.TempDir = overlay.TempDir
	}
	if overlay.BufferSize != "" {
		c.BufferSize = overlay.BufferSize
	}
	if overlay.RateLimit != "" {
		c.RateLimit = overlay.RateLimit
	}
	if overlay.StatConcurrency != 0 {
		c.StatConcurrency = overlay.StatConcurrency
	}
	if overlay.LogLevel != "" {
		c.LogLevel = overlay.LogLevel
	}
}

func (c *Config) loadDefaults() {
	if c.TempDir == "" {
		c.TempDir = os.TempDir()
	}
	if c.BufferSize == "" {
		c.BufferSize = DefaultBufferSize
	}
	if c.RateLimit == "" {
		c.RateLimit = DefaultRateLimit
	}
	if c.StatConcurrency == 0 {
		c.StatConcurrency = DefaultStatConcurrency
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

func (c *Config) loadEnv(env *Env) error {
	lookup := func(name string, dst *string) {
		if name == "" {
			return
		}
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}
	lookup(env.Location, &c.Location)
	lookup(env.TempDir, &c.TempDir)
	lookup(env.BufferSize, &c.BufferSize)
	lookup(env.RateLimit, &c.RateLimit)
	lookup(env.LogLevel, &c.LogLevel)

	if env.StatConcurrency != "" {
		if v := os.Getenv(env.StatConcurrency); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return invalid("stat_concurrency", v, err)
			}
			c.StatConcurrency = n
		}
	}
	return nil
}

func (c *Config) validate() error {
	size, err := units.RAMInBytes(c.BufferSize)
	if err != nil {
		return invalid("buffer_size", c.BufferSize, err)
	}
	if size <= 0 {
		return invalid("buffer_size", c.BufferSize, fmt.Errorf("must be positive"))
	}
	if size > MaxBufferSize {
		return invalid("buffer_size", c.BufferSize, fmt.Errorf("must not exceed %s", units.BytesSize(MaxBufferSize)))
	}
	c.bufferSizeVal = size

	limit, err := units.RAMInBytes(c.RateLimit)
	if err != nil {
		return invalid("rate_limit", c.RateLimit, err)
	}
	if limit < 0 {
		return invalid("rate_limit", c.RateLimit, fmt.Errorf("must not be negative"))
	}
	c.rateLimitVal = limit

	if c.StatConcurrency < 1 {
		return invalid("stat_concurrency", c.StatConcurrency, fmt.Errorf("must be at least 1"))
	}

	if err := c.logLevelVal.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return invalid("log_level", c.LogLevel, err)
	}

	return nil
}

func invalid(field string, value interface{}, cause error) errors.PlatformError {
	return errors.WrapWithContext(cause, errors.CodeInvalidConfig, "invalid "+field, map[string]interface{}{
		"field": field,
		"value": value,
	})
}
