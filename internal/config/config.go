// Package config loads the calculator's configuration from an optional
// YAML file with environment-variable overrides.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/os4p/engine/internal/apperrors"
	"github.com/os4p/engine/internal/engine"
)

const (
	// DefaultListenAddr is the HTTP server's default listen address.
	DefaultListenAddr = ":8080"

	// DefaultShutdownTimeout bounds graceful shutdown.
	DefaultShutdownTimeout = 10 * time.Second

	// EnvPrefix is the prefix of all override variables.
	EnvPrefix = "OS4P_"
)

// ServerConfig holds the HTTP surface settings.
type ServerConfig struct {
	ListenAddr      string        `yaml:"listen_addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LoggingConfig holds the zerolog settings.
type LoggingConfig struct {
	// Level is a zerolog level name (debug, info, warn, error).
	Level string `yaml:"level"`

	// Console switches to the human-readable console writer; the default
	// is structured JSON on stderr.
	Console bool `yaml:"console"`
}

// Config is the full application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Engine  engine.Config `yaml:"engine"`
}

// Default returns the baseline configuration with the pilot-model engine
// constants.
func Default() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:      DefaultListenAddr,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Logging: LoggingConfig{Level: "info"},
		Engine:  engine.DefaultConfig(),
	}
}

// Load reads the YAML file at path over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, apperrors.Config("reading config file", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, apperrors.Config("parsing config file", err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg from OS4P_* environment variables. Invalid values
// are logged and the previous value kept.
func (c *Config) ApplyEnv(logger zerolog.Logger) {
	if addr := os.Getenv(EnvPrefix + "LISTEN_ADDR"); addr != "" {
		c.Server.ListenAddr = addr
	}
	if level := os.Getenv(EnvPrefix + "LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if v := os.Getenv(EnvPrefix + "LOG_CONSOLE"); v != "" {
		c.Logging.Console = strings.EqualFold(v, "true")
	}
	if v := os.Getenv(EnvPrefix + "PROJECT_LIFETIME_YEARS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Engine.ProjectLifetimeYears = parsed
		} else {
			logger.Warn().Str("value", v).Msg("invalid OS4P_PROJECT_LIFETIME_YEARS, keeping configured value")
		}
	}
	if v := os.Getenv(EnvPrefix + "EMISSION_FACTOR_KG_PER_LITER"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Engine.Factors.EmissionFactorKgPerLiter = parsed
		} else {
			logger.Warn().Str("value", v).Msg("invalid OS4P_EMISSION_FACTOR_KG_PER_LITER, keeping configured value")
		}
	}
}

// NewLogger builds the process logger from the logging configuration.
func NewLogger(cfg LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Console {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}
