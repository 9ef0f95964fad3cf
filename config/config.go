package config

import (
	"os"
	"strconv"

	"github.com/rohanthewiz/serr"
)

// Environment variables read by Load
const (
	EnvAddress  = "HEADINGS_ADDRESS"
	EnvLogLevel = "HEADINGS_LOG_LEVEL"
	EnvVerbose  = "HEADINGS_VERBOSE"
)

const (
	defaultAddress  = ":8000"
	defaultLogLevel = "info"
)

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Config holds the server settings.
// Values come from the environment so deployments need no config file.
type Config struct {
	Address  string // listen address (HEADINGS_ADDRESS)
	LogLevel string // logger level (HEADINGS_LOG_LEVEL)
	Verbose  bool   // rweb verbose request output (HEADINGS_VERBOSE)
}

// Load reads the configuration from environment variables, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Address:  defaultAddress,
		LogLevel: defaultLogLevel,
	}

	if addr := os.Getenv(EnvAddress); addr != "" {
		cfg.Address = addr
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}

	if verboseStr := os.Getenv(EnvVerbose); verboseStr != "" {
		verbose, err := strconv.ParseBool(verboseStr)
		if err != nil {
			return nil, serr.Wrap(err, "invalid "+EnvVerbose+" value, expected true/false")
		}
		cfg.Verbose = verbose
	}

	return cfg, cfg.Validate()
}

// Validate fails fast on values the server cannot start with.
func (c *Config) Validate() error {
	if c.Address == "" {
		return serr.New("listen address must not be empty")
	}
	if !logLevels[c.LogLevel] {
		return serr.New("unknown log level " + strconv.Quote(c.LogLevel) + ", expected debug, info, warn or error")
	}
	return nil
}
