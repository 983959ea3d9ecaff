package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// globalConfig stores the configuration loaded with command-line overrides.
// This lets other packages access the same configuration the running
// command loaded.
var (
	globalConfig *Config
	configMutex  sync.Mutex
)

// Config holds the rdmctl demo commands' configuration.
type Config struct {
	Source  SourceConfig  `json:"source"`
	Monitor MonitorConfig `json:"monitor"`
	Logging LoggingConfig `json:"logging"`
}

// LoadOptions holds command-line override options.
type LoadOptions struct {
	SourcePath string
	ListenAddr string
	LogLevel   string
}

// SourceConfig selects where rdmdump/rdmmonitor read RDM frame bytes from.
type SourceConfig struct {
	Path string `json:"path" env:"RDMCTL_SOURCE_PATH" default:"-"`
}

// MonitorConfig configures rdmmonitor's websocket broadcast server.
type MonitorConfig struct {
	ListenAddr   string        `json:"listenAddr" env:"RDMCTL_LISTEN_ADDR" default:":8080"`
	ReadTimeout  time.Duration `json:"readTimeout" env:"RDMCTL_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"writeTimeout" env:"RDMCTL_WRITE_TIMEOUT" default:"30s"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `json:"level" env:"RDMCTL_LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"RDMCTL_LOG_FORMAT" default:"text"`
	File   string `json:"file" env:"RDMCTL_LOG_FILE" default:""`
}

// Load loads configuration from environment variables with defaults.
func Load() (*Config, error) {
	return LoadWithOverrides(LoadOptions{})
}

// LoadWithOverrides loads configuration with command-line overrides.
func LoadWithOverrides(opts LoadOptions) (*Config, error) {
	config := &Config{}

	config.Source.Path = getOverrideOrEnv(opts.SourcePath, "RDMCTL_SOURCE_PATH", "-")

	config.Monitor.ListenAddr = getOverrideOrEnv(opts.ListenAddr, "RDMCTL_LISTEN_ADDR", ":8080")
	config.Monitor.ReadTimeout = getDurationWithDefault("RDMCTL_READ_TIMEOUT", 30*time.Second)
	config.Monitor.WriteTimeout = getDurationWithDefault("RDMCTL_WRITE_TIMEOUT", 30*time.Second)

	config.Logging.Level = getOverrideOrEnv(opts.LogLevel, "RDMCTL_LOG_LEVEL", "info")
	config.Logging.Format = getEnvWithDefault("RDMCTL_LOG_FORMAT", "text")
	config.Logging.File = getEnvWithDefault("RDMCTL_LOG_FILE", "")

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	configMutex.Lock()
	globalConfig = config
	configMutex.Unlock()

	return config, nil
}

// GetGlobalConfig returns the globally stored configuration. This should be
// used by packages that need access to the configuration loaded by the
// running command.
func GetGlobalConfig() *Config {
	configMutex.Lock()
	defer configMutex.Unlock()
	return globalConfig
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Source.Path == "" {
		return fmt.Errorf("source path cannot be empty")
	}

	if c.Monitor.ListenAddr == "" {
		return fmt.Errorf("monitor listen address cannot be empty")
	}
	if _, portStr, ok := strings.Cut(c.Monitor.ListenAddr, ":"); ok {
		if portStr != "" {
			if port, err := strconv.Atoi(portStr); err != nil || port < 1 || port > 65535 {
				return fmt.Errorf("invalid monitor listen address: %s", c.Monitor.ListenAddr)
			}
		}
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	return nil
}

// Helper functions for environment variable parsing.

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getOverrideOrEnv returns the command-line override value, env value, or
// default, in that order of precedence.
func getOverrideOrEnv(override, envKey, defaultValue string) string {
	if override != "" {
		return override
	}
	return getEnvWithDefault(envKey, defaultValue)
}
