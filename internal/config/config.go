package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"iris/internal/adapters/ephemeris"
	"iris/internal/adapters/sqlite"
)

const DefaultListenAddr = ":8080"

// Flag names that map onto config keys.
const (
	FlagLogLevel    = "log-level"
	FlagHistoryPath = "history-path"
	FlagHistory     = "history"
	FlagListenAddr  = "addr"
	FlagCacheSize   = "cache-size"
)

// Config holds runtime settings shared by every iris binary.
type Config struct {
	LogLevel       string
	HistoryPath    string
	HistoryEnabled bool
	ListenAddr     string
	CacheSize      int
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:       "info",
		HistoryPath:    sqlite.DefaultPath(),
		HistoryEnabled: true,
		ListenAddr:     DefaultListenAddr,
		CacheSize:      ephemeris.DefaultCacheSize,
	}
}

// Validate checks the config after all sources have been applied.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.HistoryEnabled && c.HistoryPath == "" {
		return fmt.Errorf("history_path is required when history is enabled")
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr is required")
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}
	return nil
}

// configSetter applies values while leaving explicitly set flags alone.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt accepts zero so a file can disable the cache.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setBoolFromString accepts anything strconv.ParseBool does.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = b
	return nil
}
