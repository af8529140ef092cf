package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML shape of Config. Pointers distinguish unset keys.
type FileConfig struct {
	LogLevel       string `toml:"log_level"`
	HistoryPath    string `toml:"history_path"`
	HistoryEnabled *bool  `toml:"history_enabled"`
	ListenAddr     string `toml:"listen_addr"`
	CacheSize      *int   `toml:"cache_size"`
}

// LoadFileConfig reads and parses a TOML config file.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// FileConfigFrom returns cfg in its TOML shape with every key set.
func FileConfigFrom(cfg Config) FileConfig {
	enabled := cfg.HistoryEnabled
	size := cfg.CacheSize
	return FileConfig{
		LogLevel:       cfg.LogLevel,
		HistoryPath:    cfg.HistoryPath,
		HistoryEnabled: &enabled,
		ListenAddr:     cfg.ListenAddr,
		CacheSize:      &size,
	}
}

// WriteFileConfig writes fc to path, creating parent directories.
func WriteFileConfig(path string, fc FileConfig) error {
	b, err := toml.Marshal(fc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// DefaultConfigPath returns ~/.iris/config.toml, or "" without a home directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".iris", "config.toml")
	}
	return ""
}

// ApplyFileConfig copies file values into cfg unless the matching flag was set.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString(FlagLogLevel, fc.LogLevel, &cfg.LogLevel)
	s.setString(FlagHistoryPath, fc.HistoryPath, &cfg.HistoryPath)
	s.setBool(FlagHistory, fc.HistoryEnabled, &cfg.HistoryEnabled)
	s.setString(FlagListenAddr, fc.ListenAddr, &cfg.ListenAddr)
	s.setInt(FlagCacheSize, fc.CacheSize, &cfg.CacheSize)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
