package config

import "os"

// ApplyEnvConfig applies IRIS_* environment variables unless the matching
// flag was set.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString(FlagLogLevel, os.Getenv("IRIS_LOG_LEVEL"), &cfg.LogLevel)
	s.setString(FlagHistoryPath, os.Getenv("IRIS_HISTORY_PATH"), &cfg.HistoryPath)
	s.setString(FlagListenAddr, os.Getenv("IRIS_LISTEN_ADDR"), &cfg.ListenAddr)

	if err := s.setBoolFromString(FlagHistory, os.Getenv("IRIS_HISTORY_ENABLED"), &cfg.HistoryEnabled); err != nil {
		return err
	}
	if err := s.setIntFromString(FlagCacheSize, os.Getenv("IRIS_CACHE_SIZE"), &cfg.CacheSize); err != nil {
		return err
	}

	return nil
}

// Load builds a Config from defaults, the optional file at path, the
// environment and finally the changed flags already present in cfg.
// A missing file is not an error.
func Load(cfg *Config, path string, changed map[string]bool) error {
	if path != "" && FileExists(path) {
		fc, err := LoadFileConfig(path)
		if err != nil {
			return err
		}
		ApplyFileConfig(cfg, fc, changed)
	}
	if err := ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}
	return cfg.Validate()
}
