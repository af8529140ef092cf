package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"iris/internal/adapters/tui"
	"iris/internal/config"
	"iris/internal/logging"
	"iris/internal/wiring"
)

func main() {
	cfg := config.DefaultConfig()
	// Log lines would tear the alt screen; keep them to warnings.
	cfg.LogLevel = "warn"

	configPath := pflag.String("config", config.DefaultConfigPath(), "path to the config file")
	pflag.StringVar(&cfg.LogLevel, config.FlagLogLevel, cfg.LogLevel, "log level (debug, info, warn, error)")
	pflag.StringVar(&cfg.HistoryPath, config.FlagHistoryPath, cfg.HistoryPath, "path to the history database")
	pflag.BoolVar(&cfg.HistoryEnabled, config.FlagHistory, cfg.HistoryEnabled, "record calculations in the history database")
	pflag.IntVar(&cfg.CacheSize, config.FlagCacheSize, cfg.CacheSize, "number of planet positions to cache (0 disables)")
	pflag.Parse()

	changed := make(map[string]bool)
	pflag.Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if err := config.Load(&cfg, *configPath, changed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: config: %v\n", err)
		os.Exit(1)
	}
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := logging.Logger()

	components, err := wiring.Build(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer components.Close()

	app := tui.NewApp(components.Engine, components.History, logger)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		components.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
