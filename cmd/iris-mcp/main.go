package main

import (
	"context"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/pflag"

	mcpadapter "iris/internal/adapters/mcp"
	"iris/internal/config"
	"iris/internal/logging"
	"iris/internal/wiring"
)

func main() {
	cfg := config.DefaultConfig()

	configPath := pflag.String("config", config.DefaultConfigPath(), "path to the config file")
	pflag.StringVar(&cfg.LogLevel, config.FlagLogLevel, cfg.LogLevel, "log level (debug, info, warn, error)")
	pflag.StringVar(&cfg.HistoryPath, config.FlagHistoryPath, cfg.HistoryPath, "path to the history database")
	pflag.BoolVar(&cfg.HistoryEnabled, config.FlagHistory, cfg.HistoryEnabled, "record calculations in the history database")
	pflag.IntVar(&cfg.CacheSize, config.FlagCacheSize, cfg.CacheSize, "number of planet positions to cache (0 disables)")
	pflag.Parse()

	changed := make(map[string]bool)
	pflag.Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if err := config.Load(&cfg, *configPath, changed); err != nil {
		log.Fatalf("iris-mcp: config: %v", err)
	}
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		log.Fatalf("iris-mcp: %v", err)
	}
	logger := logging.Logger()

	components, err := wiring.Build(cfg, logger)
	if err != nil {
		log.Fatalf("iris-mcp: %v", err)
	}
	defer components.Close()

	mcpServer := server.NewMCPServer(
		"iris-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, components.Engine, components.History, logger)

	logger.Info().Msg("serving MCP on stdio")
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error().Err(err).Msg("iris-mcp stopped")
	}
}
