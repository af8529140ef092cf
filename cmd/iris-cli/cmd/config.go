package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"iris/internal/adapters/editor"
	"iris/internal/config"
	"iris/internal/ports"
)

// fileEditor opens the config file for editing
var fileEditor ports.FileEditor = editor.NewOpener()

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or edit the config file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(configPath)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings after file, environment and flags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("log_level       = %s\n", cfg.LogLevel)
		fmt.Printf("history_enabled = %t\n", cfg.HistoryEnabled)
		fmt.Printf("history_path    = %s\n", cfg.HistoryPath)
		fmt.Printf("listen_addr     = %s\n", cfg.ListenAddr)
		fmt.Printf("cache_size      = %d\n", cfg.CacheSize)
		return nil
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $EDITOR, creating it from the current settings if missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			return fmt.Errorf("no config path: pass --config")
		}
		if !config.FileExists(configPath) {
			if err := config.WriteFileConfig(configPath, config.FileConfigFrom(cfg)); err != nil {
				return fmt.Errorf("create config: %w", err)
			}
			logger.Info().Str("path", configPath).Msg("config file created")
		}
		return fileEditor.OpenFile(configPath)
	},
}

func init() {
	configCmd.AddCommand(configPathCmd, configShowCmd, configEditCmd)
	rootCmd.AddCommand(configCmd)
}
