package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"iris/internal/application"
	"iris/internal/config"
	"iris/internal/logging"
	"iris/internal/wiring"
)

var (
	cfg        = config.DefaultConfig()
	configPath string
	components *wiring.Components
	logger     zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "iris-cli",
	Short: "Distance and radial velocity of the planets as seen from Earth",
	Long: `iris-cli computes how far a planet is from Earth at a given time and how
fast that distance changed between two times.

Times are UTC and use the format "YYYY-MM-DD HH:MM:SS". Settings come from
~/.iris/config.toml, IRIS_* environment variables and flags, in that order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		components = nil
		if err := config.Load(&cfg, configPath, changedFlags(cmd.Flags())); err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if err := logging.SetLevel(cfg.LogLevel); err != nil {
			return err
		}
		logger = logging.Logger()

		if !needsComponents(cmd) {
			return nil
		}
		c, err := wiring.Build(cfg, logger)
		if err != nil {
			return err
		}
		components = c
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if components == nil {
			return nil
		}
		return components.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, application.DescribeError(err))
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", config.DefaultConfigPath(), "path to the config file")
	flags.StringVar(&cfg.LogLevel, config.FlagLogLevel, cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&cfg.HistoryPath, config.FlagHistoryPath, cfg.HistoryPath, "path to the history database")
	flags.BoolVar(&cfg.HistoryEnabled, config.FlagHistory, cfg.HistoryEnabled, "record calculations in the history database")
	flags.IntVar(&cfg.CacheSize, config.FlagCacheSize, cfg.CacheSize, "number of planet positions to cache (0 disables)")
}

// needsComponents reports whether cmd computes or reads history. The config
// subtree only touches the config file and must not open the history store.
func needsComponents(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return false
		}
	}
	return true
}

// changedFlags returns the names of flags set on the command line
func changedFlags(fs *pflag.FlagSet) map[string]bool {
	changed := make(map[string]bool)
	fs.Visit(func(f *pflag.Flag) {
		changed[f.Name] = true
	})
	return changed
}
