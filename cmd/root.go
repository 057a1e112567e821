package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/mj1618/axkit/internal/config"
	"github.com/mj1618/axkit/internal/logging"
	"github.com/mj1618/axkit/internal/output"
	"github.com/mj1618/axkit/internal/version"
	"github.com/spf13/cobra"
)

// messagingTimeout is applied to the system-wide element before each command.
// Zero keeps the system default.
var messagingTimeout time.Duration

var rootCmd = &cobra.Command{
	Use:   "axkit",
	Short: "Inspect and drive macOS applications through the accessibility API",
	Long: `axkit reads and writes accessibility attributes and performs actions on
the UI elements of running macOS applications.

Elements are addressed by an application selector (--pid, --bundle, --app,
--frontmost or --system-wide) plus an optional attribute path such as
AXWindows[0].AXZoomButton.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json (default from config, else yaml)")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error, off")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Accessibility messaging timeout, e.g. 2s (0 = system default)")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $AXKIT_CONFIG or ~/.config/axkit/config.yaml)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		if format == "" {
			format = cfg.Format
		}
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		level, _ := rootCmd.PersistentFlags().GetString("log-level")
		if level == "" {
			level = cfg.LogLevel
		}
		logging.Configure(logging.ParseLevel(level), cmd.ErrOrStderr())

		messagingTimeout = cfg.Timeout
		if rootCmd.PersistentFlags().Changed("timeout") {
			messagingTimeout, _ = rootCmd.PersistentFlags().GetDuration("timeout")
		}
		if messagingTimeout < 0 {
			return fmt.Errorf("--timeout must not be negative")
		}
		logging.Debug("config loaded", "format", f, "level", level, "timeout", messagingTimeout)
		return nil
	}
}

func loadConfig() (*config.Config, error) {
	path, _ := rootCmd.PersistentFlags().GetString("config")
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}
