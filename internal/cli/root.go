package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/dgallion1/workflowdoc/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfg     = config.Load()
	logJSON bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&cfg.LogVerbose, "verbose", "v", cfg.LogVerbose, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", cfg.LogFormat == "json", "Emit logs as JSON")
}

var rootCmd = &cobra.Command{
	Use:           "workflowdoc",
	Short:         "Convert estimation workflow checklists to structured JSON",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logJSON {
			cfg.LogFormat = "json"
		} else if cmd.Flags().Changed("log-json") {
			cfg.LogFormat = "text"
		}
		return cfg.Validate()
	},
}

// newLogger builds the process logger from the current configuration.
func newLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.LogVerbose {
		opts.Level = slog.LevelDebug
	}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		newLogger(os.Stderr).Error("command failed", "error", err)
		os.Exit(1)
	}
}
