// Package commands implements the CLI commands for appdirs.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/appdirs/internal/config"
	clierrors "github.com/thoreinstein/appdirs/internal/errors"
	"github.com/thoreinstein/appdirs/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// cfgFile holds the value of the --config flag.
var cfgFile string

// cfg holds the loaded CLI defaults; configLoadErr any error encountered
// while loading them.
var (
	cfg           = &config.Config{Format: "text"}
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: config.yaml in the tool's user config dir)")

	// Silence errors and usage so Execute controls error output.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loaded, err := config.Load(cfgFile)
	if err != nil {
		configLoadErr = err
		return
	}
	cfg = loaded
}

var rootCmd = &cobra.Command{
	Use:   "appdirs",
	Short: "Resolve per-application platform directories",
	Long: `appdirs resolves the data, config, state, cache and log directories an
application should use on the current platform, following the Windows,
macOS and XDG conventions. System-wide ("site") directories are resolved
as ordered search lists.

Defaults for --author, --roaming and --format can be placed in a config
file or in APPDIRS_* environment variables.`,
	Example: `  # Show every directory for an application
  appdirs show myapp

  # Only the cache dir, as JSON
  appdirs show myapp --kind user_cache --format json

  # Windows paths need an author
  appdirs show myapp --author Acme --os windows`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(); err != nil {
			return err
		}
		if configLoadErr != nil {
			return clierrors.NewUserError(configLoadErr, "check the config file syntax or pass --config")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// setupLogging installs the process logger based on verbosity flags.
func setupLogging() error {
	if quiet && verbosity > 0 {
		return clierrors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	level := logging.LevelFromVerbosity(verbosity)
	if quiet {
		level = slog.LevelError
	}

	slog.SetDefault(logging.New(logging.Config{
		Level:  level,
		Format: logging.Format(logFormat),
	}))
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		var exitErr *clierrors.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Suggestion != "" {
				fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
			}
			return exitErr.Code
		}
		return clierrors.ExitUser
	}
	return clierrors.ExitSuccess
}
