// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"dbuild-cli/internal/config"
	"dbuild-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// cfg is the configuration resolved once per process by initRootConfig.
	cfg = config.DefaultConfig()
	// verbose enables debug logging; from DBUILD_VERBOSE or ui.verbose.
	verbose bool

	// rootCmd is the launcher itself. Flag parsing is disabled so the raw
	// argument vector reaches the invocation assembler: anything before a
	// literal "--" belongs to the container runtime, everything after it
	// (or the whole vector when the first token is not flag-like) is the
	// in-container command.
	rootCmd = &cobra.Command{
		Use:   "dbuild [RUNTIME_FLAGS --] COMMAND [ARGS...]",
		Short: "Run a build command inside the toolchain container",
		Long: TitleStyle.Render("dbuild") + SubtitleStyle.Render(" - containerized build launcher") + `

dbuild wraps the container runtime (docker or podman) to execute a build
or toolchain command inside the project's build image, with the invoking
user's identity mapped into the container, ptrace enabled for debuggers,
and the working directory, repository root and /tmp bind-mounted.

` + SubtitleStyle.Render("Argument grammar:") + `
  Runtime flags are recognized only when the first argument starts with
  '-' and must be terminated by a literal '--'. Everything after it runs
  inside the container.

` + SubtitleStyle.Render("Examples:") + `
  dbuild make -j8                     Run make inside the container
  dbuild --network=host -- make fetch Pass --network=host to the runtime
  dbuild -- doctor                    Run a command named like a subcommand
  dbuild print --network=host -- make Show the invocation without running

` + SubtitleStyle.Render("Environment:") + `
  DBUILD_IMAGE    image reference override
  DBUILD_CONFIG   config file override (default ` + "$XDG_CONFIG_HOME/dbuild/config.cue" + `)
  DBUILD_VERBOSE  set to 1 for debug logging`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE:               runLaunch,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads the config file and environment overrides.
func initRootConfig() {
	if path := os.Getenv("DBUILD_CONFIG"); path != "" {
		config.SetConfigFilePathOverride(path)
	}

	loaded, _, err := config.Load()
	if err != nil {
		// Surface config loading problems but keep going on defaults;
		// a broken config file must not block builds.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	} else {
		cfg = loaded
	}

	verbose = cfg.UI.Verbose || os.Getenv("DBUILD_VERBOSE") == "1"
}

// newLogger builds the process logger; debug level when verbose.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "dbuild",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
