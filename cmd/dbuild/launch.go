// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"dbuild-cli/internal/config"
	"dbuild-cli/internal/container"
	"dbuild-cli/internal/identity"
	"dbuild-cli/internal/issue"
	"dbuild-cli/internal/launcher"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"mvdan.cc/sh/v3/shell"
)

// runLaunch is the root RunE: assemble one container-run invocation from
// the raw argument vector and execute it, propagating the exit status.
func runLaunch(cmd *cobra.Command, args []string) error {
	// Flag parsing is disabled, so help and version are handled by hand
	// before the launcher grammar applies.
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" {
		return cmd.Help()
	}
	if args[0] == "--version" {
		fmt.Fprintln(cmd.OutOrStdout(), "dbuild "+getVersionString())
		return nil
	}

	logger := newLogger()

	eng, err := selectEngine(cfg)
	if err != nil {
		renderIssueCard(issue.EngineNotFound())
		return &ExitError{Code: 1, Err: err}
	}
	logger.Debug("selected container engine", "engine", eng.Name())

	params, err := gatherParams(args, cfg)
	if err != nil {
		if errors.Is(err, launcher.ErrNoImageRef) {
			renderIssueCard(issue.ImageRefMissing())
		}
		return &ExitError{Code: 1, Err: err}
	}

	logger.Debug("launching build container",
		"image", params.Image,
		"workdir", params.WorkDir,
		"user", params.Identity.User())

	code, err := launcher.Launch(cmd.Context(), eng, params)
	if err != nil {
		return &ExitError{Code: code, Err: issue.WrapWithOperation(err, "launch build container")}
	}
	if code != 0 {
		// The child's diagnostics already went to our streams; exit with
		// its status without adding noise on top.
		os.Exit(code)
	}
	return nil
}

// gatherParams collects the environment-derived inputs for invocation
// assembly: working directory, executable location, image reference, host
// identity and configured extras.
func gatherParams(args []string, cfg *config.Config) (launcher.Params, error) {
	wd, err := os.Getwd()
	if err != nil {
		return launcher.Params{}, fmt.Errorf("resolve working directory: %w", err)
	}

	execDir, err := launcher.ExecutableDir()
	if err != nil {
		return launcher.Params{}, err
	}

	img, err := launcher.ResolveImage(execDir, cfg.Image)
	if err != nil {
		return launcher.Params{}, err
	}

	ident, err := identity.Current()
	if err != nil {
		return launcher.Params{}, fmt.Errorf("resolve host identity: %w", err)
	}

	var extraFlags []string
	if cfg.ExtraFlags != "" {
		extraFlags, err = shell.Fields(cfg.ExtraFlags, nil)
		if err != nil {
			return launcher.Params{}, issue.NewErrorContext().
				WithOperation("parse configured extra_flags").
				WithResource(cfg.ExtraFlags).
				WithSuggestion("extra_flags is split with POSIX shell word rules; check the quoting").
				Wrap(err).
				BuildError()
		}
	}

	extraMounts := make([]container.VolumeMount, 0, len(cfg.ExtraMounts))
	for _, spec := range cfg.ExtraMounts {
		m, err := container.ParseVolumeMount(spec)
		if err != nil {
			return launcher.Params{}, issue.NewErrorContext().
				WithOperation("parse configured extra_mounts entry").
				WithResource(spec).
				WithSuggestion(`mounts use "host:container[:ro]" form`).
				Wrap(err).
				BuildError()
		}
		extraMounts = append(extraMounts, m)
	}

	return launcher.Params{
		Args:        args,
		WorkDir:     wd,
		ExecDir:     execDir,
		Identity:    ident,
		Image:       img,
		ExtraFlags:  extraFlags,
		ExtraMounts: extraMounts,
		Interactive: stdioIsTerminal(),
	}, nil
}

// selectEngine honors the configured preference, falling back to
// auto-detection when none is set.
func selectEngine(cfg *config.Config) (container.Engine, error) {
	if cfg.ContainerEngine != "" {
		return container.NewEngine(container.EngineType(cfg.ContainerEngine))
	}
	return container.AutoDetectEngine()
}

// stdioIsTerminal reports whether both stdin and stdout are terminals;
// only then is a pseudo-TTY allocated, so piped invocations stay
// non-interactive.
func stdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// renderIssueCard prints a glamour-rendered help card for launch-stopping
// conditions, falling back to plain text when rendering fails.
func renderIssueCard(is *issue.Issue) {
	out, err := is.Render("dark")
	if err != nil {
		out = string(is.MarkdownMsg())
	}
	fmt.Fprint(os.Stderr, out)
}
