// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"dbuild-cli/internal/container"
	"dbuild-cli/internal/issue"
	"dbuild-cli/internal/launcher"

	"github.com/spf13/cobra"
)

// printCmd renders the invocation the root command would execute, without
// executing it. It shares the root's raw argument grammar, so flag parsing
// is disabled here too.
var printCmd = &cobra.Command{
	Use:                "print [RUNTIME_FLAGS --] COMMAND [ARGS...]",
	Short:              "Render the container invocation without executing it",
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	RunE:               runPrint,
}

func runPrint(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		return cmd.Help()
	}

	// An unavailable engine must not block a dry run; preview with the
	// docker argument dialect in that case.
	engineNote := ""
	eng, err := selectEngine(cfg)
	if err != nil {
		eng = container.NewDockerEngine()
		engineNote = " (not available, preview only)"
	}

	params, err := gatherParams(args, cfg)
	if err != nil {
		if errors.Is(err, launcher.ErrNoImageRef) {
			renderIssueCard(issue.ImageRefMissing())
		}
		return &ExitError{Code: 1, Err: err}
	}

	inv, err := launcher.Assemble(params)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	renderInvocation(cmd.OutOrStdout(), eng, engineNote, params, inv)
	return nil
}

// renderInvocation prints the resolved launch context: engine, image,
// identity mapping, mounts, and the final argument vector — everything a
// user needs to understand what dbuild would run.
func renderInvocation(w io.Writer, eng container.Engine, engineNote string, params launcher.Params, inv *launcher.Invocation) {
	fmt.Fprintln(w, TitleStyle.Render("Dry Run"))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %s %s%s\n", LabelStyle.Render("Engine:"), eng.Name(), engineNote)
	fmt.Fprintf(w, "  %s %s\n", LabelStyle.Render("Image:"), params.Image)
	fmt.Fprintf(w, "  %s %s\n", LabelStyle.Render("WorkDir:"), params.WorkDir)
	fmt.Fprintf(w, "  %s %s\n", LabelStyle.Render("RepoRoot:"), launcher.RepoRoot(params.ExecDir))
	fmt.Fprintf(w, "  %s %s\n", LabelStyle.Render("User:"), params.Identity.User())

	if groups := params.Identity.GroupStrings(); len(groups) > 0 {
		fmt.Fprintf(w, "  %s %s\n", LabelStyle.Render("Groups:"), strings.Join(groups, " "))
	}

	if len(inv.RuntimeFlags) > 0 {
		fmt.Fprintf(w, "  %s %s\n", LabelStyle.Render("Runtime flags:"), strings.Join(inv.RuntimeFlags, " "))
	}

	if len(inv.Command) > 0 {
		fmt.Fprintf(w, "  %s %s\n", LabelStyle.Render("Command:"), strings.Join(inv.Command, " "))
	} else {
		fmt.Fprintf(w, "  %s %s\n", LabelStyle.Render("Command:"), SubtitleStyle.Render("(image default)"))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, LabelStyle.Render("  Mounts:"))
	for _, m := range inv.RunOptions.Volumes {
		fmt.Fprintf(w, "    %s\n", container.FormatVolumeMount(m))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, LabelStyle.Render("  Invocation:"))
	argv := append([]string{eng.Name()}, eng.BuildRunArgs(inv.RunOptions)...)
	fmt.Fprintf(w, "    %s\n", strings.Join(argv, " "))
}
