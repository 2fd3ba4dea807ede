// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"dbuild-cli/internal/container"
	"dbuild-cli/internal/issue"

	"github.com/spf13/cobra"
)

// doctorCmd reports which container engines are usable and which one a
// launch would pick.
var doctorCmd = &cobra.Command{
	Use:          "doctor",
	Short:        "Check container engine availability",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runDoctor,
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, TitleStyle.Render("Engine check"))
	fmt.Fprintln(out)

	engines := []container.Engine{
		container.NewDockerEngine(),
		container.NewPodmanEngine(),
	}

	anyAvailable := false
	for _, eng := range engines {
		if !eng.Available() {
			fmt.Fprintf(out, "  %s %s\n", ErrorStyle.Render("✗"), eng.Name())
			continue
		}
		anyAvailable = true

		version, err := eng.Version(cmd.Context())
		if err != nil {
			version = "unknown version"
		}
		fmt.Fprintf(out, "  %s %s %s\n", SuccessStyle.Render("✓"), eng.Name(), SubtitleStyle.Render(version))
	}

	fmt.Fprintln(out)

	if !anyAvailable {
		renderIssueCard(issue.EngineNotFound())
		return &ExitError{Code: 1, Err: &container.ErrEngineNotAvailable{
			Engine: "any",
			Reason: "no container engine responded",
		}}
	}

	selected, err := selectEngine(cfg)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}
	fmt.Fprintf(out, "  %s %s\n", LabelStyle.Render("Selected:"), selected.Name())
	return nil
}
