// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"dbuild-cli/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage dbuild configuration",
}

var configShowCmd = &cobra.Command{
	Use:          "show",
	Short:        "Show the resolved configuration",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		loaded, path, err := config.Load()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if path == "" {
			fmt.Fprintln(out, SubtitleStyle.Render("// no config file found, showing defaults"))
		} else {
			fmt.Fprintln(out, SubtitleStyle.Render("// "+path))
		}
		fmt.Fprint(out, config.GenerateCUE(loaded))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:          "init",
	Short:        "Create a default configuration file",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := config.CreateDefaultConfig()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", SuccessStyle.Render("✓"), path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
