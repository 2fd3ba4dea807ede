// SPDX-License-Identifier: MPL-2.0

package container

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// PodmanEngine implements the Engine interface using the Podman CLI.
// It embeds BaseCLIEngine for common CLI operations.
type PodmanEngine struct {
	*BaseCLIEngine
}

// NewPodmanEngine creates a new Podman engine.
// On Linux with SELinux enabled, volume mounts are automatically labeled
// with :z, and rootless runs get --userns=keep-id so the --user identity
// mapping lines up with host file ownership inside bind mounts.
func NewPodmanEngine(opts ...BaseCLIEngineOption) *PodmanEngine {
	path, _ := exec.LookPath("podman")

	allOpts := append([]BaseCLIEngineOption{
		WithName(string(EngineTypePodman)),
		WithVolumeFormatter(addSELinuxLabel),
		WithRunArgsTransformer(addKeepIDUserNS),
	}, opts...)

	return &PodmanEngine{
		BaseCLIEngine: NewBaseCLIEngine(HostFilesystemPath(path), allOpts...),
	}
}

// Available checks if Podman is available.
func (e *PodmanEngine) Available() bool {
	if e.BinaryPath() == "" {
		return false
	}
	cmd := e.CreateCommand(context.Background(), "version", "--format", "{{.Version}}")
	return cmd.Run() == nil
}

// Version returns the Podman version.
func (e *PodmanEngine) Version(ctx context.Context) (string, error) {
	out, err := e.RunCommandWithOutput(ctx, "version", "--format", "{{.Version}}")
	if err != nil {
		return "", fmt.Errorf("failed to get podman version: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// addKeepIDUserNS injects --userns=keep-id directly after the run subcommand.
// Rootless Podman maps the invoking user to root inside the container by
// default, which breaks the --user uid:gid mapping dbuild relies on for
// file ownership parity in bind-mounted build trees.
func addKeepIDUserNS(args []string) []string {
	if len(args) == 0 || args[0] != "run" {
		return args
	}
	out := make([]string, 0, len(args)+1)
	out = append(out, args[0], "--userns=keep-id")
	return append(out, args[1:]...)
}

// isSELinuxEnabled checks if SELinux is enabled on the system
func isSELinuxEnabled() bool {
	// Check /sys/fs/selinux/enforce for SELinux status
	data, err := os.ReadFile("/sys/fs/selinux/enforce")
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) == "1"
}

// addSELinuxLabel adds the :z label to a volume mount if SELinux is enabled
// and the volume doesn't already have an SELinux label (:z or :Z)
func addSELinuxLabel(volume string) string {
	if !isSELinuxEnabled() {
		return volume
	}

	// Volume format: host_path:container_path[:options]
	parts := strings.Split(volume, ":")

	// Need at least host:container
	if len(parts) < 2 {
		return volume
	}

	// Check if options already contain an SELinux label
	if len(parts) >= 3 {
		options := parts[len(parts)-1]
		for opt := range strings.SplitSeq(options, ",") {
			if opt == "z" || opt == "Z" {
				return volume
			}
		}
		// Append z to existing options
		return volume + ",z"
	}

	// No options specified, add :z
	return volume + ":z"
}
