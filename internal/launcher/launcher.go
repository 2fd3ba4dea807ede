// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"os"

	"dbuild-cli/internal/container"
	"dbuild-cli/internal/identity"
)

// Params are the explicit inputs to invocation assembly. Callers collect
// them from the environment (cwd, executable location, identity, config)
// so that Assemble itself stays pure and testable.
type Params struct {
	// Args is the raw argument vector after the program name:
	// [RUNTIME_FLAGS --] COMMAND [ARGS...]
	Args []string
	// WorkDir is the host working directory, bind-mounted read-write and
	// used as the in-container working directory
	WorkDir string
	// ExecDir is the symlink-resolved directory of the dbuild executable
	ExecDir string
	// Identity is the invoking user's host identity
	Identity identity.Identity
	// Image is the resolved image reference
	Image string
	// ExtraFlags are configured runtime flags appended after the
	// caller-supplied ones
	ExtraFlags []string
	// ExtraMounts are configured additional bind mounts
	ExtraMounts []container.VolumeMount
	// Interactive allocates a pseudo-TTY for the contained command
	Interactive bool
}

// Invocation is the assembled run request plus the argument segments it
// was built from, kept for dry-run rendering and diagnostics.
type Invocation struct {
	RunOptions   container.RunOptions
	RuntimeFlags []string
	Command      []string
}

// Assemble builds the container run request from explicit inputs. An empty
// command after the separator is forwarded as-is: the image's default
// command runs, matching the runtime CLI's own behavior.
func Assemble(p Params) (*Invocation, error) {
	flags, command, err := SplitArgs(p.Args)
	if err != nil {
		return nil, err
	}

	runtimeFlags := append(append([]string{}, flags...), p.ExtraFlags...)

	opts := container.RunOptions{
		Image:       p.Image,
		Command:     command,
		WorkDir:     p.WorkDir,
		User:        p.Identity.User(),
		GroupAdd:    p.Identity.GroupStrings(),
		CapAdd:      []string{"SYS_PTRACE"},
		Volumes:     mounts(p),
		ExtraArgs:   runtimeFlags,
		Remove:      true,
		SigProxy:    true,
		Interactive: true,
		TTY:         p.Interactive,
	}

	return &Invocation{
		RunOptions:   opts,
		RuntimeFlags: runtimeFlags,
		Command:      command,
	}, nil
}

// Launch assembles the invocation and executes it with inherited standard
// streams. It returns the exit status to propagate: the runtime's exit code
// on execution, or 1 for local assembly failures (nothing launched).
func Launch(ctx context.Context, eng container.Engine, p Params) (int, error) {
	inv, err := Assemble(p)
	if err != nil {
		return 1, err
	}

	opts := inv.RunOptions
	opts.Stdin = os.Stdin
	opts.Stdout = os.Stdout
	opts.Stderr = os.Stderr

	result, err := eng.Run(ctx, opts)
	if err != nil {
		return 1, err
	}
	return result.ExitCode, result.Error
}

// mounts returns the bind mounts for an invocation: working directory,
// repository root, and /tmp read-write; host identity and timezone files
// read-only; then configured extras. Mounts whose container path is
// already claimed are dropped — when the working directory is the
// repository root, a duplicate mount point would be rejected by the
// runtime.
func mounts(p Params) []container.VolumeMount {
	fixed := []container.VolumeMount{
		{HostPath: container.HostFilesystemPath(p.WorkDir), ContainerPath: container.MountTargetPath(p.WorkDir)},
		{HostPath: container.HostFilesystemPath(RepoRoot(p.ExecDir)), ContainerPath: container.MountTargetPath(RepoRoot(p.ExecDir))},
		{HostPath: "/tmp", ContainerPath: "/tmp"},
		{HostPath: "/etc/passwd", ContainerPath: "/etc/passwd", ReadOnly: true},
		{HostPath: "/etc/group", ContainerPath: "/etc/group", ReadOnly: true},
		{HostPath: "/etc/localtime", ContainerPath: "/etc/localtime", ReadOnly: true},
	}
	fixed = append(fixed, p.ExtraMounts...)

	seen := make(map[container.MountTargetPath]bool, len(fixed))
	out := fixed[:0]
	for _, m := range fixed {
		if seen[m.ContainerPath] {
			continue
		}
		seen[m.ContainerPath] = true
		out = append(out, m)
	}
	return out
}
