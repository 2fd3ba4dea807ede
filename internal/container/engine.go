// SPDX-License-Identifier: MPL-2.0

package container

import (
	"context"
	"fmt"
	"io"
)

// Engine defines the interface for container operations
type Engine interface {
	// Name returns the engine name (docker or podman)
	Name() string
	// Available checks if the engine is available on the system
	Available() bool
	// Version returns the engine version
	Version(ctx context.Context) (string, error)

	// Run runs a command in a container
	Run(ctx context.Context, opts RunOptions) (*RunResult, error)
	// BuildRunArgs builds the argument slice for a 'run' command without executing
	BuildRunArgs(opts RunOptions) []string
}

// RunOptions contains options for running a container
type RunOptions struct {
	// Image is the image to run
	Image string
	// Command is the command to run inside the container
	Command []string
	// WorkDir is the working directory inside the container
	WorkDir string
	// Env contains environment variables
	Env map[string]string
	// Volumes are bind mounts applied in order
	Volumes []VolumeMount
	// User is the uid:gid identity mapping passed via --user
	User string
	// GroupAdd lists supplementary group IDs passed via --group-add,
	// order-preserving and verbatim
	GroupAdd []string
	// CapAdd lists Linux capabilities added to the container
	CapAdd []string
	// ExtraArgs are raw runtime flags inserted after all fixed options
	// and before the image
	ExtraArgs []string
	// Remove automatically removes the container after exit
	Remove bool
	// SigProxy enables the runtime's signal proxying to the contained process
	SigProxy bool
	// Name is the container name
	Name string
	// Interactive keeps stdin attached
	Interactive bool
	// TTY allocates a pseudo-TTY
	TTY bool
	// Stdin is the standard input
	Stdin io.Reader
	// Stdout is where to write standard output
	Stdout io.Writer
	// Stderr is where to write standard error
	Stderr io.Writer
}

// RunResult contains the result of running a container
type RunResult struct {
	// ExitCode is the exit code of the runtime invocation, which reflects
	// the in-container command's exit code or the runtime's own failure code
	ExitCode int
	// Error is set only for infrastructure failures (binary missing,
	// process could not start); non-zero exits are not errors
	Error error
}

// EngineType identifies the container engine type
type EngineType string

const (
	EngineTypePodman EngineType = "podman"
	EngineTypeDocker EngineType = "docker"
)

// ErrEngineNotAvailable is returned when a container engine is not available
type ErrEngineNotAvailable struct {
	Engine string
	Reason string
}

func (e *ErrEngineNotAvailable) Error() string {
	return fmt.Sprintf("container engine '%s' is not available: %s", e.Engine, e.Reason)
}

// NewEngine creates a new container engine based on preference
func NewEngine(preferredType EngineType) (Engine, error) {
	switch preferredType {
	case EngineTypePodman:
		engine := NewPodmanEngine()
		if engine.Available() {
			return engine, nil
		}
		// Fall back to Docker
		dockerEngine := NewDockerEngine()
		if dockerEngine.Available() {
			return dockerEngine, nil
		}
		return nil, &ErrEngineNotAvailable{
			Engine: "podman",
			Reason: "podman is not installed or not accessible, and docker fallback is also not available",
		}

	case EngineTypeDocker:
		engine := NewDockerEngine()
		if engine.Available() {
			return engine, nil
		}
		// Fall back to Podman
		podmanEngine := NewPodmanEngine()
		if podmanEngine.Available() {
			return podmanEngine, nil
		}
		return nil, &ErrEngineNotAvailable{
			Engine: "docker",
			Reason: "docker is not installed or not accessible, and podman fallback is also not available",
		}

	default:
		return nil, fmt.Errorf("unknown container engine type: %s", preferredType)
	}
}

// AutoDetectEngine tries to find an available container engine
func AutoDetectEngine() (Engine, error) {
	// Try Docker first (dbuild images are typically built and cached there)
	docker := NewDockerEngine()
	if docker.Available() {
		return docker, nil
	}

	podman := NewPodmanEngine()
	if podman.Available() {
		return podman, nil
	}

	return nil, &ErrEngineNotAvailable{
		Engine: "any",
		Reason: "no container engine (docker or podman) is available on this system",
	}
}
