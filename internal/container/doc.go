// SPDX-License-Identifier: MPL-2.0

// Package container provides an abstraction layer for container runtimes
// (Docker/Podman) driven through their CLIs. dbuild never talks to a daemon
// API directly: every operation shells out to the runtime binary found on
// PATH, and the runtime's flag syntax and exit-status conventions are treated
// as an opaque external contract.
package container
