// SPDX-License-Identifier: MPL-2.0

// Package launcher assembles and executes the single container-run
// invocation that is dbuild's whole job. Assembly is a pure function over
// explicit inputs (argument vector, working directory, executable location,
// host identity, image reference); environment inspection happens in the
// callers that collect those inputs. Exactly one child process is spawned
// per invocation and its exit status propagates unchanged.
package launcher
