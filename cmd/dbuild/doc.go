// SPDX-License-Identifier: MPL-2.0

// Package cmd implements the Cobra command hierarchy for the dbuild CLI.
//
// The root command is the launcher itself and parses no flags of its own:
// the raw argument vector is handed to the invocation assembler so runtime
// flags like --network=host pass through to the container runtime
// untouched. Subcommands (print, doctor, config) cover dry runs, engine
// diagnostics, and configuration management.
package cmd
