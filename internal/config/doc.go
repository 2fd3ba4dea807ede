// SPDX-License-Identifier: MPL-2.0

// Package config loads dbuild's configuration: a CUE file validated against
// an embedded schema and merged into viper over defaults. Configuration is
// optional; a missing file means defaults (auto-detected engine, sibling
// image file, no extra flags or mounts).
package config
