// SPDX-License-Identifier: MPL-2.0

package config

var (
	// configFileOverride is set via the --config flag; when non-empty it is
	// used exclusively.
	configFileOverride string

	// configDirOverride lets tests relocate the config directory.
	configDirOverride string
)

// SetConfigFilePathOverride points Load at a specific config file.
func SetConfigFilePathOverride(path string) {
	configFileOverride = path
}

// SetConfigDirOverride relocates the config directory (tests only).
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}
