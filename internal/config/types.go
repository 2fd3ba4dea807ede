// SPDX-License-Identifier: MPL-2.0

package config

type (
	// Config is the resolved dbuild configuration.
	Config struct {
		// ContainerEngine prefers "docker" or "podman"; empty auto-detects.
		ContainerEngine string `mapstructure:"container_engine"`

		// Image overrides the sibling dbuild.image file when set.
		// The DBUILD_IMAGE environment variable still wins over both.
		Image string `mapstructure:"image"`

		// ExtraFlags holds additional runtime flags as a single string,
		// split with POSIX shell word rules and appended after the
		// caller-supplied runtime flags.
		ExtraFlags string `mapstructure:"extra_flags"`

		// ExtraMounts are additional bind mounts in
		// "host:container[:ro]" form.
		ExtraMounts []string `mapstructure:"extra_mounts"`

		// UI groups presentation settings.
		UI UIConfig `mapstructure:"ui"`
	}

	// UIConfig holds presentation settings.
	UIConfig struct {
		// Verbose enables debug logging of engine selection and the
		// final argument vector.
		Verbose bool `mapstructure:"verbose"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		ContainerEngine: "",
		Image:           "",
		ExtraFlags:      "",
		ExtraMounts:     nil,
		UI:              UIConfig{Verbose: false},
	}
}
