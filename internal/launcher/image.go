// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// ImageFileName is the sibling file next to the executable holding the
	// default image reference (single line, trimmed).
	ImageFileName = "dbuild.image"

	// ImageEnvVar overrides the image reference when set.
	ImageEnvVar = "DBUILD_IMAGE"
)

// ErrNoImageRef is returned when no image reference can be resolved from
// the environment, the configuration, or the sibling image file.
var ErrNoImageRef = errors.New("no container image reference configured")

// ResolveImage resolves the image reference to run. Precedence:
// DBUILD_IMAGE environment variable, then the configured override, then
// the dbuild.image file next to the executable.
func ResolveImage(execDir, configImage string) (string, error) {
	if img := os.Getenv(ImageEnvVar); img != "" {
		return img, nil
	}

	if configImage != "" {
		return configImage, nil
	}

	path := filepath.Join(execDir, ImageFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: set %s, the %q config key, or create %s",
				ErrNoImageRef, ImageEnvVar, "image", path)
		}
		return "", fmt.Errorf("read image reference file %s: %w", path, err)
	}

	img, _, _ := strings.Cut(strings.TrimSpace(string(data)), "\n")
	img = strings.TrimSpace(img)
	if img == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrNoImageRef, path)
	}

	return img, nil
}
