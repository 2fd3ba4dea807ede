// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"fmt"
	"os"
	"path/filepath"
)

// executablePath is swapped by tests to pin the executable location.
var executablePath = os.Executable

// ExecutableDir returns the symlink-resolved directory containing the
// running dbuild executable. Sibling files (the image reference) and the
// repository root are located relative to it.
func ExecutableDir() (string, error) {
	exe, err := executablePath()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable symlinks: %w", err)
	}

	return filepath.Dir(resolved), nil
}

// RepoRoot returns the repository root: two directory levels above the
// resolved executable directory. dbuild conventionally lives in
// <repo>/tools/dbuild/, so the root is mounted read-write for builds that
// reference sources outside the working directory.
func RepoRoot(execDir string) string {
	return filepath.Dir(filepath.Dir(execDir))
}
