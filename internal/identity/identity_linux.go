// SPDX-License-Identifier: MPL-2.0

package identity

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// current reads the process credentials directly from the kernel.
// getgroups(2) returns the supplementary set in the order the kernel
// holds it; no normalization is applied.
func current() (Identity, error) {
	groups, err := unix.Getgroups()
	if err != nil {
		return Identity{}, fmt.Errorf("getgroups: %w", err)
	}
	return Identity{
		UID:    unix.Getuid(),
		GID:    unix.Getgid(),
		Groups: groups,
	}, nil
}
