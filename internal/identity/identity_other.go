// SPDX-License-Identifier: MPL-2.0

//go:build !linux

package identity

import (
	"fmt"
	"os"
	"os/user"
	"strconv"
)

// current resolves identity through os/user, which works on platforms
// where getgroups(2) is not directly usable.
func current() (Identity, error) {
	u, err := user.Current()
	if err != nil {
		return Identity{}, fmt.Errorf("resolve current user: %w", err)
	}

	ids, err := u.GroupIds()
	if err != nil {
		return Identity{}, fmt.Errorf("resolve group ids for %s: %w", u.Username, err)
	}

	groups := make([]int, 0, len(ids))
	for _, s := range ids {
		g, err := strconv.Atoi(s)
		if err != nil {
			// Non-numeric group IDs (e.g. Windows SIDs) cannot map to
			// --group-add; skip them rather than fail the launch.
			continue
		}
		groups = append(groups, g)
	}

	return Identity{
		UID:    os.Getuid(),
		GID:    os.Getgid(),
		Groups: groups,
	}, nil
}
