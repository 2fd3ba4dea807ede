// SPDX-License-Identifier: MPL-2.0

package identity

import "strconv"

// Identity is the invoking user's host identity.
type Identity struct {
	// UID is the real user ID
	UID int
	// GID is the primary group ID
	GID int
	// Groups are the supplementary group IDs, in OS order
	Groups []int
}

// CurrentFunc resolves the current process identity. Tests swap it to
// inject fixed identities.
var CurrentFunc = current

// Current returns the identity of the invoking user.
func Current() (Identity, error) {
	return CurrentFunc()
}

// User returns the identity in the "uid:gid" form expected by the
// container runtime's --user flag.
func (id Identity) User() string {
	return strconv.Itoa(id.UID) + ":" + strconv.Itoa(id.GID)
}

// GroupStrings returns the supplementary group IDs as decimal strings,
// order-preserving.
func (id Identity) GroupStrings() []string {
	out := make([]string, len(id.Groups))
	for i, g := range id.Groups {
		out[i] = strconv.Itoa(g)
	}
	return out
}
