// SPDX-License-Identifier: MPL-2.0

// Package identity resolves the invoking user's host identity (UID, primary
// GID, supplementary groups) for mapping into the container. The group list
// is reported exactly as the operating system returns it: order-preserving,
// with no duplicates introduced or removed.
package identity
