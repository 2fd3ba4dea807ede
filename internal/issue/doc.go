// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error context: ActionableError carries
// what operation failed, which resource was involved, and how to fix it;
// the issue catalog renders markdown cards for the handful of conditions
// that stop a launch before any container starts.
package issue
