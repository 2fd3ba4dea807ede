// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingSeparator is the sentinel error wrapped by MissingSeparatorError.
var ErrMissingSeparator = errors.New(`runtime flags must be terminated by "--"`)

// MissingSeparatorError is returned when the first argument is flag-like but
// no "--" terminator follows before the arguments run out.
type MissingSeparatorError struct {
	// Scanned is the number of tokens consumed before exhaustion.
	Scanned int
}

// Error implements the error interface.
func (e *MissingSeparatorError) Error() string {
	return fmt.Sprintf(`scanned %d argument(s) without finding the "--" terminator after runtime flags`, e.Scanned)
}

// Unwrap returns ErrMissingSeparator so callers can use errors.Is for
// programmatic detection.
func (e *MissingSeparatorError) Unwrap() error { return ErrMissingSeparator }

// SplitArgs splits a raw argument vector into runtime flags (arguments for
// the container runtime itself) and the in-container command.
//
// Runtime flags are recognized only when the first token is non-empty and
// begins with "-"; they extend up to a literal "--" token, which is consumed
// and not forwarded. A flag-like first token with no "--" anywhere in the
// remaining arguments is a fatal configuration error: nothing is launched.
//
// A first token not beginning with "-" means zero runtime flags and the
// whole vector is the command. A leading "--" likewise yields zero runtime
// flags with the remainder as the command.
func SplitArgs(args []string) (runtimeFlags, command []string, err error) {
	if len(args) == 0 || args[0] == "" || !strings.HasPrefix(args[0], "-") {
		return nil, args, nil
	}

	for i, tok := range args {
		if tok == "--" {
			return args[:i], args[i+1:], nil
		}
	}

	return nil, nil, &MissingSeparatorError{Scanned: len(args)}
}
