// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"testing"

	"dbuild-cli/internal/issue"
)

func TestExitError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "wraps underlying message",
			err:  &ExitError{Code: 1, Err: errors.New("engine missing")},
			want: "engine missing",
		},
		{
			name: "bare exit code",
			err:  &ExitError{Code: 42},
			want: "exit status 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("root cause")
	var err error = &ExitError{Code: 1, Err: sentinel}

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should reach the wrapped error")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Errorf("errors.As failed or wrong code: %+v", exitErr)
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	plain := errors.New("plain failure")
	if got := formatErrorForDisplay(plain, false); got != "plain failure" {
		t.Errorf("plain error formatted as %q", got)
	}

	actionable := issue.NewErrorContext().
		WithOperation("load configuration").
		WithSuggestion("Run dbuild config show").
		Wrap(errors.New("bad syntax")).
		BuildError()

	got := formatErrorForDisplay(actionable, false)
	if got == actionable.Error() {
		t.Errorf("actionable error should include suggestions, got %q", got)
	}
}

func TestGetVersionString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origDate })

	Version = "dev"
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("dev version string = %q", got)
	}

	Version, Commit, BuildDate = "1.2.3", "abc123", "2026-08-24"
	if got := getVersionString(); got != "1.2.3 (commit: abc123, built: 2026-08-24)" {
		t.Errorf("release version string = %q", got)
	}
}
