// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"slices"
	"testing"
)

func TestSplitArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		wantFlags []string
		wantCmd   []string
		wantErr   bool
	}{
		{
			name:      "plain command, no flags parsed",
			args:      []string{"echo", "hi"},
			wantFlags: nil,
			wantCmd:   []string{"echo", "hi"},
		},
		{
			name:      "flag-like command arguments stay with the command",
			args:      []string{"make", "-j8", "--keep-going"},
			wantFlags: nil,
			wantCmd:   []string{"make", "-j8", "--keep-going"},
		},
		{
			name:      "runtime flags terminated by separator",
			args:      []string{"--network=host", "--", "echo", "hi"},
			wantFlags: []string{"--network=host"},
			wantCmd:   []string{"echo", "hi"},
		},
		{
			name:      "multiple runtime flags",
			args:      []string{"--network=host", "--privileged", "--", "make"},
			wantFlags: []string{"--network=host", "--privileged"},
			wantCmd:   []string{"make"},
		},
		{
			name:      "leading separator means zero runtime flags",
			args:      []string{"--", "doctor"},
			wantFlags: []string{},
			wantCmd:   []string{"doctor"},
		},
		{
			name:      "separator without following command",
			args:      []string{"--network=host", "--"},
			wantFlags: []string{"--network=host"},
			wantCmd:   []string{},
		},
		{
			name:    "flag-like first argument without separator is fatal",
			args:    []string{"--network=host", "echo", "hi"},
			wantErr: true,
		},
		{
			name:    "single flag-like argument without separator is fatal",
			args:    []string{"-v"},
			wantErr: true,
		},
		{
			name:      "empty vector",
			args:      nil,
			wantFlags: nil,
			wantCmd:   nil,
		},
		{
			name:      "empty first token is not flag-like",
			args:      []string{"", "echo"},
			wantFlags: nil,
			wantCmd:   []string{"", "echo"},
		},
		{
			name:      "separator later in a plain command is not special",
			args:      []string{"sh", "-c", "--", "true"},
			wantFlags: nil,
			wantCmd:   []string{"sh", "-c", "--", "true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			flags, command, err := SplitArgs(tt.args)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got flags=%v command=%v", flags, command)
				}
				if !errors.Is(err, ErrMissingSeparator) {
					t.Errorf("error should wrap ErrMissingSeparator, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(flags, tt.wantFlags) {
				t.Errorf("flags = %v, want %v", flags, tt.wantFlags)
			}
			if !slices.Equal(command, tt.wantCmd) {
				t.Errorf("command = %v, want %v", command, tt.wantCmd)
			}
		})
	}
}

func TestSplitArgs_SeparatorNotForwarded(t *testing.T) {
	t.Parallel()

	flags, command, err := SplitArgs([]string{"--network=host", "--", "echo", "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slices.Contains(flags, "--") || slices.Contains(command, "--") {
		t.Errorf("separator leaked into output: flags=%v command=%v", flags, command)
	}
}

func TestMissingSeparatorError_Message(t *testing.T) {
	t.Parallel()

	_, _, err := SplitArgs([]string{"--network=host", "echo", "hi"})
	var msErr *MissingSeparatorError
	if !errors.As(err, &msErr) {
		t.Fatalf("expected MissingSeparatorError, got %T", err)
	}
	if msErr.Scanned != 3 {
		t.Errorf("Scanned = %d, want 3", msErr.Scanned)
	}
}
