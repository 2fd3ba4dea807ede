// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	cause := errors.New("file not found")
	err := NewErrorContext().
		WithOperation("resolve image reference").
		WithResource("/opt/repo/tools/dbuild/dbuild.image").
		Wrap(cause).
		BuildError()

	want := "failed to resolve image reference: /opt/repo/tools/dbuild/dbuild.image: file not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("root cause")
	err := NewErrorContext().
		WithOperation("launch build container").
		Wrap(sentinel).
		BuildError()

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should reach the wrapped cause")
	}

	var actionable *ActionableError
	if !errors.As(err, &actionable) {
		t.Fatal("errors.As should recover *ActionableError")
	}
	if actionable.Operation != "launch build container" {
		t.Errorf("Operation = %q", actionable.Operation)
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")
	outer := NewErrorContext().
		WithOperation("load configuration").
		WithSuggestion("Check the file syntax").
		WithSuggestion("Run dbuild config show").
		Wrap(inner).
		Build()

	concise := outer.Format(false)
	if !strings.Contains(concise, "• Check the file syntax") {
		t.Errorf("missing suggestion in %q", concise)
	}
	if strings.Contains(concise, "Error chain") {
		t.Errorf("concise output must not include the error chain: %q", concise)
	}

	verbose := outer.Format(true)
	if !strings.Contains(verbose, "Error chain:") || !strings.Contains(verbose, "1. inner") {
		t.Errorf("verbose output missing error chain: %q", verbose)
	}
}

func TestWrapWithOperation(t *testing.T) {
	t.Parallel()

	if WrapWithOperation(nil, "noop") != nil {
		t.Error("nil error must wrap to nil")
	}

	err := WrapWithOperation(errors.New("boom"), "detect engine")
	if err == nil || err.Operation != "detect engine" {
		t.Errorf("unexpected result: %+v", err)
	}
}
