// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeImageFile(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ImageFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveImage_EnvWins(t *testing.T) {
	dir := t.TempDir()
	writeImageFile(t, dir, "file-image:1\n")
	t.Setenv(ImageEnvVar, "env-image:2")

	img, err := ResolveImage(dir, "config-image:3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img != "env-image:2" {
		t.Errorf("image = %q, want env-image:2", img)
	}
}

func TestResolveImage_ConfigBeatsFile(t *testing.T) {
	dir := t.TempDir()
	writeImageFile(t, dir, "file-image:1\n")
	t.Setenv(ImageEnvVar, "")

	img, err := ResolveImage(dir, "config-image:3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img != "config-image:3" {
		t.Errorf("image = %q, want config-image:3", img)
	}
}

func TestResolveImage_FileFirstLineTrimmed(t *testing.T) {
	dir := t.TempDir()
	writeImageFile(t, dir, "  file-image:1  \nsecond line ignored\n")
	t.Setenv(ImageEnvVar, "")

	img, err := ResolveImage(dir, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img != "file-image:1" {
		t.Errorf("image = %q, want file-image:1", img)
	}
}

func TestResolveImage_Missing(t *testing.T) {
	t.Setenv(ImageEnvVar, "")

	_, err := ResolveImage(t.TempDir(), "")
	if !errors.Is(err, ErrNoImageRef) {
		t.Errorf("error = %v, want ErrNoImageRef", err)
	}
}

func TestResolveImage_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeImageFile(t, dir, "\n\n")
	t.Setenv(ImageEnvVar, "")

	_, err := ResolveImage(dir, "")
	if !errors.Is(err, ErrNoImageRef) {
		t.Errorf("error = %v, want ErrNoImageRef", err)
	}
}
