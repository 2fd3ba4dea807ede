// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// withConfigDir relocates the config directory to a temp dir for one test.
func withConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(func() { SetConfigDirOverride("") })
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	withConfigDir(t)

	cfg, path, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "" {
		t.Errorf("path = %q, want empty for defaults-only", path)
	}
	if cfg.ContainerEngine != "" || cfg.Image != "" || cfg.ExtraFlags != "" || cfg.UI.Verbose {
		t.Errorf("defaults altered: %+v", cfg)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := withConfigDir(t)
	wantPath := writeConfig(t, dir, `
container_engine: "podman"
image: "registry.example.com/build:v3"
extra_flags: "--network=host --memory 8g"
extra_mounts: ["/var/cache/build:/cache", "/opt/toolchains:/opt/toolchains:ro"]

ui: {
	verbose: true
}
`)

	cfg, path, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != wantPath {
		t.Errorf("path = %q, want %q", path, wantPath)
	}
	if cfg.ContainerEngine != "podman" {
		t.Errorf("ContainerEngine = %q", cfg.ContainerEngine)
	}
	if cfg.Image != "registry.example.com/build:v3" {
		t.Errorf("Image = %q", cfg.Image)
	}
	if cfg.ExtraFlags != "--network=host --memory 8g" {
		t.Errorf("ExtraFlags = %q", cfg.ExtraFlags)
	}
	want := []string{"/var/cache/build:/cache", "/opt/toolchains:/opt/toolchains:ro"}
	if !slices.Equal(cfg.ExtraMounts, want) {
		t.Errorf("ExtraMounts = %v, want %v", cfg.ExtraMounts, want)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true")
	}
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	dir := withConfigDir(t)
	writeConfig(t, dir, `image: "only-this:1"`)

	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Image != "only-this:1" {
		t.Errorf("Image = %q", cfg.Image)
	}
	if cfg.ContainerEngine != "" || cfg.UI.Verbose {
		t.Errorf("unset keys must keep defaults: %+v", cfg)
	}
}

func TestLoad_SchemaRejectsBadEngine(t *testing.T) {
	dir := withConfigDir(t)
	writeConfig(t, dir, `container_engine: "lxc"`)

	if _, _, err := Load(); err == nil {
		t.Fatal("expected schema error for unsupported engine value")
	}
}

func TestLoad_SchemaRejectsWrongType(t *testing.T) {
	dir := withConfigDir(t)
	writeConfig(t, dir, `extra_mounts: "not-a-list"`)

	if _, _, err := Load(); err == nil {
		t.Fatal("expected schema error for wrong field type")
	}
}

func TestLoad_InvalidCUE(t *testing.T) {
	dir := withConfigDir(t)
	writeConfig(t, dir, `image: "unterminated`)

	if _, _, err := Load(); err == nil {
		t.Fatal("expected parse error for invalid CUE")
	}
}

func TestLoad_FileOverride(t *testing.T) {
	withConfigDir(t)

	path := filepath.Join(t.TempDir(), "custom.cue")
	if err := os.WriteFile(path, []byte(`image: "override:1"`), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigFilePathOverride(path)
	t.Cleanup(func() { SetConfigFilePathOverride("") })

	cfg, gotPath, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != path {
		t.Errorf("path = %q, want %q", gotPath, path)
	}
	if cfg.Image != "override:1" {
		t.Errorf("Image = %q", cfg.Image)
	}
}

func TestLoad_FileOverrideMissing(t *testing.T) {
	withConfigDir(t)

	SetConfigFilePathOverride(filepath.Join(t.TempDir(), "nope.cue"))
	t.Cleanup(func() { SetConfigFilePathOverride("") })

	if _, _, err := Load(); err == nil {
		t.Fatal("expected error for missing override file")
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	dir := withConfigDir(t)

	path, err := CreateDefaultConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("config created in %q, want %q", filepath.Dir(path), dir)
	}

	// Created file must load cleanly through the schema.
	if _, _, err := Load(); err != nil {
		t.Errorf("generated default config does not load: %v", err)
	}

	// Idempotent: a second call must not clobber the file.
	if err := os.WriteFile(path, []byte(`image: "keep-me:1"`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := CreateDefaultConfig(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "keep-me:1") {
		t.Error("existing config file was overwritten")
	}
}

func TestGenerateCUE_RoundTrip(t *testing.T) {
	dir := withConfigDir(t)

	in := &Config{
		ContainerEngine: "docker",
		Image:           "img:1",
		ExtraFlags:      "--network=host",
		ExtraMounts:     []string{"/a:/b:ro"},
		UI:              UIConfig{Verbose: true},
	}
	writeConfig(t, dir, GenerateCUE(in))

	out, _, err := Load()
	if err != nil {
		t.Fatalf("generated CUE does not load: %v", err)
	}
	if out.ContainerEngine != in.ContainerEngine || out.Image != in.Image ||
		out.ExtraFlags != in.ExtraFlags || !slices.Equal(out.ExtraMounts, in.ExtraMounts) ||
		out.UI.Verbose != in.UI.Verbose {
		t.Errorf("round trip mismatch:\n in  %+v\n out %+v", in, out)
	}
}
