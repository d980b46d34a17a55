package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileFallsBackToDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, reason := Load(filepath.Join(home, "does-not-exist.json"))
	if reason != "" {
		t.Fatalf("Load reason = %q, want empty for missing file", reason)
	}
	if cfg.ModelsDir != "" {
		t.Fatalf("ModelsDir = %q, want empty", cfg.ModelsDir)
	}
	if got, want := cfg.EffectiveModelsDir(), filepath.Join(home, ".ollama"); got != want {
		t.Fatalf("EffectiveModelsDir = %q, want %q", got, want)
	}
}

func TestLoad_MalformedFileFallsBackToDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"models_dir": [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, reason := Load(path)
	if reason == "" {
		t.Fatalf("Load reason empty, want parse failure recorded")
	}
	if !strings.Contains(reason, "parse config") {
		t.Fatalf("Load reason = %q, want it to mention parse config", reason)
	}
	if cfg.ModelsDir != "" {
		t.Fatalf("ModelsDir = %q, want default after malformed file", cfg.ModelsDir)
	}
}

func TestSaveLoad_RoundTripsPathExactly(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := filepath.Join(t.TempDir(), "модели", "llm-каталог")
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	if err := Save(path, Config{ModelsDir: dir}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	cfg, reason := Load(path)
	if reason != "" {
		t.Fatalf("Load reason = %q, want empty", reason)
	}
	if cfg.ModelsDir != dir {
		t.Fatalf("ModelsDir = %q, want %q", cfg.ModelsDir, dir)
	}
}

func TestSave_ReplacesWithoutLeavingTempFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := Save(path, Config{ModelsDir: "/a"}); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := Save(path, Config{ModelsDir: "/b"}); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "config.json" {
		t.Fatalf("dir entries = %v, want only config.json", entries)
	}

	cfg, _ := Load(path)
	if cfg.ModelsDir != "/b" {
		t.Fatalf("ModelsDir = %q, want /b", cfg.ModelsDir)
	}
}

func TestEnviron_OverridesOnlyWhenConfigured(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if env := (Config{}).Environ(); env != nil {
		t.Fatalf("Environ = %v, want nil for default dir", env)
	}

	cfg := Config{ModelsDir: "/mnt/fast/ollama"}
	env := cfg.Environ()
	if len(env) != 1 {
		t.Fatalf("Environ = %v, want one entry", env)
	}
	want := "OLLAMA_MODELS=" + filepath.Join("/mnt/fast/ollama", "models")
	if env[0] != want {
		t.Fatalf("Environ[0] = %q, want %q", env[0], want)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
