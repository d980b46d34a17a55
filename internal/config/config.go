package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config captures the single setting herder persists: where Ollama should
// keep its models. An empty ModelsDir means the tool's own default is used.
type Config struct {
	ModelsDir string `json:"models_dir"`
}

const (
	defaultConfigPath = "~/.config/herder/config.json"
	defaultModelsDir  = "~/.ollama"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// DefaultModelsDir returns the expanded default models directory.
func DefaultModelsDir() string {
	return mustExpand(defaultModelsDir)
}

// Load reads the config at path (default location when empty). It never
// fails: a missing, unreadable, or malformed file yields the default
// config, with the reason returned for debug logging.
func Load(path string) (Config, string) {
	fallback := Config{}

	resolved, err := resolvePath(path)
	if err != nil {
		return fallback, fmt.Sprintf("resolve config path: %v", err)
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fallback, ""
		}
		return fallback, fmt.Sprintf("read config: %v", err)
	}

	var raw struct {
		ModelsDir string `json:"models_dir"`
	}
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return fallback, fmt.Sprintf("parse config: %v", err)
	}

	dir := strings.TrimSpace(raw.ModelsDir)
	if dir == "" {
		return fallback, ""
	}
	return Config{ModelsDir: mustExpand(dir)}, ""
}

// Save writes the config to path (default location when empty), creating
// parent directories. The write goes through a temp file and rename so a
// crash mid-write cannot corrupt the previous value.
func Save(path string, cfg Config) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	bytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	bytes = append(bytes, '\n')

	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(bytes); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp config: %w", err)
	}
	if err := os.Rename(tmpName, resolved); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}

// EffectiveModelsDir returns the configured models directory, or the
// default when none is set.
func (c Config) EffectiveModelsDir() string {
	if strings.TrimSpace(c.ModelsDir) == "" {
		return DefaultModelsDir()
	}
	return c.ModelsDir
}

// ModelsPath returns the directory the tool actually writes model blobs
// into, a "models" subdirectory of the configured dir.
func (c Config) ModelsPath() string {
	return filepath.Join(c.EffectiveModelsDir(), "models")
}

// Environ returns the OLLAMA_MODELS override to pass to spawned commands,
// or nil when the default directory is in use and the tool should decide.
func (c Config) Environ() []string {
	if strings.TrimSpace(c.ModelsDir) == "" {
		return nil
	}
	return []string{"OLLAMA_MODELS=" + c.ModelsPath()}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
