// Package config persists herder's single configuration value: the custom
// Ollama models directory.
//
// # File Format
//
// The config lives at ~/.config/herder/config.json as a flat JSON object:
//
//	{
//	  "models_dir": "/mnt/fast/ollama"
//	}
//
// The one recognized key holds the directory Ollama should keep models
// under. When set, spawned commands receive OLLAMA_MODELS pointing at its
// "models" subdirectory; when empty, the tool's own default applies.
//
// # Failure Policy
//
// Load never fails. A missing, unreadable, or malformed file falls back to
// the default config wholesale; the reason is returned as a string so the
// caller can emit a debug log line. Partial application never happens.
//
// Save is atomic: the new content is written to a temp file in the target
// directory and renamed into place, so a crash mid-write leaves the prior
// file intact.
//
// # Path Expansion
//
// All paths accept "~" for the home directory and are converted to
// absolute form, matching the rest of the application.
package config
