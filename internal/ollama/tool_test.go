package ollama

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// stubTool writes a fake ollama script into a temp dir, prepends it to
// PATH, and returns a Tool pointing at it.
func stubTool(t *testing.T, script string, env []string) *Tool {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "ollama")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return NewTool("", env)
}

func TestVersion_TrimsOutput(t *testing.T) {
	tool := stubTool(t, `echo "ollama version is 0.5.4"`, nil)

	got, err := tool.Version(context.Background())
	if err != nil {
		t.Fatalf("Version returned error: %v", err)
	}
	if got != "ollama version is 0.5.4" {
		t.Fatalf("Version = %q", got)
	}
}

func TestVersion_NonZeroExitErrors(t *testing.T) {
	tool := stubTool(t, `echo "broken install" >&2; exit 1`, nil)

	_, err := tool.Version(context.Background())
	if err == nil {
		t.Fatalf("Version returned nil error, want failure")
	}
	if !strings.Contains(err.Error(), "code 1") {
		t.Fatalf("error = %v, want exit code mentioned", err)
	}
}

func TestInstalled_MissingBinary(t *testing.T) {
	tool := NewTool("herder-definitely-not-a-binary", nil)
	if err := tool.Installed(); !errors.Is(err, ErrNotInstalled) {
		t.Fatalf("Installed error = %v, want ErrNotInstalled", err)
	}
}

func TestList_SeparatesStdoutAndStderr(t *testing.T) {
	tool := stubTool(t, `
if [ "$1" = "list" ]; then
  echo "NAME  ID  SIZE  MODIFIED"
  echo "No models installed" >&2
  exit 0
fi
exit 2`, nil)

	stdout, stderr, err := tool.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if !strings.HasPrefix(stdout, "NAME") {
		t.Fatalf("stdout = %q, want header", stdout)
	}
	if !strings.Contains(stderr, "No models installed") {
		t.Fatalf("stderr = %q, want empty-catalog marker", stderr)
	}
}

func TestRemove_EmptyNameRejected(t *testing.T) {
	tool := NewTool("", nil)
	if _, err := tool.Remove(context.Background(), "  "); err == nil {
		t.Fatalf("Remove returned nil error, want rejection")
	}
}

func TestRemove_PassesEnvOverride(t *testing.T) {
	tool := stubTool(t, `echo "models=$OLLAMA_MODELS args=$*"`, []string{"OLLAMA_MODELS=/custom/models"})

	out, err := tool.Remove(context.Background(), "phi3:3.8b")
	if err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if !strings.Contains(out, "models=/custom/models") {
		t.Fatalf("out = %q, want OLLAMA_MODELS forwarded", out)
	}
	if !strings.Contains(out, "args=rm phi3:3.8b") {
		t.Fatalf("out = %q, want rm invocation", out)
	}
}

func TestPullSpec(t *testing.T) {
	tool := NewTool("/opt/bin/ollama", []string{"OLLAMA_MODELS=/m"})
	spec := tool.PullSpec("codegemma:2b")
	if spec.Bin != "/opt/bin/ollama" {
		t.Fatalf("Bin = %q", spec.Bin)
	}
	if len(spec.Args) != 2 || spec.Args[0] != "pull" || spec.Args[1] != "codegemma:2b" {
		t.Fatalf("Args = %v, want [pull codegemma:2b]", spec.Args)
	}
	if len(spec.Env) != 1 || spec.Env[0] != "OLLAMA_MODELS=/m" {
		t.Fatalf("Env = %v", spec.Env)
	}
}
