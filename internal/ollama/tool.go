package ollama

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/herderapp/herder/internal/runner"
)

// ErrNotInstalled means the ollama binary could not be located on PATH.
var ErrNotInstalled = errors.New("ollama not found on PATH (install from https://ollama.com/download)")

const (
	defaultBin = "ollama"

	versionTimeout = 5 * time.Second
	listTimeout    = 5 * time.Second
	removeTimeout  = 10 * time.Second
	showTimeout    = 10 * time.Second
)

// Tool invokes the ollama CLI for the short-lived commands. Long-running
// pulls go through the streaming runner instead; PullSpec builds their
// invocation.
type Tool struct {
	bin string
	env []string
}

// NewTool returns a Tool for the given binary (default "ollama") with env
// entries appended to every invocation, typically the OLLAMA_MODELS
// override from the config.
func NewTool(bin string, env []string) *Tool {
	if strings.TrimSpace(bin) == "" {
		bin = defaultBin
	}
	return &Tool{bin: bin, env: env}
}

// Bin returns the executable name or path in use.
func (t *Tool) Bin() string {
	return t.bin
}

// Installed checks that the binary can be located.
func (t *Tool) Installed() error {
	if _, err := exec.LookPath(t.bin); err != nil {
		return fmt.Errorf("%w: %s", ErrNotInstalled, t.bin)
	}
	return nil
}

// Version runs `ollama --version` and returns the trimmed output.
func (t *Tool) Version(ctx context.Context) (string, error) {
	out, err := t.run(ctx, versionTimeout, "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// List runs `ollama list` and returns stdout and stderr separately;
// the tool reports an empty catalog on stderr rather than stdout.
func (t *Tool) List(ctx context.Context) (stdout, stderr string, err error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	cmd := t.command(ctx, "list")
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	runErr := cmd.Run()

	stdout = outBuf.String()
	stderr = errBuf.String()
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return stdout, stderr, fmt.Errorf("list exited with code %d: %s", exitErr.ExitCode(), firstLine(stderr))
		}
		return stdout, stderr, t.classify(runErr)
	}
	return stdout, stderr, nil
}

// Remove runs `ollama rm <name>` and returns the combined output.
func (t *Tool) Remove(ctx context.Context, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("model name is empty")
	}
	return t.run(ctx, removeTimeout, "rm", name)
}

// Show runs `ollama show <name>` and returns the combined output.
func (t *Tool) Show(ctx context.Context, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("model name is empty")
	}
	return t.run(ctx, showTimeout, "show", name)
}

// PullSpec builds the streaming-runner invocation for `ollama pull`.
func (t *Tool) PullSpec(name string) runner.Spec {
	return runner.Spec{
		Bin:  t.bin,
		Args: []string{"pull", name},
		Env:  t.env,
	}
}

func (t *Tool) run(ctx context.Context, timeout time.Duration, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := t.command(ctx, args...).CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			detail := firstLine(string(out))
			if detail == "" {
				detail = "no output"
			}
			return string(out), fmt.Errorf("%s exited with code %d: %s", args[0], exitErr.ExitCode(), detail)
		}
		return string(out), t.classify(err)
	}
	return string(out), nil
}

func (t *Tool) command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, t.bin, args...)
	if len(t.env) > 0 {
		cmd.Env = append(cmd.Environ(), t.env...)
	}
	return cmd
}

func (t *Tool) classify(err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotInstalled, t.bin)
	}
	return err
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	return s
}
