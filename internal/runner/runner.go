package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Sentinel errors for invocations that never get to spawn a process.
var (
	// ErrInvalidInvocation means the spec named no executable.
	ErrInvalidInvocation = errors.New("invalid invocation: empty command")

	// ErrToolNotFound means the executable is missing or not on PATH.
	ErrToolNotFound = errors.New("executable not found")
)

// Spec describes one external command invocation.
type Spec struct {
	Bin  string
	Args []string
	Dir  string   // optional working directory
	Env  []string // appended to the current environment
}

// Event is a typed progress report from a running command. The concrete
// types are Line and Done.
type Event interface {
	isEvent()
}

// Line carries one line of combined stdout/stderr output, cleaned of
// terminal control sequences.
type Line struct {
	Text string
}

// Done is the terminal event: exactly one arrives per started command,
// after every Line, and then the channel closes. A non-zero ExitCode is
// data for the caller to judge, not an error.
type Done struct {
	ExitCode int
	Err      error // start/wait failure or context cancellation, nil on clean runs
}

func (Line) isEvent() {}
func (Done) isEvent() {}

// Runner executes external commands without blocking the caller and
// streams their output back as events.
type Runner interface {
	Start(ctx context.Context, spec Spec) (<-chan Event, error)
}

// Ensure execRunner implements Runner at compile time.
var _ Runner = (*execRunner)(nil)

type execRunner struct{}

// New returns the exec-backed Runner.
func New() Runner {
	return &execRunner{}
}

// Start validates the spec, spawns the process, and returns the event
// channel. Stdout and stderr share one pipe so lines arrive in the order
// the process wrote them; there is no buffering beyond line granularity.
func (r *execRunner) Start(ctx context.Context, spec Spec) (<-chan Event, error) {
	if spec.Bin == "" {
		return nil, ErrInvalidInvocation
	}
	if _, err := exec.LookPath(spec.Bin); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, spec.Bin)
	}

	cmd := exec.CommandContext(ctx, spec.Bin, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = append(os.Environ(), spec.Env...)

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pw.Close()
		pr.Close()
		return nil, fmt.Errorf("start %s: %w", spec.Bin, err)
	}

	events := make(chan Event)
	scanned := make(chan struct{})

	go func() {
		defer close(scanned)
		scanner := bufio.NewScanner(pr)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			text := CleanLine(scanner.Text())
			if text == "" {
				continue
			}
			events <- Line{Text: text}
		}
	}()

	go func() {
		err := cmd.Wait()
		pw.Close()
		<-scanned
		pr.Close()

		done := Done{}
		var exitErr *exec.ExitError
		switch {
		case err == nil:
		case errors.As(err, &exitErr):
			done.ExitCode = exitErr.ExitCode()
			if ctx.Err() != nil {
				done.Err = ctx.Err()
			}
		default:
			done.ExitCode = -1
			done.Err = err
		}
		events <- done
		close(events)
	}()

	return events, nil
}
