package control

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/herderapp/herder/internal/config"
	"github.com/herderapp/herder/internal/runner"
)

// fakeRunner hands out scripted event channels without spawning anything.
type fakeRunner struct {
	specs  []runner.Spec
	events []runner.Event
	err    error
}

func (f *fakeRunner) Start(ctx context.Context, spec runner.Spec) (<-chan runner.Event, error) {
	f.specs = append(f.specs, spec)
	if f.err != nil {
		return nil, f.err
	}
	ch := make(chan runner.Event, len(f.events))
	for _, evt := range f.events {
		ch <- evt
	}
	close(ch)
	return ch, nil
}

func newTestController(t *testing.T, run runner.Runner) *Controller {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	configPath := filepath.Join(t.TempDir(), "config.json")
	return NewController(context.Background(), run, config.Config{}, configPath, "", zerolog.Nop())
}

// stubList puts a fake ollama binary on PATH whose `list` output is fixed.
func stubList(t *testing.T, stdout, stderr string, exitCode int) {
	t.Helper()
	dir := t.TempDir()
	script := "#!/bin/sh\n" +
		"printf '%b' \"" + stdout + "\"\n" +
		"printf '%b' \"" + stderr + "\" >&2\n" +
		"exit " + string(rune('0'+exitCode)) + "\n"
	if err := os.WriteFile(filepath.Join(dir, "ollama"), []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestStartPull_SecondInstallRejected(t *testing.T) {
	run := &fakeRunner{events: []runner.Event{runner.Done{}}}
	ctl := newTestController(t, run)

	events, err := ctl.StartPull("phi3:3.8b")
	if err != nil {
		t.Fatalf("first StartPull returned error: %v", err)
	}

	if _, err := ctl.StartPull("phi3:3.8b"); !errors.Is(err, ErrOperationInProgress) {
		t.Fatalf("second StartPull error = %v, want ErrOperationInProgress", err)
	}

	for range events {
	}
	ctl.FinishPull()

	if _, err := ctl.StartPull("phi3:3.8b"); err != nil {
		t.Fatalf("StartPull after FinishPull returned error: %v", err)
	}
}

func TestStartPull_BuildsPullInvocation(t *testing.T) {
	run := &fakeRunner{events: []runner.Event{runner.Done{}}}
	ctl := newTestController(t, run)

	if _, err := ctl.StartPull("codegemma:2b"); err != nil {
		t.Fatalf("StartPull returned error: %v", err)
	}
	if len(run.specs) != 1 {
		t.Fatalf("specs = %d, want 1", len(run.specs))
	}
	spec := run.specs[0]
	if len(spec.Args) != 2 || spec.Args[0] != "pull" || spec.Args[1] != "codegemma:2b" {
		t.Fatalf("Args = %v, want [pull codegemma:2b]", spec.Args)
	}
}

func TestStartPull_EmptyNameRejected(t *testing.T) {
	ctl := newTestController(t, &fakeRunner{})
	if _, err := ctl.StartPull("   "); err == nil {
		t.Fatalf("StartPull returned nil error, want rejection")
	}
}

func TestCancelPull_ReportsWhetherAnythingRan(t *testing.T) {
	ctl := newTestController(t, &fakeRunner{events: []runner.Event{runner.Done{}}})

	if ctl.CancelPull() {
		t.Fatalf("CancelPull with nothing running = true, want false")
	}
	if _, err := ctl.StartPull("phi3:3.8b"); err != nil {
		t.Fatalf("StartPull returned error: %v", err)
	}
	if !ctl.CancelPull() {
		t.Fatalf("CancelPull with running pull = false, want true")
	}
}

func TestRefresh_ReplacesCatalog(t *testing.T) {
	ctl := newTestController(t, &fakeRunner{})
	stubList(t, `NAME  ID  SIZE  MODIFIED\nphi3:3.8b  4f2222927938  2.2GB  now\n`, "", 0)

	snap, warnings, err := ctl.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}
	if len(snap.Entries) != 1 || snap.Entries[0].Name != "phi3:3.8b" {
		t.Fatalf("entries = %+v, want phi3:3.8b", snap.Entries)
	}
	if entry, ok := ctl.Details("phi3:3.8b"); !ok || entry.ID != "4f2222927938" {
		t.Fatalf("Details = %+v %v, want phi3 entry", entry, ok)
	}
}

func TestRefresh_EmptyListingIsEmptyCatalogNotError(t *testing.T) {
	ctl := newTestController(t, &fakeRunner{})
	stubList(t, "", `No models installed\n`, 0)

	snap, _, err := ctl.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if len(snap.Entries) != 0 {
		t.Fatalf("entries = %+v, want empty", snap.Entries)
	}
	if !snap.HasLoaded {
		t.Fatalf("HasLoaded = false, want loaded empty catalog")
	}
}

func TestRefresh_FailureKeepsPriorCatalog(t *testing.T) {
	ctl := newTestController(t, &fakeRunner{})
	stubList(t, `NAME  ID  SIZE  MODIFIED\nphi3:3.8b  4f2222927938  2.2GB  now\n`, "", 0)
	if _, _, err := ctl.Refresh(context.Background()); err != nil {
		t.Fatalf("seed Refresh returned error: %v", err)
	}

	stubList(t, "", "could not connect to ollama app", 1)
	snap, _, err := ctl.Refresh(context.Background())
	if err == nil {
		t.Fatalf("Refresh returned nil error, want failure")
	}
	if len(snap.Entries) != 1 {
		t.Fatalf("entries after failed refresh = %d, want prior 1", len(snap.Entries))
	}
}

func TestDetails_BeforeAnyRefreshIsNotFound(t *testing.T) {
	ctl := newTestController(t, &fakeRunner{})
	if _, ok := ctl.Details("phi3:3.8b"); ok {
		t.Fatalf("Details before refresh = found, want not found")
	}
}

func TestSetModelsDir_PersistsAndRearmsTool(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	configPath := filepath.Join(t.TempDir(), "config.json")
	run := &fakeRunner{events: []runner.Event{runner.Done{}}}
	ctl := NewController(context.Background(), run, config.Config{}, configPath, "", zerolog.Nop())

	dir := filepath.Join(t.TempDir(), "fast-disk")
	if err := ctl.SetModelsDir(dir); err != nil {
		t.Fatalf("SetModelsDir returned error: %v", err)
	}

	cfg, reason := config.Load(configPath)
	if reason != "" {
		t.Fatalf("Load reason = %q, want empty", reason)
	}
	if cfg.ModelsDir != dir {
		t.Fatalf("persisted ModelsDir = %q, want %q", cfg.ModelsDir, dir)
	}

	if _, err := ctl.StartPull("phi3:3.8b"); err != nil {
		t.Fatalf("StartPull returned error: %v", err)
	}
	spec := run.specs[0]
	want := "OLLAMA_MODELS=" + filepath.Join(dir, "models")
	if len(spec.Env) != 1 || spec.Env[0] != want {
		t.Fatalf("spec.Env = %v, want %q", spec.Env, want)
	}
}
