package control

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/herderapp/herder/internal/catalog"
	"github.com/herderapp/herder/internal/config"
	"github.com/herderapp/herder/internal/ollama"
	"github.com/herderapp/herder/internal/runner"
)

// ErrOperationInProgress rejects a second install or delete while one of
// the same kind is still running.
var ErrOperationInProgress = errors.New("operation already in progress")

// OpKind identifies a class of user-initiated operation. The controller
// allows at most one running operation per kind.
type OpKind int

const (
	OpInstall OpKind = iota
	OpDelete
)

// String returns the display label for the operation kind.
func (k OpKind) String() string {
	switch k {
	case OpDelete:
		return "delete"
	default:
		return "install"
	}
}

// Controller wires UI actions to tool invocations and owns the mutable
// application state: the active configuration, the catalog store, and the
// per-kind operation gates. UI code calls it from command goroutines, so
// everything here is safe for concurrent use.
type Controller struct {
	rootCtx context.Context
	run     runner.Runner
	store   *catalog.Store
	log     zerolog.Logger

	mu         sync.Mutex
	cfg        config.Config
	configPath string
	tool       *ollama.Tool
	toolPath   string
	running    map[OpKind]string
	cancelPull context.CancelFunc
}

// NewController builds a Controller. toolPath overrides the binary name
// (empty means "ollama" from PATH); rootCtx bounds the lifetime of
// streamed pulls.
func NewController(rootCtx context.Context, run runner.Runner, cfg config.Config, configPath, toolPath string, log zerolog.Logger) *Controller {
	return &Controller{
		rootCtx:    rootCtx,
		run:        run,
		store:      &catalog.Store{},
		log:        log,
		cfg:        cfg,
		configPath: configPath,
		tool:       ollama.NewTool(toolPath, cfg.Environ()),
		toolPath:   toolPath,
		running:    make(map[OpKind]string),
	}
}

// Catalog exposes the catalog store for the UI to snapshot.
func (c *Controller) Catalog() *catalog.Store {
	return c.store
}

// Config returns the active configuration.
func (c *Controller) Config() config.Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

// SetModelsDir persists a new models directory and rebuilds the tool
// environment so subsequent commands pick it up immediately.
func (c *Controller) SetModelsDir(dir string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cfg := config.Config{ModelsDir: strings.TrimSpace(dir)}
	if err := config.Save(c.configPath, cfg); err != nil {
		return err
	}
	c.cfg = cfg
	c.tool = ollama.NewTool(c.toolPath, cfg.Environ())
	c.log.Debug().Str("models_dir", cfg.EffectiveModelsDir()).Msg("models dir changed")
	return nil
}

// Busy reports the model name an operation of the given kind is working
// on, if any.
func (c *Controller) Busy(kind OpKind) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	name, ok := c.running[kind]
	return name, ok
}

// Version checks the installed CLI and returns its version line.
func (c *Controller) Version(ctx context.Context) (string, error) {
	return c.currentTool().Version(ctx)
}

// StartPull begins streaming `pull <name>` and returns its event channel.
// A second pull while one runs is rejected with ErrOperationInProgress.
// The caller must drain the channel and call FinishPull once Done arrives.
func (c *Controller) StartPull(name string) (<-chan runner.Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("model name is empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if inFlight, ok := c.running[OpInstall]; ok {
		return nil, fmt.Errorf("%w: installing %s", ErrOperationInProgress, inFlight)
	}

	ctx, cancel := context.WithCancel(c.rootCtx)
	events, err := c.run.Start(ctx, c.tool.PullSpec(name))
	if err != nil {
		cancel()
		return nil, err
	}

	c.running[OpInstall] = name
	c.cancelPull = cancel
	c.log.Debug().Str("model", name).Msg("pull started")
	return events, nil
}

// CancelPull aborts the in-flight pull, if any. The pull's Done event
// still arrives on its channel.
func (c *Controller) CancelPull() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancelPull == nil {
		return false
	}
	c.cancelPull()
	c.log.Debug().Str("model", c.running[OpInstall]).Msg("pull cancelled")
	return true
}

// FinishPull clears the install gate after the pull's Done event.
func (c *Controller) FinishPull() {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.running, OpInstall)
	c.cancelPull = nil
}

// CleanPartialPull removes whatever a cancelled pull left behind. The
// tool reports "model not found" when nothing was written yet; that is
// not a failure.
func (c *Controller) CleanPartialPull(ctx context.Context, name string) (string, error) {
	out, err := c.currentTool().Remove(ctx, name)
	if err != nil && strings.Contains(strings.ToLower(out), "model not found") {
		return "nothing to clean up", nil
	}
	return strings.TrimSpace(out), err
}

// Remove deletes a model via `rm <name>`. Concurrent deletes are rejected
// with ErrOperationInProgress.
func (c *Controller) Remove(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("model name is empty")
	}

	c.mu.Lock()
	if inFlight, ok := c.running[OpDelete]; ok {
		c.mu.Unlock()
		return "", fmt.Errorf("%w: deleting %s", ErrOperationInProgress, inFlight)
	}
	c.running[OpDelete] = name
	tool := c.tool
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.running, OpDelete)
		c.mu.Unlock()
	}()

	out, err := tool.Remove(ctx, name)
	if err != nil {
		return out, err
	}
	c.log.Debug().Str("model", name).Msg("model removed")
	return strings.TrimSpace(out), nil
}

// Refresh invokes `list`, parses the output, and atomically replaces the
// catalog. Parse warnings are returned for logging; they do not fail the
// refresh. A failed listing leaves the prior catalog untouched.
func (c *Controller) Refresh(ctx context.Context) (catalog.Snapshot, []string, error) {
	cfg := c.Config()

	stdout, stderr, err := c.currentTool().List(ctx)
	if err != nil {
		if catalog.IsEmptyListing(stderr) {
			c.store.Replace(nil, nil)
			return c.store.Snapshot(), nil, nil
		}
		c.store.Replace(nil, err)
		return c.store.Snapshot(), nil, err
	}
	if catalog.IsEmptyListing(stderr) {
		c.store.Replace(nil, nil)
		return c.store.Snapshot(), nil, nil
	}

	entries, warnings := catalog.ParseList(stdout, cfg.EffectiveModelsDir())
	c.store.Replace(entries, nil)
	c.log.Debug().Int("models", len(entries)).Int("warnings", len(warnings)).Msg("catalog refreshed")
	return c.store.Snapshot(), warnings, nil
}

// Details is a point lookup against the last successful refresh.
func (c *Controller) Details(name string) (catalog.Entry, bool) {
	return c.store.Lookup(name)
}

// Show runs `show <name>` for the full model card.
func (c *Controller) Show(ctx context.Context, name string) (string, error) {
	return c.currentTool().Show(ctx, name)
}

func (c *Controller) currentTool() *ollama.Tool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tool
}
