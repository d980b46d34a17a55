package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/herderapp/herder/internal/ollama"
	"github.com/herderapp/herder/internal/state"
)

const defaultPollInterval = 3 * time.Second

// StartPoller launches a background goroutine that refreshes the server
// status store at a fixed cadence. It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, client ollama.API, interval time.Duration, log zerolog.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			poll(ctx, store, client, log)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func poll(ctx context.Context, store *state.Store, client ollama.API, log zerolog.Logger) {
	version, err := client.ServerVersion(ctx)
	if err != nil {
		store.Update("", nil, err)
		log.Debug().Err(err).Msg("version poll failed")
		return
	}
	running, err := client.Ps(ctx)
	if err != nil {
		store.Update("", nil, err)
		log.Debug().Err(err).Msg("ps poll failed")
		return
	}
	store.Update(version, running, nil)
}
