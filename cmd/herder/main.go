package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/herderapp/herder/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config file path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences file path (optional)")
	toolPath := flag.String("tool", "", "path to the ollama binary (optional, defaults to PATH lookup)")
	host := flag.String("host", "", "ollama server address (optional, defaults to 127.0.0.1:11434)")
	debugLog := flag.String("debug-log", "", "write debug output to this file (optional)")
	pollSeconds := flag.Int("poll", 0, "server poll interval in seconds (optional, defaults to 3s)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		ToolPath:   *toolPath,
		Host:       *host,
		DebugLog:   *debugLog,
	}
	if poll := *pollSeconds; poll > 0 {
		opts.PollEvery = poll
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "herder: %v\n", err)
		return 1
	}
	return 0
}
