package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/ytlist/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("ignoring config.toml", "error", err)
		}
	}

	if ll, err := shared.ParseLogLevel(config.Log.Level); err == nil {
		shared.SetLogLevel(logger, ll)
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "ytlist",
		Usage:    "Extract a plain-text song list from a saved YouTube Music playlist page",
		Version:  "0.2.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		switch {
		case errors.Is(err, shared.ErrAmbiguousTracks):
			logger.Warn(err.Error())
			os.Exit(2)
		default:
			logger.Fatalf("application error: %v", err)
		}
	}
}
