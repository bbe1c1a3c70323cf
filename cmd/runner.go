package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/ytlist/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config    *shared.Config
	logger    *log.Logger
	input     io.Reader
	output    io.Writer
	errOutput io.Writer
	copy      func(string) error
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config    *shared.Config
	Logger    *log.Logger
	Input     io.Reader          // snapshot source for "-"
	Output    io.Writer          // playlist and exports
	ErrOutput io.Writer          // diagnostics block of the console report
	Clipboard func(string) error // defaults to [shared.CopyToClipboard]
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}

	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	if opts.Input == nil {
		opts.Input = os.Stdin
	}

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}

	if opts.Clipboard == nil {
		opts.Clipboard = shared.CopyToClipboard
	}

	return &Runner{
		config:    opts.Config,
		logger:    opts.Logger,
		input:     opts.Input,
		output:    opts.Output,
		errOutput: opts.ErrOutput,
		copy:      opts.Clipboard,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		extractCommand, selectorsCommand, configCommand,
	} {
		commands = append(commands, fn(r))
	}
	return commands
}

// loadConfig returns the config named by --config, or the runner's config when the flag is unset.
func (r *Runner) loadConfig(cmd *cli.Command) (*shared.Config, error) {
	path := cmd.String("config")
	if path == "" {
		return r.config, nil
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("loaded config", "path", path)
	return config, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return err
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
