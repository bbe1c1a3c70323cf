package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/ytlist/internal/dom"
	"github.com/desertthunder/ytlist/internal/extractor"
	"github.com/desertthunder/ytlist/internal/formatter"
	"github.com/desertthunder/ytlist/internal/models"
	"github.com/desertthunder/ytlist/internal/shared"
	"github.com/urfave/cli/v3"
)

// Extract reads a saved playlist page, resolves every row and reports the result.
//
// Zero rows is reported, not returned as an error. With --strict, unresolved artists yield [shared.ErrAmbiguousTracks].
func (r *Runner) Extract(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		return fmt.Errorf("%w: snapshot path (use - for stdin)", shared.ErrMissingArgument)
	}

	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	format := config.Output.Format
	if cmd.IsSet("format") {
		format = strings.ToLower(cmd.String("format"))
	}
	if !slices.Contains(shared.OutputFormats, format) {
		return fmt.Errorf("%w: unknown output format %q", shared.ErrInvalidFlag, format)
	}

	logger := shared.WithLogger(r.logger, "run_id", shared.GenerateID())
	if ll, err := shared.ParseLogLevel(config.Log.Level); err == nil {
		shared.SetLogLevel(logger, ll)
	}
	if cmd.Bool("verbose") {
		shared.SetLogLevel(logger, log.DebugLevel)
	}

	sel := dom.FromConfig(config.Selectors).Merge(dom.Selectors{
		Track:      cmd.String("track-selector"),
		Title:      cmd.String("title-selector"),
		ArtistLink: cmd.String("artist-selector"),
		DirectText: cmd.String("text-selector"),
	})

	rows, err := r.readSnapshot(path, cmd.String("input"), sel)
	if err != nil {
		return err
	}
	logger.Info("loaded snapshot", "path", path, "rows", len(rows))

	res := extractor.New(logger).Extract(rows)

	reportTo := func(w io.Writer) error {
		return r.reporter(w, format, config, cmd).Report(res)
	}
	if target := cmd.String("output"); target != "" {
		logger.Info("writing report", "path", target, "format", format)
		err = writeReportFile(target, reportTo)
	} else {
		err = reportTo(r.output)
	}
	if err != nil {
		return err
	}

	if cmd.Bool("clipboard") && res.Status == extractor.StatusOK {
		if err := r.copy(strings.Join(res.Lines(), "\n")); err != nil {
			logger.Warn("could not copy to clipboard", "error", err)
		} else {
			logger.Info("copied song list to clipboard", "tracks", len(res.Entries))
		}
	}

	if cmd.Bool("strict") && len(res.Diagnostics) > 0 {
		return fmt.Errorf("%w: %d of %d tracks", shared.ErrAmbiguousTracks, len(res.Diagnostics), len(res.Entries))
	}

	return nil
}

// writeReportFile creates path, hands it to report and closes it. The file is removed when either step fails.
func writeReportFile(path string, report func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrWriteOutput, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", shared.ErrWriteOutput, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return report(f)
}

func (r *Runner) readSnapshot(path, input string, sel dom.Selectors) ([]models.TrackRecord, error) {
	if path != "-" {
		return dom.Open(path, input, sel)
	}

	format, err := dom.DetectFormat(path, input)
	if err != nil {
		return nil, err
	}
	return dom.Read(r.input, format, sel)
}

// reporter picks the sink for format. The console report keeps diagnostics on the error stream unless writing to a file.
func (r *Runner) reporter(out io.Writer, format string, config *shared.Config, cmd *cli.Command) formatter.Reporter {
	if format != "console" {
		return &formatter.ExportReporter{W: out, Warn: r.errOutput, Format: format}
	}

	warn := r.errOutput
	var palette *formatter.Palette
	if out != r.output {
		warn = out
	} else if config.Output.Color || cmd.Bool("color") {
		palette = formatter.DefaultPalette()
	}

	reporter := formatter.NewConsoleReporter(out, warn, palette)
	reporter.Footer = config.Output.Footer
	return reporter
}

// Selectors prints the selectors an extract run would use.
func (r *Runner) Selectors(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	sel := dom.FromConfig(config.Selectors)
	if err := sel.Validate(); err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(shared.SelectorsConfig{
			Track:      sel.Track,
			Title:      sel.Title,
			ArtistLink: sel.ArtistLink,
			DirectText: sel.DirectText,
		}, true)
	}

	for _, line := range [][2]string{
		{"track", sel.Track},
		{"title", sel.Title},
		{"artist_link", sel.ArtistLink},
		{"direct_text", sel.DirectText},
	} {
		if err := r.writePlain("%-12s %s\n", line[0]+":", line[1]); err != nil {
			return err
		}
	}
	return nil
}

// ConfigInit writes the example configuration to the given path.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		path = "config.toml"
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	return r.writePlain("✓ Config written to %s\n", path)
}
