package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/desertthunder/ytlist/internal/extractor"
	"github.com/desertthunder/ytlist/internal/shared"
)

const (
	NoRowsMessage = "No song elements found. Ensure the playlist is loaded, you've scrolled down, and you're on the correct page. " +
		"Selectors might be outdated if YT Music updated its layout."
	ReviewFooter = "This might happen for non-music videos, topic channels, specific collaborations, or layout variations."
)

// Reporter receives the outcome of an extraction.
type Reporter interface {
	Report(res extractor.Result) error
}

// ConsoleReporter prints the playlist to Out and the diagnostics block to Warn.
type ConsoleReporter struct {
	Out     io.Writer
	Warn    io.Writer
	Palette *Palette // nil for plain text
	Footer  bool     // print [ReviewFooter] after the diagnostics
}

// NewConsoleReporter creates a ConsoleReporter. A nil warn writer shares out.
func NewConsoleReporter(out, warn io.Writer, palette *Palette) *ConsoleReporter {
	if warn == nil {
		warn = out
	}
	return &ConsoleReporter{Out: out, Warn: warn, Palette: palette, Footer: true}
}

// Report writes the header, the "Title - Artist" lines and the count, followed by any diagnostics.
func (c *ConsoleReporter) Report(res extractor.Result) error {
	if res.Status == extractor.StatusNoRows {
		return c.writeln(c.Out, c.Palette.Warn(NoRowsMessage))
	}

	var b strings.Builder
	b.WriteString(c.Palette.Title("--- Playlist Songs ---") + "\n")
	b.WriteString(strings.Join(res.Lines(), "\n") + "\n")
	b.WriteString("\n" + c.Palette.OK(fmt.Sprintf("--- Found %d songs ---", len(res.Entries))) + "\n")
	if err := c.write(c.Out, b.String()); err != nil {
		return err
	}

	if len(res.Diagnostics) == 0 {
		return nil
	}

	b.Reset()
	b.WriteString("\n" + c.Palette.Warn(fmt.Sprintf("--- Could not reliably determine artist for %d tracks: ---", len(res.Diagnostics))) + "\n")
	for _, d := range res.Diagnostics {
		line := fmt.Sprintf("  Track %d: \"%s\" (Reason: %s)", d.Index, d.Title, d.Message())
		b.WriteString(c.Palette.Warn(line) + "\n")
	}
	if c.Footer {
		b.WriteString(c.Palette.Help(ReviewFooter) + "\n")
	}
	return c.write(c.Warn, b.String())
}

func (c *ConsoleReporter) writeln(w io.Writer, s string) error {
	return c.write(w, s+"\n")
}

func (c *ConsoleReporter) write(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrWriteOutput, err)
	}
	return nil
}

// ExportReporter renders the result with [Export] and writes it to W.
//
// When no rows were found, [NoRowsMessage] also goes to Warn if set.
type ExportReporter struct {
	W      io.Writer
	Warn   io.Writer
	Format string
}

func (e *ExportReporter) Report(res extractor.Result) error {
	if res.Status == extractor.StatusNoRows && e.Warn != nil {
		if _, err := io.WriteString(e.Warn, NoRowsMessage+"\n"); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrWriteOutput, err)
		}
	}

	data, err := Export(e.Format, res)
	if err != nil {
		return err
	}
	if _, err := e.W.Write(data); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrWriteOutput, err)
	}
	return nil
}
