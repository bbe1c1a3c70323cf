// package formatter renders extraction results as console reports or exports (plain text, CSV, Markdown, JSON, table)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/desertthunder/ytlist/internal/extractor"
	"github.com/desertthunder/ytlist/internal/models"
	"github.com/desertthunder/ytlist/internal/shared"
)

// ExportToText renders one "Title - Artist" line per entry.
func ExportToText(res extractor.Result) ([]byte, error) {
	var buf bytes.Buffer
	for _, line := range res.Lines() {
		buf.WriteString(line + "\n")
	}
	return buf.Bytes(), nil
}

// ExportToCSV converts a result to CSV format with columns: Index, Title, Artist, Flagged, Reason
func ExportToCSV(res extractor.Result) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Index", "Title", "Artist", "Flagged", "Reason"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, entry := range res.Entries {
		reason := ""
		d, flagged := res.Flagged(i + 1)
		if flagged {
			reason = d.Reason.String()
		}
		record := []string{
			strconv.Itoa(i + 1),
			entry.Title,
			entry.Artist,
			strconv.FormatBool(flagged),
			reason,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown renders a numbered track list followed by a review section for flagged rows.
func ExportToMarkdown(res extractor.Result) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Playlist\n\n")
	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n", len(res.Entries)))
	buf.WriteString(fmt.Sprintf("**Flagged**: %d\n\n", len(res.Diagnostics)))

	buf.WriteString("## Tracks\n\n")
	for i, entry := range res.Entries {
		marker := ""
		if _, ok := res.Flagged(i + 1); ok {
			marker = " ⚠"
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s\n", i+1, entry.String(), marker))
	}

	if len(res.Diagnostics) > 0 {
		buf.WriteString("\n## Needs review\n\n")
		for _, d := range res.Diagnostics {
			buf.WriteString(fmt.Sprintf("- Track %d: \"%s\" (%s)\n", d.Index, d.Title, d.Message()))
		}
	}

	return buf.Bytes(), nil
}

type jsonExport struct {
	Status      string                 `json:"status"`
	Count       int                    `json:"count"`
	Entries     []models.ResolvedEntry `json:"entries"`
	Diagnostics []jsonDiagnostic       `json:"diagnostics"`
}

type jsonDiagnostic struct {
	models.Diagnostic
	Message string `json:"message"`
}

// ExportToJSON renders entries and diagnostics as an indented JSON document.
func ExportToJSON(res extractor.Result) ([]byte, error) {
	out := jsonExport{
		Status:      res.Status.String(),
		Count:       len(res.Entries),
		Entries:     res.Entries,
		Diagnostics: make([]jsonDiagnostic, 0, len(res.Diagnostics)),
	}
	if out.Entries == nil {
		out.Entries = []models.ResolvedEntry{}
	}
	for _, d := range res.Diagnostics {
		out.Diagnostics = append(out.Diagnostics, jsonDiagnostic{Diagnostic: d, Message: d.Message()})
	}

	data, err := shared.MarshalJSON(out, true)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// ExportToTable renders an aligned Index/Title/Artist table.
func ExportToTable(res extractor.Result) ([]byte, error) {
	rows := make([][]string, 0, len(res.Entries))
	for i, entry := range res.Entries {
		rows = append(rows, []string{strconv.Itoa(i + 1), entry.Title, entry.Artist})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Index", "Title", "Artist").
		Rows(rows...)

	return []byte(t.String() + "\n"), nil
}

// Export renders res in the named format. "console" is handled by [ConsoleReporter] and is not accepted here.
func Export(format string, res extractor.Result) ([]byte, error) {
	switch format {
	case "text":
		return ExportToText(res)
	case "csv":
		return ExportToCSV(res)
	case "markdown", "md":
		return ExportToMarkdown(res)
	case "json":
		return ExportToJSON(res)
	case "table":
		return ExportToTable(res)
	default:
		return nil, fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidFlag, format)
	}
}

// WriteExport renders res in the named format and writes it to path.
func WriteExport(res extractor.Result, format, path string) error {
	data, err := Export(format, res)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s file: %w", format, err)
	}

	return nil
}
