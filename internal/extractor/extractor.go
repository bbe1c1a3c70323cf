package extractor

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/ytlist/internal/models"
)

const (
	separator     = "•"
	autoGenerated = "auto-generated"
	artistJoin    = ", "
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// Status reports whether an extraction found anything to resolve.
type Status int

const (
	StatusOK Status = iota
	StatusNoRows
)

func (s Status) String() string {
	if s == StatusNoRows {
		return "no rows"
	}
	return "ok"
}

// Result holds the output of one extraction pass.
type Result struct {
	Entries     []models.ResolvedEntry // One per input row, in row order
	Diagnostics []models.Diagnostic    // At most one per row, in row order
	Status      Status
}

// Flagged reports whether the 1-based row index has a diagnostic.
func (r Result) Flagged(index int) (models.Diagnostic, bool) {
	for _, d := range r.Diagnostics {
		if d.Index == index {
			return d, true
		}
	}
	return models.Diagnostic{}, false
}

// Lines renders every entry as "Title - Artist".
func (r Result) Lines() []string {
	lines := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		lines = append(lines, e.String())
	}
	return lines
}

// Extract resolves every row. It never fails: unresolved artists become placeholders plus a diagnostic.
func Extract(rows []models.TrackRecord) Result {
	res := Result{
		Entries:     make([]models.ResolvedEntry, 0, len(rows)),
		Diagnostics: []models.Diagnostic{},
	}
	if len(rows) == 0 {
		res.Status = StatusNoRows
		return res
	}

	for i, row := range rows {
		entry, diag := Resolve(i+1, row)
		res.Entries = append(res.Entries, entry)
		if diag != nil {
			res.Diagnostics = append(res.Diagnostics, *diag)
		}
	}
	return res
}

// Resolve applies the title and artist heuristics to a single row at the 1-based index.
//
// A nil row resolves to placeholders.
func Resolve(index int, row models.TrackRecord) (models.ResolvedEntry, *models.Diagnostic) {
	var title, combined string
	var candidates []string
	if row != nil {
		title = row.Title()
		candidates = row.ArtistCandidates()
		combined = row.CombinedText()
	}

	if title == "" {
		title = fmt.Sprintf("Unknown Title %d", index)
	}

	var diag *models.Diagnostic
	flag := func(reason models.Reason, candidate string) {
		diag = &models.Diagnostic{Index: index, Title: title, Reason: reason, Candidate: candidate}
	}

	artist := joinLinked(candidates)
	if artist == "" {
		if text := strings.TrimSpace(combined); text != "" {
			candidate := strings.TrimSpace(strings.SplitN(text, separator, 2)[0])
			switch {
			case candidate == title || yearPattern.MatchString(candidate):
				flag(models.MatchedTitleOrYear, candidate)
			case strings.Contains(combined, autoGenerated):
				flag(models.AutoGeneratedTopic, "")
			default:
				artist = candidate
			}
		}
	}

	if artist == "" {
		artist = fmt.Sprintf("Unknown Artist %d", index)
		if diag == nil {
			flag(models.NoLinksOrText, "")
		}
	}

	return models.ResolvedEntry{Title: title, Artist: artist}, diag
}

func joinLinked(candidates []string) string {
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if name := strings.TrimSpace(c); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, artistJoin)
}

// Extractor runs [Extract] and logs what it flagged.
type Extractor struct {
	logger *log.Logger
}

// New creates an Extractor. A nil logger discards output.
func New(logger *log.Logger) *Extractor {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Extractor{logger: logger}
}

// Extract resolves rows, logging each diagnostic at debug level.
func (e *Extractor) Extract(rows []models.TrackRecord) Result {
	res := Extract(rows)
	if res.Status == StatusNoRows {
		e.logger.Warn("no rows to extract")
		return res
	}

	for _, d := range res.Diagnostics {
		e.logger.Debug("artist unresolved", "track", d.Index, "title", d.Title, "reason", d.Reason)
	}
	e.logger.Info("extraction complete", "tracks", len(res.Entries), "flagged", len(res.Diagnostics))
	return res
}
