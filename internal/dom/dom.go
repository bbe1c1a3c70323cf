// Package dom reads saved playlist pages and exposes each rendered row as a [models.TrackRecord].
//
// A snapshot is either the page HTML, queried with CSS [Selectors], or a JSON
// array of [models.Row] values captured elsewhere.
package dom

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/desertthunder/ytlist/internal/models"
	"github.com/desertthunder/ytlist/internal/shared"
)

// Input formats accepted by [Open].
const (
	FormatAuto = "auto"
	FormatHTML = "html"
	FormatJSON = "json"
)

// Selectors locates a playlist row and its fields.
type Selectors struct {
	Track      string // one match per playlist row
	Title      string // first match inside a row
	ArtistLink string // every match inside a row
	DirectText string // first match inside a row
}

// DefaultSelectors matches the YouTube Music playlist layout.
func DefaultSelectors() Selectors {
	return Selectors{
		Track:      "ytmusic-responsive-list-item-renderer",
		Title:      ".title .yt-formatted-string",
		ArtistLink: ".secondary-flex-columns a.yt-simple-endpoint",
		DirectText: ".secondary-flex-columns > yt-formatted-string:nth-child(1)",
	}
}

// FromConfig builds Selectors from config, keeping defaults for blank entries.
func FromConfig(c shared.SelectorsConfig) Selectors {
	return DefaultSelectors().Merge(Selectors{
		Track:      c.Track,
		Title:      c.Title,
		ArtistLink: c.ArtistLink,
		DirectText: c.DirectText,
	})
}

// Merge returns s with every non-blank field of o applied over it.
func (s Selectors) Merge(o Selectors) Selectors {
	pick := func(cur, next string) string {
		if strings.TrimSpace(next) != "" {
			return next
		}
		return cur
	}
	return Selectors{
		Track:      pick(s.Track, o.Track),
		Title:      pick(s.Title, o.Title),
		ArtistLink: pick(s.ArtistLink, o.ArtistLink),
		DirectText: pick(s.DirectText, o.DirectText),
	}
}

// Validate compiles each selector.
func (s Selectors) Validate() error {
	for _, f := range []struct{ name, sel string }{
		{"track", s.Track},
		{"title", s.Title},
		{"artist_link", s.ArtistLink},
		{"direct_text", s.DirectText},
	} {
		if strings.TrimSpace(f.sel) == "" {
			return fmt.Errorf("%w: %s selector is empty", shared.ErrInvalidSelector, f.name)
		}
		if _, err := cascadia.Compile(f.sel); err != nil {
			return fmt.Errorf("%w: %s %q: %v", shared.ErrInvalidSelector, f.name, f.sel, err)
		}
	}
	return nil
}

// Node is a playlist row within a parsed page.
type Node struct {
	sel *goquery.Selection
	q   Selectors
}

// Title returns the trimmed text of the first title match.
func (n Node) Title() string {
	return strings.TrimSpace(n.sel.Find(n.q.Title).First().Text())
}

// ArtistCandidates returns the text of every artist link, untrimmed.
func (n Node) ArtistCandidates() []string {
	return n.sel.Find(n.q.ArtistLink).Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
}

// CombinedText returns the text of the first direct-text match, untrimmed.
func (n Node) CombinedText() string {
	return n.sel.Find(n.q.DirectText).First().Text()
}

// LoadHTML parses a page and returns one [Node] per track match in document order.
func LoadHTML(r io.Reader, sel Selectors) ([]models.TrackRecord, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrReadInput, err)
	}

	records := []models.TrackRecord{}
	doc.Find(sel.Track).Each(func(_ int, s *goquery.Selection) {
		records = append(records, Node{sel: s, q: sel})
	})
	return records, nil
}

// LoadJSON decodes an array of [models.Row].
func LoadJSON(r io.Reader) ([]models.TrackRecord, error) {
	var rows []models.Row
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		if err == io.EOF {
			return []models.TrackRecord{}, nil
		}
		return nil, fmt.Errorf("%w: failed to decode rows: %v", shared.ErrInvalidInput, err)
	}

	records := make([]models.TrackRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row)
	}
	return records, nil
}

// DetectFormat resolves [FormatAuto] from the file extension. Anything other than .json is treated as HTML.
func DetectFormat(path, format string) (string, error) {
	switch strings.ToLower(format) {
	case FormatHTML, FormatJSON:
		return strings.ToLower(format), nil
	case "", FormatAuto:
		if strings.EqualFold(filepath.Ext(path), ".json") {
			return FormatJSON, nil
		}
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: unknown input format %q", shared.ErrInvalidFlag, format)
	}
}

// Read parses r in a resolved format ([FormatHTML] or [FormatJSON]).
func Read(r io.Reader, format string, sel Selectors) ([]models.TrackRecord, error) {
	if format == FormatJSON {
		return LoadJSON(r)
	}
	return LoadHTML(r, sel)
}

// Open reads the snapshot at path ("-" for stdin) in the given format.
func Open(path, format string, sel Selectors) ([]models.TrackRecord, error) {
	format, err := DetectFormat(path, format)
	if err != nil {
		return nil, err
	}

	if path == "-" {
		return Read(os.Stdin, format, sel)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrReadInput, err)
	}
	defer f.Close()

	return Read(f, format, sel)
}
