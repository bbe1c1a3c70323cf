// package models defines the data model for playlist extraction
package models

import "fmt"

// TrackRecord exposes the extractable fields of one playlist row.
//
// Implementations are supplied by a page source and are never mutated by the extractor.
type TrackRecord interface {
	Title() string              // Title returns the row's title text, or "" when absent
	ArtistCandidates() []string // ArtistCandidates returns the raw text of each linked artist
	CombinedText() string       // CombinedText returns the "Artist • Album • Year" style text, or "" when absent
}

// Row is a static [TrackRecord].
type Row struct {
	TitleText  string   `json:"title"`
	Artists    []string `json:"artists,omitempty"`
	DirectText string   `json:"text,omitempty"`
}

func (r Row) Title() string              { return r.TitleText }
func (r Row) ArtistCandidates() []string { return r.Artists }
func (r Row) CombinedText() string       { return r.DirectText }

// ResolvedEntry is the output for a single row.
type ResolvedEntry struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// String renders the entry as "Title - Artist".
func (e ResolvedEntry) String() string {
	return fmt.Sprintf("%s - %s", e.Title, e.Artist)
}

// Reason identifies why a row's artist was flagged.
type Reason int

const (
	NoLinksOrText Reason = iota
	MatchedTitleOrYear
	AutoGeneratedTopic
)

var reasonNames = map[Reason]string{
	NoLinksOrText:      "NoLinksOrText",
	MatchedTitleOrYear: "MatchedTitleOrYear",
	AutoGeneratedTopic: "AutoGeneratedTopic",
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// Text returns the human readable explanation for r.
//
// candidate is only used by [MatchedTitleOrYear].
func (r Reason) Text(candidate string) string {
	switch r {
	case NoLinksOrText:
		return "Could not find artist via links or direct text."
	case MatchedTitleOrYear:
		return fmt.Sprintf("Direct text fallback matched title or year ('%s')", candidate)
	case AutoGeneratedTopic:
		return "Direct text indicates auto-generated topic channel."
	default:
		return r.String()
	}
}

// MarshalText encodes the reason by name.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Diagnostic flags a row for manual review.
type Diagnostic struct {
	Index     int    `json:"index"` // 1-based row position
	Title     string `json:"title"`
	Reason    Reason `json:"reason"`
	Candidate string `json:"candidate,omitempty"` // rejected direct-text value, if any
}

// Message returns the reason text for d.
func (d Diagnostic) Message() string {
	return d.Reason.Text(d.Candidate)
}
